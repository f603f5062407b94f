package utils

import (
	"context"

	"clinic-api/internal/data/entity"
)

type contextKey string

const (
	ActorKey contextKey = "actor"
	TokenKey contextKey = "token"
)

// SetActorContext stores the authenticated user for the current request.
// Handlers read it back and pass the actor explicitly into every service
// call; nothing below the handler layer touches the context for identity.
func SetActorContext(ctx context.Context, actor *entity.User) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

func GetActorFromContext(ctx context.Context) (*entity.User, bool) {
	actor, ok := ctx.Value(ActorKey).(*entity.User)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
