package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-api/internal/data/entity"
	"clinic-api/internal/dto/request"
	"clinic-api/pkg/utils"

	"github.com/google/uuid"
)

func newAuthFixture(t *testing.T) (AuthService, *memSessionRepo, *entity.User) {
	t.Helper()
	repo, userRepo, _, sessionRepo := newTestRepo()

	user := testUser(entity.RoleUser)
	user.Phone = "01203376449"
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user.PasswordHash = hash
	userRepo.users = append(userRepo.users, user)

	return NewAuthService(repo, newTestConfig(), testLogger()), sessionRepo, user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, sessionRepo, user := newAuthFixture(t)

		auth, err := svc.Login(ctx, &request.LoginRequest{
			Phone:    user.Phone,
			Password: "password123",
		}, "test-agent", "127.0.0.1")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		if auth.Token == "" {
			t.Fatal("expected a token")
		}
		if auth.TokenType != "Bearer" {
			t.Fatalf("expected Bearer, got %q", auth.TokenType)
		}
		if auth.User.ID != user.ID.String() {
			t.Fatalf("wrong user in response: %s", auth.User.ID)
		}
		if !auth.ExpiresAt.After(time.Now().Add(23 * time.Hour)) {
			t.Fatalf("expiry too soon: %v", auth.ExpiresAt)
		}

		session, err := sessionRepo.FindValidSession(ctx, auth.Token)
		if err != nil || session == nil {
			t.Fatalf("session not persisted: %v", err)
		}
		if session.UserAgent == nil || *session.UserAgent != "test-agent" {
			t.Fatalf("user agent not recorded: %v", session.UserAgent)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, _, user := newAuthFixture(t)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Phone:    user.Phone,
			Password: "wrong-password",
		}, "", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownPhoneGetsSameError", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Phone:    "00000000000",
			Password: "password123",
		}, "", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("MissingFieldsFailValidation", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, &request.LoginRequest{}, "", "")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("RevokesTheSession", func(t *testing.T) {
		svc, sessionRepo, user := newAuthFixture(t)

		auth, err := svc.Login(ctx, &request.LoginRequest{
			Phone:    user.Phone,
			Password: "password123",
		}, "", "")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		if err := svc.Logout(ctx, auth.Token); err != nil {
			t.Fatalf("Logout: %v", err)
		}

		session, err := sessionRepo.FindValidSession(ctx, auth.Token)
		if err != nil {
			t.Fatalf("FindValidSession: %v", err)
		}
		if session != nil {
			t.Fatal("session still valid after logout")
		}
	})

	t.Run("DoubleLogoutSucceeds", func(t *testing.T) {
		svc, _, user := newAuthFixture(t)

		auth, err := svc.Login(ctx, &request.LoginRequest{
			Phone:    user.Phone,
			Password: "password123",
		}, "", "")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}

		if err := svc.Logout(ctx, auth.Token); err != nil {
			t.Fatalf("first logout: %v", err)
		}
		// A concurrent revoke of the same token must not turn into a 500
		if err := svc.Logout(ctx, auth.Token); err != nil {
			t.Fatalf("second logout: %v", err)
		}
	})

	t.Run("UnknownTokenSucceeds", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		if err := svc.Logout(ctx, uuid.New().String()); err != nil {
			t.Fatalf("logout with unknown token: %v", err)
		}
	})

	t.Run("MalformedTokenIsNotFound", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		if err := svc.Logout(ctx, "not-a-uuid"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
