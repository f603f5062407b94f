package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-api/internal/data/entity"
	"clinic-api/internal/data/repository"
	"clinic-api/internal/dto/request"
	"clinic-api/internal/dto/response"
	"clinic-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// 2. Find user by phone (the login identifier)
	user, err := s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Same generic failure whether the phone is unknown or the
	// password is wrong, so identifiers cannot be probed
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("phone", req.Phone))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID, userAgent, ipAddress)
	if err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("phone", user.Phone),
	)

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// Tokens are UUIDs; anything else can't match a session
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Logout with malformed token", zap.Error(err))
		return ErrNotFound
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		// A token revoked concurrently is still a successful logout
		if errors.Is(err, repository.ErrSessionRevoked) {
			return nil
		}
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, userAgent, ipAddress string) (*entity.Session, error) {
	expiry := time.Duration(s.config.Auth.SessionExpiryHours) * time.Hour

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
