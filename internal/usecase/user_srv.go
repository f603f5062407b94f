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
	"clinic-api/internal/policy"
	"clinic-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context, actor *entity.User, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error)
	GetByID(ctx context.Context, actor *entity.User, userID string) (*response.UserResponse, error)
	Create(ctx context.Context, actor *entity.User, req *request.UserCreateRequest) (*response.UserResponse, error)
	Update(ctx context.Context, actor *entity.User, userID string, req *request.UserUpdateRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, actor *entity.User, req *request.ChangePasswordRequest) error
	Delete(ctx context.Context, actor *entity.User, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) List(ctx context.Context, actor *entity.User, page, perPage int) (*response.PaginatedResponse[response.UserResponse], error) {
	if !policy.CanListUsers(actor) {
		return nil, ErrForbidden
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = request.DefaultPerPage
	}
	if perPage > request.MaxPerPage {
		perPage = request.MaxPerPage
	}

	users, err := us.repo.User.FindAll(ctx, perPage, utils.CalculateOffset(page, perPage))
	if err != nil {
		us.log.Error("Failed to list users",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", perPage),
		)
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, page, perPage, total), nil
}

func (us *userService) findByID(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return user, nil
}

func (us *userService) GetByID(ctx context.Context, actor *entity.User, userID string) (*response.UserResponse, error) {
	user, err := us.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewUser(actor, user) {
		return nil, ErrForbidden
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Create(ctx context.Context, actor *entity.User, req *request.UserCreateRequest) (*response.UserResponse, error) {
	if !policy.CanCreateUser(actor) {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleUser
	if req.Role != nil {
		role = entity.UserRole(*req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		// Admin-assigned passwords are temporary; the account stays
		// locked to the change-password endpoint until rotated
		MustChangePassword: true,
	}

	if err := us.repo.User.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, fieldError("phone", "This phone number is already registered")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, fieldError("email", "This email is already registered")
		}
		us.log.Error("Failed to create user", zap.Error(err), zap.String("phone", req.Phone))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("created_by", actor.ID.String()),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) Update(ctx context.Context, actor *entity.User, userID string, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	user, err := us.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roleChanged := req.Role != nil && entity.UserRole(*req.Role) != user.Role
	if !policy.CanUpdateUser(actor, user, roleChanged) {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}

	user.UpdatedAt = time.Now()

	if err := us.repo.User.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePhone):
			return nil, fieldError("phone", "This phone number is already registered")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, fieldError("email", "This email is already registered")
		}
		us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ChangePassword(ctx context.Context, actor *entity.User, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return NewValidationError(errs)
	}

	if !utils.CheckPasswordHash(req.OldPassword, actor.PasswordHash) {
		us.log.Warn("Change password with wrong old password",
			zap.String("user_id", actor.ID.String()))
		return ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	actor.PasswordHash = hashedPassword
	actor.MustChangePassword = false
	actor.UpdatedAt = time.Now()

	if err := us.repo.User.Update(ctx, actor); err != nil {
		us.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("user_id", actor.ID.String()),
		)
		return fmt.Errorf("update password: %w", err)
	}

	us.log.Info("Password changed", zap.String("user_id", actor.ID.String()))
	return nil
}

func (us *userService) Delete(ctx context.Context, actor *entity.User, userID string) error {
	user, err := us.findByID(ctx, userID)
	if err != nil {
		return err
	}

	if !policy.CanDeleteUser(actor, user) {
		return ErrForbidden
	}

	if err := us.repo.User.Delete(ctx, user.ID); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User deleted",
		zap.String("user_id", userID),
		zap.String("deleted_by", actor.ID.String()),
	)

	return nil
}
