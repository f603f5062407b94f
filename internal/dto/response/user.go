package response

import (
	"time"

	"clinic-api/internal/data/entity"
)

type UserResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	Email              *string         `json:"email,omitempty"`
	Role               entity.UserRole `json:"role"`
	MustChangePassword bool            `json:"must_change_password"`
	CreatedAt          time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Phone:              user.Phone,
		Email:              user.Email,
		Role:               user.Role,
		MustChangePassword: user.MustChangePassword,
		CreatedAt:          user.CreatedAt,
	}
}
