package request

type UserCreateRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Phone    string  `json:"phone" validate:"required,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin user editor"`
}

type UserUpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=admin user editor"`
}
