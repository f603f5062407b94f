package entity

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleUser   UserRole = "user"
	RoleEditor UserRole = "editor"
)

type User struct {
	Base
	Name               string   `db:"name"`
	Phone              string   `db:"phone"`
	Email              *string  `db:"email"`
	PasswordHash       string   `db:"password"`
	Role               UserRole `db:"role"`
	MustChangePassword bool     `db:"must_change_password"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
