package policy

import (
	"clinic-api/internal/data/entity"
)

// CanListUsers allows admins only.
func CanListUsers(actor *entity.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanViewUser allows admins, or the user viewing themselves.
func CanViewUser(actor *entity.User, target *entity.User) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.IsAdmin() || actor.ID == target.ID
}

// CanCreateUser allows admins only.
func CanCreateUser(actor *entity.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanUpdateUser allows admins to update anyone. A user may update
// themselves but may not change their own role; roleChanged must be true
// when the request carries a role different from the target's current one.
func CanUpdateUser(actor *entity.User, target *entity.User, roleChanged bool) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if actor.ID == target.ID {
		return !roleChanged
	}
	return false
}

// CanDeleteUser allows admins, except deleting their own account.
func CanDeleteUser(actor *entity.User, target *entity.User) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.IsAdmin() && actor.ID != target.ID
}
