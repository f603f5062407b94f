// Package policy holds the pure authorization predicates. Every function
// maps (actor, target) to a plain allow/deny decision; callers translate a
// deny into a 403. Nothing here reads global state or returns errors.
package policy

import (
	"clinic-api/internal/data/entity"
)

// CanViewAnyPatients reports whether the actor may enumerate all patient
// records. Only admins may; everyone else is scoped to their own rows by
// the patient service, so both layers enforce the same boundary.
func CanViewAnyPatients(actor *entity.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanViewPatient allows the owner or an admin.
func CanViewPatient(actor *entity.User, patient *entity.Patient) bool {
	if actor == nil || patient == nil {
		return false
	}
	return actor.ID == patient.UserID || actor.IsAdmin()
}

// CanCreatePatient allows any authenticated actor.
func CanCreatePatient(actor *entity.User) bool {
	return actor != nil
}

// CanUpdatePatient allows the owner or an admin.
func CanUpdatePatient(actor *entity.User, patient *entity.Patient) bool {
	if actor == nil || patient == nil {
		return false
	}
	return actor.ID == patient.UserID || actor.IsAdmin()
}

// CanDeletePatient allows admins only. Ownership is deliberately not
// enough here; deletion is permanent.
func CanDeletePatient(actor *entity.User, patient *entity.Patient) bool {
	return actor != nil && actor.IsAdmin()
}
