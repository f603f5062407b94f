package policy

import (
	"testing"

	"clinic-api/internal/data/entity"

	"github.com/google/uuid"
)

func makeUser(role entity.UserRole) *entity.User {
	return &entity.User{
		Base: entity.Base{ID: uuid.New()},
		Role: role,
	}
}

func makePatient(ownerID uuid.UUID) *entity.Patient {
	return &entity.Patient{
		Base:   entity.Base{ID: uuid.New()},
		UserID: ownerID,
	}
}

func TestPatientPolicy(t *testing.T) {
	admin := makeUser(entity.RoleAdmin)
	owner := makeUser(entity.RoleUser)
	editor := makeUser(entity.RoleEditor)
	patient := makePatient(owner.ID)

	t.Run("ViewAny", func(t *testing.T) {
		cases := []struct {
			name  string
			actor *entity.User
			want  bool
		}{
			{"admin", admin, true},
			{"user", owner, false},
			{"editor", editor, false},
			{"nil actor", nil, false},
		}
		for _, tc := range cases {
			if got := CanViewAnyPatients(tc.actor); got != tc.want {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
	})

	t.Run("View", func(t *testing.T) {
		cases := []struct {
			name  string
			actor *entity.User
			want  bool
		}{
			{"owner", owner, true},
			{"admin", admin, true},
			{"stranger", editor, false},
			{"nil actor", nil, false},
		}
		for _, tc := range cases {
			if got := CanViewPatient(tc.actor, patient); got != tc.want {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
		if CanViewPatient(admin, nil) {
			t.Error("nil patient must be denied")
		}
	})

	t.Run("Create", func(t *testing.T) {
		if !CanCreatePatient(owner) || !CanCreatePatient(editor) || !CanCreatePatient(admin) {
			t.Error("every authenticated role may create")
		}
		if CanCreatePatient(nil) {
			t.Error("nil actor must be denied")
		}
	})

	t.Run("Update", func(t *testing.T) {
		if !CanUpdatePatient(owner, patient) {
			t.Error("owner must be allowed")
		}
		if !CanUpdatePatient(admin, patient) {
			t.Error("admin must be allowed")
		}
		if CanUpdatePatient(editor, patient) {
			t.Error("stranger must be denied")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if !CanDeletePatient(admin, patient) {
			t.Error("admin must be allowed")
		}
		if CanDeletePatient(owner, patient) {
			t.Error("ownership is not enough to delete")
		}
		if CanDeletePatient(nil, patient) {
			t.Error("nil actor must be denied")
		}
	})
}
