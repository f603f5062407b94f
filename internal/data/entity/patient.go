package entity

import (
	"github.com/google/uuid"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

type PatientStatus string

const (
	StatusPending  PatientStatus = "pending"
	StatusComplete PatientStatus = "complete"
)

// Patient is a clinic case record owned by the user that created it.
// The owner is fixed at creation time and never changed afterwards.
type Patient struct {
	Base
	UserID        uuid.UUID      `db:"user_id"`
	Name          string         `db:"name"`
	SSN           string         `db:"ssn"`
	Age           *int           `db:"age"`
	Phone         *string        `db:"phone"`
	MaritalStatus *MaritalStatus `db:"marital_status"`
	Status        PatientStatus  `db:"status"`
	Children      int            `db:"children"`
	Governorate   *string        `db:"governorate"`
	Address       *string        `db:"address"`
	Diagnosis     *string        `db:"diagnosis"`
	Solution      *string        `db:"solution"`
	Cost          float64        `db:"cost"`
}
