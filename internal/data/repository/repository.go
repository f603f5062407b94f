package repository

import (
	"errors"

	"clinic-api/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Duplicate-key errors surfaced by the unique constraints. Uniqueness is
// enforced at the storage layer so two concurrent creates cannot race past
// an application-level pre-check.
var (
	ErrDuplicateSSN   = errors.New("ssn already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
	ErrDuplicateEmail = errors.New("email already registered")
)

// ErrSessionRevoked reports that a revoke matched no live session, either
// because the token is unknown or the session was already revoked.
var ErrSessionRevoked = errors.New("session not found or already revoked")

const pgUniqueViolation = "23505"

// mapUniqueViolation translates a Postgres unique-constraint error into the
// matching duplicate sentinel, or returns nil when err is something else.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "patients_ssn_key":
		return ErrDuplicateSSN
	case "users_phone_key":
		return ErrDuplicatePhone
	case "users_email_key":
		return ErrDuplicateEmail
	}
	return nil
}

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Patient PatientRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Patient: NewPatientRepository(db, log),
	}
}
