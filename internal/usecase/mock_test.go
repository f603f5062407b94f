package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"clinic-api/internal/data/entity"
	"clinic-api/internal/data/repository"
	"clinic-api/internal/dto/request"
	"clinic-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces. They reproduce the
// storage semantics the services rely on: nil for missing rows, duplicate
// sentinels for unique violations, and the filter/sort/page contract of
// the patient list.

type memPatientRepo struct {
	patients []*entity.Patient
}

func (m *memPatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	for _, p := range m.patients {
		if p.SSN == patient.SSN {
			return repository.ErrDuplicateSSN
		}
	}
	cp := *patient
	m.patients = append(m.patients, &cp)
	return nil
}

func (m *memPatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	for _, p := range m.patients {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPatientRepo) Update(_ context.Context, patient *entity.Patient) error {
	for _, p := range m.patients {
		if p.ID != patient.ID && p.SSN == patient.SSN {
			return repository.ErrDuplicateSSN
		}
	}
	for i, p := range m.patients {
		if p.ID == patient.ID {
			cp := *patient
			m.patients[i] = &cp
			return nil
		}
	}
	return nil
}

func (m *memPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range m.patients {
		if p.ID == id {
			m.patients = append(m.patients[:i], m.patients[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memPatientRepo) filtered(ownerID *uuid.UUID, q request.PatientListQuery) []*entity.Patient {
	var out []*entity.Patient
	for _, p := range m.patients {
		if ownerID != nil && p.UserID != *ownerID {
			continue
		}
		if q.Status != "" && string(p.Status) != q.Status {
			continue
		}
		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			phone := ""
			if p.Phone != nil {
				phone = *p.Phone
			}
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(p.SSN, needle) &&
				!strings.Contains(strings.ToLower(phone), needle) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func (m *memPatientRepo) FindPage(_ context.Context, ownerID *uuid.UUID, q request.PatientListQuery) ([]*entity.Patient, error) {
	rows := m.filtered(ownerID, q)

	less := func(a, b *entity.Patient) bool {
		switch q.SortBy {
		case "name":
			return a.Name < b.Name
		case "ssn":
			return a.SSN < b.SSN
		case "status":
			return a.Status < b.Status
		case "cost":
			return a.Cost < b.Cost
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	// Equal keys must compare false both ways so the stable sort keeps
	// their order, matching the repository's secondary id ordering
	sort.SliceStable(rows, func(i, j int) bool {
		if q.SortOrder == "asc" {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})

	start := q.Offset()
	if start > len(rows) {
		start = len(rows)
	}
	end := start + q.Limit()
	if end > len(rows) {
		end = len(rows)
	}

	page := make([]*entity.Patient, 0, end-start)
	for _, p := range rows[start:end] {
		cp := *p
		page = append(page, &cp)
	}
	return page, nil
}

func (m *memPatientRepo) CountFiltered(_ context.Context, ownerID *uuid.UUID, q request.PatientListQuery) (int64, error) {
	return int64(len(m.filtered(ownerID, q))), nil
}

func (m *memPatientRepo) Stats(_ context.Context, ownerID *uuid.UUID) (*repository.PatientStats, error) {
	stats := &repository.PatientStats{}
	for _, p := range m.patients {
		if ownerID != nil && p.UserID != *ownerID {
			continue
		}
		stats.Total++
		if p.Status == entity.StatusComplete {
			stats.Completed++
		} else {
			stats.Pending++
		}
		stats.TotalCost += p.Cost
	}
	return stats, nil
}

type memUserRepo struct {
	users []*entity.User
}

func (m *memUserRepo) dupCheck(user *entity.User) error {
	for _, u := range m.users {
		if u.ID == user.ID {
			continue
		}
		if u.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
		if u.Email != nil && user.Email != nil && *u.Email == *user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	return nil
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if err := m.dupCheck(user); err != nil {
		return err
	}
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	rows := make([]*entity.User, len(m.users))
	copy(rows, m.users)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}

	page := make([]*entity.User, 0, end-offset)
	for _, u := range rows[offset:end] {
		cp := *u
		page = append(page, &cp)
	}
	return page, nil
}

func (m *memUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if err := m.dupCheck(user); err != nil {
		return err
	}
	for i, u := range m.users {
		if u.ID == user.ID {
			cp := *user
			m.users[i] = &cp
			return nil
		}
	}
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSessionRepo struct {
	sessions []*entity.Session
}

func (m *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	cp := *session
	m.sessions = append(m.sessions, &cp)
	return nil
}

func (m *memSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	for _, s := range m.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSessionRepo) Revoke(_ context.Context, token string) error {
	for _, s := range m.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
			return nil
		}
	}
	return repository.ErrSessionRevoked
}

func (m *memSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	for _, s := range m.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
		}
	}
	return nil
}

func (m *memSessionRepo) CleanExpiredSessions(_ context.Context) error {
	kept := m.sessions[:0]
	for _, s := range m.sessions {
		if s.ExpiresAt.After(time.Now()) {
			kept = append(kept, s)
		}
	}
	m.sessions = kept
	return nil
}

// ------------- fixtures -------------

func newTestRepo() (*repository.Repository, *memUserRepo, *memPatientRepo, *memSessionRepo) {
	userRepo := &memUserRepo{}
	patientRepo := &memPatientRepo{}
	sessionRepo := &memSessionRepo{}
	return &repository.Repository{
		User:    userRepo,
		Session: sessionRepo,
		Patient: patientRepo,
	}, userRepo, patientRepo, sessionRepo
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		Auth: utils.AuthConfig{
			SessionExpiryHours: 24,
		},
	}
}

func testUser(role entity.UserRole) *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  "Test " + string(role),
		Phone: "0120000" + uuid.New().String()[:4],
		Role:  role,
	}
}

func testPatient(ownerID uuid.UUID, name, ssn string, status entity.PatientStatus, cost float64, createdAt time.Time) *entity.Patient {
	return &entity.Patient{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		UserID: ownerID,
		Name:   name,
		SSN:    ssn,
		Status: status,
		Cost:   cost,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
