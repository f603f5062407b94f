package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
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

// PatientService composes the access policy with the query layer. Every
// operation takes the actor explicitly and re-runs its own policy check.
type PatientService interface {
	List(ctx context.Context, actor *entity.User, q request.PatientListQuery) (*response.PaginatedResponse[response.PatientResponse], error)
	Create(ctx context.Context, actor *entity.User, req *request.PatientCreateRequest) (*response.PatientResponse, error)
	GetByID(ctx context.Context, actor *entity.User, patientID string) (*response.PatientResponse, error)
	Update(ctx context.Context, actor *entity.User, patientID string, req *request.PatientUpdateRequest) (*response.PatientResponse, error)
	MarkComplete(ctx context.Context, actor *entity.User, patientID string) (*response.PatientResponse, error)
	Delete(ctx context.Context, actor *entity.User, patientID string) error
}

type patientService struct {
	repo repository.PatientRepository
	log  *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, log *zap.Logger) PatientService {
	return &patientService{
		repo: repo,
		log:  log.With(zap.String("service", "patient")),
	}
}

// scopeFor returns the owner filter for the actor: nil (all rows) for
// admins, the actor's own id for everyone else.
func scopeFor(actor *entity.User) *uuid.UUID {
	if policy.CanViewAnyPatients(actor) {
		return nil
	}
	id := actor.ID
	return &id
}

func roundCost(cost float64) float64 {
	return math.Round(cost*100) / 100
}

func (s *patientService) List(ctx context.Context, actor *entity.User, q request.PatientListQuery) (*response.PaginatedResponse[response.PatientResponse], error) {
	ownerID := scopeFor(actor)

	patients, err := s.repo.FindPage(ctx, ownerID, q)
	if err != nil {
		s.log.Error("Failed to list patients",
			zap.Error(err),
			zap.Int("page", q.Page),
			zap.Int("per_page", q.PerPage),
		)
		return nil, fmt.Errorf("list patients: %w", err)
	}

	total, err := s.repo.CountFiltered(ctx, ownerID, q)
	if err != nil {
		s.log.Error("Failed to count patients", zap.Error(err))
		return nil, fmt.Errorf("count patients: %w", err)
	}

	// An empty page is a valid result, not an error
	patientResponses := make([]response.PatientResponse, len(patients))
	for i, patient := range patients {
		patientResponses[i] = response.PatientToResponse(patient)
	}

	s.log.Info("Patients retrieved",
		zap.Int("count", len(patients)),
		zap.Int64("total", total),
		zap.Int("page", q.Page),
		zap.Int("per_page", q.PerPage),
	)

	return response.NewPaginatedResponse(patientResponses, q.Page, q.PerPage, total), nil
}

func (s *patientService) Create(ctx context.Context, actor *entity.User, req *request.PatientCreateRequest) (*response.PatientResponse, error) {
	if !policy.CanCreatePatient(actor) {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create patient validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	now := time.Now()
	patient := &entity.Patient{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		// The owner is always the actor; any client-supplied owner id has
		// no field to land in and is discarded during decoding
		UserID:      actor.ID,
		Name:        req.Name,
		SSN:         req.SSN,
		Age:         req.Age,
		Phone:       req.Phone,
		Status:      entity.StatusPending,
		Governorate: req.Governorate,
		Address:     req.Address,
		Diagnosis:   req.Diagnosis,
		Solution:    req.Solution,
	}

	if req.MaritalStatus != nil {
		ms := entity.MaritalStatus(*req.MaritalStatus)
		patient.MaritalStatus = &ms
	}
	if req.Status != nil {
		patient.Status = entity.PatientStatus(*req.Status)
	}
	if req.Children != nil {
		patient.Children = *req.Children
	}
	if req.Cost != nil {
		patient.Cost = roundCost(*req.Cost)
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateSSN) {
			return nil, fieldError("ssn", "This SSN is already registered")
		}
		s.log.Error("Failed to create patient",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return nil, fmt.Errorf("create patient: %w", err)
	}

	s.log.Info("Patient created",
		zap.String("patient_id", patient.ID.String()),
		zap.String("owner_id", actor.ID.String()),
	)

	resp := response.PatientToResponse(patient)
	return &resp, nil
}

// findForActor loads a patient and applies the view check. Existence is
// tested first, so a missing record is always a 404 regardless of who
// asks; only then does ownership gate the result.
func (s *patientService) findForActor(ctx context.Context, actor *entity.User, patientID string) (*entity.Patient, error) {
	id, err := uuid.Parse(patientID)
	if err != nil {
		// Malformed ids behave like missing records, nothing is leaked
		return nil, ErrNotFound
	}

	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find patient",
			zap.Error(err),
			zap.String("patient_id", patientID),
		)
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if patient == nil {
		return nil, ErrNotFound
	}

	return patient, nil
}

func (s *patientService) GetByID(ctx context.Context, actor *entity.User, patientID string) (*response.PatientResponse, error) {
	patient, err := s.findForActor(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewPatient(actor, patient) {
		return nil, ErrForbidden
	}

	resp := response.PatientToResponse(patient)
	return &resp, nil
}

func (s *patientService) Update(ctx context.Context, actor *entity.User, patientID string, req *request.PatientUpdateRequest) (*response.PatientResponse, error) {
	patient, err := s.findForActor(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdatePatient(actor, patient) {
		return nil, ErrForbidden
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update patient validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// Partial update; user_id is untouchable because the request type has
	// no such field
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.SSN != nil {
		patient.SSN = *req.SSN
	}
	if req.Age != nil {
		patient.Age = req.Age
	}
	if req.Phone != nil {
		patient.Phone = req.Phone
	}
	if req.MaritalStatus != nil {
		ms := entity.MaritalStatus(*req.MaritalStatus)
		patient.MaritalStatus = &ms
	}
	if req.Status != nil {
		patient.Status = entity.PatientStatus(*req.Status)
	}
	if req.Children != nil {
		patient.Children = *req.Children
	}
	if req.Governorate != nil {
		patient.Governorate = req.Governorate
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.Diagnosis != nil {
		patient.Diagnosis = req.Diagnosis
	}
	if req.Solution != nil {
		patient.Solution = req.Solution
	}
	if req.Cost != nil {
		patient.Cost = roundCost(*req.Cost)
	}

	patient.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateSSN) {
			return nil, fieldError("ssn", "This SSN is already registered")
		}
		s.log.Error("Failed to update patient",
			zap.Error(err),
			zap.String("patient_id", patientID),
		)
		return nil, fmt.Errorf("update patient: %w", err)
	}

	s.log.Info("Patient updated", zap.String("patient_id", patientID))

	resp := response.PatientToResponse(patient)
	return &resp, nil
}

// MarkComplete is the one-way convenience transition. Going back to
// pending is only reachable through a full update.
func (s *patientService) MarkComplete(ctx context.Context, actor *entity.User, patientID string) (*response.PatientResponse, error) {
	patient, err := s.findForActor(ctx, actor, patientID)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdatePatient(actor, patient) {
		return nil, ErrForbidden
	}

	patient.Status = entity.StatusComplete
	patient.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, patient); err != nil {
		s.log.Error("Failed to mark patient complete",
			zap.Error(err),
			zap.String("patient_id", patientID),
		)
		return nil, fmt.Errorf("mark patient complete: %w", err)
	}

	s.log.Info("Patient marked complete", zap.String("patient_id", patientID))

	resp := response.PatientToResponse(patient)
	return &resp, nil
}

func (s *patientService) Delete(ctx context.Context, actor *entity.User, patientID string) error {
	patient, err := s.findForActor(ctx, actor, patientID)
	if err != nil {
		return err
	}

	if !policy.CanDeletePatient(actor, patient) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, patient.ID); err != nil {
		s.log.Error("Failed to delete patient",
			zap.Error(err),
			zap.String("patient_id", patientID),
		)
		return fmt.Errorf("delete patient: %w", err)
	}

	s.log.Info("Patient deleted",
		zap.String("patient_id", patientID),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}
