package adaptor

import (
	"encoding/json"
	"net/http"

	"clinic-api/internal/dto/request"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientHandler struct {
	service usecase.PatientService
	log     *zap.Logger
}

func NewPatientHandler(service usecase.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{
		service: service,
		log:     log.With(zap.String("handler", "patient")),
	}
}

// List handles GET /api/patients
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	q := request.ParsePatientListQuery(r.URL.Query())

	patients, err := h.service.List(r.Context(), actor, q)
	if err != nil {
		respondServiceError(w, h.log, err, "list patients")
		return
	}

	utils.ResponseData(w, "patients", patients, "Patients retrieved successfully")
}

// Create handles POST /api/patients
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PatientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	patient, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create patient")
		return
	}

	utils.ResponseCreated(w, "patient", patient, "Patient created successfully")
}

// GetByID handles GET /api/patients/{id}
func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	patient, err := h.service.GetByID(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "get patient")
		return
	}

	utils.ResponseData(w, "patient", patient, "Patient retrieved successfully")
}

// Update handles PUT /api/patients/{id}
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	patient, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update patient")
		return
	}

	utils.ResponseData(w, "patient", patient, "Patient updated successfully")
}

// MarkComplete handles PATCH /api/patients/{id}/complete
func (h *PatientHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	patient, err := h.service.MarkComplete(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "mark patient complete")
		return
	}

	utils.ResponseData(w, "patient", patient, "Patient marked complete")
}

// Delete handles DELETE /api/patients/{id}
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err, "delete patient")
		return
	}

	utils.ResponseSuccess(w, "Patient deleted successfully")
}
