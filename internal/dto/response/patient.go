package response

import (
	"time"

	"clinic-api/internal/data/entity"
)

type PatientResponse struct {
	ID            string                `json:"id"`
	UserID        string                `json:"user_id"`
	Name          string                `json:"name"`
	SSN           string                `json:"ssn"`
	Age           *int                  `json:"age,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	MaritalStatus *entity.MaritalStatus `json:"marital_status,omitempty"`
	Status        entity.PatientStatus  `json:"status"`
	Children      int                   `json:"children"`
	Governorate   *string               `json:"governorate,omitempty"`
	Address       *string               `json:"address,omitempty"`
	Diagnosis     *string               `json:"diagnosis,omitempty"`
	Solution      *string               `json:"solution,omitempty"`
	Cost          float64               `json:"cost"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func PatientToResponse(patient *entity.Patient) PatientResponse {
	return PatientResponse{
		ID:            patient.ID.String(),
		UserID:        patient.UserID.String(),
		Name:          patient.Name,
		SSN:           patient.SSN,
		Age:           patient.Age,
		Phone:         patient.Phone,
		MaritalStatus: patient.MaritalStatus,
		Status:        patient.Status,
		Children:      patient.Children,
		Governorate:   patient.Governorate,
		Address:       patient.Address,
		Diagnosis:     patient.Diagnosis,
		Solution:      patient.Solution,
		Cost:          patient.Cost,
		CreatedAt:     patient.CreatedAt,
		UpdatedAt:     patient.UpdatedAt,
	}
}
