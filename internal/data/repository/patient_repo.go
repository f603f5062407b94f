package repository

import (
	"context"
	"fmt"
	"strings"

	"clinic-api/internal/data/entity"
	"clinic-api/internal/dto/request"
	"clinic-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PatientStats aggregates a scope of patient rows for the dashboard.
type PatientStats struct {
	Total     int64
	Pending   int64
	Completed int64
	TotalCost float64
}

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPage and CountFiltered share the same filter semantics; ownerID
	// nil means unscoped (admin), otherwise only that owner's rows.
	FindPage(ctx context.Context, ownerID *uuid.UUID, q request.PatientListQuery) ([]*entity.Patient, error)
	CountFiltered(ctx context.Context, ownerID *uuid.UUID, q request.PatientListQuery) (int64, error)

	Stats(ctx context.Context, ownerID *uuid.UUID) (*PatientStats, error)
}

type patientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPatientRepository(db database.PgxIface, log *zap.Logger) PatientRepository {
	return &patientRepository{
		db:  db,
		log: log.With(zap.String("repository", "patient")),
	}
}

const patientColumns = `id, user_id, name, ssn, age, phone, marital_status,
	status, children, governorate, address, diagnosis, solution, cost,
	created_at, updated_at`

func scanPatient(row pgx.Row) (*entity.Patient, error) {
	var p entity.Patient
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.SSN,
		&p.Age,
		&p.Phone,
		&p.MaritalStatus,
		&p.Status,
		&p.Children,
		&p.Governorate,
		&p.Address,
		&p.Diagnosis,
		&p.Solution,
		&p.Cost,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	query := `
		INSERT INTO patients (id, user_id, name, ssn, age, phone, marital_status,
		                     status, children, governorate, address, diagnosis,
		                     solution, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		patient.ID,
		patient.UserID,
		patient.Name,
		patient.SSN,
		patient.Age,
		patient.Phone,
		patient.MaritalStatus,
		patient.Status,
		patient.Children,
		patient.Governorate,
		patient.Address,
		patient.Diagnosis,
		patient.Solution,
		patient.Cost,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		r.log.Error("Failed to create patient",
			zap.Error(err),
			zap.String("name", patient.Name),
		)
		return fmt.Errorf("create patient: %w", err)
	}

	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	query := fmt.Sprintf(`SELECT %s FROM patients WHERE id = $1`, patientColumns)

	patient, err := scanPatient(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find patient by ID",
			zap.Error(err),
			zap.String("patient_id", id.String()),
		)
		return nil, fmt.Errorf("find patient: %w", err)
	}

	return patient, nil
}

// buildFilter assembles the WHERE clause shared by FindPage and
// CountFiltered so both always see the same subset.
func buildFilter(ownerID *uuid.UUID, q request.PatientListQuery) (string, []any) {
	var conditions []string
	var args []any

	if ownerID != nil {
		args = append(args, *ownerID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if q.Status != "" {
		args = append(args, q.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR ssn ILIKE $%d OR phone ILIKE $%d)", n, n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *patientRepository) FindPage(ctx context.Context, ownerID *uuid.UUID, q request.PatientListQuery) ([]*entity.Patient, error) {
	where, args := buildFilter(ownerID, q)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM patients`, patientColumns))
	queryBuilder.WriteString(where)
	// SortBy and SortOrder only ever hold allow-listed values, so direct
	// interpolation is safe here. Secondary id ordering keeps equal sort
	// keys stable across pages.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, id", q.SortBy, strings.ToUpper(q.SortOrder)))

	args = append(args, q.Limit(), q.Offset())
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find patients page",
			zap.Error(err),
			zap.Int("page", q.Page),
			zap.Int("per_page", q.PerPage),
		)
		return nil, fmt.Errorf("find patients: %w", err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			r.log.Error("Failed to scan patient row", zap.Error(err))
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate patient rows: %w", err)
	}

	return patients, nil
}

func (r *patientRepository) CountFiltered(ctx context.Context, ownerID *uuid.UUID, q request.PatientListQuery) (int64, error) {
	where, args := buildFilter(ownerID, q)

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`+where, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count patients", zap.Error(err))
		return 0, fmt.Errorf("count patients: %w", err)
	}

	return total, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	query := `
		UPDATE patients
		SET name = $2, ssn = $3, age = $4, phone = $5, marital_status = $6,
		    status = $7, children = $8, governorate = $9, address = $10,
		    diagnosis = $11, solution = $12, cost = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		patient.ID,
		patient.Name,
		patient.SSN,
		patient.Age,
		patient.Phone,
		patient.MaritalStatus,
		patient.Status,
		patient.Children,
		patient.Governorate,
		patient.Address,
		patient.Diagnosis,
		patient.Solution,
		patient.Cost,
		patient.UpdatedAt,
	)

	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		r.log.Error("Failed to update patient",
			zap.Error(err),
			zap.String("patient_id", patient.ID.String()),
		)
		return fmt.Errorf("update patient: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("patient %s not found", patient.ID.String())
	}

	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Permanent removal; there is no soft delete for patient records
	query := `DELETE FROM patients WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete patient",
			zap.Error(err),
			zap.String("patient_id", id.String()),
		)
		return fmt.Errorf("delete patient: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("patient %s not found", id.String())
	}

	r.log.Info("Patient deleted", zap.String("patient_id", id.String()))
	return nil
}

func (r *patientRepository) Stats(ctx context.Context, ownerID *uuid.UUID) (*PatientStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'complete'),
		       COALESCE(SUM(cost), 0)
		FROM patients
	`
	var args []any
	if ownerID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *ownerID)
	}

	var stats PatientStats
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Completed,
		&stats.TotalCost,
	)
	if err != nil {
		r.log.Error("Failed to load patient stats", zap.Error(err))
		return nil, fmt.Errorf("patient stats: %w", err)
	}

	return &stats, nil
}
