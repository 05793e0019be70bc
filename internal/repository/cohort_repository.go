package repository

import (
	"database/sql"
	"fmt"

	"cohort-tools-be/internal/apperrors"
	"cohort-tools-be/internal/entities"

	"github.com/lib/pq"
)

// CohortRepository defines the interface for cohort database operations
type CohortRepository interface {
	FindAll() ([]*entities.Cohort, error)
	FindByID(id string) (*entities.Cohort, error)
	FindByIDs(ids []string) (map[string]*entities.Cohort, error)
	Create(cohort *entities.Cohort) (*entities.Cohort, error)
	Update(id string, patch *entities.CohortPatch) (*entities.Cohort, error)
	Delete(id string) error
}

type cohortRepository struct {
	db *sql.DB
}

// NewCohortRepository creates a new cohort repository
func NewCohortRepository(db *sql.DB) CohortRepository {
	return &cohortRepository{db: db}
}

const cohortColumns = `id, cohort_slug, cohort_name, program, format, campus,
	start_date, end_date, in_progress, program_manager, lead_teacher, total_hours`

func scanCohort(row interface{ Scan(...interface{}) error }) (*entities.Cohort, error) {
	var c entities.Cohort
	err := row.Scan(
		&c.ID,
		&c.CohortSlug,
		&c.CohortName,
		&c.Program,
		&c.Format,
		&c.Campus,
		&c.StartDate,
		&c.EndDate,
		&c.InProgress,
		&c.ProgramManager,
		&c.LeadTeacher,
		&c.TotalHours,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAll retrieves all cohorts ordered by start date
func (r *cohortRepository) FindAll() ([]*entities.Cohort, error) {
	query := fmt.Sprintf(`SELECT %s FROM cohorts ORDER BY start_date DESC`, cohortColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}
	defer rows.Close()

	var cohorts []*entities.Cohort
	for rows.Next() {
		cohort, err := scanCohort(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cohort: %w", err)
		}
		cohorts = append(cohorts, cohort)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cohorts: %w", err)
	}

	return cohorts, nil
}

// FindByID finds a cohort by ID. Returns (nil, nil) when no cohort exists.
func (r *cohortRepository) FindByID(id string) (*entities.Cohort, error) {
	query := fmt.Sprintf(`SELECT %s FROM cohorts WHERE id = $1`, cohortColumns)

	cohort, err := scanCohort(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find cohort: %w", err)
	}

	return cohort, nil
}

// FindByIDs fetches a batch of cohorts keyed by id, used by the student
// populate path. Missing ids are simply absent from the result.
func (r *cohortRepository) FindByIDs(ids []string) (map[string]*entities.Cohort, error) {
	if len(ids) == 0 {
		return map[string]*entities.Cohort{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM cohorts WHERE id = ANY($1::uuid[])`, cohortColumns)

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to fetch cohorts: %w", err)
	}
	defer rows.Close()

	cohorts := make(map[string]*entities.Cohort, len(ids))
	for rows.Next() {
		cohort, err := scanCohort(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cohort: %w", err)
		}
		cohorts[cohort.ID] = cohort
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cohorts: %w", err)
	}

	return cohorts, nil
}

// Create inserts a new cohort into the database
func (r *cohortRepository) Create(cohort *entities.Cohort) (*entities.Cohort, error) {
	query := fmt.Sprintf(`
		INSERT INTO cohorts (cohort_slug, cohort_name, program, format, campus,
			start_date, end_date, in_progress, program_manager, lead_teacher, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, cohortColumns)

	created, err := scanCohort(r.db.QueryRow(query,
		cohort.CohortSlug,
		cohort.CohortName,
		cohort.Program,
		cohort.Format,
		cohort.Campus,
		cohort.StartDate,
		cohort.EndDate,
		cohort.InProgress,
		cohort.ProgramManager,
		cohort.LeadTeacher,
		cohort.TotalHours,
	))

	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create cohort: %w", err)
	}

	return created, nil
}

// Update applies a partial update. Nil patch fields keep their stored values.
// Returns (nil, nil) when no cohort matches the id.
func (r *cohortRepository) Update(id string, patch *entities.CohortPatch) (*entities.Cohort, error) {
	query := fmt.Sprintf(`
		UPDATE cohorts SET
			cohort_slug     = COALESCE($2, cohort_slug),
			cohort_name     = COALESCE($3, cohort_name),
			program         = COALESCE($4, program),
			format          = COALESCE($5, format),
			campus          = COALESCE($6, campus),
			start_date      = COALESCE($7, start_date),
			end_date        = COALESCE($8, end_date),
			in_progress     = COALESCE($9, in_progress),
			program_manager = COALESCE($10, program_manager),
			lead_teacher    = COALESCE($11, lead_teacher),
			total_hours     = COALESCE($12, total_hours)
		WHERE id = $1
		RETURNING %s
	`, cohortColumns)

	updated, err := scanCohort(r.db.QueryRow(query,
		id,
		patch.CohortSlug,
		patch.CohortName,
		patch.Program,
		patch.Format,
		patch.Campus,
		patch.StartDate,
		patch.EndDate,
		patch.InProgress,
		patch.ProgramManager,
		patch.LeadTeacher,
		patch.TotalHours,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update cohort: %w", err)
	}

	return updated, nil
}

// Delete removes a cohort. Deleting an absent id is not an error; the
// operation is idempotent by contract. Referencing students are untouched.
func (r *cohortRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM cohorts WHERE id = $1`, id)
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to delete cohort: %w", err)
	}
	return nil
}
