package repository

import (
	"database/sql"
	"fmt"

	"cohort-tools-be/internal/apperrors"
	"cohort-tools-be/internal/entities"

	"github.com/lib/pq"
)

// StudentRepository defines the interface for student database operations.
// The cohort reference is returned as a bare id; expansion happens in the
// service layer against the cohort repository.
type StudentRepository interface {
	FindAll() ([]*entities.Student, error)
	FindByCohort(cohortID string) ([]*entities.Student, error)
	FindByID(id string) (*entities.Student, error)
	Create(student *entities.Student) (*entities.Student, error)
	Update(id string, patch *entities.StudentPatch) (*entities.Student, error)
	Delete(id string) error
}

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, first_name, last_name, email, phone, linkedin_url,
	languages, program, background, image, cohort_id, projects`

func scanStudent(row interface{ Scan(...interface{}) error }) (*entities.Student, error) {
	var s entities.Student
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.LinkedinURL,
		pq.Array(&s.Languages),
		&s.Program,
		&s.Background,
		&s.Image,
		&s.CohortID,
		pq.Array(&s.Projects),
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) queryStudents(query string, args ...interface{}) ([]*entities.Student, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []*entities.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// FindAll retrieves all students ordered by last name
func (r *studentRepository) FindAll() ([]*entities.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students ORDER BY last_name, first_name`, studentColumns)
	return r.queryStudents(query)
}

// FindByCohort retrieves all students referencing the given cohort
func (r *studentRepository) FindByCohort(cohortID string) ([]*entities.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE cohort_id = $1 ORDER BY last_name, first_name`, studentColumns)
	return r.queryStudents(query, cohortID)
}

// FindByID finds a student by ID. Returns (nil, nil) when no student exists.
func (r *studentRepository) FindByID(id string) (*entities.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	return student, nil
}

// Create inserts a new student into the database
func (r *studentRepository) Create(student *entities.Student) (*entities.Student, error) {
	query := fmt.Sprintf(`
		INSERT INTO students (first_name, last_name, email, phone, linkedin_url,
			languages, program, background, image, cohort_id, projects)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, studentColumns)

	created, err := scanStudent(r.db.QueryRow(query,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.LinkedinURL,
		pq.Array(student.Languages),
		student.Program,
		student.Background,
		student.Image,
		student.CohortID,
		pq.Array(student.Projects),
	))

	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return created, nil
}

// Update applies a partial update. Nil patch fields keep their stored values;
// nil slices keep the stored arrays. Returns (nil, nil) when no student
// matches the id.
func (r *studentRepository) Update(id string, patch *entities.StudentPatch) (*entities.Student, error) {
	var languages, projects interface{}
	if patch.Languages != nil {
		languages = pq.Array(patch.Languages)
	}
	if patch.Projects != nil {
		projects = pq.Array(patch.Projects)
	}

	query := fmt.Sprintf(`
		UPDATE students SET
			first_name   = COALESCE($2, first_name),
			last_name    = COALESCE($3, last_name),
			email        = COALESCE($4, email),
			phone        = COALESCE($5, phone),
			linkedin_url = COALESCE($6, linkedin_url),
			languages    = COALESCE($7, languages),
			program      = COALESCE($8, program),
			background   = COALESCE($9, background),
			image        = COALESCE($10, image),
			cohort_id    = COALESCE($11, cohort_id),
			projects     = COALESCE($12, projects)
		WHERE id = $1
		RETURNING %s
	`, studentColumns)

	updated, err := scanStudent(r.db.QueryRow(query,
		id,
		patch.FirstName,
		patch.LastName,
		patch.Email,
		patch.Phone,
		patch.LinkedinURL,
		languages,
		patch.Program,
		patch.Background,
		patch.Image,
		patch.CohortID,
		projects,
	))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return updated, nil
}

// Delete removes a student. Deleting an absent id is not an error; the
// operation is idempotent by contract.
func (r *studentRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if mapped := apperrors.FromPq(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
