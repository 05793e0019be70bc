package service

import (
	"context"

	"cohort-tools-be/internal/apperrors"
	"cohort-tools-be/internal/cache"
	"cohort-tools-be/internal/entities"
	"cohort-tools-be/internal/models"
	"cohort-tools-be/internal/repository"
)

const defaultStudentImage = "https://i.imgur.com/r8bo8u7.png"

// StudentService defines the interface for student business logic. Every
// read expands the cohort reference into the full cohort record.
type StudentService interface {
	ListStudents() ([]*entities.Student, error)
	ListStudentsByCohort(cohortID string) ([]*entities.Student, error)
	GetStudent(id string) (*entities.Student, error)
	CreateStudent(req *models.CreateStudentRequest) (*entities.Student, error)
	UpdateStudent(id string, req *models.UpdateStudentRequest) (*entities.Student, error)
	DeleteStudent(id string) error
}

type studentService struct {
	repo       repository.StudentRepository
	cohortRepo repository.CohortRepository
	cache      cache.Cache
	ctx        context.Context
}

// NewStudentService creates a new student service. A nil cache disables
// caching; everything reads through to the store.
func NewStudentService(repo repository.StudentRepository, cohortRepo repository.CohortRepository, cacheClient cache.Cache) StudentService {
	return &studentService{
		repo:       repo,
		cohortRepo: cohortRepo,
		cache:      cacheClient,
		ctx:        context.Background(),
	}
}

// populate expands cohort references into embedded cohort records: one batch
// lookup for the cache misses, then an in-memory join. Dangling references
// resolve to a nil cohort rather than an error.
func (s *studentService) populate(students []*entities.Student) error {
	cohorts := make(map[string]*entities.Cohort)
	var misses []string

	for _, student := range students {
		if student.CohortID == nil {
			continue
		}
		id := *student.CohortID
		if _, seen := cohorts[id]; seen {
			continue
		}
		if s.cache != nil {
			var cached entities.Cohort
			if err := s.cache.GetJSON(s.ctx, cache.CohortKey(id), &cached); err == nil {
				cohorts[id] = &cached
				continue
			}
		}
		cohorts[id] = nil
		misses = append(misses, id)
	}

	if len(misses) > 0 {
		fetched, err := s.cohortRepo.FindByIDs(misses)
		if err != nil {
			return err
		}
		for id, cohort := range fetched {
			cohorts[id] = cohort
			if s.cache != nil {
				s.cache.SetJSON(s.ctx, cache.CohortKey(id), cohort, cohortCacheTTL)
			}
		}
	}

	for _, student := range students {
		if student.CohortID != nil {
			student.Cohort = cohorts[*student.CohortID]
		}
	}

	return nil
}

// ListStudents returns all students with their cohorts populated
func (s *studentService) ListStudents() ([]*entities.Student, error) {
	students, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if err := s.populate(students); err != nil {
		return nil, err
	}
	return students, nil
}

// ListStudentsByCohort returns the students of one cohort, populated
func (s *studentService) ListStudentsByCohort(cohortID string) ([]*entities.Student, error) {
	students, err := s.repo.FindByCohort(cohortID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent returns a single student with its cohort populated
func (s *studentService) GetStudent(id string) (*entities.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Student not found")
	}
	if err := s.populate([]*entities.Student{student}); err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent creates a student, applying schema defaults for omitted
// fields, and returns it populated
func (s *studentService) CreateStudent(req *models.CreateStudentRequest) (*entities.Student, error) {
	student := &entities.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedinURL: req.LinkedinURL,
		Languages:   req.Languages,
		Program:     req.Program,
		Background:  req.Background,
		Image:       req.Image,
		CohortID:    req.Cohort,
		Projects:    req.Projects,
	}
	if student.Image == "" {
		student.Image = defaultStudentImage
	}
	if student.Languages == nil {
		student.Languages = []string{}
	}
	if student.Projects == nil {
		student.Projects = []string{}
	}

	created, err := s.repo.Create(student)
	if err != nil {
		return nil, err
	}
	if err := s.populate([]*entities.Student{created}); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStudent applies a partial update and returns the updated student,
// populated
func (s *studentService) UpdateStudent(id string, req *models.UpdateStudentRequest) (*entities.Student, error) {
	patch := &entities.StudentPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedinURL: req.LinkedinURL,
		Languages:   req.Languages,
		Program:     req.Program,
		Background:  req.Background,
		Image:       req.Image,
		CohortID:    req.Cohort,
		Projects:    req.Projects,
	}

	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Student not found")
	}
	if err := s.populate([]*entities.Student{updated}); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteStudent removes a student. Idempotent: deleting an absent id succeeds.
func (s *studentService) DeleteStudent(id string) error {
	return s.repo.Delete(id)
}
