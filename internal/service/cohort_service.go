package service

import (
	"context"
	"time"

	"cohort-tools-be/internal/apperrors"
	"cohort-tools-be/internal/cache"
	"cohort-tools-be/internal/entities"
	"cohort-tools-be/internal/models"
	"cohort-tools-be/internal/repository"
)

const cohortCacheTTL = 10 * time.Minute

// CohortService defines the interface for cohort business logic
type CohortService interface {
	ListCohorts() ([]*entities.Cohort, error)
	GetCohort(id string) (*entities.Cohort, error)
	CreateCohort(req *models.CreateCohortRequest) (*entities.Cohort, error)
	UpdateCohort(id string, req *models.UpdateCohortRequest) (*entities.Cohort, error)
	DeleteCohort(id string) error
}

type cohortService struct {
	repo  repository.CohortRepository
	cache cache.Cache
	ctx   context.Context
}

// NewCohortService creates a new cohort service. A nil cache disables
// caching; everything reads through to the store.
func NewCohortService(repo repository.CohortRepository, cacheClient cache.Cache) CohortService {
	return &cohortService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
	}
}

// ListCohorts returns all cohorts
func (s *cohortService) ListCohorts() ([]*entities.Cohort, error) {
	return s.repo.FindAll()
}

// GetCohort returns a single cohort, cache-aside on its id
func (s *cohortService) GetCohort(id string) (*entities.Cohort, error) {
	if s.cache != nil {
		var cached entities.Cohort
		if err := s.cache.GetJSON(s.ctx, cache.CohortKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	cohort, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cohort == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Cohort not found")
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, cache.CohortKey(id), cohort, cohortCacheTTL)
	}

	return cohort, nil
}

// CreateCohort creates a cohort, applying schema defaults for omitted fields
func (s *cohortService) CreateCohort(req *models.CreateCohortRequest) (*entities.Cohort, error) {
	cohort := &entities.Cohort{
		CohortSlug:     req.CohortSlug,
		CohortName:     req.CohortName,
		Program:        req.Program,
		Format:         req.Format,
		Campus:         req.Campus,
		StartDate:      time.Now().UTC(),
		EndDate:        req.EndDate,
		InProgress:     false,
		ProgramManager: req.ProgramManager,
		LeadTeacher:    req.LeadTeacher,
		TotalHours:     360,
	}
	if req.StartDate != nil {
		cohort.StartDate = req.StartDate.UTC()
	}
	if req.InProgress != nil {
		cohort.InProgress = *req.InProgress
	}
	if req.TotalHours != nil {
		cohort.TotalHours = *req.TotalHours
	}

	return s.repo.Create(cohort)
}

// UpdateCohort applies a partial update and returns the updated cohort
func (s *cohortService) UpdateCohort(id string, req *models.UpdateCohortRequest) (*entities.Cohort, error) {
	patch := &entities.CohortPatch{
		CohortSlug:     req.CohortSlug,
		CohortName:     req.CohortName,
		Program:        req.Program,
		Format:         req.Format,
		Campus:         req.Campus,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		InProgress:     req.InProgress,
		ProgramManager: req.ProgramManager,
		LeadTeacher:    req.LeadTeacher,
		TotalHours:     req.TotalHours,
	}

	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "Cohort not found")
	}

	if s.cache != nil {
		s.cache.Delete(s.ctx, cache.CohortKey(id))
	}

	return updated, nil
}

// DeleteCohort removes a cohort. Idempotent: deleting an absent id succeeds.
// Referencing students keep their reference; reads resolve it to null.
func (s *cohortService) DeleteCohort(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Delete(s.ctx, cache.CohortKey(id))
	}

	return nil
}
