package models

import "time"

// CreateCohortRequest represents the request body for creating a cohort.
// Optional fields are pointers so schema defaults (startDate, inProgress,
// totalHours) only apply when the client omitted them.
type CreateCohortRequest struct {
	CohortSlug     string     `json:"cohortSlug" binding:"required"`
	CohortName     string     `json:"cohortName" binding:"required"`
	Program        string     `json:"program" binding:"required"`
	Format         *string    `json:"format"`
	Campus         *string    `json:"campus"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	InProgress     *bool      `json:"inProgress"`
	ProgramManager string     `json:"programManager" binding:"required"`
	LeadTeacher    string     `json:"leadTeacher" binding:"required"`
	TotalHours     *int       `json:"totalHours"`
}

// UpdateCohortRequest represents a partial update; absent fields are left
// unchanged.
type UpdateCohortRequest struct {
	CohortSlug     *string    `json:"cohortSlug"`
	CohortName     *string    `json:"cohortName"`
	Program        *string    `json:"program"`
	Format         *string    `json:"format"`
	Campus         *string    `json:"campus"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	InProgress     *bool      `json:"inProgress"`
	ProgramManager *string    `json:"programManager"`
	LeadTeacher    *string    `json:"leadTeacher"`
	TotalHours     *int       `json:"totalHours"`
}
