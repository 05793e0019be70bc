package entities

import "time"

// Cohort represents a bootcamp group record in the database. JSON field names
// match the contract the existing frontend consumes.
type Cohort struct {
	ID             string     `json:"_id"` // UUID
	CohortSlug     string     `json:"cohortSlug"`
	CohortName     string     `json:"cohortName"`
	Program        string     `json:"program"`
	Format         *string    `json:"format,omitempty"` // "Full Time" | "Part Time"
	Campus         *string    `json:"campus,omitempty"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	InProgress     bool       `json:"inProgress"`
	ProgramManager string     `json:"programManager"`
	LeadTeacher    string     `json:"leadTeacher"`
	TotalHours     int        `json:"totalHours"`
}

// CohortPatch carries the fields of a partial update. Nil fields keep their
// stored values.
type CohortPatch struct {
	CohortSlug     *string
	CohortName     *string
	Program        *string
	Format         *string
	Campus         *string
	StartDate      *time.Time
	EndDate        *time.Time
	InProgress     *bool
	ProgramManager *string
	LeadTeacher    *string
	TotalHours     *int
}
