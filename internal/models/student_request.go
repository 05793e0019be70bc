package models

// CreateStudentRequest represents the request body for creating a student.
// The cohort field carries the referenced cohort id, matching the wire shape
// of the reference before expansion.
type CreateStudentRequest struct {
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	LinkedinURL string   `json:"linkedinUrl"`
	Languages   []string `json:"languages"`
	Program     string   `json:"program"`
	Background  string   `json:"background"`
	Image       string   `json:"image"`
	Cohort      *string  `json:"cohort"`
	Projects    []string `json:"projects"`
}

// UpdateStudentRequest represents a partial update; absent fields are left
// unchanged.
type UpdateStudentRequest struct {
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	LinkedinURL *string  `json:"linkedinUrl"`
	Languages   []string `json:"languages"`
	Program     *string  `json:"program"`
	Background  *string  `json:"background"`
	Image       *string  `json:"image"`
	Cohort      *string  `json:"cohort"`
	Projects    []string `json:"projects"`
}
