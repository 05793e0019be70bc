package entities

// Student represents a student record in the database. The cohort reference
// is stored as a bare id and expanded into Cohort at read time; a dangling
// reference serializes as "cohort": null.
type Student struct {
	ID          string   `json:"_id"` // UUID
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	LinkedinURL string   `json:"linkedinUrl"`
	Languages   []string `json:"languages"`
	Program     string   `json:"program"`
	Background  string   `json:"background"`
	Image       string   `json:"image"`
	CohortID    *string  `json:"-"`
	Cohort      *Cohort  `json:"cohort"`
	Projects    []string `json:"projects"`
}

// StudentPatch carries the fields of a partial update. Nil fields keep their
// stored values.
type StudentPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	LinkedinURL *string
	Languages   []string
	Program     *string
	Background  *string
	Image       *string
	CohortID    *string
	Projects    []string
}
