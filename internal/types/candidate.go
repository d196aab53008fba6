// Package types defines the shared data structures passed between screening stages.
package types

// Candidate is a shortlisted candidate as persisted in the candidate store.
// Email is the natural key: at most one row exists per email, and the first
// write wins.
type Candidate struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Score   int    `json:"score"`
	JobRole string `json:"job_role"`
}

// SemanticRecord is one screening event as persisted in the semantic store.
// There is no uniqueness constraint: screening the same person twice produces
// two rows, and deduplication happens at query time.
type SemanticRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Score   int    `json:"score"`
	CVText  string `json:"cv_text"`
	JDText  string `json:"jd_text"`
	JobRole string `json:"job_role"`
}

// SearchResult is a transient value constructed per recruiter query; it is
// never persisted.
type SearchResult struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	SkillsExperience string `json:"skills_experience"`
	TechStack        string `json:"tech_stack"`
}

// ScreeningOutcome summarizes one processed resume for display.
type ScreeningOutcome struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Score       int    `json:"score"`
	Shortlisted bool   `json:"shortlisted"`
	Note        string `json:"note,omitempty"`
}
