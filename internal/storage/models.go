package storage

import "time"

// PreviewLength is the number of characters of resume text exposed in listings.
const PreviewLength = 200

// Candidate is a stored resume submission together with the fields derived from it.
// Candidates are never updated; they are only inserted and deleted.
type Candidate struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ResumeText string    `json:"resume_text"`
	Skills     string    `json:"skills"`
	Filename   string    `json:"filename"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}

// CandidateSummary is a candidate without its full text, plus a short preview.
type CandidateSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Skills   string `json:"skills"`
	Filename string `json:"filename"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Summary  string `json:"summary"`
	Preview  string `json:"preview"`
}

// ScoredCandidateSummary is a CandidateSummary ranked against a job description.
type ScoredCandidateSummary struct {
	CandidateSummary
	Score float64 `json:"score"`
}

// CandidateDetail is a single candidate with its shortlist membership.
type CandidateDetail struct {
	CandidateSummary
	ResumeText  string     `json:"resume_text"`
	Shortlisted bool       `json:"shortlisted"`
	AddedAt     *time.Time `json:"added_at"`
}

// ToSummary drops the full text and keeps a preview of it.
func (c Candidate) ToSummary() CandidateSummary {
	return CandidateSummary{
		ID:       c.ID,
		Name:     c.Name,
		Skills:   c.Skills,
		Filename: c.Filename,
		Email:    c.Email,
		Phone:    c.Phone,
		Summary:  c.Summary,
		Preview:  Preview(c.ResumeText),
	}
}

// Preview returns the first PreviewLength characters of text.
// It counts runes, like LEFT() in PostgreSQL.
func Preview(text string) string {
	n := 0
	for i := range text {
		if n == PreviewLength {
			return text[:i]
		}
		n++
	}
	return text
}
