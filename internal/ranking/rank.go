package ranking

import (
	"sort"

	"resume-intake/internal/storage"
)

// Rank scores every candidate against jobDescription and orders them by score,
// highest first. Candidates with equal scores keep their input order.
func Rank(jobDescription string, candidates []storage.Candidate) []storage.ScoredCandidateSummary {
	scored := make([]storage.ScoredCandidateSummary, len(candidates))
	for i, c := range candidates {
		scored[i] = storage.ScoredCandidateSummary{
			CandidateSummary: c.ToSummary(),
			Score:            KeywordScore(jobDescription, c.ResumeText),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
