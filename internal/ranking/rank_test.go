package ranking

import (
	"testing"

	"resume-intake/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	candidates := []storage.Candidate{
		{ID: 1, Name: "none", ResumeText: "Marketing and sales"},
		{ID: 2, Name: "both", ResumeText: "Python developer, SQL engineer"},
		{ID: 3, Name: "tie-a", ResumeText: "nothing relevant"},
		{ID: 4, Name: "one", ResumeText: "python scripts"},
	}

	ranked := Rank("Looking for Python and SQL engineer", candidates)
	require.Len(t, ranked, 4)

	ids := make([]int64, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.Greater(t, ranked[1].Score, ranked[2].Score)
	assert.Zero(t, ranked[3].Score)
}

func TestRank_CarriesSummaryFields(t *testing.T) {
	c := storage.Candidate{
		ID:         7,
		Name:       "Ada",
		ResumeText: "python",
		Skills:     "python",
		Filename:   "1.pdf",
		Email:      "ada@example.com",
		Phone:      "+1 555 123 4567",
		Summary:    "summary",
	}

	ranked := Rank("python", []storage.Candidate{c})
	require.Len(t, ranked, 1)
	assert.Equal(t, c.ToSummary(), ranked[0].CandidateSummary)
	assert.Equal(t, 1.0, ranked[0].Score)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank("anything", nil))
}
