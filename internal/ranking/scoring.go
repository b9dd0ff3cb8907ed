// Package ranking scores resumes against a job description by keyword overlap.
package ranking

import (
	"regexp"
	"strings"
)

// minKeywordLength is the length a job-description token must exceed to be
// looked up in the resume.
const minKeywordLength = 3

var nonWord = regexp.MustCompile(`\W+`)

// KeywordScore returns the fraction of job-description tokens found in the resume.
//
// Only tokens longer than three characters are looked up (plain substring
// containment, not whole words), but every token counts towards the
// denominator, including short and empty ones produced at the edges of the
// text. The result is always in [0, 1].
func KeywordScore(jobDescription, resumeText string) float64 {
	words := tokenize(jobDescription)
	resume := strings.ToLower(resumeText)

	matched := 0
	for _, w := range words {
		if len(w) > minKeywordLength && strings.Contains(resume, w) {
			matched++
		}
	}

	return float64(matched) / float64(max(len(words), 1))
}

// tokenize lower-cases s and splits it on runs of non-word characters.
// Leading and trailing separators yield empty tokens.
func tokenize(s string) []string {
	return nonWord.Split(strings.ToLower(s), -1)
}
