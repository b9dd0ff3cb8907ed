package cv

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// SkillVocabulary is the fixed list of skills recognised in resume text.
// Extracted skills are always reported in this order.
var SkillVocabulary = []string{
	"python", "java", "sql", "dbms", "node", "react",
	"postgres", "mongodb", "ai", "ml", "javascript",
}

// ecmaSpace is the ECMAScript whitespace set (\s and String.prototype.trim),
// which is wider than RE2's \s.
const ecmaSpace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

const (
	summaryMinLength = 40
	summaryMaxLines  = 3
)

var (
	skillPatterns = compileSkillPatterns(SkillVocabulary)
	emailPattern  = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phonePattern  = regexp.MustCompile(`\+?\d[\d` + ecmaSpace + `\-]{8,}\d`)
)

func compileSkillPatterns(skills []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skills))
	for i, skill := range skills {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// ExtractSkills returns the vocabulary skills that appear as whole words in text,
// joined by ", ".
func ExtractSkills(text string) string {
	lower := strings.ToLower(text)

	found := make([]string, 0, len(SkillVocabulary))
	for i, pattern := range skillPatterns {
		if pattern.MatchString(lower) {
			found = append(found, SkillVocabulary[i])
		}
	}
	return strings.Join(found, ", ")
}

// ExtractEmail returns the first email address in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-like digit run in text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// MakeSummary joins the first three trimmed lines longer than 40 characters.
func MakeSummary(text string) string {
	lines := make([]string, 0, summaryMaxLines)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimFunc(line, isECMASpace)
		if utf16Len(line) <= summaryMinLength {
			continue
		}
		lines = append(lines, line)
		if len(lines) == summaryMaxLines {
			break
		}
	}
	return strings.Join(lines, " ")
}

// Fields groups everything derived from a resume's text at upload time.
type Fields struct {
	Skills  string
	Email   string
	Phone   string
	Summary string
}

// ExtractFields runs every field extractor over text.
func ExtractFields(text string) Fields {
	return Fields{
		Skills:  ExtractSkills(text),
		Email:   ExtractEmail(text),
		Phone:   ExtractPhone(text),
		Summary: MakeSummary(text),
	}
}

func isECMASpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// utf16Len measures s the way browser string lengths do.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
