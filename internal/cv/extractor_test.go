package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "vocabulary order regardless of text order",
			text: "Experienced in JavaScript, React, SQL and Python.",
			want: "python, sql, react, javascript",
		},
		{
			name: "java is not matched inside javascript",
			text: "javascript only",
			want: "javascript",
		},
		{
			name: "punctuation counts as a word boundary",
			text: "Java developer with Node.js and MongoDB. AI/ML enthusiast",
			want: "java, node, mongodb, ai, ml",
		},
		{
			name: "partial words are ignored",
			text: "PostgreSQL, Pythonic, training, html",
			want: "",
		},
		{
			name: "case insensitive",
			text: "PYTHON and Postgres and DBMS",
			want: "python, dbms, postgres",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSkills(tt.text))
		})
	}
}

func TestExtractSkills_SubsequenceOfVocabulary(t *testing.T) {
	text := strings.Join(SkillVocabulary, " ")
	assert.Equal(t, strings.Join(SkillVocabulary, ", "), ExtractSkills(text))

	reversed := make([]string, len(SkillVocabulary))
	for i, s := range SkillVocabulary {
		reversed[len(SkillVocabulary)-1-i] = strings.ToUpper(s)
	}
	assert.Equal(t, strings.Join(SkillVocabulary, ", "), ExtractSkills(strings.Join(reversed, "\n")))
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first of two", "Contact: John.Doe@Example.com or jd@foo.org", "John.Doe@Example.com"},
		{"trailing punctuation", "mail a@b.com, thanks", "a@b.com"},
		{"plus and percent", "x+tag%1@mail.co.uk", "x+tag%1@mail.co.uk"},
		{"no tld", "user@localhost", ""},
		{"short tld", "user@host.c", ""},
		{"none", "no email here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"international with spaces", "Phone: +1 555 123 4567, alt 020-7946-0958", "+1 555 123 4567"},
		{"hyphens", "call 020-7946-0958 today", "020-7946-0958"},
		{"ten plain digits", "0123456789", "0123456789"},
		{"trailing whitespace dropped", "+91 98765 43210 \nnext", "+91 98765 43210"},
		{"too short", "call 12345", ""},
		{"none", "no digits at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestMakeSummary(t *testing.T) {
	long1 := "This line is definitely longer than forty characters."
	long2 := "Built distributed systems in Go and Python for years."
	long3 := "Led a team of five engineers on a data platform rewrite."
	long4 := "This fourth long line must never show up in the summary."

	t.Run("keeps first three long lines in order", func(t *testing.T) {
		text := strings.Join([]string{"Jane Doe", long1, "short", long2, long3, long4}, "\n")
		assert.Equal(t, long1+" "+long2+" "+long3, MakeSummary(text))
	})

	t.Run("trims before measuring", func(t *testing.T) {
		text := "   " + long1 + "   \r\n " + long2 + " "
		assert.Equal(t, long1+" "+long2, MakeSummary(text))
	})

	t.Run("forty characters is not enough", func(t *testing.T) {
		exact := strings.Repeat("a", 40)
		longer := strings.Repeat("b", 41)
		assert.Equal(t, longer, MakeSummary(exact+"\n"+longer))
	})

	t.Run("no qualifying lines", func(t *testing.T) {
		assert.Equal(t, "", MakeSummary("a\nb\nc"))
		assert.Equal(t, "", MakeSummary(""))
	})
}

func TestExtractFields(t *testing.T) {
	line := "I enjoy building reliable backend services every day."
	text := "Python, SQL, contact: a@b.com, phone +1 555 123 4567\n" + line

	f := ExtractFields(text)
	assert.Equal(t, "python, sql", f.Skills)
	assert.Equal(t, "a@b.com", f.Email)
	assert.Equal(t, "+1 555 123 4567", f.Phone)
	assert.Contains(t, f.Summary, line)
}
