package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New(true, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = New(false, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestRedactDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://user:secret@db:5432/resumes?sslmode=disable", "postgres://user:***@db:5432/resumes?sslmode=disable"},
		{"postgres://user@db/resumes", "postgres://user@db/resumes"},
		{"postgres://db/resumes", "postgres://db/resumes"},
		{"host=db user=x", "host=db user=x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RedactDSN(tt.in))
	}
}
