package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"resume-intake/internal/resume"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &resume.ValidationError{Field: "resume", Message: "no file uploaded"}, http.StatusBadRequest},
		{"not found", resume.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", resume.ErrNotFound), http.StatusNotFound},
		{"extraction", &resume.ExtractionError{Err: errors.New("bad pdf")}, http.StatusInternalServerError},
		{"storage", &resume.StorageError{Op: "list", Err: errors.New("down")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
