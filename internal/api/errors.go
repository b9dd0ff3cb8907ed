package api

import (
	"errors"
	"net/http"

	"resume-intake/internal/resume"

	"go.uber.org/zap"
)

// HTTPStatus returns the appropriate HTTP status code for a service error.
func HTTPStatus(err error) int {
	var (
		validationErr *resume.ValidationError
		extractionErr *resume.ExtractionError
		storageErr    *resume.StorageError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, resume.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &extractionErr), errors.As(err, &storageErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err and replies with a short plain-text message.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := HTTPStatus(err)
	log := a.requestLogger(r)
	if status >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err), zap.Int("status", status))
	} else {
		log.Info(message, zap.Error(err), zap.Int("status", status))
	}
	http.Error(w, message, status)
}
