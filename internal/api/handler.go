package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"resume-intake/internal/resume"
	"resume-intake/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ResumeService is the set of resume operations exposed over HTTP.
type ResumeService interface {
	Upload(ctx context.Context, in resume.UploadInput) (*storage.Candidate, error)
	List(ctx context.Context) ([]storage.CandidateSummary, error)
	Search(ctx context.Context, query string) ([]storage.CandidateSummary, error)
	Rank(ctx context.Context, jobDescription string) ([]storage.ScoredCandidateSummary, error)
	Get(ctx context.Context, id int64) (*storage.CandidateDetail, error)
	Delete(ctx context.Context, id int64) error
	Shortlist(ctx context.Context, id int64) error
	ViewShortlist(ctx context.Context) ([]storage.CandidateSummary, error)
	ExportShortlistCSV(ctx context.Context, w io.Writer) error
	OpenFile(ctx context.Context, name string) (io.ReadSeekCloser, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options tune request handling.
type Options struct {
	MaxUploadBytes int64
	CORSOrigin     string
	// Registry collects the HTTP metrics; a fresh registry is used when nil.
	Registry *prometheus.Registry
}

const (
	defaultMaxUploadBytes = 10 << 20
	maxJSONBodyBytes      = 1 << 20
)

type API struct {
	svc            ResumeService
	health         Pinger
	logger         *zap.Logger
	validator      *validator.Validate
	metrics        *Metrics
	maxUploadBytes int64
	corsOrigin     string
}

func NewAPI(svc ResumeService, health Pinger, logger *zap.Logger, opts Options) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	return &API{
		svc:            svc,
		health:         health,
		logger:         logger,
		validator:      validator.New(),
		metrics:        NewMetrics(opts.Registry),
		maxUploadBytes: opts.MaxUploadBytes,
		corsOrigin:     opts.CORSOrigin,
	}
}

// HealthHandler reports service health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		if err := a.health.Ping(r.Context()); err != nil {
			a.requestLogger(r).Warn("health check failed", zap.Error(err))
			a.jsonResponse(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	a.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

func (a *API) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.requestLogger(r).Error("failed to encode JSON response", zap.Error(err))
	}
}

func (a *API) textResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, message)
}

func (a *API) requestLogger(r *http.Request) *zap.Logger {
	return a.logger.With(zap.String("correlation_id", CorrelationID(r.Context())))
}
