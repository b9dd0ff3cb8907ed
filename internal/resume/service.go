// Package resume implements resume intake and screening on top of the
// candidate store, the file store and the text extractors.
package resume

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"resume-intake/internal/cv"
	"resume-intake/internal/ranking"
	"resume-intake/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultName is stored when an upload carries no student name.
const DefaultName = "Student"

// CSVHeader is the header row of the shortlist export.
var CSVHeader = []string{"id", "name", "email", "phone", "skills"}

// Store persists candidates and shortlist membership.
type Store interface {
	InsertCandidate(ctx context.Context, c *storage.Candidate) (int64, error)
	ListCandidates(ctx context.Context) ([]storage.CandidateSummary, error)
	SearchCandidates(ctx context.Context, query string) ([]storage.CandidateSummary, error)
	AllCandidates(ctx context.Context) ([]storage.Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*storage.CandidateDetail, error)
	DeleteCandidate(ctx context.Context, id int64) (string, error)
	AddToShortlist(ctx context.Context, id int64) error
	ListShortlist(ctx context.Context) ([]storage.CandidateSummary, error)
}

// UploadInput is one uploaded resume.
type UploadInput struct {
	Data []byte
	Name string
}

type Service struct {
	store     Store
	files     storage.FileStore
	extractor cv.TextExtractor
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store Store, files storage.FileStore, extractor cv.TextExtractor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     store,
		files:     files,
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload extracts the resume text, stores the document and persists the candidate.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*storage.Candidate, error) {
	if len(in.Data) == 0 {
		return nil, &ValidationError{Field: "resume", Message: "no file uploaded"}
	}

	name := in.Name
	if name == "" {
		name = DefaultName
	}

	text, err := s.extractor.Extract(ctx, in.Data)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}
	fields := cv.ExtractFields(text)

	filename := s.newFilename()
	if err := s.files.Save(ctx, filename, in.Data); err != nil {
		return nil, &StorageError{Op: "save file", Err: err}
	}

	c := &storage.Candidate{
		Name:       name,
		ResumeText: text,
		Skills:     fields.Skills,
		Filename:   filename,
		Email:      fields.Email,
		Phone:      fields.Phone,
		Summary:    fields.Summary,
	}
	if _, err := s.store.InsertCandidate(ctx, c); err != nil {
		s.removeFile(ctx, filename)
		return nil, &StorageError{Op: "insert candidate", Err: err}
	}

	s.logger.Info("resume uploaded",
		zap.Int64("candidate_id", c.ID),
		zap.String("filename", filename),
		zap.Int("text_length", len(text)),
		zap.String("skills", fields.Skills),
	)
	return c, nil
}

// List returns every candidate, newest first.
func (s *Service) List(ctx context.Context) ([]storage.CandidateSummary, error) {
	list, err := s.store.ListCandidates(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list candidates", Err: err}
	}
	return list, nil
}

// Search returns candidates whose resume text contains query, ignoring case.
func (s *Service) Search(ctx context.Context, query string) ([]storage.CandidateSummary, error) {
	list, err := s.store.SearchCandidates(ctx, query)
	if err != nil {
		return nil, &StorageError{Op: "search candidates", Err: err}
	}
	return list, nil
}

// Rank scores every candidate against jobDescription, best match first.
func (s *Service) Rank(ctx context.Context, jobDescription string) ([]storage.ScoredCandidateSummary, error) {
	if jobDescription == "" {
		return nil, &ValidationError{Field: "jobDesc", Message: "job description is required"}
	}

	all, err := s.store.AllCandidates(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load candidates", Err: err}
	}
	return ranking.Rank(jobDescription, all), nil
}

// Get returns one candidate with its shortlist membership.
func (s *Service) Get(ctx context.Context, id int64) (*storage.CandidateDetail, error) {
	d, err := s.store.GetCandidate(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get candidate", Err: err}
	}
	return d, nil
}

// Delete removes a candidate, its shortlist entry and its stored document.
// Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	filename, err := s.store.DeleteCandidate(ctx, id)
	if err != nil {
		return &StorageError{Op: "delete candidate", Err: err}
	}
	if filename != "" {
		s.removeFile(ctx, filename)
	}
	s.logger.Info("candidate deleted", zap.Int64("candidate_id", id), zap.Bool("existed", filename != ""))
	return nil
}

// Shortlist adds a candidate to the shortlist. Repeats and unknown ids are no-ops.
func (s *Service) Shortlist(ctx context.Context, id int64) error {
	if err := s.store.AddToShortlist(ctx, id); err != nil {
		return &StorageError{Op: "shortlist candidate", Err: err}
	}
	return nil
}

// ViewShortlist returns shortlisted candidates, most recently added first.
func (s *Service) ViewShortlist(ctx context.Context) ([]storage.CandidateSummary, error) {
	list, err := s.store.ListShortlist(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list shortlist", Err: err}
	}
	return list, nil
}

// ExportShortlistCSV writes the shortlist as CSV with an id,name,email,phone,skills header.
func (s *Service) ExportShortlistCSV(ctx context.Context, w io.Writer) error {
	list, err := s.ViewShortlist(ctx)
	if err != nil {
		return err
	}
	return WriteCSV(w, list)
}

// OpenFile opens a stored resume document.
func (s *Service) OpenFile(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	f, err := s.files.Open(ctx, name)
	if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidFileName) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "open file", Err: err}
	}
	return f, nil
}

// WriteCSV writes candidates in shortlist export format.
func WriteCSV(w io.Writer, candidates []storage.CandidateSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range candidates {
		record := []string{strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.Phone, c.Skills}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// newFilename names an upload after its arrival time; the random suffix keeps
// uploads in the same millisecond apart.
func (s *Service) newFilename() string {
	return fmt.Sprintf("%d-%s.pdf", s.now().UnixMilli(), uuid.NewString()[:8])
}

func (s *Service) removeFile(ctx context.Context, name string) {
	if err := s.files.Remove(ctx, name); err != nil {
		s.logger.Warn("failed to remove stored resume", zap.String("filename", name), zap.Error(err))
	}
}
