package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"resume-intake/internal/resume"
)

// multipartMemory is how much of an upload ParseMultipartForm keeps in memory.
const multipartMemory = 1 << 20

// RateRequest is the body accepted by /rate.
type RateRequest struct {
	JobDesc string `json:"jobDesc" validate:"required"`
}

// UploadHandler handles resume uploads
// @Summary Upload a resume
// @Description Upload a PDF resume; skills, email, phone and a summary are extracted and stored
// @Tags resumes
// @Accept multipart/form-data
// @Produce plain
// @Param resume formData file true "PDF resume"
// @Param name formData string false "Candidate name"
// @Success 200 {string} string "Resume uploaded!"
// @Failure 400 {string} string "No file"
// @Failure 413 {string} string "File too large"
// @Failure 500 {string} string "Upload failed"
// @Router /upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > a.maxUploadBytes {
		a.metrics.uploadResult("too_large")
		http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.metrics.uploadResult("too_large")
			http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
			return
		}
		a.metrics.uploadResult("invalid")
		http.Error(w, "No file", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("resume")
	if err != nil {
		a.metrics.uploadResult("invalid")
		http.Error(w, "No file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.metrics.uploadResult("invalid")
		a.fail(w, r, &resume.ValidationError{Field: "resume", Message: err.Error()}, "No file")
		return
	}

	_, err = a.svc.Upload(r.Context(), resume.UploadInput{Data: data, Name: r.FormValue("name")})
	if err != nil {
		var validationErr *resume.ValidationError
		if errors.As(err, &validationErr) {
			a.metrics.uploadResult("invalid")
			a.fail(w, r, err, "No file")
			return
		}
		a.metrics.uploadResult("failed")
		a.fail(w, r, err, "Upload failed")
		return
	}

	a.metrics.uploadResult("ok")
	a.textResponse(w, "Resume uploaded!")
}

// ListHandler lists all candidates, newest first
// @Summary List candidates
// @Tags resumes
// @Produce json
// @Success 200 {array} storage.CandidateSummary
// @Failure 500 {string} string
// @Router /list [get]
func (a *API) ListHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := a.svc.List(r.Context())
	if err != nil {
		a.fail(w, r, err, "List failed")
		return
	}
	a.jsonResponse(w, r, http.StatusOK, candidates)
}

// SearchHandler finds candidates whose resume text contains q
// @Summary Search resumes
// @Tags resumes
// @Produce json
// @Param q query string false "Case-insensitive substring of the resume text"
// @Success 200 {array} storage.CandidateSummary
// @Failure 500 {string} string
// @Router /search [get]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := a.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		a.fail(w, r, err, "Search failed")
		return
	}
	a.jsonResponse(w, r, http.StatusOK, candidates)
}

// RateHandler ranks every candidate against a job description
// @Summary Rank candidates
// @Tags resumes
// @Accept json
// @Produce json
// @Param request body RateRequest true "Job description"
// @Success 200 {array} storage.ScoredCandidateSummary
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /rate [post]
func (a *API) RateHandler(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Struct(req); err != nil {
		http.Error(w, "jobDesc is required", http.StatusBadRequest)
		return
	}

	ranked, err := a.svc.Rank(r.Context(), req.JobDesc)
	if err != nil {
		a.fail(w, r, err, "Rating failed")
		return
	}
	a.jsonResponse(w, r, http.StatusOK, ranked)
}

// CandidateHandler returns one candidate with the full resume text
// @Summary Get candidate
// @Tags resumes
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} storage.CandidateDetail
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /candidate/{id} [get]
func (a *API) CandidateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	detail, err := a.svc.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "Candidate not found")
		return
	}
	a.jsonResponse(w, r, http.StatusOK, detail)
}

// DeleteHandler removes a candidate and its stored PDF
// @Summary Delete candidate
// @Tags resumes
// @Produce plain
// @Param id path int true "Candidate ID"
// @Success 200 {string} string "Deleted"
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /delete/{id} [delete]
func (a *API) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.svc.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "Delete failed")
		return
	}
	a.textResponse(w, "Deleted")
}

// ShortlistHandler adds a candidate to the shortlist
// @Summary Shortlist candidate
// @Description Idempotent; shortlisting twice or shortlisting an unknown id still succeeds
// @Tags shortlist
// @Produce plain
// @Param id path int true "Candidate ID"
// @Success 200 {string} string "Shortlisted"
// @Failure 400 {string} string
// @Router /shortlist/{id} [post]
func (a *API) ShortlistHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	if err := a.svc.Shortlist(r.Context(), id); err != nil {
		a.fail(w, r, err, "Shortlist failed")
		return
	}
	a.textResponse(w, "Shortlisted")
}

// ViewShortlistHandler lists shortlisted candidates, most recently added first
// @Summary View shortlist
// @Tags shortlist
// @Produce json
// @Success 200 {array} storage.CandidateSummary
// @Router /shortlist [get]
func (a *API) ViewShortlistHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := a.svc.ViewShortlist(r.Context())
	if err != nil {
		a.fail(w, r, err, "Shortlist failed")
		return
	}
	a.jsonResponse(w, r, http.StatusOK, candidates)
}

// ExportShortlistHandler downloads the shortlist as CSV
// @Summary Export shortlist
// @Tags shortlist
// @Produce text/csv
// @Success 200 {string} string "id,name,email,phone,skills"
// @Router /shortlist/export [get]
func (a *API) ExportShortlistHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.svc.ExportShortlistCSV(r.Context(), &buf); err != nil {
		a.fail(w, r, err, "Export failed")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="shortlist.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// FileHandler serves a stored resume PDF
// @Summary Download resume
// @Tags resumes
// @Produce application/pdf
// @Param filename path string true "Stored filename"
// @Success 200 {file} file
// @Failure 404 {string} string
// @Router /files/{filename} [get]
func (a *API) FileHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	f, err := a.svc.OpenFile(r.Context(), name)
	if err != nil {
		a.fail(w, r, err, "File not found")
		return
	}
	defer f.Close()
	http.ServeContent(w, r, name, time.Time{}, f)
}

func (a *API) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
