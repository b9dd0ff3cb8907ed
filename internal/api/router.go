package api

import (
	"net/http"

	"resume-intake/web"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	mux.HandleFunc("GET /health", a.HealthHandler)
	mux.Handle("GET /metrics", a.metrics.Handler())

	// Resume endpoints
	mux.HandleFunc("POST /upload", a.UploadHandler)
	mux.HandleFunc("GET /list", a.ListHandler)
	mux.HandleFunc("GET /search", a.SearchHandler)
	mux.HandleFunc("POST /rate", a.RateHandler)
	mux.HandleFunc("GET /candidate/{id}", a.CandidateHandler)
	mux.HandleFunc("DELETE /delete/{id}", a.DeleteHandler)
	mux.HandleFunc("GET /files/{filename}", a.FileHandler)

	// Shortlist endpoints
	mux.HandleFunc("POST /shortlist/{id}", a.ShortlistHandler)
	mux.HandleFunc("GET /shortlist", a.ViewShortlistHandler)
	mux.HandleFunc("GET /shortlist/export", a.ExportShortlistHandler)

	// Recruiter UI
	mux.Handle("GET /", http.FileServerFS(web.Static()))

	var h http.Handler = mux
	h = a.corsMiddleware(h)
	h = a.recoverMiddleware(h)
	h = a.metrics.middleware(h)
	h = a.loggingMiddleware(h)
	h = correlationIDMiddleware(h)
	return h
}
