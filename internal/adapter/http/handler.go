package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/a-h/templ"

	"github.com/bnema/vidmerge/internal/adapter/http/middleware"
	"github.com/bnema/vidmerge/internal/adapter/http/templates"
	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/service"
	"github.com/bnema/vidmerge/internal/validation"
)

const recentJobsLimit = 20

type JobService interface {
	Submit(url1, url2, cookiesPath string, forceReencode bool) (*domain.Job, error)
	Get(id string) (*domain.Job, error)
	ListRecent(limit int) ([]*domain.Job, error)
	Output(id string) (*domain.Job, error)
}

var _ JobService = (*service.JobService)(nil)

type Handlers struct {
	jobSvc JobService
}

func NewHandlers(jobSvc JobService) *Handlers {
	return &Handlers{jobSvc: jobSvc}
}

type submitResponse struct {
	ID        string           `json:"id"`
	Status    domain.JobStatus `json:"status"`
	StatusURL string           `json:"status_url"`
}

// jobResponse is the JSON view of a job. DownloadURL is set once the merged
// file can be fetched.
type jobResponse struct {
	*domain.Job
	DownloadURL string `json:"download_url,omitempty"`
}

func newJobResponse(job *domain.Job) jobResponse {
	resp := jobResponse{Job: job}
	if job.Status == domain.JobStatusDone {
		resp.DownloadURL = templates.DownloadPath(job.ID)
	}
	return resp
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderIndex(w, r, http.StatusOK, templates.IndexData{})
	}
}

func (h *Handlers) renderIndex(w http.ResponseWriter, r *http.Request, code int, data templates.IndexData) {
	jobs, err := h.jobSvc.ListRecent(recentJobsLimit)
	if err != nil {
		logger.Error.Printf("list recent jobs: %v", err)
		jobs = nil
	}
	data.Jobs = jobs
	data.CSRFToken = middleware.TokenFromContext(r.Context())
	render(w, r, code, templates.Index(data))
}

func (h *Handlers) Merge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.mergeError(w, r, http.StatusBadRequest, "Invalid form submission", templates.IndexData{})
			return
		}

		form := templates.IndexData{
			URL1:          strings.TrimSpace(r.FormValue("url1")),
			URL2:          strings.TrimSpace(r.FormValue("url2")),
			CookiesPath:   strings.TrimSpace(r.FormValue("cookies")),
			ForceReencode: isChecked(r.FormValue("force_reencode")),
		}

		for _, raw := range []string{form.URL1, form.URL2} {
			if raw == "" {
				h.mergeError(w, r, http.StatusBadRequest, "Both video URLs are required", form)
				return
			}
			if err := validation.ValidateVideoURL(raw); err != nil {
				h.mergeError(w, r, http.StatusBadRequest, "Not a valid video URL: "+raw, form)
				return
			}
		}

		job, err := h.jobSvc.Submit(form.URL1, form.URL2, form.CookiesPath, form.ForceReencode)
		if err != nil {
			if errors.Is(err, service.ErrMissingURL) {
				h.mergeError(w, r, http.StatusBadRequest, "Both video URLs are required", form)
				return
			}
			logger.Error.Printf("submit job: %v", err)
			h.mergeError(w, r, http.StatusInternalServerError, "Could not queue the merge", form)
			return
		}

		statusURL := "/jobs/" + job.ID
		if wantsJSON(r) {
			writeJSON(w, http.StatusAccepted, submitResponse{ID: job.ID, Status: job.Status, StatusURL: statusURL})
			return
		}
		http.Redirect(w, r, statusURL, http.StatusSeeOther)
	}
}

func (h *Handlers) mergeError(w http.ResponseWriter, r *http.Request, code int, msg string, form templates.IndexData) {
	if wantsJSON(r) {
		writeJSON(w, code, errorResponse{Error: msg})
		return
	}
	form.Error = msg
	h.renderIndex(w, r, code, form)
}

func (h *Handlers) JobStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := h.jobSvc.Get(r.PathValue("id"))
		if err != nil {
			h.notFound(w, r, err, "Job not found")
			return
		}

		if wantsJSON(r) {
			writeJSON(w, http.StatusOK, newJobResponse(job))
			return
		}
		render(w, r, http.StatusOK, templates.JobPage(job))
	}
}

func (h *Handlers) Download() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := h.jobSvc.Output(r.PathValue("id"))
		switch {
		case errors.Is(err, domain.ErrJobNotDone):
			http.Error(w, "Job is not finished", http.StatusConflict)
			return
		case err != nil:
			h.notFound(w, r, err, "Video not available")
			return
		}

		f, err := os.Open(job.OutputPath)
		if err != nil {
			logger.Error.Printf("open output of %s: %v", job.ID, err)
			http.Error(w, "Video not available", http.StatusNotFound)
			return
		}
		defer f.Close() //nolint:errcheck

		info, err := f.Stat()
		if err != nil {
			http.Error(w, "Video not available", http.StatusInternalServerError)
			return
		}

		name := validation.SanitizeFilename("vidmerge-" + templates.ShortID(job.ID) + ".mp4")
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Disposition", validation.ContentDisposition(name))
		http.ServeContent(w, r, name, info.ModTime(), f)
	}
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrExpired) {
		logger.Error.Printf("%s: %v", msg, err)
		if wantsJSON(r) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		render(w, r, http.StatusInternalServerError, templates.ErrorPage("500", "Something went wrong"))
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: msg})
		return
	}
	render(w, r, http.StatusNotFound, templates.ErrorPage("404", msg))
}

func render(w http.ResponseWriter, r *http.Request, code int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := c.Render(r.Context(), w); err != nil {
		logger.Error.Printf("render %s: %v", logger.SanitizeForLog(r.URL.Path), err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("encode json response: %v", err)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func isChecked(v string) bool {
	switch strings.ToLower(v) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}
