package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/vidmerge/internal/adapter/http/templates"
	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/service"
)

const keepAliveInterval = 15 * time.Second

type SSEHandler struct {
	eventBus *service.EventBus
	jobSvc   JobService
}

func NewSSEHandler(eventBus *service.EventBus, jobSvc JobService) *SSEHandler {
	return &SSEHandler{
		eventBus: eventBus,
		jobSvc:   jobSvc,
	}
}

// sseState remembers the last fragment sent on one stream.
type sseState struct {
	statusHTML string
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// sendStatus renders the job fragment and sends it unless it matches the
// previous one. A terminal job is followed by an "end" event.
func (h *SSEHandler) sendStatus(w http.ResponseWriter, r *http.Request, job *domain.Job, state *sseState) (*sseState, error) {
	html, err := templates.RenderString(r.Context(), templates.JobStatus(job))
	if err != nil {
		return state, err
	}
	if state == nil {
		state = &sseState{}
	}
	if html != state.statusHTML {
		sseWrite(w, "status", html)
		state.statusHTML = html
	}
	if job.IsTerminal() {
		sseWrite(w, "end", string(job.Status))
	}
	return state, nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "Missing job ID", http.StatusBadRequest)
			return
		}

		job, err := h.jobSvc.Get(id)
		if err != nil {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ctx := r.Context()

		// Subscribe before sending the snapshot so no transition is missed.
		ch, unsubscribe := h.eventBus.Subscribe(id)
		defer unsubscribe()

		state, err := h.sendStatus(w, r, job, nil)
		if err != nil {
			logger.Error.Printf("render status of %s: %v", id, err)
			return
		}
		if job.IsTerminal() {
			<-ctx.Done()
			return
		}

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case _, ok := <-ch:
				if !ok {
					return
				}
				job, err := h.jobSvc.Get(id)
				if err != nil {
					return
				}
				if state, err = h.sendStatus(w, r, job, state); err != nil {
					logger.Error.Printf("render status of %s: %v", id, err)
					return
				}

				// Let client close connection when terminal
				if job.IsTerminal() {
					<-ctx.Done()
					return
				}
			}
		}
	}
}
