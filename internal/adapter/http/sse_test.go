package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/service"
)

func runningJob() *domain.Job {
	return &domain.Job{
		ID:        "abc12345-0000-0000-0000-000000000000",
		URL1:      "https://x.com/a/status/1",
		URL2:      "https://x.com/b/status/2",
		Status:    domain.JobStatusRunning,
		Stage:     domain.StageDownload,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
}

func doneJob() *domain.Job {
	job := runningJob()
	job.Status = domain.JobStatusDone
	job.Stage = domain.StageDone
	job.Method = domain.MethodStreamCopy
	job.FileSize = 2048
	return job
}

func TestSendStatus_SkipsUnchangedFragments(t *testing.T) {
	h := NewSSEHandler(nil, nil)
	r := httptest.NewRequest(http.MethodGet, "/events/x", nil)
	job := runningJob()

	first := httptest.NewRecorder()
	state, err := h.sendStatus(first, r, job, nil)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, 1, strings.Count(first.Body.String(), "event: status"))
	assert.NotContains(t, first.Body.String(), "event: end")

	second := httptest.NewRecorder()
	state, err = h.sendStatus(second, r, job, state)
	require.NoError(t, err)
	assert.NotNil(t, state)
	assert.Equal(t, "", second.Body.String())
}

func TestSendStatus_EmitsUpdatedFragmentAndEnd(t *testing.T) {
	h := NewSSEHandler(nil, nil)
	r := httptest.NewRequest(http.MethodGet, "/events/x", nil)

	state, err := h.sendStatus(httptest.NewRecorder(), r, runningJob(), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	_, err = h.sendStatus(rec, r, doneJob(), state)
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "event: status")
	assert.Contains(t, body, "/download")
	assert.Contains(t, body, "event: end\ndata: done\n\n")
}

func TestSSEWrite_SplitsMultilineData(t *testing.T) {
	rec := httptest.NewRecorder()
	sseWrite(rec, "status", "<p>a</p>\n<p>b</p>")

	assert.Equal(t, "event: status\ndata: <p>a</p>\ndata: <p>b</p>\n\n", rec.Body.String())
}

func TestEvents_UnknownJob(t *testing.T) {
	jobs := &fakeJobService{getErr: domain.ErrNotFound}
	srv := NewServer(jobs, service.NewEventBus(), testCSRF())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEvents_TerminalJobSendsSnapshotAndEnd(t *testing.T) {
	jobs := &fakeJobService{job: doneJob()}
	srv := NewServer(jobs, service.NewEventBus(), testCSRF())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/events/"+jobs.job.ID, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event: status")
	assert.Contains(t, rec.Body.String(), "event: end")
}

func TestEvents_StreamsUntilTerminal(t *testing.T) {
	jobs := &fakeJobService{job: runningJob()}
	bus := service.NewEventBus()
	srv := NewServer(jobs, bus, testCSRF())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events/"+jobs.job.ID, nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	finished := make(chan struct{})
	go func() {
		srv.ServeHTTP(rec, req)
		close(finished)
	}()

	// Give the handler time to subscribe, then finish the job.
	time.Sleep(50 * time.Millisecond)
	jobs.setJob(doneJob())
	bus.Publish(jobs.job.ID, service.Event{Type: service.EventStatus, Status: domain.JobStatusDone})

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("SSE handler did not return after the client went away")
	}

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: status"))
	assert.Contains(t, body, "event: end")
}
