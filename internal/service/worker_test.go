package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/port/mocks"
)

type fakeMerger struct {
	stages []domain.Stage
	err    error
	method domain.ConcatMethod
	req    domain.MergeRequest
}

func (f *fakeMerger) Run(_ context.Context, req domain.MergeRequest, onStage StageFunc) (*domain.MergeResult, error) {
	f.req = req
	for _, s := range f.stages {
		onStage(s)
	}
	result := &domain.MergeResult{OutputPath: req.OutputPath, Method: f.method}
	if f.err != nil {
		result.Err = f.err
		return result, f.err
	}
	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(req.OutputPath, []byte("merged"), 0o644); err != nil {
		return nil, err
	}
	result.Success = true
	return result, nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []Event
}

func (b *recordingBus) Publish(_ string, e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func TestWorkerPool_ProcessJob_Success(t *testing.T) {
	store := mocks.NewJobStoreMock(t)
	queue := mocks.NewJobQueueMock(t)
	bus := &recordingBus{}
	merger := &fakeMerger{
		stages: []domain.Stage{domain.StageDownload, domain.StageConcat},
		method: domain.MethodStreamCopy,
	}
	dataDir := t.TempDir()
	wp := NewWorkerPool(queue, store, merger, bus, dataDir, 1)

	job := domain.NewJob("https://x.com/a/status/1", "https://x.com/b/status/2", "/tmp/c.txt", false, time.Hour)

	store.EXPECT().UpdateStage(job.ID, domain.StageDownload).Return(nil).Once()
	store.EXPECT().UpdateStage(job.ID, domain.StageConcat).Return(nil).Once()
	store.EXPECT().UpdateDone(mock.AnythingOfType("*domain.Job")).
		Run(func(j *domain.Job) {
			assert.Equal(t, domain.JobStatusDone, j.Status)
			assert.Equal(t, domain.MethodStreamCopy, j.Method)
			assert.Equal(t, int64(len("merged")), j.FileSize)
		}).
		Return(nil).Once()

	wp.processJob(context.Background(), job)

	assert.Equal(t, JobDir(dataDir, job.ID), merger.req.WorkDir)
	assert.Equal(t, filepath.Join(JobDir(dataDir, job.ID), OutputFileName), merger.req.OutputPath)
	assert.Equal(t, "/tmp/c.txt", merger.req.CookiesPath)

	require.Len(t, bus.events, 4)
	assert.Equal(t, domain.JobStatusRunning, bus.events[0].Status)
	assert.Equal(t, domain.StageDownload, bus.events[1].Stage)
	assert.Equal(t, domain.StageConcat, bus.events[2].Stage)
	assert.Equal(t, domain.JobStatusDone, bus.events[3].Status)
}

func TestWorkerPool_ProcessJob_Failure(t *testing.T) {
	store := mocks.NewJobStoreMock(t)
	queue := mocks.NewJobQueueMock(t)
	bus := &recordingBus{}
	pipelineErr := domain.NewPipelineError(domain.StageConcat, domain.ErrorKindEncode, errors.New("libx264 missing"))
	merger := &fakeMerger{
		stages: []domain.Stage{domain.StageConcat},
		method: domain.MethodReencode,
		err:    pipelineErr,
	}
	wp := NewWorkerPool(queue, store, merger, bus, t.TempDir(), 1)
	job := domain.NewJob("https://x.com/a/status/1", "https://x.com/b/status/2", "", false, time.Hour)

	store.EXPECT().UpdateStage(job.ID, domain.StageConcat).Return(nil).Once()
	store.EXPECT().UpdateFailed(mock.AnythingOfType("*domain.Job")).
		Run(func(j *domain.Job) {
			assert.Equal(t, domain.JobStatusFailed, j.Status)
			assert.Equal(t, domain.ErrorKindEncode, j.ErrorKind)
			assert.Equal(t, domain.StageConcat, j.Stage)
			assert.Equal(t, domain.MethodReencode, j.Method)
			assert.Contains(t, j.ErrorMessage, "libx264 missing")
		}).
		Return(nil).Once()

	wp.processJob(context.Background(), job)

	last := bus.events[len(bus.events)-1]
	assert.Equal(t, domain.JobStatusFailed, last.Status)
	assert.Contains(t, last.Message, "libx264 missing")
}

func TestWorkerPool_ProcessJob_ShutdownLeavesJobRunning(t *testing.T) {
	store := mocks.NewJobStoreMock(t)
	queue := mocks.NewJobQueueMock(t)
	merger := &fakeMerger{err: context.Canceled}
	wp := NewWorkerPool(queue, store, merger, nil, t.TempDir(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no UpdateFailed expectation: the mock fails the test if it is called
	wp.processJob(ctx, domain.NewJob("https://a/1", "https://b/2", "", false, time.Hour))
}

func TestWorkerPool_StartClaimsAndStops(t *testing.T) {
	store := mocks.NewJobStoreMock(t)
	queue := mocks.NewJobQueueMock(t)
	merger := &fakeMerger{method: domain.MethodStreamCopy}
	wp := NewWorkerPool(queue, store, merger, nil, t.TempDir(), 0)

	job := domain.NewJob("https://x.com/a/status/1", "https://x.com/b/status/2", "", false, time.Hour)
	done := make(chan struct{})

	queue.EXPECT().ResetStalled().Return(nil).Once()
	queue.EXPECT().Claim().Return(job, nil).Once()
	queue.EXPECT().Claim().Return(nil, nil).Maybe()
	store.EXPECT().UpdateDone(mock.Anything).
		Run(func(*domain.Job) { close(done) }).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	wp.Start(ctx)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not processed")
	}
	cancel()
	wp.Wait()
}
