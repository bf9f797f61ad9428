package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/port"
)

const (
	idlePollInterval  = 500 * time.Millisecond
	errorPollInterval = 2 * time.Second
)

const (
	EventStage  = "stage"
	EventStatus = "status"
)

type Event struct {
	Type    string
	Status  domain.JobStatus
	Stage   domain.Stage
	Message string
}

func (e Event) terminal() bool {
	return e.Status == domain.JobStatusDone || e.Status == domain.JobStatusFailed
}

type EventPublisher interface {
	Publish(jobID string, event Event)
}

// Merger runs one download-and-merge request.
type Merger interface {
	Run(ctx context.Context, req domain.MergeRequest, onStage StageFunc) (*domain.MergeResult, error)
}

type WorkerPool struct {
	jobQueue port.JobQueue
	store    port.JobStore
	merger   Merger
	eventBus EventPublisher
	dataDir  string
	workers  int
	wg       sync.WaitGroup
}

func NewWorkerPool(
	jobQueue port.JobQueue,
	store port.JobStore,
	merger Merger,
	eventBus EventPublisher,
	dataDir string,
	workers int,
) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		jobQueue: jobQueue,
		store:    store,
		merger:   merger,
		eventBus: eventBus,
		dataDir:  dataDir,
		workers:  workers,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	// jobs left running by a previous process go back to pending
	if err := wp.jobQueue.ResetStalled(); err != nil {
		logger.Error.Printf("failed to reset stalled jobs: %v", err)
	}

	for i := range wp.workers {
		wp.wg.Add(1)
		go wp.runWorker(ctx, i)
	}
	logger.Info.Printf("started %d workers", wp.workers)
}

// Wait blocks until every worker has returned after ctx cancellation.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	defer wp.wg.Done()
	for {
		select {
		case <-ctx.Done():
			logger.Info.Printf("worker %d shutting down", id)
			return
		default:
		}

		job, err := wp.jobQueue.Claim()
		if err != nil {
			logger.Error.Printf("worker %d: failed to claim job: %v", id, err)
			sleep(ctx, errorPollInterval)
			continue
		}

		if job == nil {
			sleep(ctx, idlePollInterval)
			continue
		}

		logger.Info.Printf("worker %d: processing job %s (attempt %d)", id, job.ID, job.Attempts)
		wp.processJob(ctx, job)
	}
}

func (wp *WorkerPool) processJob(ctx context.Context, job *domain.Job) {
	dir := JobDir(wp.dataDir, job.ID)
	req := domain.MergeRequest{
		URL1:          job.URL1,
		URL2:          job.URL2,
		OutputPath:    filepath.Join(dir, OutputFileName),
		WorkDir:       dir,
		CookiesPath:   job.CookiesPath,
		ForceReencode: job.ForceReencode,
	}

	wp.publish(job.ID, Event{Type: EventStatus, Status: domain.JobStatusRunning})

	result, err := wp.merger.Run(ctx, req, func(stage domain.Stage) {
		job.Stage = stage
		if err := wp.store.UpdateStage(job.ID, stage); err != nil {
			logger.Error.Printf("job %s: failed to record stage %s: %v", job.ID, stage, err)
		}
		wp.publish(job.ID, Event{Type: EventStage, Status: domain.JobStatusRunning, Stage: stage})
	})

	if err != nil {
		if ctx.Err() != nil {
			// interrupted by shutdown; ResetStalled requeues it on next start
			logger.Warn.Printf("job %s interrupted: %v", job.ID, err)
			return
		}
		if result != nil {
			job.Method = result.Method
			job.FellBack = result.FellBack
		}
		job.MarkAsFailed(err)
		if uerr := wp.store.UpdateFailed(job); uerr != nil {
			logger.Error.Printf("job %s: failed to record failure: %v", job.ID, uerr)
		}
		logger.Error.Printf("job %s failed: %v", job.ID, err)
		wp.publish(job.ID, Event{Type: EventStatus, Status: domain.JobStatusFailed, Stage: job.Stage, Message: job.ErrorMessage})
		return
	}

	var size int64
	if info, statErr := os.Stat(result.OutputPath); statErr == nil {
		size = info.Size()
	}
	job.MarkAsDone(result, size)
	if err := wp.store.UpdateDone(job); err != nil {
		logger.Error.Printf("job %s: failed to record completion: %v", job.ID, err)
	}
	logger.Info.Printf("job %s completed (%s)", job.ID, result.Method)
	wp.publish(job.ID, Event{Type: EventStatus, Status: domain.JobStatusDone, Stage: domain.StageDone})
}

func (wp *WorkerPool) publish(jobID string, event Event) {
	if wp.eventBus != nil {
		wp.eventBus.Publish(jobID, event)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

var _ Merger = (*Pipeline)(nil)
