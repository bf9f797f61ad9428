package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/infrastructure/logger"
	"github.com/bnema/vidmerge/internal/port"
)

// OutputFileName is the merged file inside a job directory.
const OutputFileName = "merged.mp4"

var ErrMissingURL = errors.New("both video URLs are required")

// JobDir is where a job keeps its downloads and its output.
func JobDir(dataDir, jobID string) string {
	return filepath.Join(dataDir, "jobs", jobID)
}

type JobService struct {
	store     port.JobStore
	queue     port.JobQueue
	dataDir   string
	retention time.Duration
}

func NewJobService(store port.JobStore, queue port.JobQueue, dataDir string, retention time.Duration) *JobService {
	return &JobService{
		store:     store,
		queue:     queue,
		dataDir:   dataDir,
		retention: retention,
	}
}

// Submit queues a merge of url1 and url2.
func (s *JobService) Submit(url1, url2, cookiesPath string, forceReencode bool) (*domain.Job, error) {
	url1, url2 = strings.TrimSpace(url1), strings.TrimSpace(url2)
	if url1 == "" || url2 == "" {
		return nil, ErrMissingURL
	}

	job := domain.NewJob(url1, url2, strings.TrimSpace(cookiesPath), forceReencode, s.retention)
	if err := s.queue.Enqueue(job); err != nil {
		return nil, fmt.Errorf("enqueue job: %w", err)
	}

	logger.Info.Printf("queued job %s: %s + %s", job.ID, logger.SanitizeURL(url1), logger.SanitizeURL(url2))
	return job, nil
}

func (s *JobService) Get(id string) (*domain.Job, error) {
	return s.store.Get(id)
}

func (s *JobService) ListRecent(limit int) ([]*domain.Job, error) {
	return s.store.ListRecent(limit)
}

// Output returns a finished job whose merged file is still on disk.
func (s *JobService) Output(id string) (*domain.Job, error) {
	job, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusDone {
		return job, domain.ErrJobNotDone
	}
	if job.IsExpired() {
		return nil, domain.ErrExpired
	}
	if _, err := os.Stat(job.OutputPath); err != nil {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

// Cleanup deletes finished jobs past their retention together with their files.
func (s *JobService) Cleanup() error {
	expired, err := s.store.ListExpired(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("list expired jobs: %w", err)
	}

	var errs []error
	for _, job := range expired {
		if err := os.RemoveAll(JobDir(s.dataDir, job.ID)); err != nil {
			errs = append(errs, fmt.Errorf("remove files of %s: %w", job.ID, err))
			continue
		}
		if err := s.store.Delete(job.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete job %s: %w", job.ID, err))
			continue
		}
		logger.Info.Printf("cleaned up expired job %s", job.ID)
	}
	return errors.Join(errs...)
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (s *JobService) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.Cleanup(); err != nil {
				logger.Error.Printf("cleanup failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
