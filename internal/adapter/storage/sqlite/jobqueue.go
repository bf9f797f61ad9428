package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/port"
)

type JobQueue struct {
	db *sql.DB
}

func NewJobQueue(store *Store) *JobQueue {
	return &JobQueue{
		db: store.db,
	}
}

func (q *JobQueue) Enqueue(j *domain.Job) error {
	ctx := context.Background()
	_, err := q.db.ExecContext(ctx, insertJobQuery,
		j.ID, j.URL1, j.URL2, j.CookiesPath, j.ForceReencode,
		string(j.Status), string(j.Stage), string(j.Method), j.FellBack,
		j.OutputPath, j.FileSize, string(j.ErrorKind), j.ErrorMessage, j.Attempts,
		toNanos(j.CreatedAt), nullNanos(j.StartedAt), nullNanos(j.CompletedAt), toNanos(j.ExpiresAt),
	)
	return err
}

// Claim marks the oldest pending job as running and returns it, or nil when
// the queue is empty.
func (q *JobQueue) Claim() (*domain.Job, error) {
	ctx := context.Background()
	j, err := scanJob(q.db.QueryRowContext(ctx, claimNextJobQuery, toNanos(time.Now())))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return j, nil
}

// ResetStalled puts jobs left running by a previous process back in the queue.
func (q *JobQueue) ResetStalled() error {
	ctx := context.Background()
	_, err := q.db.ExecContext(ctx, resetStalledJobsQuery)
	return err
}

var _ port.JobQueue = (*JobQueue)(nil)
