package sqlite

import (
	"database/sql"
	"time"

	"github.com/bnema/vidmerge/internal/domain"
)

const jobColumns = `id, url1, url2, cookies_path, force_reencode, status, stage, method,
	fell_back, output_path, file_size, error_kind, error_message, attempts,
	created_at, started_at, completed_at, expires_at`

const (
	insertJobQuery = `INSERT INTO jobs (` + jobColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	getJobQuery = `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	deleteJobQuery = `DELETE FROM jobs WHERE id = ?`

	listRecentJobsQuery = `SELECT ` + jobColumns + ` FROM jobs
	ORDER BY created_at DESC LIMIT ?`

	listExpiredJobsQuery = `SELECT ` + jobColumns + ` FROM jobs
	WHERE expires_at <= ? AND status IN ('done', 'failed')
	ORDER BY expires_at`

	updateJobStageQuery = `UPDATE jobs SET stage = ? WHERE id = ?`

	updateJobDoneQuery = `UPDATE jobs
	SET status = 'done', stage = ?, method = ?, fell_back = ?, output_path = ?,
	    file_size = ?, error_kind = '', error_message = '', completed_at = ?
	WHERE id = ?`

	updateJobFailedQuery = `UPDATE jobs
	SET status = 'failed', stage = ?, method = ?, fell_back = ?,
	    error_kind = ?, error_message = ?, completed_at = ?
	WHERE id = ?`

	claimNextJobQuery = `UPDATE jobs
	SET status = 'running', stage = '', started_at = ?, attempts = attempts + 1
	WHERE id = (
		SELECT id FROM jobs WHERE status = 'pending' ORDER BY created_at LIMIT 1
	)
	RETURNING ` + jobColumns

	resetStalledJobsQuery = `UPDATE jobs SET status = 'pending', stage = '' WHERE status = 'running'`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		j                      domain.Job
		status, stage, method  string
		errorKind              string
		createdAt, expiresAt   int64
		startedAt, completedAt sql.NullInt64
	)
	err := row.Scan(
		&j.ID, &j.URL1, &j.URL2, &j.CookiesPath, &j.ForceReencode,
		&status, &stage, &method, &j.FellBack, &j.OutputPath, &j.FileSize,
		&errorKind, &j.ErrorMessage, &j.Attempts,
		&createdAt, &startedAt, &completedAt, &expiresAt,
	)
	if err != nil {
		return nil, err
	}
	j.Status = domain.JobStatus(status)
	j.Stage = domain.Stage(stage)
	j.Method = domain.ConcatMethod(method)
	j.ErrorKind = domain.ErrorKind(errorKind)
	j.CreatedAt = fromNanos(createdAt)
	j.ExpiresAt = fromNanos(expiresAt)
	j.StartedAt = nullTime(startedAt)
	j.CompletedAt = nullTime(completedAt)
	return &j, nil
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func nullTime(n sql.NullInt64) sql.NullTime {
	if !n.Valid {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: fromNanos(n.Int64), Valid: true}
}

func nullNanos(t sql.NullTime) sql.NullInt64 {
	if !t.Valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toNanos(t.Time), Valid: true}
}
