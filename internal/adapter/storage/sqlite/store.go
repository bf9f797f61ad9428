package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"

	"github.com/bnema/vidmerge/internal/domain"
	"github.com/bnema/vidmerge/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

const dbFileName = "vidmerge.db"

type Store struct {
	db *sql.DB
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA cache_size = -2000", // 2MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

// NewStore opens (or creates) the job database in dataDir and migrates it.
func NewStore(dataDir string) (*Store, error) {
	registerHook()

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// one writer at a time; the worker pool and HTTP handlers share it
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Get(id string) (*domain.Job, error) {
	ctx := context.Background()
	j, err := scanJob(s.db.QueryRowContext(ctx, getJobQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (s *Store) Delete(id string) error {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, deleteJobQuery, id)
	return err
}

func (s *Store) ListRecent(limit int) ([]*domain.Job, error) {
	return s.list(listRecentJobsQuery, limit)
}

// ListExpired returns finished jobs whose retention ended at or before now.
func (s *Store) ListExpired(now time.Time) ([]*domain.Job, error) {
	return s.list(listExpiredJobsQuery, toNanos(now))
}

func (s *Store) list(query string, args ...any) ([]*domain.Job, error) {
	ctx := context.Background()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *Store) UpdateStage(id string, stage domain.Stage) error {
	ctx := context.Background()
	return expectOne(s.db.ExecContext(ctx, updateJobStageQuery, string(stage), id))
}

func (s *Store) UpdateDone(j *domain.Job) error {
	ctx := context.Background()
	now := time.Now().UTC()
	err := expectOne(s.db.ExecContext(ctx, updateJobDoneQuery,
		string(j.Stage), string(j.Method), j.FellBack, j.OutputPath,
		j.FileSize, toNanos(now), j.ID,
	))
	if err != nil {
		return err
	}
	j.CompletedAt = sql.NullTime{Time: now, Valid: true}
	return nil
}

func (s *Store) UpdateFailed(j *domain.Job) error {
	ctx := context.Background()
	now := time.Now().UTC()
	err := expectOne(s.db.ExecContext(ctx, updateJobFailedQuery,
		string(j.Stage), string(j.Method), j.FellBack,
		string(j.ErrorKind), j.ErrorMessage, toNanos(now), j.ID,
	))
	if err != nil {
		return err
	}
	j.CompletedAt = sql.NullTime{Time: now, Valid: true}
	return nil
}

// expectOne maps an update that touched no row to domain.ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ port.JobStore = (*Store)(nil)
