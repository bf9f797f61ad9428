package port

import (
	"time"

	"github.com/bnema/vidmerge/internal/domain"
)

type JobStore interface {
	Get(id string) (*domain.Job, error)
	Delete(id string) error
	ListRecent(limit int) ([]*domain.Job, error)
	ListExpired(now time.Time) ([]*domain.Job, error)
	UpdateStage(id string, stage domain.Stage) error
	UpdateDone(j *domain.Job) error
	UpdateFailed(j *domain.Job) error
}
