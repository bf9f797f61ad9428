package port

import "github.com/bnema/vidmerge/internal/domain"

type JobQueue interface {
	Enqueue(job *domain.Job) error
	Claim() (*domain.Job, error)
	ResetStalled() error
}
