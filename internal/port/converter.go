package port

import (
	"context"

	"github.com/bnema/vidmerge/internal/domain"
)

type MediaConverter interface {
	Probe(ctx context.Context, inputPath string) (*domain.MediaProfile, error)
	ConcatCopy(ctx context.Context, inputPaths []string, outputPath string) error
	ConcatReencode(ctx context.Context, inputs []domain.MediaProfile, outputPath string, target domain.EncodeTarget, settings domain.EncodeSettings) error
}
