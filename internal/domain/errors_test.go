package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := NewPipelineError(StageConcat, ErrorKindEncode, cause)

	assert.Equal(t, "concat stage failed (encode_failure): exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("job 42: %w", err)
	assert.Equal(t, ErrorKindEncode, KindOf(wrapped))
	assert.Equal(t, StageConcat, StageOf(wrapped))
}

func TestPipelineError_MissingToolIsEnvironment(t *testing.T) {
	err := NewPipelineError(StageDownload, ErrorKindDownload, fmt.Errorf("yt-dlp: %w", ErrToolNotFound))

	assert.Equal(t, ErrorKindEnvironment, err.Kind)
	assert.Equal(t, StageDownload, err.Stage)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Empty(t, KindOf(errors.New("plain")))
	assert.Empty(t, StageOf(nil))
}
