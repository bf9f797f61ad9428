package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewJob(t *testing.T) {
	job := NewJob("https://x.com/a/status/1", "https://x.com/b/status/2", "", true, 24*time.Hour)

	assert.Len(t, job.ID, 36, "ID should be a UUID")
	assert.Equal(t, JobStatusPending, job.Status)
	assert.True(t, job.ForceReencode)
	assert.WithinDuration(t, job.CreatedAt.Add(24*time.Hour), job.ExpiresAt, time.Second)
	assert.False(t, job.IsExpired())
	assert.False(t, job.IsTerminal())
}

func TestJob_IsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiration", time.Now().Add(time.Hour), false},
		{"past expiration", time.Now().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &Job{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, job.IsExpired())
		})
	}
}

func TestJob_MarkAsDone(t *testing.T) {
	job := NewJob("u1", "u2", "", false, time.Hour)
	job.ErrorMessage = "stale"

	job.MarkAsDone(&MergeResult{OutputPath: "/out.mp4", Method: MethodReencode, FellBack: true}, 2048)

	assert.Equal(t, JobStatusDone, job.Status)
	assert.Equal(t, StageDone, job.Stage)
	assert.Equal(t, MethodReencode, job.Method)
	assert.True(t, job.FellBack)
	assert.Equal(t, "/out.mp4", job.OutputPath)
	assert.Equal(t, int64(2048), job.FileSize)
	assert.Empty(t, job.ErrorMessage)
	assert.True(t, job.IsTerminal())
}

func TestJob_MarkAsFailed(t *testing.T) {
	t.Run("pipeline error carries kind and stage", func(t *testing.T) {
		job := NewJob("u1", "u2", "", false, time.Hour)
		job.MarkAsFailed(NewPipelineError(StageDownload, ErrorKindDownload, errors.New("HTTP Error 404")))

		assert.Equal(t, JobStatusFailed, job.Status)
		assert.Equal(t, ErrorKindDownload, job.ErrorKind)
		assert.Equal(t, StageDownload, job.Stage)
		assert.Contains(t, job.ErrorMessage, "HTTP Error 404")
	})

	t.Run("plain error keeps stage", func(t *testing.T) {
		job := NewJob("u1", "u2", "", false, time.Hour)
		job.Stage = StageProbe
		job.MarkAsFailed(errors.New("boom"))

		assert.Equal(t, StageProbe, job.Stage)
		assert.Empty(t, job.ErrorKind)
	})
}
