package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidmerge/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *JobQueue) {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, NewJobQueue(store)
}

func enqueue(t *testing.T, q *JobQueue, url1 string, createdAt time.Time) *domain.Job {
	t.Helper()
	j := domain.NewJob(url1, "https://x.com/b/status/2", "", false, time.Hour)
	j.CreatedAt = createdAt
	j.ExpiresAt = createdAt.Add(time.Hour)
	require.NoError(t, q.Enqueue(j))
	return j
}

func TestStore_EnqueueAndGet(t *testing.T) {
	store, q := newTestStore(t)

	j := domain.NewJob("https://x.com/a/status/1", "https://x.com/b/status/2", "/tmp/cookies.txt", true, 24*time.Hour)
	require.NoError(t, q.Enqueue(j))

	got, err := store.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, j.ID, got.ID)
	assert.Equal(t, j.URL1, got.URL1)
	assert.Equal(t, j.URL2, got.URL2)
	assert.Equal(t, "/tmp/cookies.txt", got.CookiesPath)
	assert.True(t, got.ForceReencode)
	assert.Equal(t, domain.JobStatusPending, got.Status)
	assert.Equal(t, j.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
	assert.Equal(t, j.ExpiresAt.UnixNano(), got.ExpiresAt.UnixNano())
	assert.False(t, got.StartedAt.Valid)
	assert.False(t, got.CompletedAt.Valid)
}

func TestStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Get("missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestJobQueue_ClaimOrder(t *testing.T) {
	_, q := newTestStore(t)
	base := time.Now().UTC().Add(-time.Minute)

	second := enqueue(t, q, "https://x.com/a/status/20", base.Add(2*time.Second))
	first := enqueue(t, q, "https://x.com/a/status/10", base)

	claimed, err := q.Claim()
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, domain.JobStatusRunning, claimed.Status)
	assert.Equal(t, int64(1), claimed.Attempts)
	assert.True(t, claimed.StartedAt.Valid)

	claimed, err = q.Claim()
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, second.ID, claimed.ID)

	claimed, err = q.Claim()
	require.NoError(t, err)
	assert.Nil(t, claimed, "queue should be empty")
}

func TestJobQueue_ResetStalled(t *testing.T) {
	store, q := newTestStore(t)
	j := enqueue(t, q, "https://x.com/a/status/1", time.Now().UTC())

	_, err := q.Claim()
	require.NoError(t, err)
	require.NoError(t, store.UpdateStage(j.ID, domain.StageDownload))

	require.NoError(t, q.ResetStalled())

	got, err := store.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, got.Status)
	assert.Empty(t, got.Stage)

	again, err := q.Claim()
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, int64(2), again.Attempts)
}

func TestStore_UpdateDone(t *testing.T) {
	store, q := newTestStore(t)
	j := enqueue(t, q, "https://x.com/a/status/1", time.Now().UTC())

	j.MarkAsDone(&domain.MergeResult{
		OutputPath: "/data/jobs/x/merged.mp4",
		Method:     domain.MethodReencode,
		FellBack:   true,
		Success:    true,
	}, 4096)
	require.NoError(t, store.UpdateDone(j))
	assert.True(t, j.CompletedAt.Valid)

	got, err := store.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusDone, got.Status)
	assert.Equal(t, domain.StageDone, got.Stage)
	assert.Equal(t, domain.MethodReencode, got.Method)
	assert.True(t, got.FellBack)
	assert.Equal(t, "/data/jobs/x/merged.mp4", got.OutputPath)
	assert.Equal(t, int64(4096), got.FileSize)
	assert.True(t, got.CompletedAt.Valid)
}

func TestStore_UpdateFailed(t *testing.T) {
	store, q := newTestStore(t)
	j := enqueue(t, q, "https://x.com/a/status/1", time.Now().UTC())

	j.MarkAsFailed(domain.NewPipelineError(domain.StageDownload, domain.ErrorKindDownload, errors.New("private tweet")))
	require.NoError(t, store.UpdateFailed(j))

	got, err := store.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, got.Status)
	assert.Equal(t, domain.StageDownload, got.Stage)
	assert.Equal(t, domain.ErrorKindDownload, got.ErrorKind)
	assert.Contains(t, got.ErrorMessage, "private tweet")
}

func TestStore_UpdateUnknownJob(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.UpdateStage("nope", domain.StageProbe), domain.ErrNotFound)
	assert.ErrorIs(t, store.UpdateDone(&domain.Job{ID: "nope"}), domain.ErrNotFound)
}

func TestStore_ListRecentAndExpired(t *testing.T) {
	store, q := newTestStore(t)
	now := time.Now().UTC()

	old := enqueue(t, q, "https://x.com/a/status/1", now.Add(-3*time.Hour))
	mid := enqueue(t, q, "https://x.com/a/status/2", now.Add(-2*time.Hour))
	fresh := enqueue(t, q, "https://x.com/a/status/3", now)

	recent, err := store.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, fresh.ID, recent[0].ID)
	assert.Equal(t, mid.ID, recent[1].ID)

	// pending jobs never expire, even past their deadline
	expired, err := store.ListExpired(now)
	require.NoError(t, err)
	assert.Empty(t, expired)

	old.MarkAsFailed(errors.New("boom"))
	require.NoError(t, store.UpdateFailed(old))
	mid.MarkAsDone(&domain.MergeResult{OutputPath: "/tmp/m.mp4", Method: domain.MethodStreamCopy}, 1)
	require.NoError(t, store.UpdateDone(mid))

	expired, err = store.ListExpired(now)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, old.ID, expired[0].ID)
	assert.Equal(t, mid.ID, expired[1].ID)

	require.NoError(t, store.Delete(old.ID))
	_, err = store.Get(old.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
