package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusRunning JobStatus = "running"
	JobStatusDone    JobStatus = "done"
	JobStatusFailed  JobStatus = "failed"
)

// Job is one merge request submitted through the web UI.
type Job struct {
	ID            string       `json:"id"`
	URL1          string       `json:"url1"`
	URL2          string       `json:"url2"`
	CookiesPath   string       `json:"-"`
	ForceReencode bool         `json:"force_reencode"`
	Status        JobStatus    `json:"status"`
	Stage         Stage        `json:"stage,omitempty"`
	Method        ConcatMethod `json:"method,omitempty"`
	FellBack      bool         `json:"fell_back"`
	OutputPath    string       `json:"-"`
	FileSize      int64        `json:"file_size,omitempty"`
	ErrorKind     ErrorKind    `json:"error_kind,omitempty"`
	ErrorMessage  string       `json:"error_message,omitempty"`
	Attempts      int64        `json:"attempts"`
	CreatedAt     time.Time    `json:"created_at"`
	StartedAt     sql.NullTime `json:"-"`
	CompletedAt   sql.NullTime `json:"-"`
	ExpiresAt     time.Time    `json:"expires_at"`
}

func NewJob(url1, url2, cookiesPath string, forceReencode bool, retention time.Duration) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:            uuid.NewString(),
		URL1:          url1,
		URL2:          url2,
		CookiesPath:   cookiesPath,
		ForceReencode: forceReencode,
		Status:        JobStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(retention),
	}
}

func (j *Job) IsExpired() bool {
	return time.Now().After(j.ExpiresAt)
}

func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusDone || j.Status == JobStatusFailed
}

func (j *Job) MarkAsDone(result *MergeResult, fileSize int64) {
	j.Status = JobStatusDone
	j.Stage = StageDone
	j.Method = result.Method
	j.FellBack = result.FellBack
	j.OutputPath = result.OutputPath
	j.FileSize = fileSize
	j.ErrorKind = ""
	j.ErrorMessage = ""
}

func (j *Job) MarkAsFailed(err error) {
	j.Status = JobStatusFailed
	j.ErrorMessage = err.Error()
	if kind := KindOf(err); kind != "" {
		j.ErrorKind = kind
	}
	if stage := StageOf(err); stage != "" {
		j.Stage = stage
	}
}
