// Package templates holds the HTML components of the web UI.
//
// Components live in the .templ files; the *_templ.go files are generated
// with `templ generate` and committed.
package templates

import (
	"context"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/bnema/vidmerge/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// IndexData fills the merge form. Field values are echoed back after a
// validation error.
type IndexData struct {
	CSRFToken     string
	Error         string
	URL1          string
	URL2          string
	CookiesPath   string
	ForceReencode bool
	Jobs          []*domain.Job
}

var progressStages = []domain.Stage{
	domain.StageEnvironment,
	domain.StageDownload,
	domain.StageProbe,
	domain.StagePlan,
	domain.StageConcat,
}

var stageLabels = map[domain.Stage]string{
	domain.StageEnvironment: "Check tools",
	domain.StageDownload:    "Download",
	domain.StageProbe:       "Probe",
	domain.StagePlan:        "Plan",
	domain.StageConcat:      "Concatenate",
	domain.StageDone:        "Done",
}

// RenderString renders c into a string, for SSE payloads.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ShortID is the leading part of a job ID shown in titles and file names.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func jobPath(id string) string {
	return "/jobs/" + id
}

// DownloadPath is where the merged file of a finished job is served.
func DownloadPath(id string) string {
	return jobPath(id) + "/download"
}

// stageClass marks the stages before current as done. Nothing is marked
// while the job has not started a stage yet.
func stageClass(current domain.Stage, i int) string {
	idx := slices.Index(progressStages, current)
	switch {
	case idx < 0:
		return "todo"
	case i < idx:
		return "done"
	case i == idx:
		return "current"
	}
	return "todo"
}

func statusLabel(job *domain.Job) string {
	switch job.Status {
	case domain.JobStatusPending:
		return "Queued"
	case domain.JobStatusRunning:
		if label, ok := stageLabels[job.Stage]; ok {
			return "Running: " + label
		}
		return "Running"
	case domain.JobStatusDone:
		return "Done"
	case domain.JobStatusFailed:
		return "Failed"
	}
	return string(job.Status)
}

func methodLabel(job *domain.Job) string {
	switch job.Method {
	case domain.MethodStreamCopy:
		return "Joined without re-encoding."
	case domain.MethodReencode:
		if job.FellBack {
			return "Re-encoded after the stream copy failed."
		}
		return "Re-encoded to a common format."
	}
	return ""
}

func kindLabel(kind domain.ErrorKind) string {
	return strings.ToUpper(string(kind))
}
