package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrExpired         = errors.New("job output has expired")
	ErrJobNotDone      = errors.New("job is not done")
	ErrNoVideoStream   = errors.New("no video stream found")
	ErrNotEnoughInputs = errors.New("at least 2 inputs are required")
	ErrToolNotFound    = errors.New("external tool not found")
)

// ErrorKind classifies a pipeline failure for callers (CLI exit codes, job records).
type ErrorKind string

const (
	ErrorKindEnvironment ErrorKind = "environment"
	ErrorKindDownload    ErrorKind = "download_failure"
	ErrorKindEncode      ErrorKind = "encode_failure"
)

type Stage string

const (
	StageEnvironment Stage = "environment"
	StageDownload    Stage = "download"
	StageProbe       Stage = "probe"
	StagePlan        Stage = "plan"
	StageConcat      Stage = "concat"
	StageDone        Stage = "done"
)

// PipelineError names the stage that failed and the kind of failure.
type PipelineError struct {
	Stage Stage
	Kind  ErrorKind
	Err   error
}

func NewPipelineError(stage Stage, kind ErrorKind, err error) *PipelineError {
	// A binary that vanished between the environment check and the call is
	// still an environment problem.
	if errors.Is(err, ErrToolNotFound) {
		kind = ErrorKindEnvironment
	}
	return &PipelineError{Stage: stage, Kind: kind, Err: err}
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s stage failed (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a PipelineError.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// StageOf returns the failing Stage carried by err, or "".
func StageOf(err error) Stage {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Stage
	}
	return ""
}
