package stocks

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds reported by the pipeline. Callers test them with errors.Is.
var (
	// ErrFileNotFound is returned when the input path does not exist. It also matches fs.ErrNotExist.
	ErrFileNotFound = fmt.Errorf("input file not found: %w", fs.ErrNotExist)
	// ErrParse is returned for malformed rows, dates or prices.
	ErrParse = errors.New("parse error")
	// ErrDuplicateKey is returned when the same (Date, Ticker) pair appears twice.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrEmptyData is returned when there is nothing left to analyze.
	ErrEmptyData = errors.New("empty data")
)

// Stage names a step of the report pipeline.
type Stage string

const (
	StageLoad    Stage = "load"
	StageReshape Stage = "reshape"
	StageAnalyze Stage = "analyze"
	StageRender  Stage = "render"
)

// StageError reports which stage of the pipeline failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s failed: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

// InStage wraps err into a StageError, nil stays nil.
func InStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
