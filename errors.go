package btrfind

import (
	"errors"
	"fmt"

	"github.com/btrfind/btrfind/btrieve"
)

var (
	// ErrPipelineClosed is returned when a Pipeline is used after Close.
	ErrPipelineClosed = errors.New("pipeline is closed")

	// ErrNoRecordSize reports that no record size has been detected or
	// configured. No function in this package returns it.
	ErrNoRecordSize = errors.New("record size has not been determined")

	// ErrCancelled marks a user cancellation: ClassifyErr maps any error
	// wrapping it to KindCancelled. No operation in this module returns it.
	ErrCancelled = errors.New("operation cancelled")
)

// ErrorKind is the closed taxonomy the CLI maps to process exit codes. It
// widens btrieve.ErrorKind with the two concerns that only exist above the
// core: bad configuration, and user cancellation.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindFile
	KindData
	KindConfig
	KindValidation
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindFile:
		return "file-error"
	case KindData:
		return "data-error"
	case KindConfig:
		return "config-error"
	case KindValidation:
		return "validation-error"
	case KindCancelled:
		return "cancelled"
	default:
		return "error"
	}
}

// ExitCode maps an ErrorKind to the process exit code the CLI reports.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindFile:
		return 2
	case KindData:
		return 3
	case KindConfig:
		return 4
	case KindValidation:
		return 5
	case KindCancelled:
		return 130
	default:
		return 1
	}
}

// PipelineError is the single structured error type this package surfaces
// above the core: a kind, the operation that failed, and the underlying
// cause.
type PipelineError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

func configErr(op string, err error) *PipelineError {
	return &PipelineError{Kind: KindConfig, Op: op, Err: err}
}

// ClassifyErr determines the ErrorKind a caller should map to an exit
// code. It recognizes *PipelineError directly, unwraps *btrieve.Error by
// its own Kind, and falls back to KindGeneric for anything else.
func ClassifyErr(err error) ErrorKind {
	if err == nil {
		return KindGeneric
	}

	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}

	var be *btrieve.Error
	if errors.As(err, &be) {
		switch be.Kind {
		case btrieve.KindFile:
			return KindFile
		case btrieve.KindData:
			return KindData
		case btrieve.KindValidation:
			return KindValidation
		}
	}

	if errors.Is(err, ErrCancelled) {
		return KindCancelled
	}

	return KindGeneric
}
