package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures so boundary components can map them
// to the uniform response without inspecting error strings.
type ErrorKind string

const (
	ErrNetwork          ErrorKind = "network"
	ErrBadStatus        ErrorKind = "bad_status"
	ErrIO               ErrorKind = "io"
	ErrMalformedPayload ErrorKind = "malformed_payload"
)

// PipelineError wraps an underlying failure with its kind and the operation
// that produced it.
type PipelineError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewNetworkError(op string, err error) *PipelineError {
	return &PipelineError{Kind: ErrNetwork, Op: op, Err: err}
}

func NewBadStatusError(op string, statusCode int, body string) *PipelineError {
	return &PipelineError{
		Kind: ErrBadStatus,
		Op:   op,
		Err:  fmt.Errorf("unexpected status code %d: %s", statusCode, body),
	}
}

func NewIOError(op string, err error) *PipelineError {
	return &PipelineError{Kind: ErrIO, Op: op, Err: err}
}

func NewMalformedPayloadError(op, reason string) *PipelineError {
	return &PipelineError{Kind: ErrMalformedPayload, Op: op, Err: errors.New(reason)}
}

// KindOf returns the ErrorKind carried by err, or empty when err is not a
// PipelineError.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
