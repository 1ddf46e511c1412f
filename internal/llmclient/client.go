package llmclient

import (
	"context"
	"errors"
)

// ChatClient is a single chat-completion backend. One call, one answer;
// fallback across backends is the caller's concern.
type ChatClient interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}

var ErrEmptyResponse = errors.New("empty response from model")

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
