package main

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"decisionpartner/internal/pipeline"
)

// run tracks one in-flight or finished pipeline run.
type run struct {
	ID     string
	Events chan pipeline.Event

	mu       sync.RWMutex
	document string
	done     bool
}

func newRun() *run {
	return &run{
		ID:     newRunID(),
		Events: make(chan pipeline.Event, 16),
	}
}

// finish publishes the rendered document, signals completion to any
// watcher, and closes the event channel.
func (r *run) finish(document string) {
	r.mu.Lock()
	r.document = document
	r.done = true
	r.mu.Unlock()

	select {
	case r.Events <- pipeline.Event{Type: pipeline.EventTypeComplete, Progress: 100, Message: "Done"}:
	default:
	}
	close(r.Events)
}

// result returns the document once the run has completed.
func (r *run) result() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.document, r.done
}

func newRunID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
