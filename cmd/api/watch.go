package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"decisionpartner/internal/pipeline"
)

type watchEvent struct {
	Stage    string `json:"stage,omitempty"`
	Progress int32  `json:"progress"`
	Message  string `json:"message,omitempty"`
	Done     bool   `json:"done,omitempty"`
}

func toWatchEvent(ev pipeline.Event) watchEvent {
	return watchEvent{
		Stage:    ev.Stage,
		Progress: ev.Progress,
		Message:  ev.Message,
		Done:     ev.Type == pipeline.EventTypeComplete,
	}
}

// handleWatchSSE streams stage progress for a run as Server-Sent Events.
func (s *apiServer) handleWatchSSE(w http.ResponseWriter, r *http.Request) {
	// Extract run_id from path: /api/watch/{run_id}
	runID := strings.TrimPrefix(r.URL.Path, "/api/watch/")
	if runID == "" {
		http.Error(w, "run_id required", http.StatusBadRequest)
		return
	}
	ru, ok := s.runs.Get(runID)
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ru.Events:
			if !ok {
				fmt.Fprintf(w, "event: close\ndata: {}\n\n")
				flusher.Flush()
				return
			}
			payload, _ := json.Marshal(toWatchEvent(event))
			fmt.Fprintf(w, "event: progress\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
