package main

import (
	"context"
	"net/http"
	"strings"

	"decisionpartner/internal/partner"
	"decisionpartner/internal/pipeline"
)

// handleThink starts one pipeline run and returns its id. The run itself
// proceeds in the background; progress is observable via the watch
// endpoints and the document via /api/runs/{run_id}.
func (s *apiServer) handleThink(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Decision string `json:"decision"`
	}
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	ru := newRun()
	s.runs.Set(ru.ID, ru)

	go func() {
		ctx := pipeline.WithEmitter(context.Background(), &pipeline.ChannelEmitter{Ch: ru.Events})
		doc := partner.Think(ctx, s.llm, in.Decision)
		ru.finish(doc)
	}()

	writeJSON(w, http.StatusOK, map[string]string{"run_id": ru.ID})
}

// handleRunResult returns the finished document for a run.
func (s *apiServer) handleRunResult(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	if id == "" {
		http.Error(w, "run_id required", http.StatusBadRequest)
		return
	}
	ru, ok := s.runs.Get(id)
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	doc, done := ru.result()
	if !done {
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "running"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"document": doc})
}
