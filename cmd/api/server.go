package main

import (
	"encoding/json"
	"net/http"
	"time"

	"decisionpartner/internal/cache/memory"
	"decisionpartner/internal/pipeline"
)

// apiServer wires HTTP handlers around one shared invoker. Each run owns
// its own pipeline state; the invoker itself is read-only and safe to
// share.
type apiServer struct {
	llm  pipeline.Invoker
	runs *memory.Store[string, *run]
}

func newAPIServer(llm pipeline.Invoker) *apiServer {
	return &apiServer{
		llm:  llm,
		runs: memory.NewStore[string, *run](128, time.Hour),
	}
}

func buildMux(s *apiServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/think", s.handleThink)
	mux.HandleFunc("/api/runs/", s.handleRunResult)

	// SSE and websocket endpoints for watching runs
	mux.HandleFunc("/api/watch/", s.handleWatchSSE)
	mux.HandleFunc("/api/ws/watch", s.handleWatchWS)

	return mux
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
