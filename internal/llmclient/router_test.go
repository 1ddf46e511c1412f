package llmclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"decisionpartner/internal/tester"
)

func TestRouterCompleteRequestShape(t *testing.T) {
	var got chatReq
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		tester.NoErr(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  hello world  "}}]}`))
	}))
	defer srv.Close()

	c := NewRouterClient("secret", "test/model", srv.URL, 1024, 0.7)
	text, err := c.Complete(context.Background(), "the prompt")
	tester.NoErr(t, err)
	tester.Eq(t, text, "hello world")
	tester.Eq(t, auth, "Bearer secret")
	tester.Eq(t, got.Model, "test/model")
	tester.Eq(t, got.MaxTokens, 1024)
	tester.Eq(t, len(got.Messages), 1)
	tester.Eq(t, got.Messages[0].Role, "user")
	tester.Eq(t, got.Messages[0].Content, "the prompt")
}

func TestRouterCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewRouterClient("secret", "m", srv.URL, 0, 0)
	_, err := c.Complete(context.Background(), "p")
	tester.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestRouterCompleteBlankContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	}))
	defer srv.Close()

	c := NewRouterClient("secret", "m", srv.URL, 0, 0)
	_, err := c.Complete(context.Background(), "p")
	tester.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestRouterCompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewRouterClient("secret", "m", srv.URL, 0, 0)
	_, err := c.Complete(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error on 503")
	}
	tester.Contains(t, err.Error(), "503")
}

func TestRouterCompleteContextLengthIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"context_length_exceeded"}}`))
	}))
	defer srv.Close()

	c := NewRouterClient("secret", "m", srv.URL, 0, 0)
	_, err := c.Complete(context.Background(), "p")
	var pErr *PermanentError
	tester.True(t, errors.As(err, &pErr), "permanent error expected")
}

func TestFakeClientCoversAllStages(t *testing.T) {
	f := NewFakeClient()
	clarify, err := f.Complete(context.Background(), "USER'S DECISION: something hard")
	tester.NoErr(t, err)
	tester.Contains(t, clarify, "THE REAL DECISION:")

	options, _ := f.Complete(context.Background(), "Generate 3 alternatives they might have missed.")
	tester.Contains(t, options, "OPTION 3:")

	challenges, _ := f.Complete(context.Background(), "Identify 3 assumptions and challenge each.")
	tester.Contains(t, challenges, "ASSUMPTION 3:")

	synthesis, _ := f.Complete(context.Background(), "anything else")
	tester.Contains(t, synthesis, "A QUESTION TO SIT WITH:")
}
