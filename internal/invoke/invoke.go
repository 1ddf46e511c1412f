package invoke

import (
	"context"
	"fmt"
	"strings"

	"decisionpartner/internal/config"
	"decisionpartner/internal/llmclient"
)

// Sentinels are ordinary string values, not errors. They flow through the
// pipeline like model output and are rendered verbatim.
const (
	MissingTokenSentinel = "[Error: HF_TOKEN not set. Export it in your environment.]"
	ExhaustionSentinel   = "[Error: Could not connect. Please try again.]"
)

// Attempt records the outcome of one candidate try.
type Attempt struct {
	Candidate string
	Err       error
}

// Invoker tries an ordered list of chat backends and degrades to sentinel
// text instead of failing. Invoke never returns an error.
type Invoker struct {
	token   string
	clients []llmclient.ChatClient
}

// New builds one client per configured candidate. Unknown providers are a
// construction error; a missing credential is not.
func New(ctx context.Context, cfg config.Config, mws ...Middleware) (*Invoker, error) {
	iv := &Invoker{token: cfg.Token}
	for _, cand := range cfg.Candidates {
		var cli llmclient.ChatClient
		switch cand.Provider {
		case "router", "":
			cli = llmclient.NewRouterClient(cfg.Token, cand.Model, cfg.BaseURL, cfg.MaxTokens, cfg.Temperature)
		case "gemini":
			g, err := llmclient.NewGeminiClient(ctx, cfg.GeminiKey, cand.Model, cfg.MaxTokens, cfg.Temperature)
			if err != nil {
				return nil, fmt.Errorf("invoke: gemini candidate %s: %w", cand.Model, err)
			}
			cli = g
		default:
			return nil, fmt.Errorf("invoke: unknown provider %q", cand.Provider)
		}
		iv.clients = append(iv.clients, Wrap(cli, mws...))
	}
	return iv, nil
}

// NewWithClients wires pre-built clients, mainly for tests and fake mode.
func NewWithClients(token string, clients ...llmclient.ChatClient) *Invoker {
	return &Invoker{token: token, clients: clients}
}

// Invoke tries each candidate once, in order. First non-empty response
// wins. On exhaustion the result is a sentinel folded from the recorded
// attempts.
func (iv *Invoker) Invoke(ctx context.Context, prompt string) string {
	if iv.token == "" {
		return MissingTokenSentinel
	}
	attempts := make([]Attempt, 0, len(iv.clients))
	for _, cli := range iv.clients {
		text, err := cli.Complete(ctx, prompt)
		if err != nil {
			attempts = append(attempts, Attempt{Candidate: cli.Name(), Err: err})
			continue
		}
		return strings.TrimSpace(text)
	}
	return foldSentinel(attempts)
}

// Close releases all candidate clients.
func (iv *Invoker) Close() error {
	var first error
	for _, cli := range iv.clients {
		if err := cli.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// foldSentinel reduces the attempt list to one user-visible string,
// embedding the last observed failure.
func foldSentinel(attempts []Attempt) string {
	var last Attempt
	for _, a := range attempts {
		if a.Err != nil {
			last = a
		}
	}
	if last.Err == nil {
		return ExhaustionSentinel
	}
	return fmt.Sprintf("[Error: all models unavailable; last failure (%s): %v]", last.Candidate, last.Err)
}
