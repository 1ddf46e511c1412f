package invoke

import (
	"context"
	"log"
	"time"

	"decisionpartner/internal/llmclient"
)

// Middleware decorates a ChatClient with cross-cutting concerns.
// Retries are deliberately absent: each candidate gets exactly one attempt.
type Middleware func(llmclient.ChatClient) llmclient.ChatClient

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner llmclient.ChatClient, mws ...Middleware) llmclient.ChatClient {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// Logging logs each attempt with its duration and outcome.
func Logging() Middleware {
	return func(next llmclient.ChatClient) llmclient.ChatClient {
		return &logged{next: next}
	}
}

type logged struct {
	next llmclient.ChatClient
}

func (c *logged) Name() string { return c.next.Name() }
func (c *logged) Close() error { return c.next.Close() }

func (c *logged) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := c.next.Complete(ctx, prompt)
	if err != nil {
		log.Printf("llm %s failed after %s: %v", c.next.Name(), time.Since(start).Round(time.Millisecond), err)
		return "", err
	}
	log.Printf("llm %s ok in %s (%d bytes)", c.next.Name(), time.Since(start).Round(time.Millisecond), len(text))
	return text, nil
}
