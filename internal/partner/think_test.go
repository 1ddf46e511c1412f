package partner

import (
	"context"
	"strings"
	"testing"

	"decisionpartner/internal/tester"
)

type countingInvoker struct {
	calls int
}

func (c *countingInvoker) Invoke(ctx context.Context, prompt string) string {
	c.calls++
	switch {
	case strings.Contains(prompt, "USER'S DECISION:"):
		return "Q1\n\nTHE REAL DECISION:\nreframed"
	case strings.Contains(prompt, "Generate 3 alternatives"):
		return "options"
	case strings.Contains(prompt, "Identify 3 assumptions"):
		return "challenges"
	default:
		return "synthesis"
	}
}

func TestThinkEndToEnd(t *testing.T) {
	inv := &countingInvoker{}
	decision := "Should I take the job offer in another city?"
	doc := Think(context.Background(), inv, decision)

	tester.Eq(t, inv.calls, 4)
	tester.InOrder(t, doc,
		"## Your Decision",
		"## 01 — Clarify",
		"## 02 — Explore",
		"## 03 — Challenge",
		"## 04 — Synthesize",
	)
	tester.Contains(t, doc, "> "+decision)
}

func TestThinkGateRejectsShortInput(t *testing.T) {
	for _, decision := range []string{"", "   ", "short", "  nine ch "} {
		inv := &countingInvoker{}
		doc := Think(context.Background(), inv, decision)
		tester.Eq(t, doc, Guidance, decision)
		tester.Eq(t, inv.calls, 0, "no invocation for gated input")
	}
}

func TestThinkGateAcceptsExactMinimum(t *testing.T) {
	inv := &countingInvoker{}
	doc := Think(context.Background(), inv, " 1234567890 ")
	tester.True(t, doc != Guidance)
	tester.Eq(t, inv.calls, 4)
}
