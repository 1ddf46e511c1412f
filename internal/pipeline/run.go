package pipeline

import (
	"context"
	"strings"
)

// Runner executes the four stages as an unconditional chain:
// Clarify, Explore, Challenge, Synthesize. Each stage's delta is fully
// merged into the state before the next stage starts.
type Runner struct {
	LLM Invoker
}

func NewRunner(llm Invoker) *Runner { return &Runner{LLM: llm} }

// Run threads a fresh State through the chain and returns the final
// merged state. It never fails: degraded stages carry sentinel text.
func (r *Runner) Run(ctx context.Context, decision string) State {
	st := State{Decision: strings.TrimSpace(decision)}
	em := EmitterFrom(ctx)

	em.EmitProgress("clarify", 20, "Clarifying...")
	(&Clarify{LLM: r.LLM}).Run(ctx, st).apply(&st)

	em.EmitProgress("explore", 40, "Exploring options...")
	(&Explore{LLM: r.LLM}).Run(ctx, st).apply(&st)

	em.EmitProgress("challenge", 60, "Challenging assumptions...")
	(&Challenge{LLM: r.LLM}).Run(ctx, st).apply(&st)

	em.EmitProgress("synthesize", 80, "Synthesizing...")
	(&Synthesize{LLM: r.LLM}).Run(ctx, st).apply(&st)

	em.EmitProgress("done", 100, "Done")
	return st
}
