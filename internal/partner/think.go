// Package partner exposes the single entry point a UI calls.
package partner

import (
	"context"
	"strings"

	"decisionpartner/internal/pipeline"
	"decisionpartner/internal/render"
)

// MinDecisionLen is the minimum trimmed length of a usable decision.
const MinDecisionLen = 10

// Guidance is returned when the decision is too short to run. It is a
// validation gate, not a pipeline stage: no model call happens.
const Guidance = `### Enter a decision above

Share something you're wrestling with. Career, relationships, life transitions — whatever's on your mind.

The more context you give, the better the agents can help.`

// Think runs the full pipeline for one decision and returns the rendered
// document. Degradation arrives as sentinel text inside the document,
// never as an error.
func Think(ctx context.Context, llm pipeline.Invoker, decision string) string {
	if len(strings.TrimSpace(decision)) < MinDecisionLen {
		return Guidance
	}
	st := pipeline.NewRunner(llm).Run(ctx, decision)
	return render.Document(st)
}
