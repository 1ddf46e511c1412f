package pipeline

import (
	"context"
	"fmt"
	"strings"
)

const promptClarify = `You help people discover what they're REALLY deciding.

The surface decision often hides a deeper one. "Should I take this job?" might really be "Do I trust myself to handle change?"

USER'S DECISION: %s

Respond with:

PROBING QUESTIONS:
1. [First question that digs deeper]
2. [Second question about what's really at stake]
3. [Third question about underlying fears or hopes]

THE REAL DECISION:
[2-3 sentences reframing what they're actually deciding]`

// realDecisionMarker splits the clarify response into its two declared
// sections. The prompt instructs the model to emit it literally.
const realDecisionMarker = "THE REAL DECISION:"

// Clarify surfaces what the user is really deciding.
// Input: Decision. Output: Questions, Reframed.
type Clarify struct{ LLM Invoker }

// ClarifyDelta carries the clarify stage's fields only.
type ClarifyDelta struct {
	Questions string
	Reframed  string
}

func (d ClarifyDelta) apply(s *State) {
	s.Questions = d.Questions
	s.Reframed = d.Reframed
}

func (p *Clarify) Run(ctx context.Context, st State) ClarifyDelta {
	resp := p.LLM.Invoke(ctx, fmt.Sprintf(promptClarify, st.Decision))
	return parseClarify(resp)
}

// parseClarify splits on the section marker. When the marker is absent
// (a degraded or off-format response, including sentinels), the whole
// text lands in Questions and Reframed stays empty.
func parseClarify(text string) ClarifyDelta {
	before, after, ok := strings.Cut(text, realDecisionMarker)
	if !ok {
		return ClarifyDelta{Questions: strings.TrimSpace(text)}
	}
	return ClarifyDelta{
		Questions: strings.TrimSpace(before),
		Reframed:  strings.TrimSpace(after),
	}
}
