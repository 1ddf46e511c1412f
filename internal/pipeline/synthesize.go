package pipeline

import (
	"context"
	"fmt"
)

const promptSynthesize = `You compile insights WITHOUT telling them what to choose.

CRITICAL: Never say "you should" or "I recommend." End with a question, not advice.

DECISION: %s
REFRAMED: %s
OPTIONS: %s
CHALLENGES: %s

Respond with:

WHAT'S CLEARER NOW:
[2-3 paragraphs synthesizing the key insights]

THE CORE TENSION:
[One sentence capturing what this really comes down to]

A QUESTION TO SIT WITH:
[One powerful question to help them move forward]`

// Synthesize compiles the run into insight without issuing a
// recommendation.
// Input: Decision, Clarified, Options, Challenges. Output: Synthesis.
type Synthesize struct{ LLM Invoker }

type SynthesizeDelta struct {
	Synthesis string
}

func (d SynthesizeDelta) apply(s *State) { s.Synthesis = d.Synthesis }

func (p *Synthesize) Run(ctx context.Context, st State) SynthesizeDelta {
	resp := p.LLM.Invoke(ctx, fmt.Sprintf(promptSynthesize, st.Decision, st.Clarified(), st.Options, st.Challenges))
	return SynthesizeDelta{Synthesis: resp}
}
