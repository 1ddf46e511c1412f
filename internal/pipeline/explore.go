package pipeline

import (
	"context"
	"fmt"
)

const promptExplore = `You help people see options they haven't considered.

ORIGINAL: %s
REFRAMED: %s

Generate 3 alternatives they might have missed. Be creative but realistic.

Respond with:

OPTION 1: [NAME]
[2 sentences on what this looks like and why it might work]

OPTION 2: [NAME]
[2 sentences on what this looks like and why it might work]

OPTION 3: [NAME]
[2 sentences on what this looks like and why it might work]`

// Explore generates alternatives the user might have missed.
// Input: Decision, Clarified. Output: Options.
type Explore struct{ LLM Invoker }

type ExploreDelta struct {
	Options string
}

func (d ExploreDelta) apply(s *State) { s.Options = d.Options }

func (p *Explore) Run(ctx context.Context, st State) ExploreDelta {
	resp := p.LLM.Invoke(ctx, fmt.Sprintf(promptExplore, st.Decision, st.Clarified()))
	return ExploreDelta{Options: resp}
}
