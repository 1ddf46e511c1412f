package pipeline

import (
	"context"
	"fmt"
)

const promptChallenge = `You test assumptions respectfully. You're a thinking partner, not a critic.

DECISION: %s
REFRAMED: %s
OPTIONS: %s

Identify 3 assumptions and challenge each.

Respond with:

ASSUMPTION 1: "[What they assume]"
What if the opposite were true? [Explore this]

ASSUMPTION 2: "[What they assume]"
What if the opposite were true? [Explore this]

ASSUMPTION 3: "[What they assume]"
What if the opposite were true? [Explore this]`

// Challenge tests the assumptions behind the decision and its options.
// Input: Decision, Clarified, Options. Output: Challenges.
type Challenge struct{ LLM Invoker }

type ChallengeDelta struct {
	Challenges string
}

func (d ChallengeDelta) apply(s *State) { s.Challenges = d.Challenges }

func (p *Challenge) Run(ctx context.Context, st State) ChallengeDelta {
	resp := p.LLM.Invoke(ctx, fmt.Sprintf(promptChallenge, st.Decision, st.Clarified(), st.Options))
	return ChallengeDelta{Challenges: resp}
}
