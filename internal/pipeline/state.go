package pipeline

import "context"

// State is the append-only record threaded through the four stages. Each
// field is written by exactly one stage and read-only afterward. A State
// belongs to a single run; runs never share one.
type State struct {
	Decision   string // raw user input, set once at initialization
	Questions  string // clarify: probing questions
	Reframed   string // clarify: the reframed "real decision"
	Options    string // explore
	Challenges string // challenge
	Synthesis  string // synthesize
}

// Clarified reassembles the clarify stage's two fields into the combined
// text later stages and the renderer consume. When the response had no
// section marker, Questions holds the whole response and this returns it
// unchanged.
func (s State) Clarified() string {
	if s.Reframed == "" {
		return s.Questions
	}
	if s.Questions == "" {
		return realDecisionMarker + "\n" + s.Reframed
	}
	return s.Questions + "\n\n" + realDecisionMarker + "\n" + s.Reframed
}

// Invoker produces text for a prompt. Implementations degrade to sentinel
// strings instead of returning errors, so stage output is always usable.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) string
}
