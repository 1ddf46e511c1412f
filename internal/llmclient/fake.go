package llmclient

import (
	"context"
	"strings"
)

// FakeClient returns deterministic canned text per prompt shape for
// offline runs and testing. It recognizes the pipeline's own prompts by
// their output-format instructions.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	// Keyed on instruction lines unique to each stage prompt; output-format
	// markers recur inside later prompts via the threaded state, so they
	// cannot discriminate.
	switch {
	case strings.Contains(prompt, "USER'S DECISION:"):
		return "PROBING QUESTIONS:\n" +
			"1. What would you regret not trying?\n" +
			"2. What is actually at stake for you?\n" +
			"3. What outcome are you quietly hoping for?\n\n" +
			"THE REAL DECISION:\n" +
			"Whether you trust yourself enough to act before you feel certain.", nil
	case strings.Contains(prompt, "Generate 3 alternatives"):
		return "OPTION 1: WAIT AND WATCH\nGive it one more quarter and set a review date.\n\n" +
			"OPTION 2: SMALL EXPERIMENT\nTry a low-cost trial version of the change first.\n\n" +
			"OPTION 3: FULL COMMIT\nDecide now and put supports in place for the downside.", nil
	case strings.Contains(prompt, "Identify 3 assumptions"):
		return "ASSUMPTION 1: \"The window is closing\"\n" +
			"What if the opposite were true? Opportunities like this recur more often than they appear to.\n\n" +
			"ASSUMPTION 2: \"Choosing wrong is irreversible\"\n" +
			"What if the opposite were true? Most paths allow course correction within a year.\n\n" +
			"ASSUMPTION 3: \"More information will settle it\"\n" +
			"What if the opposite were true? The missing piece may be commitment, not data.", nil
	default:
		return "WHAT'S CLEARER NOW:\nThe question is less about the external choice and more about tolerance for uncertainty.\n\n" +
			"THE CORE TENSION:\nSecurity now versus growth you cannot yet measure.\n\n" +
			"A QUESTION TO SIT WITH:\nIf both paths led somewhere good, which one would you be prouder to have walked?", nil
	}
}
