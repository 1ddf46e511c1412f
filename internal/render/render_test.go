package render

import (
	"testing"

	"decisionpartner/internal/pipeline"
	"decisionpartner/internal/tester"
)

func fullState() pipeline.State {
	return pipeline.State{
		Decision:   "Should I take the job offer in another city?",
		Questions:  "1. Why this city?\n2. Why now?",
		Reframed:   "Whether stability matters more than momentum.",
		Options:    "OPTION 1: STAY\n...",
		Challenges: "ASSUMPTION 1: ...",
		Synthesis:  "WHAT'S CLEARER NOW: ...",
	}
}

func TestDocumentSectionsInFixedOrder(t *testing.T) {
	doc := Document(fullState())
	tester.InOrder(t, doc,
		"## Your Decision",
		"## 01 — Clarify",
		"## 02 — Explore",
		"## 03 — Challenge",
		"## 04 — Synthesize",
		"The decision is yours.",
	)
	tester.Contains(t, doc, "> Should I take the job offer in another city?")
}

func TestDocumentIsDeterministic(t *testing.T) {
	st := fullState()
	tester.Eq(t, Document(st), Document(st))
}

func TestDocumentKeepsSentinelSectionsVerbatim(t *testing.T) {
	sentinel := "[Error: Could not connect. Please try again.]"
	st := pipeline.State{
		Decision:   "Some decision long enough to run.",
		Questions:  sentinel,
		Options:    sentinel,
		Challenges: sentinel,
		Synthesis:  sentinel,
	}
	doc := Document(st)
	tester.InOrder(t, doc,
		"## Your Decision",
		"## 01 — Clarify",
		"## 02 — Explore",
		"## 03 — Challenge",
		"## 04 — Synthesize",
	)
	tester.Contains(t, doc, sentinel)
}

func TestDocumentEmptyStateStillTotal(t *testing.T) {
	doc := Document(pipeline.State{})
	tester.InOrder(t, doc,
		"## Your Decision",
		"## 01 — Clarify",
		"## 02 — Explore",
		"## 03 — Challenge",
		"## 04 — Synthesize",
	)
}
