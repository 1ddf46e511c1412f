package pipeline

import (
	"testing"

	"decisionpartner/internal/tester"
)

func TestParseClarifySplitsOnMarker(t *testing.T) {
	text := "PROBING QUESTIONS:\n1. Why now?\n2. What's at stake?\n\n" +
		"THE REAL DECISION:\nWhether to trust the timing."
	d := parseClarify(text)
	tester.Eq(t, d.Questions, "PROBING QUESTIONS:\n1. Why now?\n2. What's at stake?")
	tester.Eq(t, d.Reframed, "Whether to trust the timing.")
}

func TestParseClarifyMissingMarkerKeepsWholeResponse(t *testing.T) {
	d := parseClarify("  just a blob of text with no sections  ")
	tester.Eq(t, d.Questions, "just a blob of text with no sections")
	tester.Eq(t, d.Reframed, "")
}

func TestParseClarifySentinelPassesThrough(t *testing.T) {
	sentinel := "[Error: Could not connect. Please try again.]"
	d := parseClarify(sentinel)
	tester.Eq(t, d.Questions, sentinel)
	tester.Eq(t, d.Reframed, "")
}

func TestClarifiedRoundTrip(t *testing.T) {
	st := State{Questions: "Q1\nQ2", Reframed: "The real thing."}
	tester.Eq(t, st.Clarified(), "Q1\nQ2\n\nTHE REAL DECISION:\nThe real thing.")

	st = State{Questions: "only a blob"}
	tester.Eq(t, st.Clarified(), "only a blob")

	st = State{Reframed: "only reframed"}
	tester.Eq(t, st.Clarified(), "THE REAL DECISION:\nonly reframed")
}
