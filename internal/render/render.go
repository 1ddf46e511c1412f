// Package render projects a finished pipeline state into one markdown
// document. It is purely structural: every section is emitted in fixed
// order whether its field holds model output or sentinel text.
package render

import (
	"strings"

	"decisionpartner/internal/pipeline"
)

const (
	headerDecision   = "## Your Decision"
	headerClarify    = "## 01 — Clarify"
	headerExplore    = "## 02 — Explore"
	headerChallenge  = "## 03 — Challenge"
	headerSynthesize = "## 04 — Synthesize"

	epilogue = "*This isn't advice. It's a mirror for your thinking.*\nThe decision is yours."
)

// Document formats the final state for display.
func Document(st pipeline.State) string {
	var b strings.Builder
	b.WriteString("---\n\n")
	b.WriteString(headerDecision + "\n\n")
	b.WriteString("> " + st.Decision + "\n\n")
	section(&b, headerClarify, st.Clarified())
	section(&b, headerExplore, st.Options)
	section(&b, headerChallenge, st.Challenges)
	section(&b, headerSynthesize, st.Synthesis)
	b.WriteString("---\n\n")
	b.WriteString(epilogue + "\n")
	return b.String()
}

func section(b *strings.Builder, header, body string) {
	b.WriteString("---\n\n")
	b.WriteString(header + "\n\n")
	b.WriteString(body + "\n\n")
}
