// Package prompt builds the grounding system instruction for the portfolio assistant.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-assistant/internal/profile"
)

const preamble = `You are %[1]s's friendly and professional portfolio assistant.
Your goal is to answer questions about %[1]s based on the information provided below.
Be helpful and concise. If a question is outside the scope of this portfolio, politely state that you can only answer questions about %[1]s's professional background.

Here is %[1]s's portfolio information:
`

// Build returns the system instruction: the persona preamble followed by the
// complete skills and timeline data rendered as indented JSON.
// The same profile always yields the same string.
func Build(p *profile.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, preamble, p.Owner)

	b.WriteString("\nSKILLS:\n")
	b.WriteString(render(p.Skills))

	b.WriteString("\n\nEXPERIENCE & EDUCATION:\n")
	b.WriteString(render(p.Timeline))
	b.WriteString("\n")

	return b.String()
}

// render marshals plain data structs, which cannot fail.
// HTML escaping is off so labels like "AI & Robotics" stay readable to the model.
func render(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("prompt: could not render reference data: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
