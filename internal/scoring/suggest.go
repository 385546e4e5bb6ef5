package scoring

import (
	"fmt"
	"strings"
)

// HeadlineSuggestions returns three headline templates. A non-blank current
// headline is kept verbatim in every template.
func HeadlineSuggestions(current string) []string {
	current = strings.TrimSpace(current)
	if current == "" {
		return []string{
			"[Your Role] | Helping [Audience] achieve [Outcome]",
			"[Your Role] at [Company] | [Specialty] | [Key Achievement]",
			"[Expertise] Leader | Building [What You Build] for [Who You Serve]",
		}
	}
	return []string{
		fmt.Sprintf("%s | Helping teams turn ideas into measurable results", current),
		fmt.Sprintf("%s | Sharing lessons on growth, leadership and craft", current),
		fmt.Sprintf("%s | Open to conversations about what's next", current),
	}
}

// AboutSuggestions returns three About-section templates built around the
// current summary.
func AboutSuggestions(current string) []string {
	current = strings.TrimSpace(current)
	if current == "" {
		return []string{
			"Start with a one-line hook about the problem you solve, then two sentences on how you solve it.",
			"Share a short story about a turning point in your career and what it taught you.",
			"List three outcomes you have delivered, each with a number, and close with how to reach you.",
		}
	}
	return []string{
		fmt.Sprintf("%s\n\nWhat drives me: helping people and teams do their best work.", current),
		fmt.Sprintf("Here's what I do in one sentence.\n\n%s\n\nLet's connect if this resonates.", current),
		fmt.Sprintf("%s\n\nHighlights:\n- [Achievement one]\n- [Achievement two]\n- [Achievement three]", current),
	}
}
