package scoring

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

const analyzeBase = 50

// Feedback strings returned by AnalyzePost.
const (
	StrengthLength      = "Good length for engagement"
	StrengthLineBreaks  = "Good use of line breaks for readability"
	StrengthHook        = "Strong opening hook"
	StrengthCTA         = "Includes a call-to-action or question"
	StrengthEmoji       = "Uses emojis to add personality"
	ImproveSubstance    = "Consider adding more substance - posts under 100 characters tend to get less engagement"
	ImproveTooLong      = "Post may be too long - consider breaking it into a series"
	ImproveLineBreaks   = "Add line breaks to improve readability"
	ImproveCallToAction = "End with a question or call-to-action to encourage engagement"
)

var engagementKeywords = []string{"comment", "share", "thoughts"}

// Analysis is the single-post rule engine result.
type Analysis struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Score        int      `json:"score"`
}

// AnalyzePost rates a single post starting from a base of 50. Rules run in a
// fixed order so feedback lists are stable.
func AnalyzePost(content string) Analysis {
	a := Analysis{Strengths: []string{}, Improvements: []string{}, Score: analyzeBase}

	n := runeLen(content)
	if n > 500 && n < 1500 {
		a.strength(StrengthLength, 10)
	}
	if n < 100 {
		a.improve(ImproveSubstance, -10)
	}
	if n > 2000 {
		a.improve(ImproveTooLong, 0)
	}

	if strings.Contains(content, "\n\n") {
		a.strength(StrengthLineBreaks, 5)
	} else {
		a.improve(ImproveLineBreaks, 0)
	}

	if l := runeLen(firstLine(content)); l > 20 && l < 100 {
		a.strength(StrengthHook, 10)
	}

	if hasCallToAction(content) {
		a.strength(StrengthCTA, 10)
	} else {
		a.improve(ImproveCallToAction, 0)
	}

	if hasPictograph(content) {
		a.strength(StrengthEmoji, 0)
	}

	a.Score = clamp(a.Score, 0, 100)
	return a
}

func (a *Analysis) strength(msg string, delta int) {
	a.Strengths = append(a.Strengths, msg)
	a.Score += delta
}

func (a *Analysis) improve(msg string, delta int) {
	a.Improvements = append(a.Improvements, msg)
	a.Score += delta
}

func hasCallToAction(content string) bool {
	if strings.Contains(content, "?") {
		return true
	}
	lower := strings.ToLower(content)
	for _, kw := range engagementKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasPictograph reports whether content holds an emoji meant as a picture.
// Text-default symbols such as © ® ™ only count when followed by the emoji
// variation selector.
func hasPictograph(content string) bool {
	if !gomoji.ContainsEmoji(content) {
		return false
	}
	for _, e := range gomoji.FindAll(content) {
		if isPictographic(e.Character) {
			return true
		}
	}
	return false
}

func isPictographic(s string) bool {
	for _, r := range s {
		switch {
		case r == '\uFE0F', r == '\u20E3':
			return true
		case r >= 0x1F000:
			return true
		case r >= 0x231A && r <= 0x23FF, r >= 0x2600 && r <= 0x27BF, r >= 0x2B00 && r <= 0x2BFF:
			return true
		}
	}
	return false
}
