// Package voice implements the writing-voice questionnaire: an 11-step wizard
// whose answers are turned into a tone name, a short manifesto and do/don't
// rules.
package voice

import "slices"

// Category names a multi-select question.
type Category string

const (
	Goals      Category = "goals"
	Audience   Category = "audience"
	Topics     Category = "topics"
	Tone       Category = "tone"
	Style      Category = "style"
	Formatting Category = "formatting"
	Boundaries Category = "boundaries"
)

// Categories lists every multi-select category in wizard order.
var Categories = []Category{Goals, Audience, Topics, Tone, Style, Formatting, Boundaries}

// IntentRatio is the intended content mix in percent. The total is expected
// to be 100 but never enforced.
type IntentRatio struct {
	Educate   int `json:"educate"`
	Inspire   int `json:"inspire"`
	Entertain int `json:"entertain"`
	Promote   int `json:"promote"`
	Connect   int `json:"connect"`
}

// Total is the sum of all shares.
func (r IntentRatio) Total() int {
	return r.Educate + r.Inspire + r.Entertain + r.Promote + r.Connect
}

// Config is the persisted questionnaire record.
type Config struct {
	Goals            []string    `json:"goals"`
	CustomGoals      []string    `json:"customGoals"`
	Audience         []string    `json:"audience"`
	CustomAudience   []string    `json:"customAudience"`
	Topics           []string    `json:"topics"`
	CustomTopics     []string    `json:"customTopics"`
	Tone             []string    `json:"tone"`
	CustomTone       []string    `json:"customTone"`
	Style            []string    `json:"style"`
	CustomStyle      []string    `json:"customStyle"`
	Formatting       []string    `json:"formatting"`
	Boundaries       []string    `json:"boundaries"`
	CustomBoundaries []string    `json:"customBoundaries"`
	IntentRatio      IntentRatio `json:"contentIntentRatio"`
	Identity         string      `json:"identityStatement"`

	ToneName      string   `json:"toneName"`
	ToneManifesto string   `json:"toneManifesto"`
	DoRules       []string `json:"doRules"`
	DontRules     []string `json:"dontRules"`
	Approved      bool     `json:"approved"`

	CurrentStep int `json:"currentStep"`
}

// Defaults returns an empty config positioned at the first step.
func Defaults() Config {
	c := Config{CurrentStep: 1}
	c.normalize()
	return c
}

// Generated reports whether the derived fields are populated.
func (c Config) Generated() bool {
	return c.ToneName != "" && c.ToneManifesto != ""
}

// normalize replaces nil slices with empty ones and clamps the step so a
// hand-edited or older record still renders.
func (c *Config) normalize() {
	for _, s := range []*[]string{
		&c.Goals, &c.CustomGoals, &c.Audience, &c.CustomAudience, &c.Topics, &c.CustomTopics,
		&c.Tone, &c.CustomTone, &c.Style, &c.CustomStyle, &c.Formatting, &c.Boundaries,
		&c.CustomBoundaries, &c.DoRules, &c.DontRules,
	} {
		if *s == nil {
			*s = []string{}
		}
	}
	c.CurrentStep = min(max(c.CurrentStep, 1), TotalSteps)
	if c.Approved && !c.Generated() {
		c.Approved = false
	}
}

func (c Config) clone() Config {
	out := c
	for _, s := range []*[]string{
		&out.Goals, &out.CustomGoals, &out.Audience, &out.CustomAudience, &out.Topics, &out.CustomTopics,
		&out.Tone, &out.CustomTone, &out.Style, &out.CustomStyle, &out.Formatting, &out.Boundaries,
		&out.CustomBoundaries, &out.DoRules, &out.DontRules,
	} {
		*s = slices.Clone(*s)
	}
	return out
}

// selections returns a pointer to the selected-labels slice for cat.
func (c *Config) selections(cat Category) *[]string {
	switch cat {
	case Goals:
		return &c.Goals
	case Audience:
		return &c.Audience
	case Topics:
		return &c.Topics
	case Tone:
		return &c.Tone
	case Style:
		return &c.Style
	case Formatting:
		return &c.Formatting
	case Boundaries:
		return &c.Boundaries
	}
	return nil
}

// custom returns a pointer to the free-text slice for cat, or nil when the
// category takes no custom entries.
func (c *Config) custom(cat Category) *[]string {
	switch cat {
	case Goals:
		return &c.CustomGoals
	case Audience:
		return &c.CustomAudience
	case Topics:
		return &c.CustomTopics
	case Tone:
		return &c.CustomTone
	case Style:
		return &c.CustomStyle
	case Boundaries:
		return &c.CustomBoundaries
	}
	return nil
}
