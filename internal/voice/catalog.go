package voice

import "slices"

// Option is one selectable answer. Rule, when set, is what the option
// contributes to the generated do/don't lists.
type Option struct {
	Label string `json:"label"`
	Rule  string `json:"rule,omitempty"`
}

var GoalOptions = []Option{
	{Label: "Build thought leadership"},
	{Label: "Grow my network"},
	{Label: "Attract job opportunities"},
	{Label: "Generate leads"},
	{Label: "Share knowledge"},
	{Label: "Build a personal brand"},
	{Label: "Recruit talent"},
}

var AudienceOptions = []Option{
	{Label: "Peers in my industry"},
	{Label: "Recruiters and hiring managers"},
	{Label: "Potential clients"},
	{Label: "Founders and executives"},
	{Label: "Early-career professionals"},
	{Label: "Investors"},
}

var TopicOptions = []Option{
	{Label: "Leadership"},
	{Label: "Career growth"},
	{Label: "Industry trends"},
	{Label: "Technology"},
	{Label: "Entrepreneurship"},
	{Label: "Productivity"},
	{Label: "Company culture"},
	{Label: "Lessons learned"},
}

var ToneOptions = []Option{
	{Label: "Professional", Rule: "Keep claims precise and backed by experience"},
	{Label: "Conversational", Rule: "Write the way you would say it out loud"},
	{Label: "Witty", Rule: "Use light humour where it serves the point"},
	{Label: "Inspirational", Rule: "End with an idea the reader can act on"},
	{Label: "Analytical", Rule: "Support opinions with numbers or concrete examples"},
	{Label: "Empathetic", Rule: "Acknowledge the reader's situation before advising"},
	{Label: "Bold", Rule: "State your position in the first line"},
	{Label: "Humble", Rule: "Credit the people and luck behind results"},
}

var StyleOptions = []Option{
	{Label: "Storytelling", Rule: "Open with a specific moment or scene"},
	{Label: "How-to guides", Rule: "Break advice into numbered, repeatable steps"},
	{Label: "Hot takes", Rule: "Lead with the contrarian claim, then defend it"},
	{Label: "Lists", Rule: "Group ideas into short scannable lists"},
	{Label: "Case studies", Rule: "Show the before, the change and the result"},
	{Label: "Questions", Rule: "Close with a question that invites replies"},
}

var FormattingOptions = []Option{
	{Label: "Short paragraphs", Rule: "Keep paragraphs to one or two sentences"},
	{Label: "Line breaks", Rule: "Separate ideas with blank lines"},
	{Label: "Emojis", Rule: "Use emojis sparingly as visual anchors"},
	{Label: "Bullet points", Rule: "Use bullets for three or more parallel items"},
	{Label: "Hashtags", Rule: "Finish with two or three relevant hashtags"},
	{Label: "Bold hooks", Rule: "Make the first line a standalone hook"},
}

var BoundaryOptions = []Option{
	{Label: "No politics", Rule: "Avoid political commentary"},
	{Label: "No religion", Rule: "Avoid religious topics"},
	{Label: "No confidential work details", Rule: "Never share client or employer confidential information"},
	{Label: "No personal life", Rule: "Keep family and private life out of posts"},
	{Label: "No engagement bait", Rule: "Don't ask for likes or reposts"},
	{Label: "No negativity about competitors", Rule: "Don't criticise competitors by name"},
}

// Catalog returns the options for cat, or nil for an unknown category.
func Catalog(cat Category) []Option {
	switch cat {
	case Goals:
		return GoalOptions
	case Audience:
		return AudienceOptions
	case Topics:
		return TopicOptions
	case Tone:
		return ToneOptions
	case Style:
		return StyleOptions
	case Formatting:
		return FormattingOptions
	case Boundaries:
		return BoundaryOptions
	}
	return nil
}

func lookup(cat Category, label string) (Option, bool) {
	for _, o := range Catalog(cat) {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// StepInfo describes one wizard step.
type StepInfo struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	Part      int      `json:"part"`
	PartTitle string   `json:"partTitle"`
	Category  Category `json:"category,omitempty"`
}

// TotalSteps is the number of wizard steps.
const TotalSteps = 11

var steps = [TotalSteps]StepInfo{
	{1, "Goals", 1, "Purpose", Goals},
	{2, "Audience", 1, "Purpose", Audience},
	{3, "Content Intent", 1, "Purpose", ""},
	{4, "Identity Statement", 2, "Identity", ""},
	{5, "Topics", 2, "Identity", Topics},
	{6, "Tone", 3, "Voice", Tone},
	{7, "Style", 3, "Voice", Style},
	{8, "Formatting", 3, "Voice", Formatting},
	{9, "Boundaries", 4, "Guardrails", Boundaries},
	{10, "Review", 4, "Guardrails", ""},
	{11, "Approve", 4, "Guardrails", ""},
}

// Steps returns all step descriptors in order.
func Steps() []StepInfo {
	return slices.Clone(steps[:])
}
