package voice

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultDoRule   = "Write in your own words"
	defaultDontRule = "Don't post anything you wouldn't say to a colleague in person"
	fallbackTone    = "Authentic"
)

// Derive fills ToneName, ToneManifesto, DoRules and DontRules from the
// answers in c. The result depends only on c.
func Derive(c Config) Config {
	out := c.clone()
	tones := append(slices.Clone(c.Tone), c.CustomTone...)

	out.ToneName = toneName(tones, c.IntentRatio)
	out.ToneManifesto = manifesto(c, tones)
	out.DoRules = doRules(c)
	out.DontRules = dontRules(c)
	return out
}

func toneName(tones []string, r IntentRatio) string {
	adj := fallbackTone
	if len(tones) > 0 {
		adj = strings.Join(tones[:min(len(tones), 2)], " & ")
	}
	return "The " + adj + " " + archetype(r)
}

// archetype picks a noun from the dominant intent. Ties go to the earlier
// intent in declaration order.
func archetype(r IntentRatio) string {
	names := []struct {
		pct  int
		name string
	}{
		{r.Educate, "Educator"},
		{r.Inspire, "Motivator"},
		{r.Entertain, "Storyteller"},
		{r.Promote, "Advocate"},
		{r.Connect, "Connector"},
	}
	best, name := 0, "Voice"
	for _, n := range names {
		if n.pct > best {
			best, name = n.pct, n.name
		}
	}
	return name
}

func manifesto(c Config, tones []string) string {
	var parts []string
	if id := strings.TrimSpace(c.Identity); id != "" {
		parts = append(parts, sentence(id))
	}
	if aud := append(slices.Clone(c.Audience), c.CustomAudience...); len(aud) > 0 {
		parts = append(parts, "I write for "+joinList(lowerAll(aud))+".")
	}
	if topics := append(slices.Clone(c.Topics), c.CustomTopics...); len(topics) > 0 {
		parts = append(parts, "I talk about "+joinList(lowerAll(topics))+".")
	}
	if goals := append(slices.Clone(c.Goals), c.CustomGoals...); len(goals) > 0 {
		parts = append(parts, "I post to "+joinList(lowerAll(goals))+".")
	}
	if len(tones) > 0 {
		parts = append(parts, "My voice is "+joinList(lowerAll(tones))+".")
	}
	if len(parts) == 0 {
		return "I write clearly and honestly about my work."
	}
	return strings.Join(parts, " ")
}

func doRules(c Config) []string {
	var rules []string
	for _, sel := range []struct {
		cat    Category
		labels []string
	}{{Tone, c.Tone}, {Style, c.Style}, {Formatting, c.Formatting}} {
		for _, l := range sel.labels {
			if o, ok := lookup(sel.cat, l); ok && o.Rule != "" {
				rules = appendUnique(rules, o.Rule)
			}
		}
	}
	for _, s := range c.CustomStyle {
		rules = appendUnique(rules, s)
	}
	if len(rules) == 0 {
		rules = []string{defaultDoRule}
	}
	return rules
}

func dontRules(c Config) []string {
	var rules []string
	for _, l := range c.Boundaries {
		if o, ok := lookup(Boundaries, l); ok && o.Rule != "" {
			rules = appendUnique(rules, o.Rule)
		}
	}
	for _, s := range c.CustomBoundaries {
		rules = appendUnique(rules, s)
	}
	if len(rules) == 0 {
		rules = []string{defaultDontRule}
	}
	return rules
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}

// joinList renders "a", "a and b", "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// lowerAll lower-cases the first rune of each item unless the item looks like
// an acronym.
func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		r, size := utf8.DecodeRuneInString(s)
		next, _ := utf8.DecodeRuneInString(s[size:])
		if unicode.IsUpper(r) && !unicode.IsUpper(next) {
			s = string(unicode.ToLower(r)) + s[size:]
		}
		out[i] = s
	}
	return out
}

func sentence(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
