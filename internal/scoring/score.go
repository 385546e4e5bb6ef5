// Package scoring derives profile strength, content statistics and post
// feedback from the current profile and posts. Everything here is pure.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kalambet/olis/internal/profile"
)

// Score returns the 0-100 profile strength. A nil profile scores only the
// post-derived buckets.
func Score(p *profile.Profile, posts []profile.Post) int {
	total := 0
	if p != nil {
		total += headlineScore(p.Headline)
		total += completenessScore(p)
	}
	total += activityScore(len(posts))
	total += qualityScore(p, posts)
	return clamp(total, 0, 100)
}

// headlineScore keeps the original bucket boundaries: headlines of 150 runes
// or more fall through to the 15-point bucket, not the 25-point one.
func headlineScore(headline string) int {
	n := runeLen(headline)
	switch {
	case n == 0:
		return 0
	case n <= 20:
		return 8
	case n > 50 && n < 150:
		return 25
	default:
		return 15
	}
}

func completenessScore(p *profile.Profile) int {
	pts := 0
	switch n := runeLen(p.Summary); {
	case n > 100:
		pts += 15
	case n > 0:
		pts += 8
	}
	if p.LinkedInURL != "" {
		pts += 5
	}
	if p.FullName != "" {
		pts += 5
	}
	return pts
}

func activityScore(count int) int {
	switch {
	case count >= 5:
		return 25
	case count >= 3:
		return 18
	case count >= 1:
		return 10
	default:
		return 0
	}
}

func qualityScore(p *profile.Profile, posts []profile.Post) int {
	pts := 0

	featured := countFeatured(posts)
	switch {
	case featured >= 2:
		pts += 10
	case featured >= 1:
		pts += 5
	}

	if len(posts) > 0 {
		avg := float64(totalLength(posts)) / float64(len(posts))
		switch {
		case avg > 300:
			pts += 10
		case avg > 100:
			pts += 5
		}
	}

	if p != nil && p.Headline != "" && p.Summary != "" {
		pts += 5
	}
	return pts
}

// Band is a labelled score range with a semantic colour tier for the UI.
type Band struct {
	Label string `json:"label"`
	Tier  string `json:"tier"`
}

// Label maps a score to its band. Lower bounds are inclusive.
func Label(score int) Band {
	switch {
	case score >= 80:
		return Band{Label: "Excellent", Tier: "excellent"}
	case score >= 60:
		return Band{Label: "Good", Tier: "good"}
	case score >= 40:
		return Band{Label: "Fair", Tier: "fair"}
	case score >= 20:
		return Band{Label: "Needs Work", Tier: "needs-work"}
	default:
		return Band{Label: "Getting Started", Tier: "getting-started"}
	}
}

// Stats summarises the post collection.
type Stats struct {
	TotalPosts     int    `json:"totalPosts"`
	AvgLength      int    `json:"avgLength"`
	FeaturedCount  int    `json:"featuredCount"`
	LongFormCount  int    `json:"longFormCount"`
	ShortFormCount int    `json:"shortFormCount"`
	DataQuality    string `json:"dataQuality"`
}

// ContentStats aggregates post counts, average length and a data-quality note.
func ContentStats(posts []profile.Post) Stats {
	s := Stats{
		TotalPosts:    len(posts),
		FeaturedCount: countFeatured(posts),
	}
	for _, p := range posts {
		n := runeLen(p.Content)
		if n > 500 {
			s.LongFormCount++
		}
		if n < 200 {
			s.ShortFormCount++
		}
	}
	if len(posts) > 0 {
		s.AvgLength = int(math.Round(float64(totalLength(posts)) / float64(len(posts))))
	}

	switch {
	case s.TotalPosts >= 5:
		s.DataQuality = "High"
	case s.TotalPosts >= 3:
		s.DataQuality = "Medium"
	default:
		s.DataQuality = "Low"
	}
	return s
}

func countFeatured(posts []profile.Post) int {
	n := 0
	for _, p := range posts {
		if p.IsFeatured {
			n++
		}
	}
	return n
}

func totalLength(posts []profile.Post) int {
	n := 0
	for _, p := range posts {
		n += runeLen(p.Content)
	}
	return n
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
