// Package dashboard assembles the post-onboarding view: score, stats,
// suggestions and per-post feedback over the shared profile state.
package dashboard

import (
	"fmt"
	"log/slog"

	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/scoring"
	"github.com/kalambet/olis/internal/storage"
	"github.com/kalambet/olis/internal/voice"
)

// Service backs the post-onboarding dashboard: profile and post edits,
// scoring, voice status and data reset.
type Service struct {
	store    storage.KeyValue
	profiles *profile.Manager
	flow     *onboarding.Controller
	wizard   *voice.Wizard
}

// New returns a Service over the shared components.
func New(store storage.KeyValue, profiles *profile.Manager, flow *onboarding.Controller, wizard *voice.Wizard) *Service {
	return &Service{store: store, profiles: profiles, flow: flow, wizard: wizard}
}

// PostAnalysis pairs a stored post with its feedback.
type PostAnalysis struct {
	Post     profile.Post     `json:"post"`
	Analysis scoring.Analysis `json:"analysis"`
}

// VoiceStatus summarises the voice wizard for the dashboard.
type VoiceStatus struct {
	Generated bool   `json:"generated"`
	Approved  bool   `json:"approved"`
	ToneName  string `json:"toneName,omitempty"`
	Step      int    `json:"step"`
}

// Overview is everything the dashboard renders in one response.
type Overview struct {
	OnboardingComplete  bool            `json:"onboardingComplete"`
	DisplayName         string          `json:"displayName"`
	Profile             profile.Profile `json:"profile"`
	Posts               []profile.Post  `json:"posts"`
	Score               int             `json:"score"`
	Band                scoring.Band    `json:"band"`
	Stats               scoring.Stats   `json:"stats"`
	HeadlineSuggestions []string        `json:"headlineSuggestions"`
	AboutSuggestions    []string        `json:"aboutSuggestions"`
	Analyses            []PostAnalysis  `json:"analyses"`
	Voice               VoiceStatus     `json:"voice"`
}

// Overview computes the dashboard from a single snapshot of the profile.
func (s *Service) Overview() Overview {
	p, posts := s.profiles.Snapshot()
	score := scoring.Score(&p, posts)

	analyses := make([]PostAnalysis, len(posts))
	for i, post := range posts {
		analyses[i] = PostAnalysis{Post: post, Analysis: scoring.AnalyzePost(post.Content)}
	}

	cfg := s.wizard.Config()
	return Overview{
		OnboardingComplete:  s.flow.Complete(),
		DisplayName:         p.DisplayName(),
		Profile:             p,
		Posts:               posts,
		Score:               score,
		Band:                scoring.Label(score),
		Stats:               scoring.ContentStats(posts),
		HeadlineSuggestions: scoring.HeadlineSuggestions(p.Headline),
		AboutSuggestions:    scoring.AboutSuggestions(p.Summary),
		Analyses:            analyses,
		Voice: VoiceStatus{
			Generated: cfg.Generated(),
			Approved:  cfg.Approved,
			ToneName:  cfg.ToneName,
			Step:      cfg.CurrentStep,
		},
	}
}

// Profile and post edits go straight to the profile manager.

func (s *Service) UpdateProfile(patch profile.Patch) profile.Profile {
	return s.profiles.Update(patch)
}

func (s *Service) Posts() []profile.Post {
	return s.profiles.Posts()
}

func (s *Service) AddPost(content string, featured bool, media string) (profile.Post, error) {
	return s.profiles.AddPost(content, featured, media)
}

func (s *Service) RemovePost(id string) error {
	return s.profiles.RemovePost(id)
}

func (s *Service) ToggleFeatured(id string) (profile.Post, error) {
	return s.profiles.ToggleFeatured(id)
}

// Analyze scores arbitrary draft content without storing it.
func (s *Service) Analyze(content string) scoring.Analysis {
	return scoring.AnalyzePost(content)
}

// Reset deletes every persisted key and rehydrates all components, so the
// next visit starts onboarding again at welcome.
func (s *Service) Reset() error {
	if err := storage.Clear(s.store); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	s.profiles.Reload()
	s.flow.Reload()
	s.wizard.Reload()
	slog.Info("all user data cleared")
	return nil
}
