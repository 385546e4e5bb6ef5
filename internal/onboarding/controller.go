// Package onboarding drives the one-time intake flow: welcome, profile setup,
// post history, confirmation and orientation. The current step is written
// through to the store on every transition so a reload resumes where the user
// left off.
package onboarding

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/kalambet/olis/internal/attachment"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/storage"
)

// Step names one stage of the onboarding flow.
type Step string

const (
	StepWelcome      Step = "welcome"
	StepProfileSetup Step = "profile-setup"
	StepPostHistory  Step = "post-history"
	StepConfirmation Step = "confirmation"
	StepOrientation  Step = "orientation"
)

// Steps lists the onboarding steps in order.
var Steps = []Step{StepWelcome, StepProfileSetup, StepPostHistory, StepConfirmation, StepOrientation}

// WelcomePages is the number of auto-advancing welcome sub-pages.
const WelcomePages = 4

// DefaultWelcomeDwell is how long each welcome sub-page is shown.
const DefaultWelcomeDwell = 3 * time.Second

var (
	ErrStepIncomplete    = errors.New("step requirements not met")
	ErrConsentRequired   = errors.New("consent required")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrComplete          = errors.New("onboarding already complete")
)

func (s Step) valid() bool {
	for _, v := range Steps {
		if s == v {
			return true
		}
	}
	return false
}

// Options tunes a Controller. Zero values pick defaults.
type Options struct {
	WelcomeDwell time.Duration
	Scheduler    Scheduler
}

// Controller is the onboarding state machine. Profile and post data live in
// the shared profile.Manager; the controller owns only the step.
type Controller struct {
	store    storage.KeyValue
	profiles *profile.Manager
	dwell    time.Duration
	sched    Scheduler

	mu          sync.Mutex
	step        Step
	complete    bool
	consent     bool
	welcomePage int
	timer       Timer
	timerGen    int
}

// NewController hydrates the controller from store. When onboarding is already
// complete no step is active and no timer runs.
func NewController(store storage.KeyValue, profiles *profile.Manager, opts Options) *Controller {
	if opts.WelcomeDwell <= 0 {
		opts.WelcomeDwell = DefaultWelcomeDwell
	}
	if opts.Scheduler == nil {
		opts.Scheduler = realScheduler{}
	}
	c := &Controller{
		store:    store,
		profiles: profiles,
		dwell:    opts.WelcomeDwell,
		sched:    opts.Scheduler,
	}
	c.Reload()
	return c
}

// Reload re-reads the step and completion flag from the store.
func (c *Controller) Reload() {
	complete := storage.Get(c.store, storage.KeyOnboardingComplete, false)
	step := storage.Get(c.store, storage.KeyCurrentStep, StepWelcome)
	if !step.valid() {
		slog.Warn("unknown onboarding step, restarting at welcome", "step", step)
		step = StepWelcome
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
	c.complete = complete
	c.consent = false
	c.welcomePage = 0
	c.step = step
	if complete {
		c.step = ""
		return
	}
	if step == StepWelcome {
		c.startTimer()
	}
}

// Close stops the welcome timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
}

// Complete reports whether onboarding has finished; callers should leave the
// flow for the dashboard.
func (c *Controller) Complete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.complete
}

// Step returns the active step, or "" when complete.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// CanAdvance reports whether the forward action is enabled.
func (c *Controller) CanAdvance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canAdvance()
}

func (c *Controller) canAdvance() bool {
	if c.complete {
		return false
	}
	switch c.step {
	case StepProfileSetup:
		p := c.profiles.Profile()
		return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Headline) != "" && p.HasAttachment()
	case StepConfirmation:
		return c.consent
	default:
		return true
	}
}

// Advance moves one step forward. Gated steps return ErrStepIncomplete or
// ErrConsentRequired and leave the state untouched.
func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.complete {
		return ErrComplete
	}

	switch c.step {
	case StepWelcome:
		c.setStep(StepProfileSetup)
	case StepProfileSetup:
		if !c.canAdvance() {
			return ErrStepIncomplete
		}
		c.setStep(StepPostHistory)
	case StepPostHistory:
		c.setStep(StepConfirmation)
	case StepConfirmation:
		if !c.consent {
			return ErrConsentRequired
		}
		c.setStep(StepOrientation)
	case StepOrientation:
		c.finish()
	default:
		return fmt.Errorf("%w: from %q", ErrInvalidTransition, c.step)
	}
	return nil
}

// SkipWelcome cancels the auto-advance sequence and jumps to profile setup.
func (c *Controller) SkipWelcome() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.complete {
		return ErrComplete
	}
	if c.step != StepWelcome {
		return fmt.Errorf("%w: skip from %q", ErrInvalidTransition, c.step)
	}
	c.setStep(StepProfileSetup)
	return nil
}

// EditProfile returns from confirmation to profile setup.
func (c *Controller) EditProfile() error {
	return c.backTo(StepProfileSetup)
}

// EditPosts returns from confirmation to post history.
func (c *Controller) EditPosts() error {
	return c.backTo(StepPostHistory)
}

func (c *Controller) backTo(target Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.complete {
		return ErrComplete
	}
	if c.step != StepConfirmation {
		return fmt.Errorf("%w: edit from %q", ErrInvalidTransition, c.step)
	}
	c.setStep(target)
	return nil
}

// SetConsent records the confirmation checkbox.
func (c *Controller) SetConsent(v bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepConfirmation {
		return fmt.Errorf("%w: consent outside confirmation", ErrInvalidTransition)
	}
	c.consent = v
	return nil
}

// Data edits. None of them change the step.

// UpdateProfile applies patch to the stored profile.
func (c *Controller) UpdateProfile(patch profile.Patch) profile.Profile {
	return c.profiles.Update(patch)
}

// SetAttachment records an accepted PDF for this session.
func (c *Controller) SetAttachment(info *attachment.Info) profile.Profile {
	return c.profiles.SetAttachment(info)
}

// AddPost appends a post to the history.
func (c *Controller) AddPost(content string, featured bool, media string) (profile.Post, error) {
	return c.profiles.AddPost(content, featured, media)
}

// RemovePost deletes the post with id.
func (c *Controller) RemovePost(id string) error {
	return c.profiles.RemovePost(id)
}

// ToggleFeatured flips the featured flag of the post with id.
func (c *Controller) ToggleFeatured(id string) (profile.Post, error) {
	return c.profiles.ToggleFeatured(id)
}

// setStep must be called with mu held.
func (c *Controller) setStep(s Step) {
	if c.step == StepWelcome && s != StepWelcome {
		c.stopTimer()
	}
	c.step = s
	if s == StepConfirmation {
		c.consent = false
	}
	if s == StepWelcome {
		c.welcomePage = 0
		c.startTimer()
	}
	if err := storage.Set(c.store, storage.KeyCurrentStep, s); err != nil {
		slog.Warn("persisting onboarding step failed", "step", s, "error", err)
	}
}

func (c *Controller) finish() {
	c.complete = true
	c.step = ""
	if err := storage.Set(c.store, storage.KeyOnboardingComplete, true); err != nil {
		slog.Warn("persisting onboarding completion failed", "error", err)
	}
	slog.Info("onboarding complete")
}

// State is a point-in-time view of the flow for rendering.
type State struct {
	Complete     bool            `json:"complete"`
	Step         Step            `json:"step,omitempty"`
	StepIndex    int             `json:"stepIndex"`
	WelcomePage  int             `json:"welcomePage"`
	WelcomePages int             `json:"welcomePages"`
	CanAdvance   bool            `json:"canAdvance"`
	AdvanceLabel string          `json:"advanceLabel,omitempty"`
	Consent      bool            `json:"consent"`
	Profile      profile.Profile `json:"profile"`
	Posts        []profile.Post  `json:"posts"`
}

// State returns a snapshot of the flow for clients.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, posts := c.profiles.Snapshot()
	st := State{
		Complete:     c.complete,
		Step:         c.step,
		StepIndex:    -1,
		WelcomePage:  c.welcomePage,
		WelcomePages: WelcomePages,
		CanAdvance:   c.canAdvance(),
		Consent:      c.consent,
		Profile:      p,
		Posts:        posts,
	}
	for i, s := range Steps {
		if s == c.step {
			st.StepIndex = i
		}
	}
	if !c.complete {
		st.AdvanceLabel = advanceLabel(c.step, len(posts))
	}
	return st
}

func advanceLabel(s Step, posts int) string {
	switch s {
	case StepWelcome:
		return "Skip"
	case StepPostHistory:
		if posts == 0 {
			return "Skip for now"
		}
		return "Continue"
	case StepOrientation:
		return "Go to Dashboard"
	default:
		return "Continue"
	}
}
