package storage

import "errors"

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// Persisted keys. Values are JSON text.
const (
	KeyCurrentStep        = "current_step"
	KeyProfile            = "profile_data"
	KeyPosts              = "posts_data"
	KeyOnboardingComplete = "onboarding_complete"
	KeyVoiceConfig        = "voice_config"

	// Reserved for post ideas and content strategy; nothing writes them yet but a full
	// reset clears them.
	KeyPostIdeas       = "post_ideas"
	KeyContentStrategy = "content_strategy"
)

// AllKeys lists every key a full reset removes.
var AllKeys = []string{
	KeyCurrentStep,
	KeyProfile,
	KeyPosts,
	KeyOnboardingComplete,
	KeyVoiceConfig,
	KeyPostIdeas,
	KeyContentStrategy,
}
