package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalambet/olis/internal/dashboard"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/voice"
)

// Deps holds the components and settings the HTTP handlers share.
type Deps struct {
	Store      Pinger // optional; health reports healthy without it
	Onboarding *onboarding.Controller
	Voice      *voice.Wizard
	Dashboard  *dashboard.Service

	Environment    string
	Version        string
	StartedAt      time.Time
	AllowedOrigins []string
	Limiter        *RateLimiter // guards POST /api/example

	Now func() time.Time // defaults to time.Now
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// NewRouter wires every endpoint under /api behind the recover and CORS
// middleware.
func NewRouter(deps Deps) http.Handler {
	if deps.Limiter == nil {
		deps.Limiter = NewRateLimiter(10, time.Minute)
	}

	r := chi.NewRouter()
	r.Use(Recoverer)
	r.Use(CORS(deps.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth(deps))
		r.Get("/hello", handleHelloGet(deps))
		r.Post("/hello", handleGreeting())
		r.With(deps.Limiter.Middleware).Post("/example", handleGreeting())

		r.Mount("/", NewAppHandler(deps))
	})

	return r
}

// NewAppHandler serves the onboarding, dashboard and voice API.
func NewAppHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Route("/onboarding", func(r chi.Router) {
		r.Get("/", handleOnboardingState(deps))
		r.Post("/welcome/skip", handleSkipWelcome(deps))
		r.Patch("/profile", handleOnboardingProfile(deps))
		r.Put("/attachment", handleAttachment(deps))
		r.Post("/posts", handleOnboardingAddPost(deps))
		r.Delete("/posts/{id}", handleOnboardingRemovePost(deps))
		r.Post("/posts/{id}/feature", handleOnboardingFeature(deps))
		r.Post("/consent", handleConsent(deps))
		r.Post("/advance", handleAdvance(deps))
		r.Post("/edit/{section}", handleEdit(deps))
	})

	r.Get("/dashboard", handleDashboard(deps))
	r.Patch("/profile", handlePatchProfile(deps))
	r.Get("/posts", handleListPosts(deps))
	r.Post("/posts", handleAddPost(deps))
	r.Delete("/posts/{id}", handleRemovePost(deps))
	r.Post("/posts/{id}/feature", handleFeaturePost(deps))
	r.Post("/analyze", handleAnalyze(deps))

	r.Get("/voice", handleGetVoice(deps))
	r.Put("/voice", handlePutVoice(deps))
	r.Post("/voice/step", handleVoiceStep(deps))
	r.Post("/voice/generate", handleVoiceGenerate(deps))
	r.Post("/voice/approve", handleVoiceApprove(deps))
	r.Delete("/voice", handleVoiceReset(deps))

	r.Delete("/data", handleResetData(deps))

	return r
}
