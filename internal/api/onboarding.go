package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalambet/olis/internal/attachment"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
)

type postRequest struct {
	Content          string `json:"content"`
	IsFeatured       bool   `json:"isFeatured"`
	MediaDescription string `json:"mediaDescription"`
}

type consentRequest struct {
	Consent bool `json:"consent"`
}

func handleOnboardingState(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Onboarding.Complete() {
			http.Redirect(w, r, "/api/dashboard", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleSkipWelcome(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Onboarding.SkipWelcome(); err != nil {
			onboardingError(w, deps, err)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleOnboardingProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch profile.Patch
		if !decodeBody(w, r, &patch) {
			return
		}
		deps.Onboarding.UpdateProfile(patch)
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleAttachment(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Leave room for multipart framing around the file itself.
		r.Body = http.MaxBytesReader(w, r.Body, attachment.MaxSize+maxRequestBodySize)
		defer r.Body.Close()

		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httpError(w, http.StatusRequestEntityTooLarge, "invalid_request_error", "%v", attachment.ErrTooLarge)
				return
			}
			httpError(w, http.StatusBadRequest, "invalid_request_error", "multipart field \"file\" is required: %v", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, attachment.MaxSize+1))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "reading upload: %v", err)
			return
		}

		info, err := attachment.Inspect(header.Filename, data)
		switch {
		case errors.Is(err, attachment.ErrTooLarge):
			httpError(w, http.StatusRequestEntityTooLarge, "invalid_request_error", "%v", err)
			return
		case errors.Is(err, attachment.ErrNotPDF):
			httpError(w, http.StatusUnsupportedMediaType, "invalid_request_error", "%v", err)
			return
		case err != nil:
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		}

		deps.Onboarding.SetAttachment(info)
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleOnboardingAddPost(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if _, err := deps.Onboarding.AddPost(req.Content, req.IsFeatured, req.MediaDescription); err != nil {
			postError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, deps.Onboarding.State())
	}
}

func handleOnboardingRemovePost(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Onboarding.RemovePost(chi.URLParam(r, "id")); err != nil {
			postError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleOnboardingFeature(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := deps.Onboarding.ToggleFeatured(chi.URLParam(r, "id")); err != nil {
			postError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleConsent(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req consentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := deps.Onboarding.SetConsent(req.Consent); err != nil {
			onboardingError(w, deps, err)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleAdvance(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Onboarding.Advance(); err != nil {
			onboardingError(w, deps, err)
			return
		}
		if deps.Onboarding.Complete() {
			http.Redirect(w, r, "/api/dashboard", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

func handleEdit(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		switch section := chi.URLParam(r, "section"); section {
		case "profile":
			err = deps.Onboarding.EditProfile()
		case "posts":
			err = deps.Onboarding.EditPosts()
		default:
			httpError(w, http.StatusNotFound, "not_found", "unknown section %q", section)
			return
		}
		if err != nil {
			onboardingError(w, deps, err)
			return
		}
		writeJSON(w, http.StatusOK, deps.Onboarding.State())
	}
}

// onboardingError answers rejected transitions with 409 and the current state
// so a client can keep its controls in sync.
func onboardingError(w http.ResponseWriter, deps Deps, err error) {
	errType := "invalid_transition"
	switch {
	case errors.Is(err, onboarding.ErrStepIncomplete):
		errType = "step_incomplete"
	case errors.Is(err, onboarding.ErrConsentRequired):
		errType = "consent_required"
	case errors.Is(err, onboarding.ErrComplete):
		errType = "onboarding_complete"
	case !errors.Is(err, onboarding.ErrInvalidTransition):
		httpError(w, http.StatusInternalServerError, "api_error", "%v", err)
		return
	}
	writeJSON(w, http.StatusConflict, map[string]any{
		"error": map[string]any{
			"message": err.Error(),
			"type":    errType,
		},
		"state": deps.Onboarding.State(),
	})
}

func postError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profile.ErrEmptyContent):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	case errors.Is(err, profile.ErrPostNotFound):
		httpError(w, http.StatusNotFound, "not_found", "post not found")
	default:
		httpError(w, http.StatusInternalServerError, "api_error", "%v", err)
	}
}
