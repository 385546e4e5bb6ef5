package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kalambet/olis/internal/profile"
)

type analyzeRequest struct {
	Content string `json:"content"`
}

func handleDashboard(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Dashboard.Overview())
	}
}

func handlePatchProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch profile.Patch
		if !decodeBody(w, r, &patch) {
			return
		}
		writeJSON(w, http.StatusOK, deps.Dashboard.UpdateProfile(patch))
	}
}

func handleListPosts(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Dashboard.Posts())
	}
}

func handleAddPost(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postRequest
		if !decodeBody(w, r, &req) {
			return
		}
		p, err := deps.Dashboard.AddPost(req.Content, req.IsFeatured, req.MediaDescription)
		if err != nil {
			postError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func handleRemovePost(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Dashboard.RemovePost(chi.URLParam(r, "id")); err != nil {
			postError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func handleFeaturePost(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := deps.Dashboard.ToggleFeatured(chi.URLParam(r, "id"))
		if err != nil {
			postError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleAnalyze(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "content is required")
			return
		}
		writeJSON(w, http.StatusOK, deps.Dashboard.Analyze(req.Content))
	}
}

func handleResetData(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Dashboard.Reset(); err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to reset data: %v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}
