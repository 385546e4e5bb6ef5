package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type greetingRequest struct {
	Name    *string `json:"name"`
	Message *string `json:"message"`
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := deps.now()
		if deps.Store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()
			if err := deps.Store.Ping(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]any{
					"status":    "unhealthy",
					"error":     err.Error(),
					"timestamp": now.UTC().Format(time.RFC3339),
				})
				return
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":      "healthy",
			"uptime":      now.Sub(deps.StartedAt).Seconds(),
			"timestamp":   now.UTC().Format(time.RFC3339),
			"environment": deps.Environment,
			"version":     deps.Version,
		})
	}
}

func handleHelloGet(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			name = "World"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"message":   fmt.Sprintf("Hello, %s!", name),
			"timestamp": deps.now().UTC().Format(time.RFC3339),
			"path":      r.URL.Path,
		})
	}
}

// handleGreeting serves both POST /hello and the rate limited POST /example.
func handleGreeting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req greetingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			greetingError(w, "Invalid JSON body")
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			greetingError(w, "name is required and must be a non-empty string")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"greeting":        fmt.Sprintf("Hello, %s!", strings.TrimSpace(*req.Name)),
				"receivedMessage": req.Message,
			},
		})
	}
}

func greetingError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   msg,
	})
}
