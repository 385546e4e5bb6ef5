package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kalambet/olis/internal/voice"
)

type voiceView struct {
	Config  voice.Config                      `json:"config"`
	Step    voice.StepInfo                    `json:"step"`
	Steps   []voice.StepInfo                  `json:"steps"`
	Options map[voice.Category][]voice.Option `json:"options"`
}

type customEntry struct {
	Category voice.Category `json:"category"`
	Text     string         `json:"text"`
}

// voiceUpdate is a partial answer update. Fields are applied in declaration
// order; the first failure stops the update.
type voiceUpdate struct {
	Selections   map[voice.Category][]string `json:"selections"`
	AddCustom    []customEntry               `json:"addCustom"`
	RemoveCustom []customEntry               `json:"removeCustom"`
	IntentRatio  *voice.IntentRatio          `json:"contentIntentRatio"`
	Identity     *string                     `json:"identityStatement"`
}

type voiceStepRequest struct {
	Action string `json:"action"` // next, back or goto
	Step   int    `json:"step"`
}

func currentVoice(deps Deps) voiceView {
	opts := make(map[voice.Category][]voice.Option, len(voice.Categories))
	for _, c := range voice.Categories {
		opts[c] = voice.Catalog(c)
	}
	return voiceView{
		Config:  deps.Voice.Config(),
		Step:    deps.Voice.Step(),
		Steps:   voice.Steps(),
		Options: opts,
	}
}

func handleGetVoice(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, currentVoice(deps))
	}
}

func handlePutVoice(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req voiceUpdate
		if !decodeBody(w, r, &req) {
			return
		}
		if err := applyVoiceUpdate(deps.Voice, req); err != nil {
			voiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, currentVoice(deps))
	}
}

func applyVoiceUpdate(wz *voice.Wizard, req voiceUpdate) error {
	for c := range req.Selections {
		if voice.Catalog(c) == nil {
			return fmt.Errorf("%w: %q", voice.ErrUnknownCategory, c)
		}
	}
	// Catalogue order keeps the outcome independent of map order.
	for _, c := range voice.Categories {
		if labels, ok := req.Selections[c]; ok {
			if _, err := wz.SetSelections(c, labels); err != nil {
				return err
			}
		}
	}
	for _, e := range req.AddCustom {
		if _, err := wz.AddCustom(e.Category, e.Text); err != nil {
			return err
		}
	}
	for _, e := range req.RemoveCustom {
		if _, err := wz.RemoveCustom(e.Category, e.Text); err != nil {
			return err
		}
	}
	if req.IntentRatio != nil {
		if _, err := wz.SetIntentRatio(*req.IntentRatio); err != nil {
			return err
		}
	}
	if req.Identity != nil {
		wz.SetIdentity(*req.Identity)
	}
	return nil
}

func handleVoiceStep(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req voiceStepRequest
		if !decodeBody(w, r, &req) {
			return
		}
		var err error
		switch req.Action {
		case "next":
			_, err = deps.Voice.Next()
		case "back":
			_, err = deps.Voice.Back()
		case "goto":
			_, err = deps.Voice.GoTo(req.Step)
		default:
			httpError(w, http.StatusBadRequest, "invalid_request_error", "action must be next, back or goto")
			return
		}
		if err != nil {
			voiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, currentVoice(deps))
	}
}

func handleVoiceGenerate(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Voice.Generate()
		writeJSON(w, http.StatusOK, currentVoice(deps))
	}
}

func handleVoiceApprove(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := deps.Voice.Approve(); err != nil {
			voiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, currentVoice(deps))
	}
}

func handleVoiceReset(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Voice.Reset()
		writeJSON(w, http.StatusOK, currentVoice(deps))
	}
}

func voiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, voice.ErrNotGenerated) {
		httpError(w, http.StatusConflict, "not_generated", "%v", err)
		return
	}
	httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
}
