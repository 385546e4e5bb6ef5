package api

import (
	"net/http"
	"testing"

	"github.com/kalambet/olis/internal/dashboard"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/scoring"
	"github.com/kalambet/olis/internal/storage"
)

func TestDashboard_Posts(t *testing.T) {
	h := newTestEnv(t).router()

	rr := doReq(h, http.MethodPost, "/api/posts", `{"content":"Shipping the new release today","mediaDescription":"screenshot"}`)
	expectStatus(t, rr, http.StatusCreated)
	post := decode[profile.Post](t, rr)
	if post.ID == "" || post.MediaDescription != "screenshot" {
		t.Fatalf("created post = %+v", post)
	}

	rr = doReq(h, http.MethodPost, "/api/posts/"+post.ID+"/feature", "")
	expectStatus(t, rr, http.StatusOK)
	if p := decode[profile.Post](t, rr); !p.IsFeatured {
		t.Error("post not featured after toggle")
	}

	rr = doReq(h, http.MethodGet, "/api/posts", "")
	expectStatus(t, rr, http.StatusOK)
	if posts := decode[[]profile.Post](t, rr); len(posts) != 1 {
		t.Fatalf("posts = %+v", posts)
	}

	rr = doReq(h, http.MethodGet, "/api/dashboard", "")
	expectStatus(t, rr, http.StatusOK)
	ov := decode[dashboard.Overview](t, rr)
	if ov.Stats.TotalPosts != 1 || ov.Stats.FeaturedCount != 1 {
		t.Errorf("stats = %+v", ov.Stats)
	}
	if len(ov.Analyses) != 1 || ov.Analyses[0].Post.ID != post.ID {
		t.Errorf("analyses = %+v", ov.Analyses)
	}
	if ov.Band != scoring.Label(ov.Score) {
		t.Errorf("band %+v does not match score %d", ov.Band, ov.Score)
	}

	rr = doReq(h, http.MethodDelete, "/api/posts/"+post.ID, "")
	expectStatus(t, rr, http.StatusOK)
	rr = doReq(h, http.MethodPost, "/api/posts/"+post.ID+"/feature", "")
	expectStatus(t, rr, http.StatusNotFound)

	rr = doReq(h, http.MethodPost, "/api/posts", `{"content":""}`)
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestDashboard_ProfileRaisesScore(t *testing.T) {
	h := newTestEnv(t).router()

	before := decode[dashboard.Overview](t, doReq(h, http.MethodGet, "/api/dashboard", ""))

	rr := doReq(h, http.MethodPatch, "/api/profile", `{"name":"Ada","fullName":"Ada Lovelace","headline":"Analytical engine programmer"}`)
	expectStatus(t, rr, http.StatusOK)
	if p := decode[profile.Profile](t, rr); p.FullName != "Ada Lovelace" {
		t.Errorf("patched profile = %+v", p)
	}

	after := decode[dashboard.Overview](t, doReq(h, http.MethodGet, "/api/dashboard", ""))
	if after.Score <= before.Score {
		t.Errorf("score did not rise: %d -> %d", before.Score, after.Score)
	}
	if after.DisplayName != "Ada Lovelace" {
		t.Errorf("display name = %q", after.DisplayName)
	}
}

func TestAnalyze(t *testing.T) {
	h := newTestEnv(t).router()

	rr := doReq(h, http.MethodPost, "/api/analyze", `{"content":"What do you think? #golang"}`)
	expectStatus(t, rr, http.StatusOK)
	a := decode[scoring.Analysis](t, rr)
	// short (-10), hook (+10), question (+10)
	if a.Score != 60 {
		t.Errorf("score = %d, want 60", a.Score)
	}
	if len(a.Strengths) != 2 || a.Strengths[0] != scoring.StrengthHook || a.Strengths[1] != scoring.StrengthCTA {
		t.Errorf("strengths = %v", a.Strengths)
	}

	rr = doReq(h, http.MethodPost, "/api/analyze", `{"content":"  "}`)
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestResetData(t *testing.T) {
	env := newTestEnv(t)
	h := env.router()

	doReq(h, http.MethodPost, "/api/onboarding/welcome/skip", "")
	doReq(h, http.MethodPost, "/api/posts", `{"content":"hello"}`)
	doReq(h, http.MethodPut, "/api/voice", `{"identityStatement":"I build compilers."}`)

	rr := doReq(h, http.MethodDelete, "/api/data", "")
	expectStatus(t, rr, http.StatusOK)
	if body := decode[map[string]string](t, rr); body["status"] != "cleared" {
		t.Errorf("body = %v", body)
	}

	keys, err := env.store.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("keys after reset = %v", keys)
	}
	if got := env.flow.Step(); got != onboarding.StepWelcome {
		t.Errorf("flow step after reset = %q", got)
	}
	if posts := env.profiles.Posts(); len(posts) != 0 {
		t.Errorf("posts after reset = %+v", posts)
	}
	if _, err := env.store.GetKey(storage.KeyVoiceConfig); err == nil {
		t.Error("voice config survived reset")
	}
}
