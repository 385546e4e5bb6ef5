package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kalambet/olis/internal/config"
	"github.com/kalambet/olis/internal/dashboard"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/scoring"
	"github.com/kalambet/olis/internal/voice"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.RequestURI(),
			Body:   body.String(),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":{"message":"not found","type":"not_found"}}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		httpClient: ts.server.Client(),
	}
}

// useClient points every command at ts for the duration of the test.
func (ts *testServer) useClient(t *testing.T) {
	t.Helper()
	old := newAPIClient
	newAPIClient = func() (*apiClient, error) { return ts.client(), nil }
	t.Cleanup(func() { newAPIClient = old })
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

var ctx = context.Background()

func TestPostsAdd(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /posts": `{"id":"8f1c2a7e-0000-0000-0000-000000000000","content":"Shipped it","isFeatured":true}`,
	})
	ts.useClient(t)

	if _, err := execute(t, "posts", "add", "--featured", "--media", "chart", "Shipped", "it"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	postsAddCmd.Flags().Set("featured", "false")
	postsAddCmd.Flags().Set("media", "")

	if len(ts.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ts.requests))
	}
	r := ts.requests[0]
	if r.Method != "POST" || r.Path != "/posts" {
		t.Errorf("request = %s %s, want POST /posts", r.Method, r.Path)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(r.Body), &body); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if body["content"] != "Shipped it" || body["isFeatured"] != true || body["mediaDescription"] != "chart" {
		t.Errorf("body = %v", body)
	}
}

func TestPostsList(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /posts": `[{"id":"8f1c2a7e-aaaa","content":"First\npost","isFeatured":true},{"id":"12345678-bbbb","content":"Second"}]`,
	})
	ts.useClient(t)
	noColor = true
	t.Cleanup(func() { noColor = false })

	out, err := execute(t, "posts", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "★ 8f1c2a7e  First post") {
		t.Errorf("featured post line missing in %q", out)
	}
	if !strings.Contains(out, "12345678  Second") {
		t.Errorf("second post line missing in %q", out)
	}
}

func TestAnalyzeCommand_MissingArgs(t *testing.T) {
	_, err := execute(t, "analyze")
	if err == nil {
		t.Fatal("expected error for missing args")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("error = %q, want it to mention 'required'", err.Error())
	}
}

func TestAnalyzeCommand(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /analyze": `{"strengths":["Strong opening hook"],"improvements":["Add line breaks to improve readability"],"score":60}`,
	})
	ts.useClient(t)

	out, err := execute(t, "analyze", "What", "do", "you", "think?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ts.requests[0].Body, `"What do you think?"`) {
		t.Errorf("body = %s", ts.requests[0].Body)
	}
	if !strings.Contains(out, "60/100") || !strings.Contains(out, "Strong opening hook") {
		t.Errorf("output = %q", out)
	}
}

func TestDataReset_RequiresConfirm(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"DELETE /data": `{"status":"cleared"}`,
	})
	ts.useClient(t)

	if _, err := execute(t, "data", "reset"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ts.requests) != 0 {
		t.Fatalf("reset without --confirm sent %d requests", len(ts.requests))
	}

	if _, err := execute(t, "data", "reset", "--confirm"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dataResetCmd.Flags().Set("confirm", "false")
	if len(ts.requests) != 1 || ts.requests[0].Method != "DELETE" || ts.requests[0].Path != "/data" {
		t.Errorf("requests = %+v", ts.requests)
	}
}

func TestProfileSet(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"PATCH /profile": `{"name":"Ada"}`,
	})
	ts.useClient(t)

	if _, err := execute(t, "profile", "set", "skills", "Go, SQL ,,Rust"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sent map[string][]string
	if err := json.Unmarshal([]byte(ts.requests[0].Body), &sent); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if got := sent["skills"]; len(got) != 3 || got[0] != "Go" || got[1] != "SQL" || got[2] != "Rust" {
		t.Errorf("skills = %v", got)
	}

	_, err := execute(t, "profile", "set", "favouriteColor", "blue")
	if err == nil || !strings.Contains(err.Error(), "unknown profile field") {
		t.Errorf("err = %v, want unknown profile field", err)
	}
	if len(ts.requests) != 1 {
		t.Errorf("unknown field still sent a request")
	}
}

func TestOnboardingShow_Complete(t *testing.T) {
	// A finished flow redirects to the dashboard.
	mux := http.NewServeMux()
	mux.HandleFunc("/onboarding", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"onboardingComplete":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := &apiClient{baseURL: srv.URL, httpClient: srv.Client()}
	resp, err := client.get(ctx, "/onboarding")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	if err := onboardingResult(&out, resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("completed flow rendered state: %q", out.String())
	}
}

func TestOnboardingShow_InProgress(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /onboarding": `{"complete":false,"step":"profile-setup","stepIndex":1,"canAdvance":false,"profile":{"name":"Ada"},"posts":[]}`,
	})
	ts.useClient(t)
	noColor = true
	t.Cleanup(func() { noColor = false })

	out, err := execute(t, "onboarding", "show")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Step: profile-setup (2 of 5)", "Next: Continue (blocked)", "Name: Ada"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOnboardingAttach(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"PUT /onboarding/attachment": `{"complete":false,"step":"profile-setup","stepIndex":1,"canAdvance":true,"profile":{"name":"Ada","attachmentName":"cv.pdf"},"posts":[]}`,
	})
	ts.useClient(t)
	noColor = true
	t.Cleanup(func() { noColor = false })

	path := filepath.Join(t.TempDir(), "cv.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "onboarding", "attach", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ts.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(ts.requests))
	}
	r := ts.requests[0]
	if r.Method != "PUT" || r.Path != "/onboarding/attachment" {
		t.Errorf("request = %s %s", r.Method, r.Path)
	}
	for _, want := range []string{`name="file"`, `filename="cv.pdf"`, "%PDF-1.4 fake"} {
		if !strings.Contains(r.Body, want) {
			t.Errorf("multipart body missing %q", want)
		}
	}
	if !strings.Contains(out, "Attachment: cv.pdf") {
		t.Errorf("output missing attachment:\n%s", out)
	}
}

func TestOnboardingAttach_MissingFile(t *testing.T) {
	ts := newTestServer(t, map[string]string{})
	ts.useClient(t)

	if _, err := execute(t, "onboarding", "attach", filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if len(ts.requests) != 0 {
		t.Errorf("expected no requests, got %d", len(ts.requests))
	}
}

func TestOnboardingEdit(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"POST /onboarding/edit/posts": `{"complete":false,"step":"post-history","stepIndex":2,"canAdvance":true,"profile":{"name":"Ada"},"posts":[]}`,
	})
	ts.useClient(t)

	if _, err := execute(t, "onboarding", "edit", "posts"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ts.requests) != 1 || ts.requests[0].Path != "/onboarding/edit/posts" {
		t.Fatalf("requests = %+v", ts.requests)
	}

	if _, err := execute(t, "onboarding", "edit", "experience"); err == nil {
		t.Error("expected an error for an unknown section")
	}
	if len(ts.requests) != 1 {
		t.Errorf("unknown section reached the server: %+v", ts.requests)
	}
}

func TestStatusCommand_Stopped(t *testing.T) {
	ts := newTestServer(t, map[string]string{})
	ts.server.Close()

	client := ts.client()
	_, err := client.get(ctx, "/health")
	if err == nil {
		t.Fatal("expected error for stopped server")
	}
	if !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("error = %q, want it to mention 'not reachable'", err.Error())
	}
}

func TestDecodeJSON_ErrorResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"message":"step requirements not met","type":"step_incomplete"},"state":{}}`))
	}))
	defer ts.Close()

	client := &apiClient{baseURL: ts.URL, httpClient: ts.Client()}
	resp, err := client.post(ctx, "/onboarding/advance", nil)
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}

	var result any
	err = decodeJSON(resp, &result)
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if err.Error() != "server returned 409: step requirements not met" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestNoColorFlag(t *testing.T) {
	old := noColor
	defer func() { noColor = old }()

	noColor = true
	result := colorize(colorGreen, "test message")
	if strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=true should not contain ANSI codes, got %q", result)
	}
	if result != "test message" {
		t.Errorf("result = %q, want %q", result, "test message")
	}

	noColor = false
	result = colorize(colorGreen, "test message")
	if !strings.Contains(result, "\033[") {
		t.Errorf("colorize with noColor=false should contain ANSI codes, got %q", result)
	}
}

func TestRenderOverview(t *testing.T) {
	noColor = true
	t.Cleanup(func() { noColor = false })

	ov := dashboard.Overview{
		DisplayName:         "Ada Lovelace",
		Profile:             profile.Profile{Headline: "Engineer"},
		Score:               42,
		Band:                scoring.Label(42),
		Stats:               scoring.Stats{TotalPosts: 3, FeaturedCount: 1, AvgLength: 120},
		HeadlineSuggestions: []string{"Engineer | Helping teams"},
		Voice:               dashboard.VoiceStatus{Step: 4},
	}
	var out bytes.Buffer
	renderOverview(&out, ov)

	for _, want := range []string{
		"Ada Lovelace",
		"Score: 42/100",
		"Band: " + ov.Band.Label,
		"Posts: 3",
		"→ Engineer | Helping teams",
		"(none)",
		"step 4 of 11",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRenderOnboarding(t *testing.T) {
	noColor = true
	t.Cleanup(func() { noColor = false })

	var out bytes.Buffer
	renderOnboarding(&out, onboarding.State{
		Step:         onboarding.StepPostHistory,
		StepIndex:    2,
		CanAdvance:   true,
		AdvanceLabel: "Skip for now",
	})
	if !strings.Contains(out.String(), "Step: post-history (3 of 5)") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "Next: Skip for now") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRenderVoice(t *testing.T) {
	noColor = true
	t.Cleanup(func() { noColor = false })

	cfg := voice.Derive(voice.Defaults())
	cfg.Approved = true
	var out bytes.Buffer
	renderVoice(&out, voiceView{Config: cfg, Step: voice.Steps()[10]})

	if !strings.Contains(out.String(), cfg.ToneName+" (approved)") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(out.String(), "Step: 11 of 11") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	renderVoice(&out, voiceView{Config: voice.Defaults(), Step: voice.Steps()[0]})
	if !strings.Contains(out.String(), "not generated yet") {
		t.Errorf("output = %q", out.String())
	}
}

func TestConfigShowAll(t *testing.T) {
	cfg := config.Config{}
	cfg.Server.Port = 4000

	found := false
	for _, k := range config.ShowAll(cfg) {
		if k.Key == "server.port" && k.Value == "4000" {
			found = true
		}
	}
	if !found {
		t.Error("expected to find server.port=4000 in ShowAll output")
	}
}

func TestPIDFile(t *testing.T) {
	path := pidFilePath(filepath.Join(t.TempDir(), "nested"))
	if err := writePIDFile(path); err != nil {
		t.Fatalf("writePIDFile: %v", err)
	}
	pid, err := readPIDFile(path)
	if err != nil {
		t.Fatalf("readPIDFile: %v", err)
	}
	if pid <= 0 {
		t.Errorf("pid = %d", pid)
	}
	removePIDFile(path)
	if _, err := readPIDFile(path); err == nil {
		t.Error("PID file still readable after removal")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"line one\n\nline two", 80, "line one line two"},
		{"héllo wörld", 5, "héllo..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
