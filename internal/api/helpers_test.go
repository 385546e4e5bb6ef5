package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kalambet/olis/internal/dashboard"
	"github.com/kalambet/olis/internal/onboarding"
	"github.com/kalambet/olis/internal/profile"
	"github.com/kalambet/olis/internal/storage"
	"github.com/kalambet/olis/internal/voice"
)

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

type noopScheduler struct{}

func (noopScheduler) AfterFunc(time.Duration, func()) onboarding.Timer { return noopTimer{} }

type testEnv struct {
	store    *storage.Store
	profiles *profile.Manager
	flow     *onboarding.Controller
	wizard   *voice.Wizard
	deps     Deps
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	profiles := profile.NewManager(store)
	flow := onboarding.NewController(store, profiles, onboarding.Options{Scheduler: noopScheduler{}})
	t.Cleanup(flow.Close)
	wizard := voice.NewWizard(store)

	return &testEnv{
		store:    store,
		profiles: profiles,
		flow:     flow,
		wizard:   wizard,
		deps: Deps{
			Store:          store,
			Onboarding:     flow,
			Voice:          wizard,
			Dashboard:      dashboard.New(store, profiles, flow, wizard),
			Environment:    "test",
			Version:        "1.2.3",
			StartedAt:      testStart,
			AllowedOrigins: []string{"http://localhost:3000"},
			Now:            func() time.Time { return testStart.Add(90 * time.Second) },
		},
	}
}

func (e *testEnv) router() http.Handler {
	return NewRouter(e.deps)
}

func doReq(h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rr.Code, want, rr.Body.String())
	}
}

func uploadReq(t *testing.T, url, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(data)
	mw.Close()

	req := httptest.NewRequest(http.MethodPut, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// testPDF builds a well-formed PDF with one blank page.
func testPDF() []byte {
	var buf bytes.Buffer
	var offsets []int
	buf.WriteString("%PDF-1.4\n")
	for _, body := range []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	} {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}
