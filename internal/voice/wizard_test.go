package voice

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kalambet/olis/internal/storage"
)

func TestNewWizard_Defaults(t *testing.T) {
	w := NewWizard(storage.NewMemory())
	cfg := w.Config()

	if cfg.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", cfg.CurrentStep)
	}
	if cfg.Goals == nil || cfg.DoRules == nil || cfg.CustomBoundaries == nil {
		t.Error("default slices should be empty, not nil")
	}
	if cfg.Approved || cfg.Generated() {
		t.Error("defaults should not be generated or approved")
	}
	if st := w.Step(); st.Title != "Goals" || st.Part != 1 || st.PartTitle != "Purpose" {
		t.Errorf("Step = %+v", st)
	}
}

func TestSteps_PartsLayout(t *testing.T) {
	parts := map[int][]int{}
	for _, s := range Steps() {
		parts[s.Part] = append(parts[s.Part], s.Number)
	}
	want := map[int][]int{1: {1, 2, 3}, 2: {4, 5}, 3: {6, 7, 8}, 4: {9, 10, 11}}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("parts = %v, want %v", parts, want)
	}
}

func TestSetSelections(t *testing.T) {
	store := storage.NewMemory()
	w := NewWizard(store)

	cfg, err := w.SetSelections(Tone, []string{"Bold", "Witty", "Bold"})
	if err != nil {
		t.Fatalf("SetSelections: %v", err)
	}
	if want := []string{"Bold", "Witty"}; !reflect.DeepEqual(cfg.Tone, want) {
		t.Errorf("Tone = %v, want %v", cfg.Tone, want)
	}

	if _, err := w.SetSelections(Tone, []string{"Grumpy"}); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("unknown option error = %v", err)
	}
	if _, err := w.SetSelections("mood", nil); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category error = %v", err)
	}

	// Persisted.
	if got := NewWizard(store).Config().Tone; !reflect.DeepEqual(got, []string{"Bold", "Witty"}) {
		t.Errorf("reloaded Tone = %v", got)
	}
}

func TestCustomEntries(t *testing.T) {
	w := NewWizard(storage.NewMemory())

	if _, err := w.AddCustom(Goals, "  Find co-founders "); err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	cfg, _ := w.AddCustom(Goals, "Find co-founders")
	if want := []string{"Find co-founders"}; !reflect.DeepEqual(cfg.CustomGoals, want) {
		t.Errorf("CustomGoals = %v, want %v", cfg.CustomGoals, want)
	}

	if _, err := w.AddCustom(Goals, "   "); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("blank custom error = %v", err)
	}
	if _, err := w.AddCustom(Formatting, "Tables"); !errors.Is(err, ErrNoCustom) {
		t.Errorf("formatting custom error = %v", err)
	}
	if _, err := w.AddCustom("mood", "x"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category error = %v", err)
	}

	cfg, err := w.RemoveCustom(Goals, "Find co-founders")
	if err != nil {
		t.Fatalf("RemoveCustom: %v", err)
	}
	if len(cfg.CustomGoals) != 0 {
		t.Errorf("CustomGoals after remove = %v", cfg.CustomGoals)
	}
}

func TestSetIntentRatio(t *testing.T) {
	w := NewWizard(storage.NewMemory())

	// Totals other than 100 are accepted.
	cfg, err := w.SetIntentRatio(IntentRatio{Educate: 50, Inspire: 30, Connect: 40})
	if err != nil {
		t.Fatalf("SetIntentRatio: %v", err)
	}
	if cfg.IntentRatio.Total() != 120 {
		t.Errorf("Total = %d, want 120", cfg.IntentRatio.Total())
	}

	if _, err := w.SetIntentRatio(IntentRatio{Promote: 101}); !errors.Is(err, ErrInvalidRatio) {
		t.Errorf("out-of-range error = %v", err)
	}
	if _, err := w.SetIntentRatio(IntentRatio{Educate: -1}); !errors.Is(err, ErrInvalidRatio) {
		t.Errorf("negative error = %v", err)
	}
}

func TestApproveRequiresGeneration(t *testing.T) {
	w := NewWizard(storage.NewMemory())

	if _, err := w.Approve(); !errors.Is(err, ErrNotGenerated) {
		t.Fatalf("Approve before Generate = %v, want ErrNotGenerated", err)
	}

	w.SetSelections(Tone, []string{"Conversational"})
	gen := w.Generate()
	if !gen.Generated() {
		t.Fatal("Generate left derived fields empty")
	}
	cfg, err := w.Approve()
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !cfg.Approved || cfg.ToneName == "" || cfg.ToneManifesto == "" {
		t.Errorf("approved config = %+v", cfg)
	}
}

func TestEditAfterApprovalClearsApproval(t *testing.T) {
	w := NewWizard(storage.NewMemory())
	w.Generate()
	w.Approve()

	cfg := w.SetIdentity("I help teams ship")
	if cfg.Approved {
		t.Error("edit should clear approval")
	}
	if !cfg.Generated() {
		t.Error("derived output should stay visible after an edit")
	}
}

func TestNavigation(t *testing.T) {
	w := NewWizard(storage.NewMemory())

	if _, err := w.Back(); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("Back from 1 = %v, want ErrInvalidStep", err)
	}
	st, err := w.Next()
	if err != nil || st.Number != 2 {
		t.Fatalf("Next = %+v, %v", st, err)
	}
	if _, err := w.GoTo(0); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("GoTo(0) = %v", err)
	}
	if _, err := w.GoTo(12); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("GoTo(12) = %v", err)
	}

	// Entering review generates the voice, which unlocks the approve step.
	st, err = w.GoTo(10)
	if err != nil || st.Title != "Review" {
		t.Fatalf("GoTo(10) = %+v, %v", st, err)
	}
	if !w.Config().Generated() {
		t.Fatal("review step should generate the voice")
	}
	st, err = w.Next()
	if err != nil || st.Number != 11 {
		t.Fatalf("Next into approve = %+v, %v", st, err)
	}
	if _, err := w.Next(); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("Next past the end = %v", err)
	}
}

func TestGoToApproveWithoutGeneration(t *testing.T) {
	w := NewWizard(storage.NewMemory())
	if _, err := w.GoTo(11); !errors.Is(err, ErrNotGenerated) {
		t.Errorf("GoTo(11) = %v, want ErrNotGenerated", err)
	}
	if w.Step().Number != 1 {
		t.Errorf("failed jump moved the wizard to %d", w.Step().Number)
	}
}

func TestReset(t *testing.T) {
	store := storage.NewMemory()
	w := NewWizard(store)
	w.SetSelections(Goals, []string{"Grow my network"})
	w.GoTo(5)

	cfg := w.Reset()
	if !reflect.DeepEqual(cfg, Defaults()) {
		t.Errorf("Reset = %+v, want defaults", cfg)
	}
	if _, err := store.GetKey(storage.KeyVoiceConfig); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("voice_config should be deleted, got %v", err)
	}
}

func TestReload_NormalizesStoredConfig(t *testing.T) {
	store := storage.NewMemory()
	store.SetKey(storage.KeyVoiceConfig, `{"goals":null,"currentStep":40,"approved":true}`)

	cfg := NewWizard(store).Config()
	if cfg.CurrentStep != TotalSteps {
		t.Errorf("CurrentStep = %d, want %d", cfg.CurrentStep, TotalSteps)
	}
	if cfg.Goals == nil {
		t.Error("nil slice not normalized")
	}
	if cfg.Approved {
		t.Error("approved without generated output must not survive a reload")
	}
}

func TestReload_MalformedFallsBack(t *testing.T) {
	store := storage.NewMemory()
	store.SetKey(storage.KeyVoiceConfig, "{not json")
	if cfg := NewWizard(store).Config(); !reflect.DeepEqual(cfg, Defaults()) {
		t.Errorf("malformed config = %+v, want defaults", cfg)
	}
}

func TestDerive(t *testing.T) {
	c := Defaults()
	c.Identity = "I turn messy data into product decisions"
	c.Audience = []string{"Founders and executives"}
	c.Topics = []string{"Technology", "Lessons learned"}
	c.Goals = []string{"Build thought leadership"}
	c.Tone = []string{"Analytical", "Conversational", "Bold"}
	c.Style = []string{"Case studies"}
	c.CustomStyle = []string{"Always include one chart"}
	c.Formatting = []string{"Line breaks"}
	c.Boundaries = []string{"No politics"}
	c.CustomBoundaries = []string{"No salary talk"}
	c.IntentRatio = IntentRatio{Educate: 50, Inspire: 20, Connect: 30}

	got := Derive(c)

	if got.ToneName != "The Analytical & Conversational Educator" {
		t.Errorf("ToneName = %q", got.ToneName)
	}
	wantManifesto := "I turn messy data into product decisions. " +
		"I write for founders and executives. " +
		"I talk about technology and lessons learned. " +
		"I post to build thought leadership. " +
		"My voice is analytical, conversational and bold."
	if got.ToneManifesto != wantManifesto {
		t.Errorf("ToneManifesto = %q\nwant %q", got.ToneManifesto, wantManifesto)
	}
	wantDo := []string{
		"Support opinions with numbers or concrete examples",
		"Write the way you would say it out loud",
		"State your position in the first line",
		"Show the before, the change and the result",
		"Separate ideas with blank lines",
		"Always include one chart",
	}
	if !reflect.DeepEqual(got.DoRules, wantDo) {
		t.Errorf("DoRules = %v\nwant %v", got.DoRules, wantDo)
	}
	wantDont := []string{"Avoid political commentary", "No salary talk"}
	if !reflect.DeepEqual(got.DontRules, wantDont) {
		t.Errorf("DontRules = %v, want %v", got.DontRules, wantDont)
	}

	// Input is not mutated and output is deterministic.
	if c.ToneName != "" {
		t.Error("Derive mutated its input")
	}
	if again := Derive(c); !reflect.DeepEqual(again, got) {
		t.Error("Derive is not deterministic")
	}
}

func TestDerive_EmptyAnswers(t *testing.T) {
	got := Derive(Defaults())
	if got.ToneName != "The Authentic Voice" {
		t.Errorf("ToneName = %q", got.ToneName)
	}
	if !strings.HasSuffix(got.ToneManifesto, ".") {
		t.Errorf("ToneManifesto = %q", got.ToneManifesto)
	}
	if len(got.DoRules) != 1 || len(got.DontRules) != 1 {
		t.Errorf("fallback rules = %v / %v", got.DoRules, got.DontRules)
	}
}

func TestArchetypeTieGoesToFirst(t *testing.T) {
	if got := archetype(IntentRatio{Inspire: 30, Connect: 30}); got != "Motivator" {
		t.Errorf("archetype = %q, want Motivator", got)
	}
}

func TestLowerAllKeepsAcronyms(t *testing.T) {
	got := lowerAll([]string{"Investors", "AI tools", "x"})
	want := []string{"investors", "AI tools", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lowerAll = %v, want %v", got, want)
	}
}
