package voice

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/kalambet/olis/internal/storage"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownOption   = errors.New("unknown option")
	ErrNoCustom        = errors.New("category does not accept custom entries")
	ErrEmptyValue      = errors.New("value must not be empty")
	ErrInvalidStep     = errors.New("invalid step")
	ErrInvalidRatio    = errors.New("intent percentages must be between 0 and 100")
	ErrNotGenerated    = errors.New("voice has not been generated")
)

const reviewStep = 10

// Wizard owns the voice config and writes every change through to the store.
type Wizard struct {
	store storage.KeyValue

	mu  sync.Mutex
	cfg Config
}

// NewWizard hydrates a Wizard from the stored voice config.
func NewWizard(store storage.KeyValue) *Wizard {
	w := &Wizard{store: store}
	w.Reload()
	return w
}

// Reload re-reads the config from the store.
func (w *Wizard) Reload() {
	cfg := storage.Get(w.store, storage.KeyVoiceConfig, Defaults())
	cfg.normalize()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg = cfg
}

// Config returns a copy of the current config.
func (w *Wizard) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg.clone()
}

// Step describes the step the wizard is on.
func (w *Wizard) Step() StepInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return steps[w.cfg.CurrentStep-1]
}

// Next moves forward one step. Entering the review step regenerates the
// voice; entering the approval step requires it to be generated.
func (w *Wizard) Next() (StepInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.goTo(w.cfg.CurrentStep + 1)
}

// Back moves to the previous step.
func (w *Wizard) Back() (StepInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.goTo(w.cfg.CurrentStep - 1)
}

// GoTo jumps to step n (1-based).
func (w *Wizard) GoTo(n int) (StepInfo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.goTo(n)
}

func (w *Wizard) goTo(n int) (StepInfo, error) {
	if n < 1 || n > TotalSteps {
		return steps[w.cfg.CurrentStep-1], fmt.Errorf("%w: %d", ErrInvalidStep, n)
	}
	if n == reviewStep {
		w.cfg = Derive(w.cfg)
	}
	if n == TotalSteps && !w.cfg.Generated() {
		return steps[w.cfg.CurrentStep-1], ErrNotGenerated
	}
	w.cfg.CurrentStep = n
	w.persist()
	return steps[n-1], nil
}

// SetSelections replaces the chosen options of cat. Labels must come from the
// category catalogue; duplicates are dropped.
func (w *Wizard) SetSelections(cat Category, labels []string) (Config, error) {
	if Catalog(cat) == nil {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	chosen := []string{}
	for _, l := range labels {
		if _, ok := lookup(cat, l); !ok {
			return Config{}, fmt.Errorf("%w: %q in %s", ErrUnknownOption, l, cat)
		}
		chosen = appendUnique(chosen, l)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	*w.cfg.selections(cat) = chosen
	w.edited()
	return w.cfg.clone(), nil
}

// AddCustom appends a free-text entry to cat. Re-adding an existing entry is a
// no-op.
func (w *Wizard) AddCustom(cat Category, text string) (Config, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Config{}, ErrEmptyValue
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	dst, err := w.customSlice(cat)
	if err != nil {
		return Config{}, err
	}
	if !slices.Contains(*dst, text) {
		*dst = append(*dst, text)
		w.edited()
	}
	return w.cfg.clone(), nil
}

// RemoveCustom drops a custom entry from cat.
func (w *Wizard) RemoveCustom(cat Category, text string) (Config, error) {
	text = strings.TrimSpace(text)

	w.mu.Lock()
	defer w.mu.Unlock()
	dst, err := w.customSlice(cat)
	if err != nil {
		return Config{}, err
	}
	if i := slices.Index(*dst, text); i >= 0 {
		*dst = slices.Delete(*dst, i, i+1)
		w.edited()
	}
	return w.cfg.clone(), nil
}

func (w *Wizard) customSlice(cat Category) (*[]string, error) {
	if Catalog(cat) == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	dst := w.cfg.custom(cat)
	if dst == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCustom, cat)
	}
	return dst, nil
}

// SetIntentRatio stores the content mix. Each share must be within 0..100;
// the total is not checked.
func (w *Wizard) SetIntentRatio(r IntentRatio) (Config, error) {
	for _, v := range []int{r.Educate, r.Inspire, r.Entertain, r.Promote, r.Connect} {
		if v < 0 || v > 100 {
			return Config{}, ErrInvalidRatio
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg.IntentRatio = r
	w.edited()
	return w.cfg.clone(), nil
}

// SetIdentity stores the identity statement.
func (w *Wizard) SetIdentity(statement string) Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg.Identity = strings.TrimSpace(statement)
	w.edited()
	return w.cfg.clone()
}

// Generate (re)derives the tone fields from the current answers. Approval is
// cleared since the output may have changed.
func (w *Wizard) Generate() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg = Derive(w.cfg)
	w.cfg.Approved = false
	w.persist()
	return w.cfg.clone()
}

// Approve marks the generated voice as accepted.
func (w *Wizard) Approve() (Config, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.cfg.Generated() {
		return Config{}, ErrNotGenerated
	}
	w.cfg.Approved = true
	w.persist()
	return w.cfg.clone(), nil
}

// Reset deletes the stored config and starts over from defaults.
func (w *Wizard) Reset() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.store.DeleteKey(storage.KeyVoiceConfig); err != nil {
		slog.Warn("deleting voice config failed", "error", err)
	}
	w.cfg = Defaults()
	return w.cfg.clone()
}

// edited records an answer change. Derived output is kept for display but
// must be approved again. Must be called with mu held.
func (w *Wizard) edited() {
	w.cfg.Approved = false
	w.persist()
}

func (w *Wizard) persist() {
	if err := storage.Set(w.store, storage.KeyVoiceConfig, w.cfg); err != nil {
		slog.Warn("persisting voice config failed", "error", err)
	}
}
