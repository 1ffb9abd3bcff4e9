package i18n

import (
	"fmt"
	"sync"

	"github.com/apex/log"
)

var tables = map[string]map[string]string{
	"en": english,
	"hi": hindi,
	"mr": marathi,
	"ta": tamil,
}

// Lookup resolves key for code: the code's table first, then English, then
// the key itself.
func Lookup(code, key string) string {
	if m, ok := tables[code]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := tables[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Persister stores the language selection.
type Persister interface {
	Language() string
	SetLanguage(code string) error
}

// Resolver holds the active language and translates keys with it.
type Resolver struct {
	mu         sync.RWMutex
	active     string
	generation uint64
	store      Persister
}

// NewResolver restores the persisted selection. Unknown stored codes are
// treated as English.
func NewResolver(store Persister) *Resolver {
	return &Resolver{
		active: Normalize(store.Language()),
		store:  store,
	}
}

func (r *Resolver) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

func (r *Resolver) T(key string) string {
	r.mu.RLock()
	code := r.active
	r.mu.RUnlock()
	return Lookup(code, key)
}

// SetLanguage selects code, normalising unknown codes to English, and
// persists the result before it takes effect. It returns the code that
// became active.
func (r *Resolver) SetLanguage(code string) (string, error) {
	normalized := Normalize(code)
	if normalized != code {
		log.WithFields(log.Fields{"requested": code, "using": normalized}).Warn("unsupported language")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.SetLanguage(normalized); err != nil {
		return r.active, fmt.Errorf("set language %q: %w", normalized, err)
	}
	if r.active != normalized {
		r.active = normalized
		r.generation++
	}
	return normalized, nil
}

// Generation changes every time the active language does.
func (r *Resolver) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// Labels is a set of strings translated once. It is not patched when the
// language changes; callers check Stale and Reload.
type Labels struct {
	r      *Resolver
	keys   []string
	values []string
	gen    uint64
}

func (r *Resolver) Labels(keys ...string) *Labels {
	l := &Labels{r: r, keys: append([]string(nil), keys...)}
	l.Reload()
	return l
}

func (l *Labels) Values() []string {
	return append([]string(nil), l.values...)
}

func (l *Labels) Stale() bool {
	return l.r.Generation() != l.gen
}

func (l *Labels) Reload() {
	l.r.mu.RLock()
	code, gen := l.r.active, l.r.generation
	l.r.mu.RUnlock()

	values := make([]string, len(l.keys))
	for i, k := range l.keys {
		values[i] = Lookup(code, k)
	}
	l.values, l.gen = values, gen
}
