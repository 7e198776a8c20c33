package rotation

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"stylize-engine/backend/pkg/logger"
	"stylize-engine/backend/pkg/metrics"
)

// Vocabulary is a named, ordered list of prompt fragments.
type Vocabulary struct {
	Name      string
	Fragments []string
}

type generator struct {
	fragments []string
	tracker   *Tracker
}

// Registry maps vocabulary names to their fragments and rotation state.
// The set of vocabularies is fixed at construction; only tracker state changes afterwards.
type Registry struct {
	vocabs map[string]*generator
}

// NewRegistry builds one tracker per vocabulary. opts apply to every tracker.
func NewRegistry(vocabs []Vocabulary, opts ...Option) (*Registry, error) {
	r := &Registry{vocabs: make(map[string]*generator, len(vocabs))}
	for _, v := range vocabs {
		if v.Name == "" {
			return nil, fmt.Errorf("vocabulary name is required")
		}
		if len(v.Fragments) == 0 {
			return nil, fmt.Errorf("vocabulary %s has no fragments", v.Name)
		}
		if _, dup := r.vocabs[v.Name]; dup {
			return nil, fmt.Errorf("vocabulary %s registered twice", v.Name)
		}
		fragments := make([]string, len(v.Fragments))
		copy(fragments, v.Fragments)
		r.vocabs[v.Name] = &generator{
			fragments: fragments,
			tracker:   NewTracker(len(fragments), opts...),
		}
	}
	return r, nil
}

// MustNewRegistry panics on invalid vocabularies.
func MustNewRegistry(vocabs []Vocabulary, opts ...Option) *Registry {
	r, err := NewRegistry(vocabs, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether a vocabulary is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.vocabs[name]
	return ok
}

// Draw returns the next fragment from the named vocabulary.
func (r *Registry) Draw(name string) (string, error) {
	g, ok := r.vocabs[name]
	if !ok {
		return "", fmt.Errorf("vocabulary %q not registered", name)
	}

	idx, reason := g.tracker.Next()
	metrics.RotationDrawsTotal.WithLabelValues(name).Inc()
	if reason != ResetNone {
		metrics.RotationResetsTotal.WithLabelValues(name, string(reason)).Inc()
		logger.Get().Debug("Rotation reset",
			zap.String("vocabulary", name),
			zap.String("reason", string(reason)),
		)
	}
	return g.fragments[idx], nil
}

// Fragments returns a copy of the named vocabulary.
func (r *Registry) Fragments(name string) []string {
	g, ok := r.vocabs[name]
	if !ok {
		return nil
	}
	out := make([]string, len(g.fragments))
	copy(out, g.fragments)
	return out
}

// Tracker exposes the rotation state of a vocabulary, mainly for tests and diagnostics.
func (r *Registry) Tracker(name string) *Tracker {
	if g, ok := r.vocabs[name]; ok {
		return g.tracker
	}
	return nil
}

// Names lists registered vocabularies alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.vocabs))
	for name := range r.vocabs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size is the number of registered vocabularies.
func (r *Registry) Size() int {
	return len(r.vocabs)
}
