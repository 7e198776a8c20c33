package router

import (
	"stylize-engine/backend/internal/catalog"
	apperrors "stylize-engine/backend/pkg/errors"
)

// PresetCatalog is the read-only view of the preset tables the router needs.
type PresetCatalog interface {
	Contains(f catalog.Family, id string) bool
	Lookup(f catalog.Family, id string) (catalog.Entry, bool)
}

type rule struct {
	family catalog.Family
	match  func(id string) bool
}

// Classifier maps a preset identifier to exactly one family by evaluating
// membership rules in a fixed order. The first matching rule wins.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the ordered rule list:
// region-aware editing, mood mask, reaction overlay, glitch overlay, then professional.
func NewClassifier(c PresetCatalog) *Classifier {
	member := func(f catalog.Family) rule {
		return rule{family: f, match: func(id string) bool { return c.Contains(f, id) }}
	}
	return &Classifier{
		rules: []rule{
			member(catalog.FamilyRegionAwareEditing),
			member(catalog.FamilyMoodMask),
			member(catalog.FamilyReactionOverlay),
			member(catalog.FamilyGlitchOverlay),
			// anything left is assumed professional and must be in that table
			member(catalog.FamilyProfessional),
		},
	}
}

// Classify returns the family for id, or an *errors.ErrUnknownPreset.
func (c *Classifier) Classify(id string) (catalog.Family, error) {
	for _, r := range c.rules {
		if r.match(id) {
			return r.family, nil
		}
	}
	return 0, apperrors.NewUnknownPreset(id)
}

// Order lists families in the order they are tried.
func (c *Classifier) Order() []catalog.Family {
	out := make([]catalog.Family, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.family
	}
	return out
}
