package catalog

import (
	"fmt"
	"strings"

	"stylize-engine/backend/internal/rotation"
	apperrors "stylize-engine/backend/pkg/errors"
)

// Catalog holds one read-only table per family. Identifiers are unique across all tables.
type Catalog struct {
	tables map[Family]map[string]Entry
	order  map[Family][]string
}

// New builds a catalog from entries, rejecting duplicate identifiers and unknown families.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		tables: make(map[Family]map[string]Entry, len(Families())),
		order:  make(map[Family][]string, len(Families())),
	}
	for _, f := range Families() {
		c.tables[f] = make(map[string]Entry)
	}

	seen := make(map[string]Family, len(entries))
	for _, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		if e.ID == "" {
			return nil, apperrors.NewCatalogInvalid("<empty>", "identifier is required")
		}
		if !e.Family.Valid() {
			return nil, apperrors.NewCatalogInvalid(e.ID, "family is not set")
		}
		if prev, dup := seen[e.ID]; dup {
			return nil, apperrors.NewCatalogInvalid(e.ID, fmt.Sprintf("identifier already registered in %s", prev))
		}
		seen[e.ID] = e.Family
		c.tables[e.Family][e.ID] = e
		c.order[e.Family] = append(c.order[e.Family], e.ID)
	}
	return c, nil
}

// MustNew is New for static tables known to be well formed.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalogs.
func Default() *Catalog {
	return MustNew(builtinEntries()...)
}

func builtinEntries() []Entry {
	var all []Entry
	all = append(all, regionEntries...)
	all = append(all, moodEntries...)
	all = append(all, reactionEntries...)
	all = append(all, glitchEntries...)
	all = append(all, professionalEntries...)
	return all
}

// Contains reports whether id is registered in the given family's table.
func (c *Catalog) Contains(f Family, id string) bool {
	_, ok := c.tables[f][id]
	return ok
}

// Lookup returns the entry for id within family f.
func (c *Catalog) Lookup(f Family, id string) (Entry, bool) {
	e, ok := c.tables[f][id]
	return e, ok
}

// Entries returns a family's entries in declaration order.
func (c *Catalog) Entries(f Family) []Entry {
	ids := c.order[f]
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tables[f][id])
	}
	return out
}

// All returns every entry, family by family in classification order.
func (c *Catalog) All() []Entry {
	var out []Entry
	for _, f := range Families() {
		out = append(out, c.Entries(f)...)
	}
	return out
}

// Len is the total number of entries.
func (c *Catalog) Len() int {
	n := 0
	for _, ids := range c.order {
		n += len(ids)
	}
	return n
}

// Merge returns a new catalog containing c's entries followed by extra.
// Identifier uniqueness is enforced across the combined set.
func (c *Catalog) Merge(extra ...Entry) (*Catalog, error) {
	return New(append(c.All(), extra...)...)
}

// VocabularySet is satisfied by the fragment registry.
type VocabularySet interface {
	Has(name string) bool
}

// Validate checks every invariant the router relies on at request time:
// strengths within [0,1], randomized presets with a template, every {TOKEN} bound to a
// registered vocabulary, and no placeholder left in a fixed prompt.
func Validate(c *Catalog, vocabularies VocabularySet) error {
	for _, e := range c.All() {
		if e.Strength < 0 || e.Strength > 1 {
			return apperrors.NewCatalogInvalid(e.ID, fmt.Sprintf("strength %.2f outside [0,1]", e.Strength))
		}
		if strings.TrimSpace(e.Prompt) == "" && strings.TrimSpace(e.BasePrompt) == "" {
			return apperrors.NewCatalogInvalid(e.ID, "prompt is empty")
		}
		if e.Region != nil && e.Family != FamilyRegionAwareEditing {
			return apperrors.NewCatalogInvalid(e.ID, "region settings on a non region-aware preset")
		}
		if e.Region != nil {
			for _, layer := range e.Region.Layers {
				if layer.Region != RegionSubject && layer.Region != RegionBackground {
					return apperrors.NewCatalogInvalid(e.ID, fmt.Sprintf("unknown region %q", layer.Region))
				}
			}
		}

		if !e.IsRandomized {
			if tokens := rotation.Placeholders(e.Prompt); len(tokens) > 0 {
				return apperrors.NewCatalogInvalid(e.ID, fmt.Sprintf("fixed prompt contains placeholder {%s}", tokens[0]))
			}
			continue
		}

		if strings.TrimSpace(e.BasePrompt) == "" {
			return apperrors.NewCatalogInvalid(e.ID, "randomized preset has no base prompt")
		}
		tokens := rotation.Placeholders(e.BasePrompt)
		if len(tokens) == 0 {
			return apperrors.NewCatalogInvalid(e.ID, "randomized base prompt has no placeholders")
		}
		for _, tok := range tokens {
			if tok != strings.ToUpper(tok) {
				return apperrors.NewCatalogInvalid(e.ID, fmt.Sprintf("placeholder {%s} must be upper case", tok))
			}
			vocab, ok := e.Tokens[tok]
			if !ok || !vocabularies.Has(vocab) {
				return apperrors.NewUnregisteredToken(e.ID, tok)
			}
		}
	}
	return nil
}
