package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylize-engine/backend/internal/rotation"
	apperrors "stylize-engine/backend/pkg/errors"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, Validate(c, rotation.DefaultRegistry()))

	for _, f := range Families() {
		assert.NotEmpty(t, c.Entries(f), "family %s has no presets", f)
	}
	assert.Equal(t, len(builtinEntries()), c.Len())
}

func TestDefault_IdentifiersUnique(t *testing.T) {
	seen := map[string]Family{}
	for _, e := range builtinEntries() {
		prev, dup := seen[e.ID]
		assert.False(t, dup, "%s declared in %s and %s", e.ID, prev, e.Family)
		seen[e.ID] = e.Family
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New(
		Entry{ID: "x", Family: FamilyMoodMask, Prompt: "a"},
		Entry{ID: "x", Family: FamilyGlitchOverlay, Prompt: "b"},
	)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeCatalog))
}

func TestNew_RejectsMissingFields(t *testing.T) {
	_, err := New(Entry{ID: " ", Family: FamilyMoodMask})
	assert.Error(t, err)

	_, err = New(Entry{ID: "no_family", Prompt: "p"})
	assert.Error(t, err)
}

func TestCatalog_LookupAndContains(t *testing.T) {
	c := Default()

	e, ok := c.Lookup(FamilyMoodMask, "joy_sadness")
	require.True(t, ok)
	assert.Contains(t, e.Prompt, "bittersweet expression")
	assert.True(t, c.Contains(FamilyMoodMask, "joy_sadness"))

	// tables are disjoint
	assert.False(t, c.Contains(FamilyProfessional, "joy_sadness"))
	_, ok = c.Lookup(FamilyGlitchOverlay, "joy_sadness")
	assert.False(t, ok)
}

func TestCatalog_Merge(t *testing.T) {
	c := Default()
	merged, err := c.Merge(Entry{ID: "extra_glitch", Family: FamilyGlitchOverlay, Prompt: "extra", Strength: 0.2})
	require.NoError(t, err)
	assert.Equal(t, c.Len()+1, merged.Len())
	assert.True(t, merged.Contains(FamilyGlitchOverlay, "extra_glitch"))
	assert.False(t, c.Contains(FamilyGlitchOverlay, "extra_glitch"), "merge must not mutate the source")

	_, err = c.Merge(Entry{ID: "joy_sadness", Family: FamilyProfessional, Prompt: "dup"})
	assert.Error(t, err)
}

type vocabSet map[string]bool

func (v vocabSet) Has(name string) bool { return v[name] }

func TestValidate(t *testing.T) {
	vocabs := vocabSet{"color": true}

	tests := []struct {
		name    string
		entry   Entry
		wantErr bool
		token   bool
	}{
		{
			name:  "fixed ok",
			entry: Entry{ID: "a", Family: FamilyProfessional, Prompt: "fine", Strength: 0.1},
		},
		{
			name:    "strength above one",
			entry:   Entry{ID: "a", Family: FamilyProfessional, Prompt: "fine", Strength: 1.5},
			wantErr: true,
		},
		{
			name:    "empty prompt",
			entry:   Entry{ID: "a", Family: FamilyMoodMask},
			wantErr: true,
		},
		{
			name:    "placeholder in fixed prompt",
			entry:   Entry{ID: "a", Family: FamilyProfessional, Prompt: "a {COLOR} sky"},
			wantErr: true,
		},
		{
			name:    "region on mood preset",
			entry:   Entry{ID: "a", Family: FamilyMoodMask, Prompt: "p", Region: &RegionSpec{}},
			wantErr: true,
		},
		{
			name: "unknown region layer",
			entry: Entry{ID: "a", Family: FamilyRegionAwareEditing, Prompt: "p", Region: &RegionSpec{
				Layers: []RegionLayer{{Region: "sky", Denoise: 0.5}},
			}},
			wantErr: true,
		},
		{
			name: "randomized ok",
			entry: Entry{ID: "a", Family: FamilyProfessional, IsRandomized: true,
				BasePrompt: "a {COLOR} sky", Tokens: map[string]string{"COLOR": "color"}},
		},
		{
			name: "lower case placeholder next to a valid one",
			entry: Entry{ID: "a", Family: FamilyProfessional, IsRandomized: true,
				BasePrompt: "a {COLOR} sky over a {color} sea", Tokens: map[string]string{"COLOR": "color"}},
			wantErr: true,
		},
		{
			name:    "lower case placeholder in fixed prompt",
			entry:   Entry{ID: "a", Family: FamilyProfessional, Prompt: "a {color} sky"},
			wantErr: true,
		},
		{
			name:    "randomized without placeholders",
			entry:   Entry{ID: "a", Family: FamilyProfessional, IsRandomized: true, BasePrompt: "plain"},
			wantErr: true,
		},
		{
			name: "unbound token",
			entry: Entry{ID: "a", Family: FamilyProfessional, IsRandomized: true,
				BasePrompt: "a {COLOR} {ANIMAL}", Tokens: map[string]string{"COLOR": "color"}},
			wantErr: true,
			token:   true,
		},
		{
			name: "token bound to unregistered vocabulary",
			entry: Entry{ID: "a", Family: FamilyProfessional, IsRandomized: true,
				BasePrompt: "a {COLOR}", Tokens: map[string]string{"COLOR": "colour"}},
			wantErr: true,
			token:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(MustNew(tt.entry), vocabs)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.token {
				var tokErr *apperrors.ErrUnregisteredToken
				assert.ErrorAs(t, err, &tokErr)
			}
		})
	}
}

func TestRegionSpec_LockWeight(t *testing.T) {
	var nilSpec *RegionSpec
	assert.Equal(t, DefaultSubjectLockWeight, nilSpec.LockWeight())
	assert.Equal(t, DefaultSubjectLockWeight, (&RegionSpec{}).LockWeight())
	assert.Equal(t, 0.6, (&RegionSpec{SubjectLockWeight: 0.6}).LockWeight())
	assert.Equal(t, 1.0, (&RegionSpec{SubjectLockWeight: 3}).LockWeight())
}

func TestEntry_Template(t *testing.T) {
	fixed := Entry{Prompt: "p", BasePrompt: "b {X}"}
	assert.Equal(t, "p", fixed.Template())

	randomized := Entry{Prompt: "p", BasePrompt: "b {X}", IsRandomized: true}
	assert.Equal(t, "b {X}", randomized.Template())
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families() {
		got, err := ParseFamily(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFamily(" Mood ")
	require.NoError(t, err)
	assert.Equal(t, FamilyMoodMask, got)

	_, err = ParseFamily("portrait")
	assert.Error(t, err)

	_, err = Family(0).MarshalText()
	assert.Error(t, err)
}

const overlayYAML = `
presets:
  - id: custom_neon_smoke
    family: pro
    name: Neon Smoke
    is_randomized: true
    base_prompt: "Portrait wrapped in {SMOKE_COLOR} neon smoke."
    strength: 0.2
    tokens:
      SMOKE_COLOR: smoke_color
    tags: [fx]
  - id: custom_city_swap
    family: region_aware_editing
    prompt: "Replace the background with a city skyline."
    strength: 0.18
    region:
      subject_lock: true
      subject_lock_weight: 0.7
      control_nets:
        - type: depth
          weight: 0.5
          guidance_end: 0.6
      layers:
        - region: subject
          denoise: 0.14
        - region: background
          denoise: 0.65
`

func TestParse(t *testing.T) {
	entries, err := Parse([]byte(overlayYAML))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	smoke := entries[0]
	assert.Equal(t, FamilyProfessional, smoke.Family)
	assert.True(t, smoke.IsRandomized)
	assert.Equal(t, smoke.BasePrompt, smoke.Prompt, "randomized entries default their prompt to the template")
	assert.Equal(t, "smoke_color", smoke.Tokens["SMOKE_COLOR"])

	city := entries[1]
	require.NotNil(t, city.Region)
	assert.True(t, city.SubjectLocked())
	assert.Equal(t, 0.7, city.Region.LockWeight())
	require.Len(t, city.Region.ControlNets, 1)
	assert.Equal(t, "depth", city.Region.ControlNets[0].Type)
	assert.Equal(t, RegionBackground, city.Region.Layers[1].Region)

	merged, err := Default().Merge(entries...)
	require.NoError(t, err)
	assert.NoError(t, Validate(merged, rotation.DefaultRegistry()))
}

func TestParse_BadFamily(t *testing.T) {
	_, err := Parse([]byte("presets:\n  - id: x\n    family: cinema\n    prompt: p\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cinema")
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile("")
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlayYAML), 0o644))
	entries, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
