package catalog

import (
	"fmt"
	"strings"
)

// Family tags which taxonomy a preset belongs to. The zero value is not a valid family.
type Family int

const (
	FamilyRegionAwareEditing Family = iota + 1
	FamilyMoodMask
	FamilyReactionOverlay
	FamilyGlitchOverlay
	FamilyProfessional
)

// Families lists every family in classification order.
func Families() []Family {
	return []Family{
		FamilyRegionAwareEditing,
		FamilyMoodMask,
		FamilyReactionOverlay,
		FamilyGlitchOverlay,
		FamilyProfessional,
	}
}

func (f Family) String() string {
	switch f {
	case FamilyRegionAwareEditing:
		return "region_aware_editing"
	case FamilyMoodMask:
		return "mood_mask"
	case FamilyReactionOverlay:
		return "reaction_overlay"
	case FamilyGlitchOverlay:
		return "glitch_overlay"
	case FamilyProfessional:
		return "professional"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool {
	return f >= FamilyRegionAwareEditing && f <= FamilyProfessional
}

// ParseFamily accepts the canonical name plus a short alias ("region", "mood", "reaction", "glitch", "pro").
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "region_aware_editing", "region":
		return FamilyRegionAwareEditing, nil
	case "mood_mask", "mood":
		return FamilyMoodMask, nil
	case "reaction_overlay", "reaction":
		return FamilyReactionOverlay, nil
	case "glitch_overlay", "glitch":
		return FamilyGlitchOverlay, nil
	case "professional", "pro":
		return FamilyProfessional, nil
	default:
		return 0, fmt.Errorf("unknown family %q", s)
	}
}

// MarshalText renders the canonical family name.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid family %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText parses a family name or alias.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
