package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileEntry is the on-disk shape of a catalog row.
type fileEntry struct {
	ID             string            `yaml:"id"`
	Family         string            `yaml:"family"`
	Name           string            `yaml:"name"`
	Prompt         string            `yaml:"prompt"`
	BasePrompt     string            `yaml:"base_prompt"`
	NegativePrompt string            `yaml:"negative_prompt"`
	Strength       float64           `yaml:"strength"`
	GuidanceScale  float64           `yaml:"guidance_scale"`
	Tags           []string          `yaml:"tags"`
	IsRandomized   bool              `yaml:"is_randomized"`
	Tokens         map[string]string `yaml:"tokens"`
	Region         *fileRegion       `yaml:"region"`
}

type fileRegion struct {
	SubjectLock       bool    `yaml:"subject_lock"`
	SubjectLockWeight float64 `yaml:"subject_lock_weight"`
	ControlNets       []struct {
		Type          string  `yaml:"type"`
		Weight        float64 `yaml:"weight"`
		GuidanceStart float64 `yaml:"guidance_start"`
		GuidanceEnd   float64 `yaml:"guidance_end"`
	} `yaml:"control_nets"`
	Layers []struct {
		Region  string  `yaml:"region"`
		Denoise float64 `yaml:"denoise"`
	} `yaml:"layers"`
}

type fileCatalog struct {
	Presets []fileEntry `yaml:"presets"`
}

// LoadFile reads extra catalog entries from a YAML file.
func LoadFile(path string) ([]Entry, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog file not configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog entries.
func Parse(data []byte) ([]Entry, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Presets))
	for i, fe := range doc.Presets {
		family, err := ParseFamily(fe.Family)
		if err != nil {
			return nil, fmt.Errorf("preset %d (%s): %w", i, fe.ID, err)
		}
		e := Entry{
			ID:             fe.ID,
			Family:         family,
			Name:           fe.Name,
			Prompt:         fe.Prompt,
			BasePrompt:     fe.BasePrompt,
			NegativePrompt: fe.NegativePrompt,
			Strength:       fe.Strength,
			GuidanceScale:  fe.GuidanceScale,
			Tags:           fe.Tags,
			IsRandomized:   fe.IsRandomized,
			Tokens:         fe.Tokens,
		}
		if e.IsRandomized && e.Prompt == "" {
			e.Prompt = e.BasePrompt
		}
		if fe.Region != nil {
			r := &RegionSpec{
				SubjectLock:       fe.Region.SubjectLock,
				SubjectLockWeight: fe.Region.SubjectLockWeight,
			}
			for _, cn := range fe.Region.ControlNets {
				r.ControlNets = append(r.ControlNets, ControlNetSpec{
					Type:          cn.Type,
					Weight:        cn.Weight,
					GuidanceStart: cn.GuidanceStart,
					GuidanceEnd:   cn.GuidanceEnd,
				})
			}
			for _, l := range fe.Region.Layers {
				r.Layers = append(r.Layers, RegionLayer{Region: RegionKind(l.Region), Denoise: l.Denoise})
			}
			e.Region = r
		}
		entries = append(entries, e)
	}
	return entries, nil
}
