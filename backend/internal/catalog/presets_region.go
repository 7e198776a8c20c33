package catalog

var regionEntries = []Entry{
	{
		ID:             "region_studio_swap",
		Family:         FamilyRegionAwareEditing,
		Name:           "Studio Backdrop",
		Prompt:         "Replace the background with a seamless mid-grey photo studio backdrop with soft key light and gentle falloff; the person stays exactly as photographed.",
		NegativePrompt: "changed face, different person, extra people, cluttered background",
		Strength:       0.18,
		Tags:           []string{"background", "studio"},
		Region: &RegionSpec{
			SubjectLock:       true,
			SubjectLockWeight: 0.85,
			ControlNets: []ControlNetSpec{
				{Type: "openpose", Weight: 0.6, GuidanceStart: 0, GuidanceEnd: 0.8},
				{Type: "depth", Weight: 0.4, GuidanceStart: 0, GuidanceEnd: 0.6},
			},
			Layers: []RegionLayer{
				{Region: RegionSubject, Denoise: 0.15},
				{Region: RegionBackground, Denoise: 0.7},
			},
		},
	},
	{
		ID:       "region_neon_alley",
		Family:   FamilyRegionAwareEditing,
		Name:     "Neon Alley",
		Prompt:   "Place the person in a rain-soaked neon alley at night with pink and cyan signage reflections on wet pavement; keep the person's face and outfit identical.",
		Strength: 0.2,
		Tags:     []string{"background", "night", "city"},
		Region: &RegionSpec{
			SubjectLock: true,
			ControlNets: []ControlNetSpec{
				{Type: "canny", Weight: 0.5, GuidanceStart: 0, GuidanceEnd: 0.7},
			},
			Layers: []RegionLayer{
				{Region: RegionSubject, Denoise: 0.3},
				{Region: RegionBackground, Denoise: 0.9},
			},
		},
	},
	{
		ID:       "region_golden_beach",
		Family:   FamilyRegionAwareEditing,
		Name:     "Golden Beach",
		Prompt:   "Swap the surroundings for a quiet beach at golden hour with warm backlight and soft waves; the person is unchanged.",
		Strength: 0.16,
		Tags:     []string{"background", "outdoor"},
		Region: &RegionSpec{
			SubjectLock:       true,
			SubjectLockWeight: 0.75,
			Layers: []RegionLayer{
				{Region: RegionSubject, Denoise: 0.1},
				{Region: RegionBackground, Denoise: 0.5},
			},
		},
	},
	{
		ID:       "region_soft_backdrop",
		Family:   FamilyRegionAwareEditing,
		Name:     "Soft Backdrop",
		Prompt:   "Gently soften and blur the background into a creamy pastel backdrop while keeping the person sharp and unchanged.",
		Strength: 0.3,
		Tags:     []string{"background", "soft"},
		Region: &RegionSpec{
			Layers: []RegionLayer{
				{Region: RegionBackground, Denoise: 0.6},
			},
		},
	},
}
