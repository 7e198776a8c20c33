package catalog

const proIdentity = " Preserve the person's exact facial features, skin tone, age, hairline and expression."

var professionalEntries = []Entry{
	{
		ID:             "pro_corporate_headshot",
		Family:         FamilyProfessional,
		Name:           "Corporate Headshot",
		Prompt:         "Professional corporate headshot: neutral light-grey backdrop, soft three-point lighting, crisp business attire, shallow depth of field." + proIdentity,
		NegativePrompt: "cartoon, painting, distorted face, different person",
		Strength:       0.18,
		GuidanceScale:  7.5,
		Tags:           []string{"portrait", "business"},
	},
	{
		ID:            "pro_linkedin_clean",
		Family:        FamilyProfessional,
		Name:          "LinkedIn Clean",
		Prompt:        "Clean, friendly profile photo with bright natural window light, subtle office bokeh and tidy retouching." + proIdentity,
		Strength:      0.12,
		GuidanceScale: 6,
		Tags:          []string{"portrait", "business"},
	},
	{
		ID:            "pro_cinematic_portrait",
		Family:        FamilyProfessional,
		Name:          "Cinematic Portrait",
		Prompt:        "Cinematic portrait with teal and orange grade, anamorphic bokeh, gentle film grain and moody rim light." + proIdentity,
		Strength:      0.3,
		GuidanceScale: 9,
		Tags:          []string{"portrait", "film"},
	},
	{
		ID:       "pro_editorial_bw",
		Family:   FamilyProfessional,
		Name:     "Editorial Black & White",
		Prompt:   "High-contrast black and white editorial portrait, deep shadows, fine silver grain, magazine print quality." + proIdentity,
		Strength: 0.05,
		Tags:     []string{"portrait", "monochrome"},
	},
	{
		ID:     "smoke_aura",
		Family: FamilyProfessional,
		Name:   "Smoke Aura",
		Prompt: "Dramatic portrait surrounded by swirling crimson smoke that curls around the shoulders, dark studio background, rim-lit edges." + proIdentity,
		BasePrompt: "Dramatic portrait surrounded by swirling {SMOKE_COLOR} smoke that curls around the shoulders, dark studio background, rim-lit edges." +
			proIdentity,
		Strength:     0.2,
		Tags:         []string{"fx", "smoke"},
		IsRandomized: true,
		Tokens:       map[string]string{"SMOKE_COLOR": "smoke_color"},
	},
	{
		ID:     "crystal_halo",
		Family: FamilyProfessional,
		Name:   "Crystal Halo",
		Prompt: "Ethereal portrait with a floating halo of amethyst purple crystals behind the head, refracting soft prismatic light." + proIdentity,
		BasePrompt: "Ethereal portrait with a floating halo of {CRYSTAL_COLOR} crystals behind the head, refracting soft prismatic light." +
			proIdentity,
		Strength:     0.19,
		Tags:         []string{"fx", "fantasy"},
		IsRandomized: true,
		Tokens:       map[string]string{"CRYSTAL_COLOR": "crystal_color"},
	},
	{
		ID:     "butterfly_crown",
		Family: FamilyProfessional,
		Name:   "Butterfly Crown",
		Prompt: "Fine-art portrait with a delicate crown of monarch orange butterflies resting in the hair, a few in flight, soft spring light." + proIdentity,
		BasePrompt: "Fine-art portrait with a delicate crown of {BUTTERFLY_COLOR} butterflies resting in the hair, a few in flight, soft spring light." +
			proIdentity,
		Strength:     0.21,
		Tags:         []string{"fx", "nature"},
		IsRandomized: true,
		Tokens:       map[string]string{"BUTTERFLY_COLOR": "butterfly_color"},
	},
	{
		ID:     "reflection_pact",
		Family: FamilyProfessional,
		Name:   "Reflection Pact",
		Prompt: "Moody portrait beside a still dark lake, alongside their spirit animal, the wolf, whose mirrored reflection glows silver in the water at twilight." + proIdentity,
		BasePrompt: "Moody portrait beside a still dark lake, alongside their spirit animal, the {ANIMAL}, whose mirrored reflection glows silver in the water at twilight." +
			proIdentity,
		Strength:     0.2,
		Tags:         []string{"fx", "animal", "fantasy"},
		IsRandomized: true,
		Tokens:       map[string]string{"ANIMAL": "reflection_animal"},
	},
	{
		ID:     "molten_gloss",
		Family: FamilyProfessional,
		Name:   "Molten Gloss",
		Prompt: "Luxury editorial portrait next to a sculpture of a panther cast in liquid molten gold, high-gloss reflections, black velvet set." + proIdentity,
		BasePrompt: "Luxury editorial portrait next to a sculpture of a {ANIMAL} cast in liquid molten gold, high-gloss reflections, black velvet set." +
			proIdentity,
		Strength:     0.22,
		Tags:         []string{"fx", "animal", "luxury"},
		IsRandomized: true,
		Tokens:       map[string]string{"ANIMAL": "molten_animal"},
	},
	{
		ID:     "airport_fashion",
		Family: FamilyProfessional,
		Name:   "Airport Fashion",
		Prompt: "Candid paparazzi-style airport fashion shot wearing an oversized camel trench coat with dark denim, walking through a glass terminal concourse at golden hour." + proIdentity,
		BasePrompt: "Candid paparazzi-style airport fashion shot wearing {FASHION_INJECTION_HERE}, walking through {AIRPORT_SCENE} at {TIME_OF_DAY}." +
			proIdentity,
		Strength:     0.2,
		Tags:         []string{"fashion", "street"},
		IsRandomized: true,
		Tokens: map[string]string{
			"FASHION_INJECTION_HERE": "airport_fashion",
			"AIRPORT_SCENE":          "airport_scene",
			"TIME_OF_DAY":            "airport_time",
		},
	},
	{
		ID:     "paper_pop",
		Family: FamilyProfessional,
		Name:   "Paper Pop",
		Prompt: "Playful paper-craft portrait: the person framed by layered coral red paper cutouts of blooming flowers arranged as a radial burst, soft studio shadows between layers." + proIdentity,
		BasePrompt: "Playful paper-craft portrait: the person framed by layered {PAPER_COLOR} paper cutouts of {PAPER_MOTIF} arranged as {PAPER_LAYOUT}, soft studio shadows between layers." +
			proIdentity,
		Strength:     0.2,
		Tags:         []string{"fx", "craft"},
		IsRandomized: true,
		Tokens: map[string]string{
			"PAPER_COLOR":  "paper_color",
			"PAPER_MOTIF":  "paper_motif",
			"PAPER_LAYOUT": "paper_layout",
		},
	},
}
