package catalog

const overlayKeepPhoto = " Add the effect as an overlay on top of the original photo; do not redraw the person, face, body or background."

var reactionEntries = []Entry{
	{
		ID:       "reaction_mind_blown",
		Family:   FamilyReactionOverlay,
		Name:     "Mind Blown",
		Prompt:   "Cartoon mind-blown reaction: a puff of colorful comic smoke and sparkles bursting from the top of the head." + overlayKeepPhoto,
		Strength: 0.16,
		Tags:     []string{"reaction", "meme"},
	},
	{
		ID:       "reaction_side_eye",
		Family:   FamilyReactionOverlay,
		Name:     "Side Eye",
		Prompt:   "Side-eye meme reaction: subtle comic motion lines near the eyes and a small floating '...' speech bubble." + overlayKeepPhoto,
		Strength: 0.1,
		Tags:     []string{"reaction", "meme"},
	},
	{
		ID:       "reaction_heart_eyes",
		Family:   FamilyReactionOverlay,
		Name:     "Heart Eyes",
		Prompt:   "Heart-eyes reaction: small glossy red hearts floating around the head with a soft pink glow." + overlayKeepPhoto,
		Strength: 0.2,
		Tags:     []string{"reaction", "cute"},
	},
	{
		ID:       "reaction_facepalm",
		Family:   FamilyReactionOverlay,
		Name:     "Facepalm",
		Prompt:   "Facepalm reaction: a comic 'sigh' text bubble and dramatic grey rain cloud hovering above the head." + overlayKeepPhoto,
		Strength: 0.15,
		Tags:     []string{"reaction", "meme"},
	},
	{
		ID:       "reaction_crying_laughing",
		Family:   FamilyReactionOverlay,
		Name:     "Crying Laughing",
		Prompt:   "Crying-laughing reaction: cartoon tear streams flying sideways and bouncing 'HAHA' letters around the subject." + overlayKeepPhoto,
		Strength: 0.18,
		Tags:     []string{"reaction", "meme"},
	},
	{
		ID:       "reaction_sweat_drop",
		Family:   FamilyReactionOverlay,
		Name:     "Sweat Drop",
		Prompt:   "Anime sweat-drop reaction: one large stylized blue sweat drop on the side of the head and faint blush lines." + overlayKeepPhoto,
		Strength: 0.12,
		Tags:     []string{"reaction", "anime"},
	},
}

var glitchEntries = []Entry{
	{
		ID:             "glitch_vhs",
		Family:         FamilyGlitchOverlay,
		Name:           "VHS Tape",
		Prompt:         "VHS tape glitch: horizontal tracking lines, slight chroma bleed, tape noise and a faded REC timestamp corner." + overlayKeepPhoto,
		NegativePrompt: "melted face, distorted features",
		Strength:       0.25,
		Tags:           []string{"glitch", "retro"},
	},
	{
		ID:       "glitch_rgb_split",
		Family:   FamilyGlitchOverlay,
		Name:     "RGB Split",
		Prompt:   "RGB channel split glitch: red and cyan ghost offsets along the edges with thin digital slice artifacts." + overlayKeepPhoto,
		Strength: 0.35,
		Tags:     []string{"glitch"},
	},
	{
		ID:       "glitch_datamosh",
		Family:   FamilyGlitchOverlay,
		Name:     "Datamosh",
		Prompt:   "Datamosh glitch: blocky compression smears and pixel drift flowing across the background edges only." + overlayKeepPhoto,
		Strength: 0.3,
		Tags:     []string{"glitch"},
	},
	{
		ID:       "glitch_pixel_sort",
		Family:   FamilyGlitchOverlay,
		Name:     "Pixel Sort",
		Prompt:   "Pixel-sorting glitch: vertical streaks of sorted pixels dripping from bright areas, leaving the face clean." + overlayKeepPhoto,
		Strength: 0.22,
		Tags:     []string{"glitch", "art"},
	},
	{
		ID:       "glitch_crt_scanline",
		Family:   FamilyGlitchOverlay,
		Name:     "CRT Scanlines",
		Prompt:   "Old CRT monitor look: fine scanlines, soft phosphor glow, subtle screen curvature vignette." + overlayKeepPhoto,
		Strength: 0.15,
		Tags:     []string{"glitch", "retro"},
	},
}
