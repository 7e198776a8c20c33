package catalog

const moodKeepIdentity = " Change only the facial expression; keep the exact same person, face shape, skin tone, hair, clothing, pose, lighting and background."

var moodEntries = []Entry{
	{
		ID:       "joy_sadness",
		Family:   FamilyMoodMask,
		Name:     "Joy + Sadness",
		Prompt:   "Blend joy and sadness into a bittersweet expression: a soft, trembling smile with glistening eyes and slightly raised inner brows." + moodKeepIdentity,
		Strength: 0.2,
		Tags:     []string{"emotion", "blend"},
	},
	{
		ID:       "joy_anger",
		Family:   FamilyMoodMask,
		Name:     "Joy + Anger",
		Prompt:   "Blend joy and anger into a fierce, triumphant grin with narrowed eyes and a tense jaw." + moodKeepIdentity,
		Strength: 0.14,
		Tags:     []string{"emotion", "blend"},
	},
	{
		ID:       "calm_focus",
		Family:   FamilyMoodMask,
		Name:     "Calm Focus",
		Prompt:   "A calm, focused expression: relaxed brow, steady gaze straight ahead, lips gently closed." + moodKeepIdentity,
		Strength: 0.12,
		Tags:     []string{"emotion"},
	},
	{
		ID:       "shy_blush",
		Family:   FamilyMoodMask,
		Name:     "Shy Blush",
		Prompt:   "A shy, flattered expression with a light natural blush on the cheeks and a small closed-mouth smile, eyes glancing slightly down." + moodKeepIdentity,
		Strength: 0.08,
		Tags:     []string{"emotion", "cute"},
	},
	{
		ID:       "smug_confidence",
		Family:   FamilyMoodMask,
		Name:     "Smug Confidence",
		Prompt:   "A smug, self-assured half smile with one corner of the mouth raised and a knowing look." + moodKeepIdentity,
		Strength: 0.13,
		Tags:     []string{"emotion"},
	},
	{
		ID:       "dreamy_nostalgia",
		Family:   FamilyMoodMask,
		Name:     "Dreamy Nostalgia",
		Prompt:   "A dreamy, nostalgic expression: soft unfocused eyes looking into the distance and the faintest wistful smile." + moodKeepIdentity,
		Strength: 0.18,
		Tags:     []string{"emotion", "soft"},
	},
	{
		ID:       "surprised_delight",
		Family:   FamilyMoodMask,
		Name:     "Surprised Delight",
		Prompt:   "Surprised delight: raised eyebrows, wide bright eyes and an open, happy smile." + moodKeepIdentity,
		Strength: 0.15,
		Tags:     []string{"emotion"},
	},
	{
		ID:       "quiet_pride",
		Family:   FamilyMoodMask,
		Name:     "Quiet Pride",
		Prompt:   "Quiet pride: chin slightly lifted, calm confident eyes and a restrained, satisfied smile." + moodKeepIdentity,
		Strength: 0.1,
		Tags:     []string{"emotion"},
	},
}
