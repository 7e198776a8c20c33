package rotation

// Built-in vocabularies used by the randomized presets.
var defaultVocabularies = []Vocabulary{
	{Name: "smoke_color", Fragments: []string{
		"crimson", "electric blue", "emerald green", "violet", "golden amber",
		"silver white", "magenta", "teal",
	}},
	{Name: "crystal_color", Fragments: []string{
		"amethyst purple", "sapphire blue", "rose quartz pink", "clear diamond",
		"emerald", "citrine gold",
	}},
	{Name: "butterfly_color", Fragments: []string{
		"monarch orange", "morpho blue", "lemon yellow", "pearl white",
		"jade green", "scarlet red", "lavender",
	}},
	{Name: "reflection_animal", Fragments: []string{
		"wolf", "fox", "lion", "tiger", "panther", "owl", "eagle", "raven",
		"stag", "bear", "snow leopard", "white horse", "dolphin", "swan",
		"hawk", "lynx", "jaguar", "falcon", "koi fish",
	}},
	{Name: "molten_animal", Fragments: []string{
		"panther", "serpent", "stallion",
	}},
	{Name: "airport_fashion", Fragments: []string{
		"an oversized camel trench coat with dark denim",
		"a cream knit co-ord set with white sneakers",
		"a black leather jacket over a grey hoodie",
		"a tailored navy suit with no tie",
		"a vintage varsity jacket and cargo pants",
		"a long wool coat with a cashmere scarf",
		"a crisp white shirt tucked into wide-leg trousers",
		"a matching tracksuit with a baseball cap",
		"a quilted puffer vest over a turtleneck",
		"a linen blazer with rolled sleeves",
	}},
	{Name: "airport_scene", Fragments: []string{
		"a glass terminal concourse",
		"the arrivals hall with a crowd of photographers",
		"a private jet tarmac",
		"a moving walkway lined with departure boards",
		"the security line with soft overhead light",
		"a first-class lounge entrance",
		"the baggage claim carousel area",
		"a long corridor with floor-to-ceiling windows",
		"the curbside drop-off lane",
		"a duty-free boutique corridor",
	}},
	{Name: "airport_time", Fragments: []string{
		"golden hour", "early morning blue hour", "bright midday", "overcast afternoon",
		"sunset", "late night", "rainy dusk", "foggy dawn",
	}},
	{Name: "paper_color", Fragments: []string{
		"coral red", "mint green", "sunflower yellow", "sky blue", "blush pink", "tangerine",
	}},
	{Name: "paper_motif", Fragments: []string{
		"blooming flowers", "clouds", "stars", "leaves", "hearts", "ocean waves",
		"lightning bolts", "geometric shards",
	}},
	{Name: "paper_layout", Fragments: []string{
		"a radial burst", "a layered arch", "a scattered confetti frame",
		"a stacked diorama", "a diagonal cascade",
	}},
}

// DefaultVocabularies returns a copy of the built-in vocabularies.
func DefaultVocabularies() []Vocabulary {
	out := make([]Vocabulary, len(defaultVocabularies))
	copy(out, defaultVocabularies)
	return out
}

// DefaultRegistry builds a registry over the built-in vocabularies.
func DefaultRegistry(opts ...Option) *Registry {
	return MustNewRegistry(defaultVocabularies, opts...)
}
