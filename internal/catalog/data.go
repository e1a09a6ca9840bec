package catalog

import "github.com/shopspring/decimal"

// products is the TopBreeze range. The list is fixed at build time; there
// is no admin surface for editing it at runtime.
var products = []Product{
	{
		ID:               "frag-01",
		Name:             "Nordic Dawn",
		Category:         CategoryFragrance,
		Price:            decimal.NewFromInt(245),
		Description:      "Nordic Dawn captures the first light of morning across the Scandinavian fjords. A crisp, ethereal composition that speaks to new beginnings and quiet contemplation. The interplay of fresh citrus with warm woods creates an aura of understated elegance.",
		ShortDescription: "Fresh citrus meets warm woods in this ethereal morning fragrance",
		Story:            "Inspired by the serene beauty of the Nordic morning, Nordic Dawn is a blend of fresh citrus and warm woods, evoking a sense of new beginnings and quiet contemplation.",
		Mood:             "Calm, Contemplative, Fresh",
		Ingredients:      []string{"Bergamot", "Lemon Zest", "Sea Salt", "White Cedar", "Juniper", "Lavender", "Sandalwood", "Amber", "Musk"},
		Usage:            "Spray on pulse points for a subtle, long-lasting fragrance",
		Notes: Notes{
			Top:   []string{"Bergamot", "Lemon Zest", "Sea Salt"},
			Heart: []string{"White Cedar", "Juniper", "Lavender"},
			Base:  []string{"Sandalwood", "Amber", "Musk"},
		},
		Volume:    "100ml",
		Intensity: IntensityModerate,
		Featured:  true,
	},
	{
		ID:               "frag-02",
		Name:             "Winter Solstice",
		Category:         CategoryFragrance,
		Price:            decimal.NewFromInt(265),
		Description:      "A profound tribute to the longest night of the year. Winter Solstice weaves rich spices with deep, resinous woods, creating a scent that embodies warmth and introspection. Perfect for moments of quiet luxury.",
		ShortDescription: "Rich spices and deep woods for contemplative evenings",
		Story:            "Winter Solstice is a rich blend of spices and deep woods, capturing the essence of the longest night of the year and embodying warmth and introspection.",
		Mood:             "Warm, Introspective, Luxurious",
		Ingredients:      []string{"Cardamom", "Black Pepper", "Cinnamon", "Cedarwood", "Incense", "Iris", "Patchouli", "Vetiver", "Tonka Bean"},
		Usage:            "Spray on pulse points for a rich, long-lasting fragrance",
		Notes: Notes{
			Top:   []string{"Cardamom", "Black Pepper", "Cinnamon"},
			Heart: []string{"Cedarwood", "Incense", "Iris"},
			Base:  []string{"Patchouli", "Vetiver", "Tonka Bean"},
		},
		Volume:    "100ml",
		Intensity: IntensityIntense,
		Featured:  true,
	},
	{
		ID:               "frag-03",
		Name:             "Coastal Breeze",
		Category:         CategoryFragrance,
		Price:            decimal.NewFromInt(225),
		Description:      "The essence of windswept shores and endless horizons. Coastal Breeze is a celebration of clarity and freedom, blending aquatic notes with subtle florals. A signature scent for those who seek refinement in simplicity.",
		ShortDescription: "Aquatic clarity with delicate floral undertones",
		Story:            "Coastal Breeze is a blend of aquatic notes and subtle florals, capturing the essence of windswept shores and endless horizons, embodying clarity and freedom.",
		Mood:             "Clear, Free, Refreshing",
		Ingredients:      []string{"Marine Accord", "Mint", "Grapefruit", "Lily of the Valley", "Jasmine", "Driftwood", "White Musk", "Ambroxan", "Oakmoss"},
		Usage:            "Spray on pulse points for a fresh, long-lasting fragrance",
		Notes: Notes{
			Top:   []string{"Marine Accord", "Mint", "Grapefruit"},
			Heart: []string{"Lily of the Valley", "Jasmine", "Driftwood"},
			Base:  []string{"White Musk", "Ambroxan", "Oakmoss"},
		},
		Volume:    "100ml",
		Intensity: IntensityLight,
	},
	{
		ID:               "frag-04",
		Name:             "Midnight Garden",
		Category:         CategoryFragrance,
		Price:            decimal.NewFromInt(285),
		Description:      "An olfactory journey through a moonlit botanical sanctuary. Midnight Garden layers velvety florals with mysterious spices, creating an aura of nocturnal sophistication and timeless allure.",
		ShortDescription: "Velvety florals meet mysterious night spices",
		Story:            "Midnight Garden is a blend of velvety florals and mysterious spices, capturing the essence of a moonlit botanical sanctuary, embodying nocturnal sophistication and timeless allure.",
		Mood:             "Mysterious, Sophisticated, Alluring",
		Ingredients:      []string{"Saffron", "Pink Pepper", "Neroli", "Turkish Rose", "Tuberose", "Ylang-Ylang", "Oud", "Leather", "Vanilla"},
		Usage:            "Spray on pulse points for a rich, long-lasting fragrance",
		Notes: Notes{
			Top:   []string{"Saffron", "Pink Pepper", "Neroli"},
			Heart: []string{"Turkish Rose", "Tuberose", "Ylang-Ylang"},
			Base:  []string{"Oud", "Leather", "Vanilla"},
		},
		Volume:    "100ml",
		Intensity: IntensityIntense,
		Featured:  true,
	},
	{
		ID:               "perf-01",
		Name:             "Essential Collection",
		Category:         CategoryPerfumery,
		Price:            decimal.NewFromInt(450),
		Description:      "A curated trio of our most iconic fragrances in elegant travel sizes. The Essential Collection offers versatility and sophistication, perfect for the discerning individual who values both quality and convenience.",
		ShortDescription: "Three signature scents in refined travel editions",
		Story:            "The Essential Collection is a trio of our most iconic fragrances in elegant travel sizes, offering versatility and sophistication for the discerning individual who values both quality and convenience.",
		Mood:             "Versatile, Sophisticated, Convenient",
		Ingredients:      []string{"Various"},
		Usage:            "Spray on pulse points for a subtle, long-lasting fragrance",
		Notes: Notes{
			Top:   []string{"Various"},
			Heart: []string{"Various"},
			Base:  []string{"Various"},
		},
		Volume:    "3x30ml",
		Intensity: IntensityModerate,
		Featured:  true,
	},
	{
		ID:               "perf-02",
		Name:             "Discovery Set",
		Category:         CategoryPerfumery,
		Price:            decimal.NewFromInt(120),
		Description:      "Embark on a sensory exploration with our Discovery Set. Five carefully selected fragrances in sample vials, allowing you to find your perfect signature scent.",
		ShortDescription: "Five sample vials to discover your signature",
		Story:            "The Discovery Set is a collection of five carefully selected fragrances in sample vials, allowing you to find your perfect signature scent.",
		Mood:             "Explorative, Sensory, Discovering",
		Ingredients:      []string{"Various"},
		Usage:            "Spray on pulse points for a subtle, long-lasting fragrance",
		Notes: Notes{
			Top:   []string{"Various"},
			Heart: []string{"Various"},
			Base:  []string{"Various"},
		},
		Volume:    "5x5ml",
		Intensity: IntensityModerate,
	},
	{
		ID:               "diff-01",
		Name:             "Sanctum Reed Diffuser",
		Category:         CategoryDiffuser,
		Price:            decimal.NewFromInt(165),
		Description:      "Transform your space into a haven of tranquility. The Sanctum Reed Diffuser releases a continuous, subtle fragrance that elevates any environment with Nordic sophistication.",
		ShortDescription: "Continuous ambient fragrance for refined spaces",
		Story:            "The Sanctum Reed Diffuser is a continuous, subtle fragrance that elevates any environment with Nordic sophistication, transforming your space into a haven of tranquility.",
		Mood:             "Tranquil, Sophisticated, Refined",
		Ingredients:      []string{"Eucalyptus", "White Tea", "Cedar", "Sage", "Cashmere Woods", "Soft Musk"},
		Usage:            "Place reeds in the diffuser and trim as needed to adjust fragrance strength",
		Notes: Notes{
			Top:   []string{"Eucalyptus", "White Tea"},
			Heart: []string{"Cedar", "Sage"},
			Base:  []string{"Cashmere Woods", "Soft Musk"},
		},
		Volume:    "200ml",
		Intensity: IntensityLight,
		Featured:  true,
	},
	{
		ID:               "diff-02",
		Name:             "Hearth Stone Diffuser",
		Category:         CategoryDiffuser,
		Price:            decimal.NewFromInt(185),
		Description:      "Inspired by the warmth of a Nordic fireplace, Hearth Stone infuses your home with comforting notes of smoked wood and spiced amber. A grounding presence for intimate gatherings.",
		ShortDescription: "Warming notes of smoked wood and amber",
		Story:            "Hearth Stone is a diffuser inspired by the warmth of a Nordic fireplace, infusing your home with comforting notes of smoked wood and spiced amber, a grounding presence for intimate gatherings.",
		Mood:             "Warm, Comforting, Grounding",
		Ingredients:      []string{"Birch", "Smoke", "Clove", "Cedarwood", "Amber", "Tobacco Leaves"},
		Usage:            "Place reeds in the diffuser and trim as needed to adjust fragrance strength",
		Notes: Notes{
			Top:   []string{"Birch", "Smoke"},
			Heart: []string{"Clove", "Cedarwood"},
			Base:  []string{"Amber", "Tobacco Leaves"},
		},
		Volume:    "200ml",
		Intensity: IntensityModerate,
	},
	{
		ID:               "diff-03",
		Name:             "Serenity Candle",
		Category:         CategoryDiffuser,
		Price:            decimal.NewFromInt(95),
		Description:      "Hand-poured with premium soy wax, the Serenity Candle casts a gentle glow while releasing calming notes of lavender and chamomile. An essential ritual for mindful evenings.",
		ShortDescription: "Calming lavender and chamomile in hand-poured wax",
		Story:            "The Serenity Candle is hand-poured with premium soy wax, casting a gentle glow while releasing calming notes of lavender and chamomile, an essential ritual for mindful evenings.",
		Mood:             "Calming, Mindful, Gentle",
		Ingredients:      []string{"Lavender", "Chamomile", "Linen", "Honey", "Vanilla", "Light Woods"},
		Usage:            "Light the candle and enjoy the calming fragrance",
		Notes: Notes{
			Top:   []string{"Lavender", "Chamomile"},
			Heart: []string{"Linen", "Honey"},
			Base:  []string{"Vanilla", "Light Woods"},
		},
		Volume:    "250g",
		Intensity: IntensityLight,
	},
}
