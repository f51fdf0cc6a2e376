package schema

// Quick is the rapid field-assessment variant: a compact vocabulary for fast
// triage of rock photos.
var Quick = &Variant{
	Name:          "quick",
	Title:         "ROCK ANALYSIS RESULTS",
	FilePrefix:    "rock_analysis",
	LocationField: "location_context",
	Intro: `You are a field geologist performing a rapid rock assessment. While this is
a quick analysis, maintain scientific rigor and systematic observation.

For each rock, follow this rapid assessment process:
1. Observe: note key visual features (texture, color, structure)
2. Classify: determine primary rock type and characteristics
3. Assess: evaluate confidence based on feature clarity`,
	SummaryGuidance: `For the summary, provide a geological interpretation of the overall setting,
note formation processes and potential geological context, and report the
average confidence across all identified rocks.`,

	RockFields: []Field{
		{
			Name: "primary_type",
			Kind: KindEnum,
			Enum: []string{"sedimentary", "igneous", "metamorphic", "unknown", "other"},
			Desc: "Primary genetic rock type. Sedimentary: layers, grains, fossils, rounded clasts. Igneous: interlocking crystals or fine/glassy texture. Metamorphic: foliation, alignment, recrystallized texture.",
		},
		{
			Name: "size_category",
			Kind: KindEnum,
			Enum: []string{"tiny", "small", "medium", "large", "boulder", "massive"},
			Desc: "Largest dimension: tiny <5cm, small 5-20cm, medium 20-50cm, large 50-100cm, boulder 100-200cm, massive >200cm or outcrop.",
		},
		{
			Name: "weathering_state",
			Kind: KindEnum,
			Enum: []string{"fresh", "slightly_weathered", "moderately_weathered", "heavily_weathered", "extremely_weathered"},
			Desc: "Degree of surface alteration, from clean unaltered surfaces to heavily altered with texture obscured.",
		},
		{
			Name: "confidence_level",
			Kind: KindEnum,
			Enum: []string{"very_low", "low", "medium", "high", "very_high"},
			Desc: "Identification confidence. Be honest about uncertainty; consider image quality, angle, and coverage.",
		},
		{
			Name: "position",
			Kind: KindEnum,
			Enum: []string{"foreground", "midground", "background", "left", "right", "center", "top", "bottom", "multiple"},
			Desc: "Location of the rock within the image frame.",
		},
		{
			Name: "confidence_value",
			Kind: KindFloat,
			Min:  bound(0), Max: bound(1),
			Desc: "Numeric confidence from 0.0 to 1.0, calibrated to the confidence level.",
		},
		{
			Name: "estimated_size_cm",
			Kind: KindFloat,
			Min:  bound(0),
			Desc: "Best estimate of the largest dimension in centimeters.",
		},
		{Name: "specific_rock_type", Kind: KindString, Desc: "As specific as possible, e.g. \"limestone\", \"granite\", \"basalt\"."},
		{Name: "color_description", Kind: KindString, Desc: "Detailed color observations."},
		{Name: "texture_details", Kind: KindString, Desc: "Surface and internal texture."},
		{Name: "mineral_composition", Kind: KindString, Desc: "Any visible minerals."},
		{Name: "structural_features", Kind: KindString, Desc: "Bedding, foliation, joints, veins."},
		{Name: "surface_features", Kind: KindString, Desc: "Lichen, weathering patterns, coatings."},
		{Name: "shape_description", Kind: KindString, Desc: "Overall morphology and angularity."},
		{Name: "geological_notes", Kind: KindString, Desc: "Expert observations linking features to interpretation."},
	},

	SummaryFields: []Field{
		{Name: "total_rocks", Kind: KindInt, Min: bound(0), Desc: "Total number of rocks identified."},
		{
			Name: "dominant_rock_type",
			Kind: KindEnum,
			Enum: []string{"sedimentary", "igneous", "metamorphic", "unknown", "other"},
			Desc: "The most common primary rock type in the image.",
		},
		{Name: "average_confidence", Kind: KindFloat, Min: bound(0), Max: bound(1), Desc: "Mean confidence across all rocks."},
		{Name: "geological_setting", Kind: KindString, Desc: "Interpretation of the overall geological setting."},
		{Name: "formation_interpretation", Kind: KindString, Desc: "Likely formation processes."},
		{Name: "regional_geology_notes", Kind: KindString, Desc: "Regional geological context, if inferable."},
		{Name: "location_context", Kind: KindString, Desc: "Echo of the location context used for this analysis."},
	},
}
