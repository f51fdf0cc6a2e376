package schema

// Geological is the professional survey variant: comprehensive standardized
// classifications aligned with field geology practice (Wentworth size scale,
// W0-W5 weathering grades, Mohs hardness ranges).
var Geological = &Variant{
	Name:          "survey",
	Title:         "GEOLOGICAL ANALYSIS REPORT",
	FilePrefix:    "geological_analysis",
	LocationField: "location_used",
	Intro: `Perform a comprehensive geological analysis of all rocks visible in this
image. You are writing a professional field report: for every rock you MUST
select from the exact standardized categories listed below, and provide
detailed professional descriptions for the free-text fields.`,
	SummaryGuidance: `For the summary, provide a comprehensive geological interpretation including
tectonic setting, depositional environment, metamorphic grade, and economic
geology notes. Recommend follow-up laboratory analyses where warranted.`,

	RockFields: []Field{
		{
			Name: "rock_class",
			Kind: KindEnum,
			Enum: []string{
				"igneous_volcanic", "igneous_plutonic", "igneous_hypabyssal",
				"sedimentary_clastic", "sedimentary_chemical", "sedimentary_organic",
				"metamorphic_foliated", "metamorphic_nonfoliated",
				"unconsolidated", "unknown",
			},
			Desc: "Primary genetic classification. Volcanic: extrusive (basalt, rhyolite). Plutonic: intrusive (granite, gabbro). Hypabyssal: shallow intrusive (dolerite, porphyry).",
		},
		{
			Name: "size_class",
			Kind: KindEnum,
			Enum: []string{"clay_silt", "sand", "granule", "pebble", "cobble", "boulder", "block", "outcrop"},
			Desc: "Wentworth-scale size class: clay_silt <0.0625mm, sand 0.0625-2mm, granule 2-4mm, pebble 4-64mm, cobble 64-256mm, boulder 256-4096mm, block >4096mm, outcrop for bedrock exposure.",
		},
		{
			Name: "grain_size",
			Kind: KindEnum,
			Enum: []string{"cryptocrystalline", "very_fine", "fine", "medium", "coarse", "very_coarse", "pegmatitic", "mixed", "not_applicable"},
			Desc: "Crystal or clast size: cryptocrystalline <0.1mm through pegmatitic >100mm; not_applicable for glassy or massive rocks.",
		},
		{
			Name: "weathering_grade",
			Kind: KindEnum,
			Enum: []string{"fresh", "slight", "moderate", "high", "complete", "residual_soil"},
			Desc: "Weathering grade W0 (fresh) through W5 (residual soil, completely decomposed).",
		},
		{
			Name: "weathering_type",
			Kind: KindEnum,
			Enum: []string{"none", "mechanical", "chemical", "biological", "mixed", "spheroidal", "exfoliation"},
			Desc: "Dominant weathering process: mechanical (frost wedging, abrasion), chemical (solution, oxidation), biological (root wedging, lichen), spheroidal, or sheet-like exfoliation.",
		},
		{
			Name: "hardness_class",
			Kind: KindEnum,
			Enum: []string{"very_soft", "soft", "medium", "hard", "very_hard"},
			Desc: "Mohs range: very_soft 1-2, soft 2-3, medium 3-5, hard 5-7, very_hard 7-10.",
		},
		{
			Name: "primary_structure",
			Kind: KindEnum,
			Enum: []string{"massive", "layered", "foliated", "vesicular", "amygdaloidal", "porphyritic", "brecciated", "conglomeratic", "crystalline", "concretionary"},
			Desc: "Dominant visible structure, e.g. bedding planes (layered), gas bubbles (vesicular), large crystals in a fine matrix (porphyritic).",
		},
		{
			Name: "fracture_type",
			Kind: KindEnum,
			Enum: []string{"conchoidal", "irregular", "splintery", "blocky", "platy", "columnar", "joint_controlled", "none_visible"},
			Desc: "Fracture pattern: conchoidal (shell-like, obsidian/flint), columnar (hexagonal basalt columns), joint_controlled (following joint sets).",
		},
		{
			Name: "alteration_type",
			Kind: KindEnum,
			Enum: []string{"unaltered", "oxidized", "silicified", "carbonatized", "chloritized", "sericitized", "kaolinized", "mineralized", "metamorphosed", "hydrothermal"},
			Desc: "Alteration style: oxidized (rust, iron staining), silicified (quartz replacement), chloritized (green alteration), mineralized (ore minerals present).",
		},
		{
			Name: "color_pattern",
			Kind: KindEnum,
			Enum: []string{"uniform", "mottled", "banded", "spotted", "veined", "gradational"},
			Desc: "Spatial color distribution across the specimen.",
		},
		{
			Name: "geological_context",
			Kind: KindEnum,
			Enum: []string{"in_situ_outcrop", "displaced_block", "float", "talus", "glacial_erratic", "stream_cobble", "artificial", "unknown_context"},
			Desc: "Emplacement context: in-place bedrock, locally displaced, transported float, slope talus, glacially transported, water transported, or human-placed.",
		},
		{
			Name: "confidence_level",
			Kind: KindEnum,
			Enum: []string{"very_low", "low", "medium", "high", "very_high"},
			Desc: "Identification confidence.",
		},
		{
			Name: "image_position",
			Kind: KindEnum,
			Enum: []string{"foreground", "midground", "background", "left", "right", "center", "multiple"},
			Desc: "Position of the specimen within the image frame.",
		},
		{Name: "confidence_value", Kind: KindFloat, Min: bound(0), Max: bound(1), Desc: "Numeric confidence from 0.0 to 1.0."},
		{Name: "estimated_diameter_cm", Kind: KindFloat, Min: bound(0), Desc: "Largest dimension in centimeters."},
		{Name: "visible_minerals_count", Kind: KindInt, Min: bound(0), Desc: "Count of identifiable minerals."},
		{Name: "specific_rock_name", Kind: KindString, Desc: "Full geological name, e.g. \"biotite granite\", \"oolitic limestone\"."},
		{Name: "color_details", Kind: KindString, Desc: "Complete color description."},
		{Name: "texture_description", Kind: KindString, Desc: "Detailed textural analysis."},
		{Name: "mineral_assemblage", Kind: KindString, Desc: "All visible minerals."},
		{Name: "surface_features", Kind: KindString, Desc: "Lichen, moss, coatings, stains."},
		{Name: "structural_features", Kind: KindString, Desc: "Joints, folds, faults, veins."},
		{Name: "shape_description", Kind: KindString, Desc: "Overall morphology."},
		{Name: "luster_description", Kind: KindString, Desc: "Metallic, vitreous, dull, etc."},
		{Name: "special_features", Kind: KindString, Desc: "Fossils, crystals, xenoliths."},
		{Name: "field_notes", Kind: KindString, Desc: "Professional geological observations."},
		{Name: "likely_formation", Kind: KindString, Desc: "Suspected geological formation, if identifiable."},
		{Name: "age_estimate", Kind: KindString, Desc: "Geological age, if determinable."},
	},

	SummaryFields: []Field{
		{Name: "total_rocks", Kind: KindInt, Min: bound(0), Desc: "Total number of specimens identified."},
		{Name: "dominant_rock_class", Kind: KindString, Desc: "Most common rock class in the image."},
		{Name: "secondary_rock_class", Kind: KindString, Desc: "Second most common rock class, if any."},
		{Name: "average_grain_size", Kind: KindString, Desc: "Typical grain size across specimens."},
		{Name: "weathering_assessment", Kind: KindString, Desc: "Overall weathering assessment."},
		{Name: "structural_geology", Kind: KindString, Desc: "Structural geology observations."},
		{Name: "geological_setting", Kind: KindString, Desc: "Interpreted geological setting."},
		{Name: "tectonic_interpretation", Kind: KindString, Desc: "Tectonic context interpretation."},
		{Name: "depositional_environment", Kind: KindString, Desc: "Depositional environment, if applicable."},
		{Name: "metamorphic_grade", Kind: KindString, Desc: "Metamorphic grade, if applicable."},
		{Name: "economic_geology_notes", Kind: KindString, Desc: "Economic geology observations."},
		{Name: "regional_geology_context", Kind: KindString, Desc: "Regional geological context."},
		{Name: "recommended_analyses", Kind: KindStringList, Desc: "Recommended follow-up laboratory analyses."},
		{Name: "location_used", Kind: KindString, Desc: "Echo of the location context used for this analysis."},
	},

	ExtraFields: []Field{
		{Name: "geological_interpretation", Kind: KindString, Desc: "Overall geological interpretation of the scene."},
		{Name: "confidence_assessment", Kind: KindString, Desc: "Assessment of the reliability of this analysis."},
	},
}
