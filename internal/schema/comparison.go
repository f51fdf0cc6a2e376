package schema

// Comparison declares the shape of the structured diff the model produces
// when asked to compare a with-location analysis against a without-location
// analysis of the same image.
var Comparison = []Field{
	{Name: "key_differences", Kind: KindStringList, Desc: "Main differences in rock identification between the two analyses."},
	{Name: "location_impact", Kind: KindString, Desc: "How location knowledge affected the analysis."},
	{Name: "confidence_change", Kind: KindFloat, Desc: "Average confidence change; positive means location improved confidence."},
	{Name: "accuracy_assessment", Kind: KindString, Desc: "Which analysis seems more accurate, and why."},
	{Name: "geological_insights", Kind: KindString, Desc: "Geological insights the comparison reveals."},
	{Name: "recommendation", Kind: KindString, Desc: "Whether location context should be used for this type of image."},
}

// ComparisonSchema renders the comparison shape for the structured-output
// feature.
func ComparisonSchema() map[string]any {
	return objectSchema(Comparison)
}
