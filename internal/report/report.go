// Package report renders analysis and comparison documents as human-readable
// console reports. Rendering is read-only and tolerant: missing fields show
// as "Unknown" or "N/A" instead of failing.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bryancraven/rock-photo/internal/result"
	"github.com/bryancraven/rock-photo/internal/schema"
)

const rule = "======================================================================"

// labelOverrides maps field names whose report label differs from the
// mechanical underscores-to-spaces form.
var labelOverrides = map[string]string{
	"total_rocks":      "Total specimens",
	"location_context": "Location",
	"location_used":    "Location",
}

// Analysis renders one analysis document for the given variant.
func Analysis(w io.Writer, v *schema.Variant, doc result.Document) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, v.Title)
	fmt.Fprintln(w, rule)

	summary := doc.Summary()
	fmt.Fprintln(w, "\nSUMMARY:")
	// A missing total_rocks falls back to the observed rock count rather
	// than a placeholder.
	fmt.Fprintf(w, "  Total specimens: %d\n", summary.Int("total_rocks", len(doc.Rocks())))
	for _, f := range v.SummaryFields {
		if f.Name == "total_rocks" {
			continue
		}
		writeField(w, "  ", f, summary)
	}

	rocks := doc.Rocks()
	fmt.Fprintf(w, "\n%s\nIDENTIFIED ROCKS (%d)\n%s\n", rule, len(rocks), rule)
	for i, rock := range rocks {
		fmt.Fprintf(w, "\n--- Rock %d ---\n", i+1)
		for _, f := range v.RockFields {
			writeField(w, "", f, rock)
		}
	}

	for _, f := range v.ExtraFields {
		fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, strings.ToUpper(label(f)), rule)
		fmt.Fprintln(w, doc.String(f.Name, "N/A"))
	}
}

// Comparison renders the structured diff of a with-location and a
// without-location analysis.
func Comparison(w io.Writer, doc result.Document) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COMPARISON ANALYSIS")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nKey Differences:")
	diffs := doc.Strings("key_differences")
	if len(diffs) == 0 {
		fmt.Fprintln(w, "  N/A")
	}
	for _, d := range diffs {
		fmt.Fprintf(w, "  - %s\n", d)
	}

	fmt.Fprintf(w, "\nLocation Impact: %s\n", doc.String("location_impact", "N/A"))
	if change, ok := doc.Number("confidence_change"); ok {
		fmt.Fprintf(w, "Confidence Change: %+.2f\n", change)
	} else {
		fmt.Fprintln(w, "Confidence Change: N/A")
	}
	fmt.Fprintf(w, "Accuracy Assessment: %s\n", doc.String("accuracy_assessment", "N/A"))
	fmt.Fprintf(w, "Geological Insights: %s\n", doc.String("geological_insights", "N/A"))
	fmt.Fprintf(w, "Recommendation: %s\n", doc.String("recommendation", "N/A"))
}

// Unavailable marks a comparison that could not be produced.
func Unavailable(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COMPARISON ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\nComparison unavailable.")
}

func writeField(w io.Writer, indent string, f schema.Field, doc result.Document) {
	switch f.Kind {
	case schema.KindFloat:
		if v, ok := doc.Number(f.Name); ok {
			fmt.Fprintf(w, "%s%s: %.2f\n", indent, label(f), v)
		} else {
			fmt.Fprintf(w, "%s%s: N/A\n", indent, label(f))
		}
	case schema.KindInt:
		if v, ok := doc.Number(f.Name); ok {
			fmt.Fprintf(w, "%s%s: %d\n", indent, label(f), int(v))
		} else {
			fmt.Fprintf(w, "%s%s: N/A\n", indent, label(f))
		}
	case schema.KindStringList:
		items := doc.Strings(f.Name)
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(w, "%s%s:\n", indent, label(f))
		for _, item := range items {
			fmt.Fprintf(w, "%s  - %s\n", indent, item)
		}
	default:
		fmt.Fprintf(w, "%s%s: %s\n", indent, label(f), doc.String(f.Name, "Unknown"))
	}
}

func label(f schema.Field) string {
	if l, ok := labelOverrides[f.Name]; ok {
		return l
	}
	name := strings.ReplaceAll(f.Name, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
