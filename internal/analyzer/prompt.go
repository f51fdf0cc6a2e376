package analyzer

import (
	"fmt"
	"strings"

	"github.com/bryancraven/rock-photo/internal/schema"
)

const locationBlock = `LOCATION CONTEXT PROVIDED

Location: %s

Use location knowledge to:
- Consider typical regional rock types
- Inform geological setting interpretation
- Guide formation identification

IMPORTANT: Visual evidence is primary. Treat the regional geology as a prior,
not as ground truth. If observed features contradict regional expectations,
trust what you observe and note the discrepancy in the notes fields. Consider
transported specimens (glacial erratics, building stones, fill material).`

const noLocationBlock = `NO LOCATION CONTEXT - VISUAL ANALYSIS ONLY

Analyze based purely on observable features without regional geology
knowledge. Focus on diagnostic visual characteristics: texture, structure,
mineralogy. Formation, age, and tectonic claims are unreliable without
location context; qualify them accordingly.`

// buildAnalysisPrompt renders the full instruction set for one analysis
// call. The categorical sections are generated from the variant's field
// tables so the prompt always enumerates every permitted token verbatim.
// Same inputs always produce the same prompt text.
func buildAnalysisPrompt(v *schema.Variant, location string, useLocation bool) string {
	var b strings.Builder

	b.WriteString(v.Intro)
	b.WriteString("\n\nFor each rock, you MUST select from these exact standardized categories:\n")

	for _, f := range v.RockFields {
		if f.Kind != schema.KindEnum {
			continue
		}
		fmt.Fprintf(&b, "\n- %s: choose from %s\n  %s\n", f.Name, quoteTokens(f.Enum), f.Desc)
	}

	b.WriteString("\nNUMERICAL VALUES:\n")
	for _, f := range v.RockFields {
		if f.Kind != schema.KindFloat && f.Kind != schema.KindInt {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Desc)
	}

	b.WriteString("\nDESCRIPTIVE FIELDS (provide detailed observations):\n")
	for _, f := range v.RockFields {
		if f.Kind != schema.KindString {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Desc)
	}

	b.WriteString("\n")
	b.WriteString(v.SummaryGuidance)
	b.WriteString("\n")
	for _, f := range v.SummaryFields {
		if f.Kind == schema.KindEnum {
			fmt.Fprintf(&b, "- %s must be one of %s\n", f.Name, quoteTokens(f.Enum))
		}
	}

	b.WriteString("\n")
	if useLocation && location != "" {
		fmt.Fprintf(&b, locationBlock, location)
	} else {
		b.WriteString(noLocationBlock)
	}
	b.WriteString("\n")

	return b.String()
}

// buildComparisonPrompt embeds both serialized analyses verbatim and asks
// for a structured diff against the comparison schema.
func buildComparisonPrompt(withLoc, withoutLoc []byte, location string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Compare these two rock analyses of the same image - one performed with
location context (%s) and one without.

Analysis WITH location:
%s

Analysis WITHOUT location:
%s

Provide a comparison with:
`, location, withLoc, withoutLoc)

	for _, f := range schema.Comparison {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Desc)
	}

	return b.String()
}

func quoteTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = `"` + t + `"`
	}
	return strings.Join(quoted, ", ")
}
