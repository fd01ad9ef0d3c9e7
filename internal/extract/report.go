package extract

import (
	"fmt"
	"strings"

	"github.com/geowell-tools/wellextract/internal/model"
)

// FormatReport generates a human-readable extraction report in Markdown.
func FormatReport(result *model.WellExtraction, report *model.ValidationReport) string {
	var b strings.Builder

	name := result.WellName
	if name == "" {
		name = "(unnamed well)"
	}
	fmt.Fprintf(&b, "# Well Extraction Report: %s\n\n", name)

	// Summary.
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Trajectory points: %d\n", len(result.Trajectory))
	fmt.Fprintf(&b, "- Casing intervals: %d\n", len(result.Casing))
	fmt.Fprintf(&b, "- Merged profile rows: %d\n", len(result.Merged))
	if result.Pressure != nil {
		fmt.Fprintf(&b, "- Pressure: %.1f bar (%s)\n", result.Pressure.Bar, result.Pressure.Context)
	}
	if result.Temperature != nil {
		fmt.Fprintf(&b, "- Temperature: %.1f °C\n", result.Temperature.Celsius)
	}
	status := "PASSED"
	if !report.IsValid {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "- Validation: %s\n", status)
	fmt.Fprintf(&b, "- Confidence: %.2f\n\n", result.Confidence)

	// Merged profile.
	if len(result.Merged) > 0 {
		b.WriteString("## Merged Profile\n")
		b.WriteString("| MD (m) | TVD (m) | Inc (°) | Pipe ID (m) |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, p := range result.Merged {
			inc := "-"
			if p.Inclination != nil {
				inc = fmt.Sprintf("%.1f", *p.Inclination)
			}
			fmt.Fprintf(&b, "| %.1f | %.1f | %s | %.4f |\n", p.MD, p.TVD, inc, p.PipeID)
		}
		b.WriteString("\n")
	}

	// Casing design.
	if len(result.Casing) > 0 {
		b.WriteString("## Casing Design\n")
		for _, iv := range result.Casing {
			fmt.Fprintf(&b, "- %.1f - %.1f m, ID %.4f m [%.0f%%]\n",
				iv.TopDepth, iv.BottomDepth, iv.PipeID, iv.Confidence*100)
		}
		b.WriteString("\n")
	}

	// Findings.
	if len(report.Errors) > 0 {
		b.WriteString("## Errors\n")
		for _, e := range report.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}
	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}
	if len(report.Recommendations) > 0 {
		b.WriteString("## Recommendations\n")
		for _, r := range report.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\n")
	}

	return b.String()
}
