// Package report renders the analysis results as compact text blocks and as
// an XLSX workbook.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/coralsci/isoshell/internal/isostat"
)

func fmtSD(sd float64) string {
	if math.IsNaN(sd) {
		return "NA"
	}
	return fmt.Sprintf("%.4g", sd)
}

// SummaryText renders the descriptive table, one row per (subset, variable).
func SummaryText(name string, rows []isostat.SummaryRow) string {
	var b strings.Builder
	b.WriteString("[DESCRIPTIVE SUMMARY]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	b.WriteString("\n| subset | n | variable | mean | sd |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("| %s | %d | %s | %.4g | %s |\n",
			r.Subset, r.N, r.Variable, r.Mean, fmtSD(r.SD)))
	}
	return b.String()
}

// ANOVAText renders a one-way ANOVA table.
func ANOVAText(r *isostat.ANOVAResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[ANOVA: %s ~ species]\n", r.Variable))
	for _, g := range r.Groups {
		b.WriteString(fmt.Sprintf("- %s: n=%d, mean %.4g\n", g.Name, g.N, g.Mean))
	}
	b.WriteString("\n| source | df | sum sq | mean sq | F | p |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	b.WriteString(fmt.Sprintf("| species | %d | %.4g | %.4g | %.4g | %.4g |\n",
		r.DFBetween, r.SSBetween, r.MSBetween, r.F, r.P))
	b.WriteString(fmt.Sprintf("| residuals | %d | %.4g | %.4g |  |  |\n",
		r.DFWithin, r.SSWithin, r.MSWithin))
	return b.String()
}

// TukeyText renders the post-hoc pairwise table.
func TukeyText(r *isostat.TukeyResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[TUKEY HSD: %s ~ species, %.0f%% family-wise CI]\n",
		r.Variable, r.Confidence*100))
	b.WriteString("\n| pair | diff | lower | upper | p adj |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range r.Comparisons {
		b.WriteString(fmt.Sprintf("| %s-%s | %.4g | %.4g | %.4g | %.4g |\n",
			c.A, c.B, c.Diff, c.Lower, c.Upper, c.P))
	}
	return b.String()
}
