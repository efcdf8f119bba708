package report

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/coralsci/isoshell/internal/dataset"
	"github.com/coralsci/isoshell/internal/isostat"
)

func sampleRows() []isostat.SummaryRow {
	return []isostat.SummaryRow{
		{Subset: "outer layer, all specimens", N: 12, Variable: dataset.VarD13C, Mean: 0.42, SD: 0.11},
		{Subset: "outer layer, T. maxima", N: 1, Variable: dataset.VarTemperature, Mean: 22.5, SD: math.NaN()},
	}
}

func TestSummaryText(t *testing.T) {
	out := SummaryText("shells.csv", sampleRows())
	if !strings.Contains(out, "[DESCRIPTIVE SUMMARY]") {
		t.Fatalf("missing section header:\n%s", out)
	}
	if !strings.Contains(out, "File: shells.csv") {
		t.Fatalf("missing file name:\n%s", out)
	}
	if !strings.Contains(out, "| outer layer, all specimens | 12 | d13C | 0.42 | 0.11 |") {
		t.Fatalf("missing summary row:\n%s", out)
	}
	if !strings.Contains(out, "| NA |") {
		t.Fatalf("NaN SD should render as NA:\n%s", out)
	}
}

func TestANOVAText(t *testing.T) {
	r := &isostat.ANOVAResult{
		Variable:  dataset.VarTemperature,
		Groups:    []isostat.GroupStat{{Name: "maxima", N: 7, Mean: 22.1}},
		DFBetween: 2, DFWithin: 6,
		SSBetween: 42, SSWithin: 6,
		MSBetween: 21, MSWithin: 1,
		F: 21, P: 0.0019,
	}
	out := ANOVAText(r)
	if !strings.Contains(out, "[ANOVA: temperature ~ species]") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "| species | 2 | 42 | 21 | 21 | 0.0019 |") {
		t.Fatalf("missing effect row:\n%s", out)
	}
	if !strings.Contains(out, "| residuals | 6 | 6 | 1 |") {
		t.Fatalf("missing residuals row:\n%s", out)
	}
}

func TestTukeyText(t *testing.T) {
	r := &isostat.TukeyResult{
		Variable:   dataset.VarTemperature,
		Confidence: 0.95,
		DFWithin:   6,
		MSWithin:   1,
		Comparisons: []isostat.TukeyComparison{
			{A: "squamosa", B: "maxima", Diff: -4, Lower: -6.5, Upper: -1.5, P: 0.004},
		},
	}
	out := TukeyText(r)
	if !strings.Contains(out, "95% family-wise CI") {
		t.Fatalf("missing confidence header:\n%s", out)
	}
	if !strings.Contains(out, "| squamosa-maxima | -4 | -6.5 | -1.5 | 0.004 |") {
		t.Fatalf("missing pair row:\n%s", out)
	}
}

func TestWriteSummaryXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteSummaryXLSX(sampleRows(), path); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()
	got, err := f.GetCellValue("Descriptive_Summary", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "outer layer, all specimens" {
		t.Fatalf("A2 = %q", got)
	}
	sd, err := f.GetCellValue("Descriptive_Summary", "E3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if sd != "NA" {
		t.Fatalf("NaN SD cell = %q, want NA", sd)
	}
}
