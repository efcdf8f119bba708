// Package isostat computes the descriptive and inferential statistics of the
// shell isotope analysis: the layer/species summary table, one-way ANOVA and
// the Tukey HSD post-hoc comparison.
package isostat

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/coralsci/isoshell/internal/dataset"
)

// SummaryRow is one (subset, variable) line of the descriptive table.
type SummaryRow struct {
	Subset   string
	N        int
	Variable dataset.Variable
	Mean     float64
	SD       float64 // sample standard deviation, n-1 divisor; NaN when N == 1
}

type subsetDef struct {
	name string
	view func(*dataset.Table) *dataset.Table
}

// subsets enumerates the eight summary subsets in output order: each layer
// first over all specimens (undetermined species included), then per species.
func subsets() []subsetDef {
	var defs []subsetDef
	for _, layer := range []dataset.Layer{dataset.LayerOuter, dataset.LayerInner} {
		layer := layer
		defs = append(defs, subsetDef{
			name: string(layer) + " layer, all specimens",
			view: func(t *dataset.Table) *dataset.Table { return t.Layer(layer) },
		})
		for _, sp := range dataset.KnownSpeciesOrder {
			sp := sp
			defs = append(defs, subsetDef{
				name: string(layer) + " layer, " + sp.Label(),
				view: func(t *dataset.Table) *dataset.Table { return t.Layer(layer).Species(sp) },
			})
		}
	}
	return defs
}

// Summarize builds the 8-subset x 3-variable descriptive table. A subset with
// zero records fails with *EmptySubsetError; a subset of one record reports
// NaN standard deviation.
func Summarize(t *dataset.Table) ([]SummaryRow, error) {
	var rows []SummaryRow
	for _, def := range subsets() {
		view := def.view(t)
		if view.Len() == 0 {
			return nil, &EmptySubsetError{Subset: def.name}
		}
		for _, v := range dataset.Variables {
			samp := stats.Sample{Xs: view.Values(v)}
			sd := math.NaN()
			if len(samp.Xs) > 1 {
				sd = samp.StdDev()
			}
			rows = append(rows, SummaryRow{
				Subset:   def.name,
				N:        len(samp.Xs),
				Variable: v,
				Mean:     samp.Mean(),
				SD:       sd,
			})
		}
	}
	return rows, nil
}
