package isostat

import (
	"math"

	"go.uber.org/zap"

	"github.com/coralsci/isoshell/internal/dataset"
)

// TukeyComparison is one pairwise species contrast. Diff is mean(A)-mean(B);
// swapping A and B negates Diff and mirrors the interval.
type TukeyComparison struct {
	A     string
	B     string
	Diff  float64
	Lower float64
	Upper float64
	P     float64 // family-wise adjusted
}

// TukeyResult is the full post-hoc table over all unordered species pairs,
// using the same pooled within-group variance as the preceding ANOVA.
type TukeyResult struct {
	Variable    dataset.Variable
	Confidence  float64
	DFWithin    int
	MSWithin    float64
	Comparisons []TukeyComparison
}

// TukeyHSD runs the honestly-significant-difference test on variable ~
// species. conf is the family-wise confidence level for the intervals,
// typically 0.95.
func (a *Analyzer) TukeyHSD(t *dataset.Table, v dataset.Variable, conf float64) (*TukeyResult, error) {
	anova, err := a.OneWayANOVA(t, v)
	if err != nil {
		return nil, err
	}
	k := len(anova.Groups)
	df := float64(anova.DFWithin)
	qcrit := srQuantile(conf, k, df)

	res := &TukeyResult{
		Variable:   v,
		Confidence: conf,
		DFWithin:   anova.DFWithin,
		MSWithin:   anova.MSWithin,
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			gi, gj := anova.Groups[j], anova.Groups[i] // later level minus earlier
			diff := gi.Mean - gj.Mean
			se := math.Sqrt(anova.MSWithin / 2 * (1/float64(gi.N) + 1/float64(gj.N)))
			q := math.Abs(diff) / se
			hw := qcrit * se
			res.Comparisons = append(res.Comparisons, TukeyComparison{
				A:     gi.Name,
				B:     gj.Name,
				Diff:  diff,
				Lower: diff - hw,
				Upper: diff + hw,
				P:     1 - srCDF(q, k, df),
			})
		}
	}

	a.logger.Debug("Tukey HSD",
		zap.String("variable", string(v)),
		zap.Int("pairs", len(res.Comparisons)),
		zap.Float64("qcrit", qcrit))
	return res, nil
}
