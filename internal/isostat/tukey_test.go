package isostat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/coralsci/isoshell/internal/dataset"
)

func TestSRangeCDF_TwoGroupsMatchesStudentsT(t *testing.T) {
	// For k=2 the studentized range is sqrt(2)*|t|, so
	// P(Q <= q) = 1 - 2*P(T > q/sqrt(2)) with the same df.
	for _, v := range []float64{5, 10, 30} {
		td := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: v}
		for _, q := range []float64{0.5, 1, 2, 3, 4.5} {
			want := 1 - 2*td.Survival(q/math.Sqrt2)
			got := srCDF(q, 2, v)
			assert.InDelta(t, want, got, 2e-3, "q=%v df=%v", q, v)
		}
	}
}

func TestSRangeCDF_Monotone(t *testing.T) {
	prev := 0.0
	for q := 0.25; q <= 8; q += 0.25 {
		p := srCDF(q, 3, 12)
		assert.GreaterOrEqual(t, p, prev, "CDF must be nondecreasing at q=%v", q)
		prev = p
	}
	assert.Greater(t, prev, 0.99)
}

func TestSRangeQuantile_TabledCriticalValue(t *testing.T) {
	// Published 5% critical value of the studentized range, k=3, df=10: 3.88.
	q := srQuantile(0.95, 3, 10)
	assert.InDelta(t, 3.88, q, 0.05)
}

func TestTukeyHSD_PairsAndAntisymmetry(t *testing.T) {
	an := NewAnalyzer(nil)
	res, err := an.TukeyHSD(threeGroups(), dataset.VarD13C, 0.95)
	require.NoError(t, err)
	require.Len(t, res.Comparisons, 3, "three unordered pairs for three species")

	anova, err := an.OneWayANOVA(threeGroups(), dataset.VarD13C)
	require.NoError(t, err)
	mean := map[string]float64{}
	for _, g := range anova.Groups {
		mean[g.Name] = g.Mean
	}
	for _, c := range res.Comparisons {
		assert.InDelta(t, mean[c.A]-mean[c.B], c.Diff, 1e-12)
		// Antisymmetry: the reversed contrast is the negation.
		assert.InDelta(t, -(mean[c.B] - mean[c.A]), c.Diff, 1e-12)
		assert.Less(t, c.Lower, c.Diff)
		assert.Greater(t, c.Upper, c.Diff)
		assert.GreaterOrEqual(t, c.P, 0.0)
		assert.LessOrEqual(t, c.P, 1.0)
	}
}

func TestTukeyHSD_SignificanceOrdering(t *testing.T) {
	// Group means 2, 3, 7 with MSW=1: the squamosina/squamosa contrast
	// (diff 1) should not be significant, maxima contrasts (diff >= 4) should.
	res, err := NewAnalyzer(nil).TukeyHSD(threeGroups(), dataset.VarD13C, 0.95)
	require.NoError(t, err)
	for _, c := range res.Comparisons {
		small := math.Abs(c.Diff) < 2
		if small {
			assert.Greater(t, c.P, 0.05, "pair %s-%s", c.A, c.B)
			assert.True(t, c.Lower < 0 && c.Upper > 0, "CI of a non-significant pair spans zero")
		} else {
			assert.Less(t, c.P, 0.05, "pair %s-%s", c.A, c.B)
			assert.False(t, c.Lower < 0 && c.Upper > 0, "CI of a significant pair excludes zero")
		}
	}
}

func TestTukeyHSD_UsesANOVAPooledVariance(t *testing.T) {
	an := NewAnalyzer(nil)
	res, err := an.TukeyHSD(threeGroups(), dataset.VarD13C, 0.95)
	require.NoError(t, err)
	anova, err := an.OneWayANOVA(threeGroups(), dataset.VarD13C)
	require.NoError(t, err)
	assert.Equal(t, anova.DFWithin, res.DFWithin)
	assert.InDelta(t, anova.MSWithin, res.MSWithin, 1e-12)
}
