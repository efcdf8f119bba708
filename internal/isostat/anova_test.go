package isostat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/coralsci/isoshell/internal/dataset"
)

// threeGroups builds outer-layer records with d13C values per species:
// squamosina {1,2,3}, squamosa {2,3,4}, maxima {6,7,8}. Hand computation:
// group means 2, 3, 7; grand mean 4; SSB = 3*(4+1+9) = 42; SSW = 6;
// df (2, 6); MSB 21; MSW 1; F = 21.
func threeGroups() *dataset.Table {
	var recs []dataset.Record
	add := func(sp dataset.Species, xs ...float64) {
		for _, x := range xs {
			recs = append(recs, dataset.Record{Species: sp, Layer: dataset.LayerOuter, D13C: x})
		}
	}
	add(dataset.SpeciesSquamosina, 1, 2, 3)
	add(dataset.SpeciesSquamosa, 2, 3, 4)
	add(dataset.SpeciesMaxima, 6, 7, 8)
	return dataset.NewTable(recs)
}

func TestOneWayANOVA_HandComputedTable(t *testing.T) {
	an := NewAnalyzer(nil)
	res, err := an.OneWayANOVA(threeGroups(), dataset.VarD13C)
	require.NoError(t, err)

	assert.Equal(t, 2, res.DFBetween)
	assert.Equal(t, 6, res.DFWithin)
	assert.InDelta(t, 42.0, res.SSBetween, 1e-9)
	assert.InDelta(t, 6.0, res.SSWithin, 1e-9)
	assert.InDelta(t, 21.0, res.MSBetween, 1e-9)
	assert.InDelta(t, 1.0, res.MSWithin, 1e-9)
	assert.InDelta(t, 21.0, res.F, 1e-9)

	wantP := distuv.F{D1: 2, D2: 6}.Survival(21.0)
	assert.InDelta(t, wantP, res.P, 1e-12)
	assert.Less(t, res.P, 0.01)

	require.Len(t, res.Groups, 3)
	assert.Equal(t, "maxima", res.Groups[0].Name, "groups sorted by name")
	assert.InDelta(t, 7.0, res.Groups[0].Mean, 1e-9)
}

func TestOneWayANOVA_OrderInvariant(t *testing.T) {
	an := NewAnalyzer(nil)
	fwd, err := an.OneWayANOVA(threeGroups(), dataset.VarD13C)
	require.NoError(t, err)

	recs := threeGroups().Records()
	rev := make([]dataset.Record, len(recs))
	for i, r := range recs {
		rev[len(recs)-1-i] = r
	}
	bwd, err := an.OneWayANOVA(dataset.NewTable(rev), dataset.VarD13C)
	require.NoError(t, err)

	assert.InDelta(t, fwd.F, bwd.F, 1e-12, "F must not depend on record order")
	assert.InDelta(t, fwd.P, bwd.P, 1e-12)
}

func TestOneWayANOVA_InsufficientGroups(t *testing.T) {
	recs := []dataset.Record{
		{Species: dataset.SpeciesMaxima, Layer: dataset.LayerOuter, D13C: 1},
		{Species: dataset.SpeciesMaxima, Layer: dataset.LayerOuter, D13C: 2},
	}
	_, err := NewAnalyzer(nil).OneWayANOVA(dataset.NewTable(recs), dataset.VarD13C)
	var ige *InsufficientGroupsError
	require.ErrorAs(t, err, &ige)
	assert.Equal(t, 1, ige.Groups)
}
