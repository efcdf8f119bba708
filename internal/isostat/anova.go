package isostat

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/coralsci/isoshell/internal/dataset"
)

// Analyzer runs the inferential tests. Callers are expected to hand it the
// already-filtered table (outer layer, determined species only).
type Analyzer struct {
	logger *zap.Logger
}

func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// GroupStat describes one species group entering a test.
type GroupStat struct {
	Name string
	N    int
	Mean float64
}

// ANOVAResult is a one-way analysis-of-variance table for variable ~ species.
type ANOVAResult struct {
	Variable  dataset.Variable
	Groups    []GroupStat
	DFBetween int
	DFWithin  int
	SSBetween float64
	SSWithin  float64
	MSBetween float64
	MSWithin  float64
	F         float64
	P         float64
}

// groupValues partitions one variable by species, group names sorted so the
// result does not depend on record order.
func groupValues(t *dataset.Table, v dataset.Variable) (names []string, values map[string][]float64) {
	values = make(map[string][]float64)
	for _, r := range t.Records() {
		key := string(r.Species)
		values[key] = append(values[key], r.Value(v))
	}
	names = make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, values
}

// OneWayANOVA tests whether the species group means of the given variable
// differ. The F statistic is the between-group mean square over the
// within-group mean square; its p-value comes from the F distribution with
// (k-1, N-k) degrees of freedom.
func (a *Analyzer) OneWayANOVA(t *dataset.Table, v dataset.Variable) (*ANOVAResult, error) {
	names, values := groupValues(t, v)
	if len(names) < 2 {
		return nil, &InsufficientGroupsError{Variable: string(v), Groups: len(names)}
	}

	total := 0
	grandSum := 0.0
	for _, xs := range values {
		total += len(xs)
		for _, x := range xs {
			grandSum += x
		}
	}
	if total <= len(names) {
		return nil, fmt.Errorf("%s: %d records across %d groups leave no residual degrees of freedom",
			v, total, len(names))
	}
	grandMean := grandSum / float64(total)

	res := &ANOVAResult{
		Variable:  v,
		DFBetween: len(names) - 1,
		DFWithin:  total - len(names),
	}
	for _, name := range names {
		xs := values[name]
		m := stat.Mean(xs, nil)
		res.Groups = append(res.Groups, GroupStat{Name: name, N: len(xs), Mean: m})
		d := m - grandMean
		res.SSBetween += float64(len(xs)) * d * d
		for _, x := range xs {
			res.SSWithin += (x - m) * (x - m)
		}
	}
	res.MSBetween = res.SSBetween / float64(res.DFBetween)
	res.MSWithin = res.SSWithin / float64(res.DFWithin)
	res.F = res.MSBetween / res.MSWithin
	res.P = distuv.F{D1: float64(res.DFBetween), D2: float64(res.DFWithin)}.Survival(res.F)

	a.logger.Debug("one-way ANOVA",
		zap.String("variable", string(v)),
		zap.Int("groups", len(names)),
		zap.Float64("F", res.F),
		zap.Float64("p", res.P))
	return res, nil
}
