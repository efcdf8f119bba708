package isostat

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Studentized range distribution, needed for Tukey HSD. No Go statistics
// library ships it, so the CDF is evaluated by direct numerical integration:
// the range CDF of k standard normals, mixed over the distribution of the
// pooled standard deviation estimate (sqrt of a scaled chi-squared with v
// degrees of freedom). Composite Simpson quadrature throughout; integrands
// are smooth and the tails are cut where the normal density is < 1e-16.

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// rangeCDF is P(range of k iid standard normals <= q).
func rangeCDF(q float64, k int) float64 {
	if q <= 0 {
		return 0
	}
	const (
		lo    = -8.5
		hi    = 8.5
		steps = 512 // even
	)
	h := (hi - lo) / steps
	f := func(z float64) float64 {
		w := stdNormal.CDF(z) - stdNormal.CDF(z-q)
		return stdNormal.Prob(z) * math.Pow(w, float64(k-1))
	}
	sum := f(lo) + f(hi)
	for i := 1; i < steps; i++ {
		z := lo + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(z)
		} else {
			sum += 2 * f(z)
		}
	}
	p := float64(k) * sum * h / 3
	return math.Min(1, math.Max(0, p))
}

// srCDF is P(Q <= q) for the studentized range with k groups and v
// within-group degrees of freedom.
func srCDF(q float64, k int, v float64) float64 {
	if q <= 0 {
		return 0
	}
	if v > 10000 {
		return rangeCDF(q, k)
	}
	// Density of u = s/sigma where (v*s^2)/sigma^2 ~ chi-squared(v):
	// f(u) = 2*(v/2)^(v/2)/Gamma(v/2) * u^(v-1) * exp(-v*u^2/2).
	lg, _ := math.Lgamma(v / 2)
	lnC := math.Ln2 + (v/2)*math.Log(v/2) - lg
	pdfU := func(u float64) float64 {
		if u <= 0 {
			return 0
		}
		return math.Exp(lnC + (v-1)*math.Log(u) - v*u*u/2)
	}
	// u concentrates near 1 with spread ~ 1/sqrt(2v).
	spread := 1 / math.Sqrt(2*v)
	lo := math.Max(0, 1-12*spread)
	hi := 1 + 12*spread
	const steps = 256 // even
	h := (hi - lo) / steps
	f := func(u float64) float64 { return pdfU(u) * rangeCDF(q*u, k) }
	sum := f(lo) + f(hi)
	for i := 1; i < steps; i++ {
		u := lo + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(u)
		} else {
			sum += 2 * f(u)
		}
	}
	p := sum * h / 3
	return math.Min(1, math.Max(0, p))
}

// srQuantile inverts srCDF by bisection: the q with P(Q <= q) = p.
func srQuantile(p float64, k int, v float64) float64 {
	lo, hi := 0.0, 1.0
	for srCDF(hi, k, v) < p && hi < 1024 {
		hi *= 2
	}
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if srCDF(mid, k, v) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
