package distance

import "github.com/VersusProject/similarity-3d/mathops"

// relativeToMean returns Σ aLnB(P, 2P/(P+Q)).
func relativeToMean(c *calc, p, q []float64) float64 {
	twice := c.vec(mathops.Scale(2, p))
	ratio := c.vec(mathops.DivVec(twice, c.vec(mathops.AddVec(p, q))))
	return c.sum(mathops.ALnBVec(p, ratio))
}

// KullbackLeibler computes Σ P·ln(P/Q).
func KullbackLeibler(p, q []float64) (float64, error) {
	return eval("kullback-leibler", func(c *calc) float64 {
		return c.sum(mathops.ALnBVec(p, c.vec(mathops.DivVec(p, q))))
	}, p, q)
}

// Jeffreys computes Σ (P-Q)·ln(P/Q).
func Jeffreys(p, q []float64) (float64, error) {
	return eval("jeffreys", func(c *calc) float64 {
		diff := c.vec(mathops.SubVec(p, q))
		return c.sum(mathops.ALnBVec(diff, c.vec(mathops.DivVec(p, q))))
	}, p, q)
}

// KDivergence computes Σ P·ln(2P/(P+Q)).
func KDivergence(p, q []float64) (float64, error) {
	return eval("k-divergence", func(c *calc) float64 {
		return relativeToMean(c, p, q)
	}, p, q)
}

// Topsoe computes Σ [P·ln(2P/(P+Q)) + Q·ln(2Q/(P+Q))].
func Topsoe(p, q []float64) (float64, error) {
	return eval("topsoe", func(c *calc) float64 {
		return c.num(mathops.Add(relativeToMean(c, p, q), relativeToMean(c, q, p)))
	}, p, q)
}

// JensenShannon computes ½[Σ P·ln(2P/(P+Q)) + Σ Q·ln(2Q/(P+Q))].
func JensenShannon(p, q []float64) (float64, error) {
	return eval("jensen-shannon", func(c *calc) float64 {
		s := c.num(mathops.Add(relativeToMean(c, p, q), relativeToMean(c, q, p)))
		return c.num(mathops.Mul(0.5, s))
	}, p, q)
}

// JensenDifference computes Σ [(P·lnP + Q·lnQ)/2 - M·lnM] with M = (P+Q)/2.
func JensenDifference(p, q []float64) (float64, error) {
	return eval("jensen-difference", func(c *calc) float64 {
		pp := c.vec(mathops.ALnBVec(p, p))
		qq := c.vec(mathops.ALnBVec(q, q))
		half := c.vec(mathops.Scale(0.5, c.vec(mathops.AddVec(pp, qq))))
		m := c.vec(mathops.Scale(0.5, c.vec(mathops.AddVec(p, q))))
		mm := c.vec(mathops.ALnBVec(m, m))
		return c.sum(mathops.SubVec(half, mm))
	}, p, q)
}
