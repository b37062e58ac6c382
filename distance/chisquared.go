package distance

import "github.com/VersusProject/similarity-3d/mathops"

// SquaredEuclidean computes Σ(P-Q)².
func SquaredEuclidean(p, q []float64) (float64, error) {
	return eval("squared-euclidean", func(c *calc) float64 {
		return c.num(mathops.Sum(c.sqDiff(p, q)))
	}, p, q)
}

// PearsonChiSquared computes Σ((P-Q)² / Q).
func PearsonChiSquared(p, q []float64) (float64, error) {
	return eval("pearson-chi-squared", func(c *calc) float64 {
		return c.sum(mathops.DivVec(c.sqDiff(p, q), q))
	}, p, q)
}

// NeymanChiSquared computes Σ((P-Q)² / P).
func NeymanChiSquared(p, q []float64) (float64, error) {
	return eval("neyman-chi-squared", func(c *calc) float64 {
		return c.sum(mathops.DivVec(c.sqDiff(p, q), p))
	}, p, q)
}

func squaredChi(c *calc, p, q []float64) float64 {
	sum := c.vec(mathops.AddVec(p, q))
	return c.sum(mathops.DivVec(c.sqDiff(p, q), sum))
}

// SquaredChiSquared computes Σ((P-Q)² / (P+Q)).
func SquaredChiSquared(p, q []float64) (float64, error) {
	return eval("squared-chi-squared", func(c *calc) float64 {
		return squaredChi(c, p, q)
	}, p, q)
}

// ProbabilisticSymmetricChiSquared computes 2Σ((P-Q)² / (P+Q)).
func ProbabilisticSymmetricChiSquared(p, q []float64) (float64, error) {
	return eval("probabilistic-symmetric-chi-squared", func(c *calc) float64 {
		return c.num(mathops.Mul(2, squaredChi(c, p, q)))
	}, p, q)
}

// Divergence computes 2Σ((P-Q)² / (P+Q)²).
func Divergence(p, q []float64) (float64, error) {
	return eval("divergence", func(c *calc) float64 {
		den := c.vec(mathops.SquareVec(c.vec(mathops.AddVec(p, q))))
		return c.num(mathops.Mul(2, c.sum(mathops.DivVec(c.sqDiff(p, q), den))))
	}, p, q)
}

// Clark computes √Σ(|P-Q| / (P+Q))².
func Clark(p, q []float64) (float64, error) {
	return eval("clark", func(c *calc) float64 {
		sum := c.vec(mathops.AddVec(p, q))
		ratio := c.vec(mathops.DivVec(c.absDiff(p, q), sum))
		return c.num(mathops.Sqrt(c.sum(mathops.SquareVec(ratio))))
	}, p, q)
}

// AdditiveSymmetricChiSquared computes Σ((P-Q)²(P+Q) / PQ).
func AdditiveSymmetricChiSquared(p, q []float64) (float64, error) {
	return eval("additive-symmetric-chi-squared", func(c *calc) float64 {
		num := c.vec(mathops.MulVec(c.sqDiff(p, q), c.vec(mathops.AddVec(p, q))))
		den := c.vec(mathops.MulVec(p, q))
		return c.sum(mathops.DivVec(num, den))
	}, p, q)
}
