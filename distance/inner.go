package distance

import (
	"math"

	"github.com/VersusProject/similarity-3d/mathops"
)

// InnerProduct computes ΣPQ.
func InnerProduct(p, q []float64) (float64, error) {
	return eval("inner-product", func(c *calc) float64 {
		return c.sum(mathops.MulVec(p, q))
	}, p, q)
}

// HarmonicMean computes 2Σ(PQ / (P+Q)).
func HarmonicMean(p, q []float64) (float64, error) {
	return eval("harmonic-mean", func(c *calc) float64 {
		prod := c.vec(mathops.MulVec(p, q))
		sum := c.vec(mathops.AddVec(p, q))
		return c.num(mathops.Mul(2, c.sum(mathops.DivVec(prod, sum))))
	}, p, q)
}

// Cosine computes ΣPQ / (√ΣP²·√ΣQ²).
func Cosine(p, q []float64) (float64, error) {
	return eval("cosine", func(c *calc) float64 {
		dot := c.sum(mathops.MulVec(p, q))
		np := c.num(mathops.Sqrt(c.sum(mathops.SquareVec(p))))
		nq := c.num(mathops.Sqrt(c.sum(mathops.SquareVec(q))))
		return c.num(mathops.Div(dot, c.num(mathops.Mul(np, nq))))
	}, p, q)
}

// KumarHassebrook has no published closed form in this catalog. It validates
// its operands and then reports a not-defined failure with a NaN value.
func KumarHassebrook(p, q []float64) (float64, error) {
	const name = "kumar-hassebrook"
	if err := mathops.CheckArgs(name, p, q); err != nil {
		return 0, err
	}
	return math.NaN(), mathops.NotDefined(name)
}

// sumsOfSquares returns ΣPQ, ΣP² and ΣQ².
func sumsOfSquares(c *calc, p, q []float64) (dot, pp, qq float64) {
	dot = c.sum(mathops.MulVec(p, q))
	pp = c.sum(mathops.SquareVec(p))
	qq = c.sum(mathops.SquareVec(q))
	return dot, pp, qq
}

func jaccard(c *calc, p, q []float64) float64 {
	dot, pp, qq := sumsOfSquares(c, p, q)
	den := c.num(mathops.Sub(c.num(mathops.Add(pp, qq)), dot))
	return c.num(mathops.Div(dot, den))
}

// Jaccard computes ΣPQ / (ΣP² + ΣQ² - ΣPQ).
func Jaccard(p, q []float64) (float64, error) {
	return eval("jaccard", func(c *calc) float64 {
		return jaccard(c, p, q)
	}, p, q)
}

// JaccardDistance computes 1 - Jaccard.
func JaccardDistance(p, q []float64) (float64, error) {
	return eval("jaccard-distance", func(c *calc) float64 {
		return c.complement(jaccard(c, p, q), p, q)
	}, p, q)
}

// JaccardDistance2 computes Σ(P-Q)² / (ΣP² + ΣQ² - ΣPQ).
func JaccardDistance2(p, q []float64) (float64, error) {
	return eval("jaccard-distance-2", func(c *calc) float64 {
		num := c.num(mathops.Sum(c.sqDiff(p, q)))
		dot, pp, qq := sumsOfSquares(c, p, q)
		den := c.num(mathops.Sub(c.num(mathops.Add(pp, qq)), dot))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

func dice(c *calc, p, q []float64) float64 {
	dot, pp, qq := sumsOfSquares(c, p, q)
	num := c.num(mathops.Mul(2, dot))
	return c.num(mathops.Div(num, c.num(mathops.Add(pp, qq))))
}

// Dice computes 2ΣPQ / (ΣP² + ΣQ²).
func Dice(p, q []float64) (float64, error) {
	return eval("dice", func(c *calc) float64 {
		return dice(c, p, q)
	}, p, q)
}

// DiceDistance computes 1 - Dice.
func DiceDistance(p, q []float64) (float64, error) {
	return eval("dice-distance", func(c *calc) float64 {
		return c.complement(dice(c, p, q), p, q)
	}, p, q)
}

// DiceDistance2 computes Σ(P-Q)² / (ΣP² + ΣQ²).
func DiceDistance2(p, q []float64) (float64, error) {
	return eval("dice-distance-2", func(c *calc) float64 {
		num := c.num(mathops.Sum(c.sqDiff(p, q)))
		_, pp, qq := sumsOfSquares(c, p, q)
		return c.num(mathops.Div(num, c.num(mathops.Add(pp, qq))))
	}, p, q)
}
