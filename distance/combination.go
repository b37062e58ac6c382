package distance

import "github.com/VersusProject/similarity-3d/mathops"

// TanejaDifference computes Σ ((P+Q)/2)·ln((P+Q) / (2√(PQ))).
func TanejaDifference(p, q []float64) (float64, error) {
	return eval("taneja-difference", func(c *calc) float64 {
		sum := c.vec(mathops.AddVec(p, q))
		mean := c.vec(mathops.Scale(0.5, sum))
		den := c.vec(mathops.Scale(2, c.sqrtProd(p, q)))
		return c.sum(mathops.ALnBVec(mean, c.vec(mathops.DivVec(sum, den))))
	}, p, q)
}

// KumarJohnson computes Σ (P²-Q²)² / (2(PQ)^{3/2}).
func KumarJohnson(p, q []float64) (float64, error) {
	return eval("kumar-johnson", func(c *calc) float64 {
		pp := c.vec(mathops.SquareVec(p))
		qq := c.vec(mathops.SquareVec(q))
		num := c.vec(mathops.SquareVec(c.vec(mathops.SubVec(pp, qq))))
		prod := c.vec(mathops.MulVec(p, q))
		exp := c.vec(mathops.Const(len(p), 1.5))
		den := c.vec(mathops.Scale(2, c.vec(mathops.PowVec(prod, exp))))
		return c.sum(mathops.DivVec(num, den))
	}, p, q)
}

// AvgL1LInf computes (Σ|P-Q| + n·max|P-Q|) / 2.
func AvgL1LInf(p, q []float64) (float64, error) {
	return eval("avg-l1-linf", func(c *calc) float64 {
		diff := c.absDiff(p, q)
		l1 := c.num(mathops.Sum(diff))
		linf := c.num(mathops.MaxOf(diff))
		spread := c.num(mathops.Mul(float64(len(p)), linf))
		return c.num(mathops.Mul(0.5, c.num(mathops.Add(l1, spread))))
	}, p, q)
}
