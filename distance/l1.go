package distance

import "github.com/VersusProject/similarity-3d/mathops"

// Sorensen computes Σ|P-Q| / Σ(P+Q).
func Sorensen(p, q []float64) (float64, error) {
	return eval("sorensen", func(c *calc) float64 {
		num := c.num(mathops.Sum(c.absDiff(p, q)))
		den := c.sum(mathops.AddVec(p, q))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// Gower computes (1/n)·Σ|P-Q|.
func Gower(p, q []float64) (float64, error) {
	return eval("gower", func(c *calc) float64 {
		inv := c.num(mathops.Reciprocal(float64(len(p))))
		return c.num(mathops.Mul(inv, c.num(mathops.Sum(c.absDiff(p, q)))))
	}, p, q)
}

// GowerWeighted computes (1/n)·Σ(|P-Q|/R), where R holds per-bin ranges.
func GowerWeighted(p, q, r []float64) (float64, error) {
	return eval("gower-weighted", func(c *calc) float64 {
		inv := c.num(mathops.Reciprocal(float64(len(p))))
		s := c.sum(mathops.DivVec(c.absDiff(p, q), r))
		return c.num(mathops.Mul(inv, s))
	}, p, q, r)
}

// Soergel computes Σ|P-Q| / Σmax(P,Q).
func Soergel(p, q []float64) (float64, error) {
	return eval("soergel", func(c *calc) float64 {
		num := c.num(mathops.Sum(c.absDiff(p, q)))
		den := c.sum(mathops.MaxVec(p, q))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// KulczynskiD computes Σ|P-Q| / Σmin(P,Q).
func KulczynskiD(p, q []float64) (float64, error) {
	return eval("kulczynski-d", func(c *calc) float64 {
		num := c.num(mathops.Sum(c.absDiff(p, q)))
		den := c.sum(mathops.MinVec(p, q))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// Canberra computes Σ(|P-Q| / (P+Q)).
func Canberra(p, q []float64) (float64, error) {
	return eval("canberra", func(c *calc) float64 {
		sum := c.vec(mathops.AddVec(p, q))
		return c.sum(mathops.DivVec(c.absDiff(p, q), sum))
	}, p, q)
}

// Lorentzian computes Σln(1+|P-Q|).
func Lorentzian(p, q []float64) (float64, error) {
	return eval("lorentzian", func(c *calc) float64 {
		ones := c.vec(mathops.Const(len(p), 1))
		shifted := c.vec(mathops.AddVec(ones, c.absDiff(p, q)))
		return c.sum(mathops.LnVec(shifted))
	}, p, q)
}
