package distance

import "github.com/VersusProject/similarity-3d/mathops"

// Euclidean computes √Σ(P-Q)².
func Euclidean(p, q []float64) (float64, error) {
	return eval("euclidean", func(c *calc) float64 {
		return c.num(mathops.Sqrt(c.sum(mathops.SquareVec(c.absDiff(p, q)))))
	}, p, q)
}

// CityBlock computes Σ|P-Q|.
func CityBlock(p, q []float64) (float64, error) {
	return eval("city-block", func(c *calc) float64 {
		return c.num(mathops.Sum(c.absDiff(p, q)))
	}, p, q)
}

// Minkowski computes the order-3 Minkowski distance ∛Σ|P-Q|³.
func Minkowski(p, q []float64) (float64, error) {
	return eval("minkowski", func(c *calc) float64 {
		return c.num(mathops.Cbrt(c.sum(mathops.CubeVec(c.absDiff(p, q)))))
	}, p, q)
}

// Chebyshev computes max|P-Q|.
func Chebyshev(p, q []float64) (float64, error) {
	return eval("chebyshev", func(c *calc) float64 {
		return c.num(mathops.MaxOf(c.absDiff(p, q)))
	}, p, q)
}
