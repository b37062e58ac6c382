package distance

import "github.com/VersusProject/similarity-3d/mathops"

// bhattacharyyaCoefficient returns Σ√(PQ) and whether it overshoots 1 on
// normalized inputs, in which case the derived distances are zero.
func bhattacharyyaCoefficient(c *calc, p, q []float64) (bc float64, overshoot bool) {
	bc = c.num(mathops.Sum(c.sqrtProd(p, q)))
	return bc, c.err == nil && bc > 1 && c.normalized(p, q)
}

// Fidelity computes the Bhattacharyya coefficient Σ√(PQ).
func Fidelity(p, q []float64) (float64, error) {
	return eval("fidelity", func(c *calc) float64 {
		return c.num(mathops.Sum(c.sqrtProd(p, q)))
	}, p, q)
}

// Bhattacharyya computes -ln Σ√(PQ).
func Bhattacharyya(p, q []float64) (float64, error) {
	return eval("bhattacharyya", func(c *calc) float64 {
		bc, overshoot := bhattacharyyaCoefficient(c, p, q)
		if overshoot {
			return 0
		}
		return c.num(mathops.Mul(-1, c.num(mathops.Ln(bc))))
	}, p, q)
}

// Hellinger computes 2√(1 - Σ√(PQ)).
func Hellinger(p, q []float64) (float64, error) {
	return eval("hellinger", func(c *calc) float64 {
		bc, overshoot := bhattacharyyaCoefficient(c, p, q)
		if overshoot {
			return 0
		}
		root := c.num(mathops.Sqrt(c.num(mathops.Sub(1, bc))))
		return c.num(mathops.Mul(2, root))
	}, p, q)
}

// Hellinger2 computes √(2Σ(√P-√Q)²).
func Hellinger2(p, q []float64) (float64, error) {
	return eval("hellinger-2", func(c *calc) float64 {
		s := c.num(mathops.Sum(c.chordSq(p, q)))
		return c.num(mathops.Sqrt(c.num(mathops.Mul(2, s))))
	}, p, q)
}

// Matusita computes √(2 - 2Σ√(PQ)).
func Matusita(p, q []float64) (float64, error) {
	return eval("matusita", func(c *calc) float64 {
		bc, overshoot := bhattacharyyaCoefficient(c, p, q)
		if overshoot {
			return 0
		}
		return c.num(mathops.Sqrt(c.num(mathops.Sub(2, c.num(mathops.Mul(2, bc))))))
	}, p, q)
}

// Matusita2 computes √Σ(√P-√Q)².
func Matusita2(p, q []float64) (float64, error) {
	return eval("matusita-2", func(c *calc) float64 {
		return c.num(mathops.Sqrt(c.num(mathops.Sum(c.chordSq(p, q)))))
	}, p, q)
}

// SquaredChord computes Σ(√P-√Q)².
func SquaredChord(p, q []float64) (float64, error) {
	return eval("squared-chord", func(c *calc) float64 {
		return c.num(mathops.Sum(c.chordSq(p, q)))
	}, p, q)
}

// SquaredChordSimilarity computes 1 - SquaredChord.
func SquaredChordSimilarity(p, q []float64) (float64, error) {
	return eval("squared-chord-similarity", func(c *calc) float64 {
		return c.complement(c.num(mathops.Sum(c.chordSq(p, q))), p, q)
	}, p, q)
}

// SquaredChordSimilarity2 computes 2Σ(√(PQ) - 1).
func SquaredChordSimilarity2(p, q []float64) (float64, error) {
	return eval("squared-chord-similarity-2", func(c *calc) float64 {
		shifted := c.vec(mathops.Shift(c.sqrtProd(p, q), 1))
		return c.num(mathops.Mul(2, c.num(mathops.Sum(shifted))))
	}, p, q)
}
