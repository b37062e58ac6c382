package distance

import "github.com/VersusProject/similarity-3d/mathops"

// Intersection computes Σmin(P,Q).
func Intersection(p, q []float64) (float64, error) {
	return eval("intersection", func(c *calc) float64 {
		return c.sum(mathops.MinVec(p, q))
	}, p, q)
}

// IntersectionDistance computes 1 - Σmin(P,Q).
func IntersectionDistance(p, q []float64) (float64, error) {
	return eval("intersection-distance", func(c *calc) float64 {
		return c.complement(c.sum(mathops.MinVec(p, q)), p, q)
	}, p, q)
}

// IntersectionDistance2 computes ½Σ|P-Q|.
func IntersectionDistance2(p, q []float64) (float64, error) {
	return eval("intersection-distance-2", func(c *calc) float64 {
		return c.num(mathops.Mul(0.5, c.num(mathops.Sum(c.absDiff(p, q)))))
	}, p, q)
}

// WaveHedges computes Σ(|P-Q| / max(P,Q)).
func WaveHedges(p, q []float64) (float64, error) {
	return eval("wave-hedges", func(c *calc) float64 {
		hi := c.vec(mathops.MaxVec(p, q))
		return c.sum(mathops.DivVec(c.absDiff(p, q), hi))
	}, p, q)
}

// WaveHedges2 computes Σ(1 - min(P,Q)/max(P,Q)).
func WaveHedges2(p, q []float64) (float64, error) {
	return eval("wave-hedges-2", func(c *calc) float64 {
		lo := c.vec(mathops.MinVec(p, q))
		hi := c.vec(mathops.MaxVec(p, q))
		ratio := c.vec(mathops.DivVec(lo, hi))
		ones := c.vec(mathops.Const(len(p), 1))
		return c.sum(mathops.SubVec(ones, ratio))
	}, p, q)
}

func czekanowski(c *calc, p, q []float64) float64 {
	num := c.num(mathops.Mul(2, c.sum(mathops.MinVec(p, q))))
	den := c.sum(mathops.AddVec(p, q))
	return c.num(mathops.Div(num, den))
}

// Czekanowski computes 2Σmin(P,Q) / Σ(P+Q).
func Czekanowski(p, q []float64) (float64, error) {
	return eval("czekanowski", func(c *calc) float64 {
		return czekanowski(c, p, q)
	}, p, q)
}

// CzekanowskiDistance computes 1 - Czekanowski.
func CzekanowskiDistance(p, q []float64) (float64, error) {
	return eval("czekanowski-distance", func(c *calc) float64 {
		return c.complement(czekanowski(c, p, q), p, q)
	}, p, q)
}

// CzekanowskiDistance2 computes Σ|P-Q| / Σ(P+Q).
func CzekanowskiDistance2(p, q []float64) (float64, error) {
	return eval("czekanowski-distance-2", func(c *calc) float64 {
		num := c.num(mathops.Sum(c.absDiff(p, q)))
		den := c.sum(mathops.AddVec(p, q))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

func motyka(c *calc, p, q []float64) float64 {
	num := c.sum(mathops.MinVec(p, q))
	den := c.sum(mathops.AddVec(p, q))
	return c.num(mathops.Div(num, den))
}

// Motyka computes Σmin(P,Q) / Σ(P+Q).
func Motyka(p, q []float64) (float64, error) {
	return eval("motyka", func(c *calc) float64 {
		return motyka(c, p, q)
	}, p, q)
}

// MotykaDistance computes 1 - Motyka.
func MotykaDistance(p, q []float64) (float64, error) {
	return eval("motyka-distance", func(c *calc) float64 {
		return c.complement(motyka(c, p, q), p, q)
	}, p, q)
}

// MotykaDistance2 computes Σmax(P,Q) / Σ(P+Q).
func MotykaDistance2(p, q []float64) (float64, error) {
	return eval("motyka-distance-2", func(c *calc) float64 {
		num := c.sum(mathops.MaxVec(p, q))
		den := c.sum(mathops.AddVec(p, q))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// KulczynskiS computes the reciprocal of KulczynskiD.
func KulczynskiS(p, q []float64) (float64, error) {
	return eval("kulczynski-s", func(c *calc) float64 {
		return c.num(mathops.Reciprocal(c.num(KulczynskiD(p, q))))
	}, p, q)
}

// KulczynskiS2 computes Σmin(P,Q) / Σ|P-Q|.
func KulczynskiS2(p, q []float64) (float64, error) {
	return eval("kulczynski-s-2", func(c *calc) float64 {
		num := c.sum(mathops.MinVec(p, q))
		den := c.num(mathops.Sum(c.absDiff(p, q)))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// Ruzicka computes Σmin(P,Q) / Σmax(P,Q).
func Ruzicka(p, q []float64) (float64, error) {
	return eval("ruzicka", func(c *calc) float64 {
		num := c.sum(mathops.MinVec(p, q))
		den := c.sum(mathops.MaxVec(p, q))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// Tanimoto computes Σ(max(P,Q) - min(P,Q)) / Σmax(P,Q).
func Tanimoto(p, q []float64) (float64, error) {
	return eval("tanimoto", func(c *calc) float64 {
		lo := c.vec(mathops.MinVec(p, q))
		hi := c.vec(mathops.MaxVec(p, q))
		num := c.sum(mathops.SubVec(hi, lo))
		den := c.num(mathops.Sum(hi))
		return c.num(mathops.Div(num, den))
	}, p, q)
}

// Tanimoto2 computes (ΣP + ΣQ - 2Σmin) / (ΣP + ΣQ - Σmin).
func Tanimoto2(p, q []float64) (float64, error) {
	return eval("tanimoto-2", func(c *calc) float64 {
		sp := c.num(mathops.Sum(p))
		sq := c.num(mathops.Sum(q))
		lo := c.sum(mathops.MinVec(p, q))
		total := c.num(mathops.Add(sp, sq))
		num := c.num(mathops.Sub(total, c.num(mathops.Mul(2, lo))))
		den := c.num(mathops.Sub(total, lo))
		return c.num(mathops.Div(num, den))
	}, p, q)
}
