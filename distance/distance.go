// Package distance provides the catalog of histogram similarity, distance and
// divergence measures.
//
// Each measure takes two equal-length, finite distributions and is composed
// from the mathops primitives, so it inherits their singularity policy: a
// failure in any intermediate step aborts the measure with a *mathops.Error.
//
// Formulas follow S.-H. Cha, "Comprehensive Survey on Distance/Similarity
// Measures between Probability Density Functions" (2007).
package distance

import (
	"sort"

	"github.com/VersusProject/similarity-3d/mathops"
)

// Func is a measure between two distributions.
type Func func(p, q []float64) (float64, error)

// WeightedFunc is a measure that also takes a per-bin normalizer.
type WeightedFunc func(p, q, r []float64) (float64, error)

// Family groups measures the way the survey does.
type Family string

const (
	FamilyMinkowski    Family = "Minkowski"
	FamilyL1           Family = "L1"
	FamilyIntersection Family = "Intersection"
	FamilyInnerProduct Family = "Inner Product"
	FamilyFidelity     Family = "Fidelity"
	FamilySquaredL2    Family = "Squared L2"
	FamilyShannon      Family = "Shannon's Entropy"
	FamilyCombinations Family = "Combinations"
)

// Metric describes one catalog entry. Exactly one of Func and Weighted is set.
type Metric struct {
	Name     string
	Family   Family
	Func     Func
	Weighted WeightedFunc
}

// Catalog lists every measure in survey order.
var Catalog = []Metric{
	// Minkowski family
	{Name: "euclidean", Family: FamilyMinkowski, Func: Euclidean},
	{Name: "city-block", Family: FamilyMinkowski, Func: CityBlock},
	{Name: "minkowski", Family: FamilyMinkowski, Func: Minkowski},
	{Name: "chebyshev", Family: FamilyMinkowski, Func: Chebyshev},

	// L1 family
	{Name: "sorensen", Family: FamilyL1, Func: Sorensen},
	{Name: "gower", Family: FamilyL1, Func: Gower},
	{Name: "gower-weighted", Family: FamilyL1, Weighted: GowerWeighted},
	{Name: "soergel", Family: FamilyL1, Func: Soergel},
	{Name: "kulczynski-d", Family: FamilyL1, Func: KulczynskiD},
	{Name: "canberra", Family: FamilyL1, Func: Canberra},
	{Name: "lorentzian", Family: FamilyL1, Func: Lorentzian},

	// Intersection family
	{Name: "intersection", Family: FamilyIntersection, Func: Intersection},
	{Name: "intersection-distance", Family: FamilyIntersection, Func: IntersectionDistance},
	{Name: "intersection-distance-2", Family: FamilyIntersection, Func: IntersectionDistance2},
	{Name: "wave-hedges", Family: FamilyIntersection, Func: WaveHedges},
	{Name: "wave-hedges-2", Family: FamilyIntersection, Func: WaveHedges2},
	{Name: "czekanowski", Family: FamilyIntersection, Func: Czekanowski},
	{Name: "czekanowski-distance", Family: FamilyIntersection, Func: CzekanowskiDistance},
	{Name: "czekanowski-distance-2", Family: FamilyIntersection, Func: CzekanowskiDistance2},
	{Name: "motyka", Family: FamilyIntersection, Func: Motyka},
	{Name: "motyka-distance", Family: FamilyIntersection, Func: MotykaDistance},
	{Name: "motyka-distance-2", Family: FamilyIntersection, Func: MotykaDistance2},
	{Name: "kulczynski-s", Family: FamilyIntersection, Func: KulczynskiS},
	{Name: "kulczynski-s-2", Family: FamilyIntersection, Func: KulczynskiS2},
	{Name: "ruzicka", Family: FamilyIntersection, Func: Ruzicka},
	{Name: "tanimoto", Family: FamilyIntersection, Func: Tanimoto},
	{Name: "tanimoto-2", Family: FamilyIntersection, Func: Tanimoto2},

	// Inner product family
	{Name: "inner-product", Family: FamilyInnerProduct, Func: InnerProduct},
	{Name: "harmonic-mean", Family: FamilyInnerProduct, Func: HarmonicMean},
	{Name: "cosine", Family: FamilyInnerProduct, Func: Cosine},
	{Name: "kumar-hassebrook", Family: FamilyInnerProduct, Func: KumarHassebrook},
	{Name: "jaccard", Family: FamilyInnerProduct, Func: Jaccard},
	{Name: "jaccard-distance", Family: FamilyInnerProduct, Func: JaccardDistance},
	{Name: "jaccard-distance-2", Family: FamilyInnerProduct, Func: JaccardDistance2},
	{Name: "dice", Family: FamilyInnerProduct, Func: Dice},
	{Name: "dice-distance", Family: FamilyInnerProduct, Func: DiceDistance},
	{Name: "dice-distance-2", Family: FamilyInnerProduct, Func: DiceDistance2},

	// Fidelity (squared-chord) family
	{Name: "fidelity", Family: FamilyFidelity, Func: Fidelity},
	{Name: "bhattacharyya", Family: FamilyFidelity, Func: Bhattacharyya},
	{Name: "hellinger", Family: FamilyFidelity, Func: Hellinger},
	{Name: "hellinger-2", Family: FamilyFidelity, Func: Hellinger2},
	{Name: "matusita", Family: FamilyFidelity, Func: Matusita},
	{Name: "matusita-2", Family: FamilyFidelity, Func: Matusita2},
	{Name: "squared-chord", Family: FamilyFidelity, Func: SquaredChord},
	{Name: "squared-chord-similarity", Family: FamilyFidelity, Func: SquaredChordSimilarity},
	{Name: "squared-chord-similarity-2", Family: FamilyFidelity, Func: SquaredChordSimilarity2},

	// Squared L2 (chi-squared) family
	{Name: "squared-euclidean", Family: FamilySquaredL2, Func: SquaredEuclidean},
	{Name: "pearson-chi-squared", Family: FamilySquaredL2, Func: PearsonChiSquared},
	{Name: "neyman-chi-squared", Family: FamilySquaredL2, Func: NeymanChiSquared},
	{Name: "squared-chi-squared", Family: FamilySquaredL2, Func: SquaredChiSquared},
	{Name: "probabilistic-symmetric-chi-squared", Family: FamilySquaredL2, Func: ProbabilisticSymmetricChiSquared},
	{Name: "divergence", Family: FamilySquaredL2, Func: Divergence},
	{Name: "clark", Family: FamilySquaredL2, Func: Clark},
	{Name: "additive-symmetric-chi-squared", Family: FamilySquaredL2, Func: AdditiveSymmetricChiSquared},

	// Shannon's entropy family
	{Name: "kullback-leibler", Family: FamilyShannon, Func: KullbackLeibler},
	{Name: "jeffreys", Family: FamilyShannon, Func: Jeffreys},
	{Name: "k-divergence", Family: FamilyShannon, Func: KDivergence},
	{Name: "topsoe", Family: FamilyShannon, Func: Topsoe},
	{Name: "jensen-shannon", Family: FamilyShannon, Func: JensenShannon},
	{Name: "jensen-difference", Family: FamilyShannon, Func: JensenDifference},

	// Combinations
	{Name: "taneja-difference", Family: FamilyCombinations, Func: TanejaDifference},
	{Name: "kumar-johnson", Family: FamilyCombinations, Func: KumarJohnson},
	{Name: "avg-l1-linf", Family: FamilyCombinations, Func: AvgL1LInf},
}

// aliases maps alternative names onto catalog names.
var aliases = map[string]string{
	"l2":        "euclidean",
	"l1":        "city-block",
	"manhattan": "city-block",
	"linf":      "chebyshev",
	"lp":        "minkowski",
	"kl":        "kullback-leibler",
}

// Registry maps measure names (and aliases) to two-argument implementations.
var Registry = buildRegistry()

// WeightedRegistry maps names to three-argument implementations.
var WeightedRegistry = map[string]WeightedFunc{
	"gower-weighted": GowerWeighted,
}

func buildRegistry() map[string]Func {
	r := make(map[string]Func, len(Catalog)+len(aliases))
	for _, m := range Catalog {
		if m.Func != nil {
			r[m.Name] = m.Func
		}
	}
	for alias, name := range aliases {
		r[alias] = r[name]
	}
	return r
}

// Get returns the measure for the given name.
func Get(name string) (Func, bool) {
	f, ok := Registry[name]
	return f, ok
}

// GetWeighted returns the three-argument measure for the given name.
func GetWeighted(name string) (WeightedFunc, bool) {
	f, ok := WeightedRegistry[name]
	return f, ok
}

// Lookup returns the catalog entry for a name or alias.
func Lookup(name string) (Metric, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, m := range Catalog {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// Names returns the sorted catalog names, excluding aliases.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, m := range Catalog {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// calc threads the first failure through a chain of primitive calls. Once
// err is set every later step is a no-op, so a formula reads top to bottom
// and is checked once at the end.
type calc struct {
	err error
}

func (c *calc) vec(v []float64, err error) []float64 {
	if c.err != nil {
		return nil
	}
	if err != nil {
		c.err = err
		return nil
	}
	return v
}

func (c *calc) num(x float64, err error) float64 {
	if c.err != nil {
		return 0
	}
	if err != nil {
		c.err = err
		return 0
	}
	return x
}

// sum reduces the vector produced by a primitive.
func (c *calc) sum(v []float64, err error) float64 {
	v = c.vec(v, err)
	if c.err != nil {
		return 0
	}
	return c.num(mathops.Sum(v))
}

// absDiff returns |P - Q|.
func (c *calc) absDiff(p, q []float64) []float64 {
	return c.vec(mathops.AbsVec(c.vec(mathops.SubVec(p, q))))
}

// sqDiff returns (P - Q)².
func (c *calc) sqDiff(p, q []float64) []float64 {
	return c.vec(mathops.SquareVec(c.vec(mathops.SubVec(p, q))))
}

// sqrtProd returns √(P·Q).
func (c *calc) sqrtProd(p, q []float64) []float64 {
	return c.vec(mathops.SqrtVec(c.vec(mathops.MulVec(p, q))))
}

// chordSq returns (√P - √Q)².
func (c *calc) chordSq(p, q []float64) []float64 {
	return c.sqDiff(c.vec(mathops.SqrtVec(p)), c.vec(mathops.SqrtVec(q)))
}

// normalized reports whether both distributions sum to 1 within tolerance.
func (c *calc) normalized(p, q []float64) bool {
	okP, err := mathops.IsNormalized(p)
	if err != nil {
		c.err = err
		return false
	}
	okQ, err := mathops.IsNormalized(q)
	if err != nil {
		c.err = err
		return false
	}
	return okP && okQ
}

// complement returns 1 - s, or 0 when s overshoots 1 on normalized inputs.
func (c *calc) complement(s float64, p, q []float64) float64 {
	if c.err != nil {
		return 0
	}
	if s > 1 && c.normalized(p, q) {
		return 0
	}
	return c.num(mathops.Sub(1, s))
}

// eval validates the operands, runs the formula and validates its result.
func eval(name string, f func(c *calc) float64, operands ...[]float64) (float64, error) {
	if err := mathops.CheckArgs(name, operands...); err != nil {
		return 0, err
	}
	c := &calc{}
	v := f(c)
	if c.err != nil {
		return 0, c.err
	}
	if err := mathops.CheckResult(name, v); err != nil {
		return 0, err
	}
	return v, nil
}
