package pixelset

import "github.com/VersusProject/similarity-3d/mathops"

// ErrorRates compares a test segmentation against a truth segmentation.
type ErrorRates struct {
	TruePositives  float64 // truth AND test
	FalsePositives float64 // NOT truth AND test
	FalseNegatives float64 // truth AND NOT test
	Union          float64 // truth OR test
	TruthCount     float64
	TestCount      float64

	SimilarityIndex   float64 // TP / union
	FalsePositiveRate float64 // FP / union
	FalseNegativeRate float64 // FN / union

	// TET is TP / |truth|.
	TET float64
	// TEE is TP / |test|, or 1 when the test mask is empty.
	TEE float64
}

func countOf(mask []float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	return mathops.Sum(mask)
}

// TotalErrorRates computes every count and rate of truth against test.
func TotalErrorRates(truth, test []float64) (ErrorRates, error) {
	var r ErrorRates
	if err := mathops.CheckArgs("totalErrorRate", truth, test); err != nil {
		return r, err
	}
	t, err := Logical(truth)
	if err != nil {
		return r, err
	}
	e, err := Logical(test)
	if err != nil {
		return r, err
	}
	notT, err := Not(t)
	if err != nil {
		return r, err
	}
	notE, err := Not(e)
	if err != nil {
		return r, err
	}

	if r.TruePositives, err = countOf(And(t, e)); err != nil {
		return ErrorRates{}, err
	}
	if r.FalsePositives, err = countOf(And(notT, e)); err != nil {
		return ErrorRates{}, err
	}
	if r.FalseNegatives, err = countOf(And(t, notE)); err != nil {
		return ErrorRates{}, err
	}
	if r.Union, err = countOf(Or(t, e)); err != nil {
		return ErrorRates{}, err
	}
	if r.TruthCount, err = mathops.Sum(t); err != nil {
		return ErrorRates{}, err
	}
	if r.TestCount, err = mathops.Sum(e); err != nil {
		return ErrorRates{}, err
	}

	if r.SimilarityIndex, err = mathops.Div(r.TruePositives, r.Union); err != nil {
		return ErrorRates{}, err
	}
	if r.FalsePositiveRate, err = mathops.Div(r.FalsePositives, r.Union); err != nil {
		return ErrorRates{}, err
	}
	if r.FalseNegativeRate, err = mathops.Div(r.FalseNegatives, r.Union); err != nil {
		return ErrorRates{}, err
	}
	if r.TET, err = mathops.Div(r.TruePositives, r.TruthCount); err != nil {
		return ErrorRates{}, err
	}
	if r.TestCount == 0 {
		r.TEE = 1
	} else if r.TEE, err = mathops.Div(r.TruePositives, r.TestCount); err != nil {
		return ErrorRates{}, err
	}
	return r, nil
}

// TET returns the true positives over the truth count.
func TET(truth, test []float64) (float64, error) {
	r, err := TotalErrorRates(truth, test)
	if err != nil {
		return 0, err
	}
	return r.TET, nil
}

// TEE returns the true positives over the test count.
func TEE(truth, test []float64) (float64, error) {
	r, err := TotalErrorRates(truth, test)
	if err != nil {
		return 0, err
	}
	return r.TEE, nil
}
