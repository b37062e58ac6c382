package mathops

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Failure kinds. Every error returned by this module wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrHWIndependence marks a NaN operand or result.
	ErrHWIndependence = errors.New("hardware independence violation")

	// ErrSingularity marks an infinite operand or result, or a missing operand.
	ErrSingularity = errors.New("singularity")

	// ErrShape marks operands whose lengths or declared dimensions differ.
	ErrShape = errors.New("incompatible shapes")

	// ErrNotDefined marks a measure that deliberately has no formula yet.
	ErrNotDefined = errors.New("not yet defined")
)

// Arg identifies which operand of an operation violated its contract.
type Arg int

const (
	ArgResult Arg = iota
	ArgFirst
	ArgSecond
	ArgThird
)

func (a Arg) String() string {
	switch a {
	case ArgFirst:
		return "first argument"
	case ArgSecond:
		return "second argument"
	case ArgThird:
		return "third argument"
	default:
		return "result"
	}
}

// Error is the typed failure returned by every primitive and measure.
type Error struct {
	Op     string // operation or measure name
	Arg    Arg    // offending operand
	Kind   error  // one of the Err* kinds above
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Arg, e.Kind)
	}
	return fmt.Sprintf("%s: %s %s", e.Op, e.Arg, e.Detail)
}

// Unwrap returns the failure kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an *Error. Higher-level packages use it to report failures
// in the same shape as the primitives.
func NewError(op string, arg Arg, kind error, detail string) *Error {
	return &Error{Op: op, Arg: arg, Kind: kind, Detail: detail}
}

// NotDefined returns the placeholder failure for a measure without a formula.
func NotDefined(op string) *Error {
	return &Error{Op: op, Arg: ArgResult, Kind: ErrNotDefined, Detail: "has no published formula"}
}
