package scale

import (
	"fmt"
	"math"
)

// Range is an immutable interval of display scales. Ranges are usually
// half-open, i.e. [Lower, Upper), and may be unbounded on either side
// (using ±Inf). A range with Lower == Upper is a point range, which
// contains exactly one scale.
//
// The zero value is the point range [0, 0]. Clients will usually start
// with Universal().
type Range struct {
	lower float64
	upper float64
}

// Universal returns the range containing every scale.
func Universal() Range {
	return Range{lower: math.Inf(-1), upper: math.Inf(1)}
}

// Point returns the degenerate range containing scale x only.
func Point(x float64) Range {
	return Range{lower: x, upper: x}
}

// New creates a range [lower, upper). It is an error if the range would
// be empty or if one of the bounds is NaN.
func New(lower, upper float64) (Range, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Range{}, fmt.Errorf("scale range bounds must be numbers, have [%g, %g)", lower, upper)
	}
	if lower >= upper {
		return Range{}, fmt.Errorf("scale range [%g, %g) is empty", lower, upper)
	}
	return Range{lower: lower, upper: upper}, nil
}

// Between is like New, but panics for an empty range. Use it for ranges
// known at compile time.
func Between(lower, upper float64) Range {
	r, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// AtLeast returns [lower, +Inf).
func AtLeast(lower float64) Range {
	return Between(lower, math.Inf(1))
}

// Below returns (-Inf, upper).
func Below(upper float64) Range {
	return Between(math.Inf(-1), upper)
}

// Lower returns the lower bound, which is included.
func (r Range) Lower() float64 {
	return r.lower
}

// Upper returns the upper bound, which is excluded unless r is a point range.
func (r Range) Upper() float64 {
	return r.upper
}

// IsPoint is true for degenerate ranges valid for a single scale only.
func (r Range) IsPoint() bool {
	return r.lower == r.upper
}

// IsUniversal is true if r is unbounded on both sides.
func (r Range) IsUniversal() bool {
	return math.IsInf(r.lower, -1) && math.IsInf(r.upper, 1)
}

// Contains checks if lower <= x < upper. A point range contains its point.
func (r Range) Contains(x float64) bool {
	if r.IsPoint() {
		return x == r.lower
	}
	return r.lower <= x && x < r.upper
}

// Equal compares two ranges by their bounds.
func (r Range) Equal(other Range) bool {
	return r.lower == other.lower && r.upper == other.upper
}

func (r Range) String() string {
	if r.IsPoint() {
		return fmt.Sprintf("[%g]", r.lower)
	}
	return fmt.Sprintf("[%g, %g)", r.lower, r.upper)
}

// Cut returns the intersection of a and b.
//
// Callers have to make sure that the intersection is not empty, usually by
// having checked that both ranges contain the scale in question. If the
// ranges are disjoint nevertheless, Cut degenerates to a point range at the
// upper one of the lower bounds.
func Cut(a, b Range) Range {
	r := Range{
		lower: math.Max(a.lower, b.lower),
		upper: math.Min(a.upper, b.upper),
	}
	if r.lower > r.upper {
		tracer().Errorf("scale: cut of disjoint ranges %s and %s", a, b)
		return Point(r.lower)
	}
	return r
}

// ReduceAround shrinks r to the largest sub-range containing x which does
// not intersect other. r has to contain x.
//
// If other lies completely below x, the lower bound of r is raised to the
// upper bound of other. If other lies completely above x, the upper bound
// is lowered to the lower bound of other. If other contains x, there is no
// such sub-range apart from x itself and the result is the point range at x.
func (r Range) ReduceAround(x float64, other Range) Range {
	var reduced Range
	switch {
	case other.Contains(x):
		reduced = Point(x)
	case other.upper <= x:
		reduced = Range{lower: math.Max(r.lower, other.upper), upper: r.upper}
	case other.lower > x:
		reduced = Range{lower: r.lower, upper: math.Min(r.upper, other.lower)}
	default:
		reduced = Point(x)
	}
	if !reduced.Contains(x) {
		// r did not contain x in the first place
		tracer().Errorf("scale: %s reduced around %g by %s does not contain %g", r, x, other, x)
		return Point(x)
	}
	return reduced
}
