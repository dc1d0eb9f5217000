package resolve

import (
	"github.com/npillmayer/mapstyle/maybe"
	"github.com/npillmayer/mapstyle/rules"
	"github.com/npillmayer/mapstyle/scale"
)

// Accepts checks whether candidate is better than current, which may be nil.
//
// A candidate is eligible if there is no current winner or if its priority
// is at least as high as the current winner's. If sc is Nothing, an eligible
// candidate is accepted. Otherwise it is accepted if its range contains the
// scale, and validity is cut down to the candidate's range. If the range
// does not contain the scale, the candidate is rejected, but validity is
// reduced to exclude its range: beyond that boundary the candidate would
// have won.
func Accepts(current, candidate *rules.Prototype, sc maybe.Maybe[float64], validity *scale.Range) bool {
	if current != nil && candidate.Priority < current.Priority {
		return false
	}
	s, ok := sc.Get()
	if !ok {
		return true
	}
	if candidate.Range.Contains(s) {
		*validity = scale.Cut(*validity, candidate.Range)
		return true
	}
	*validity = validity.ReduceAround(s, candidate.Range)
	tracer().Debugf("resolve: %s rejected at scale %g, validity now %s", candidate, s, *validity)
	return false
}

// Select returns the winner of current and candidate.
func Select(current, candidate *rules.Prototype, sc maybe.Maybe[float64], validity *scale.Range) *rules.Prototype {
	if Accepts(current, candidate, sc, validity) {
		return candidate
	}
	return current
}
