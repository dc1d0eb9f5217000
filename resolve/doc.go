/*
Package resolve computes the style of map features from the rules of
style sources.

For every category of rules, all rules matching a feature's tags are
candidates. The best candidate wins: a candidate replaces the current
winner if its priority is at least as high, so that of two rules with equal
priority the one declared later wins. When resolving for a display scale,
candidates whose scale range does not contain the scale are rejected. Each
decision narrows the range of scales the result is valid for:

    accepted candidate   validity ∩ candidate range
    rejected candidate   validity shrunk around the scale, excluding
                         the candidate range

A client may therefore re-use a result for any scale within its validity
range.

Point-like features (nodes, turn restrictions) get an icon. Line-like
features (ways, multipolygons) get a base line, line modifiers drawn as
numbered overlays over or under the base line, and an area fill.

Resolution never blocks and never fails for missing rules. It fails only
for violated contracts, e.g. a rule filed under the wrong category; in this
case the multi-cascade is left untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolve

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.resolve")
}

// ErrContractViolation is the error returned for resolutions which could not
// be completed because of a programming error, either in the client or in
// the construction of a style source.
var ErrContractViolation = errors.New("style resolution contract violated")

// ErrOverlayExhausted is returned if no free overlay number could be found
// below the configured maximum. It is always wrapped together with
// ErrContractViolation.
var ErrOverlayExhausted = errors.New("no free overlay index")
