/*
Package scale implements validity ranges of display scales.

A rule of a map-paint style is valid for a range of scales only. Resolving
the style of a map feature at a given scale therefore produces a result
which is valid for a range of scales, too. Clients may cache the result and
re-use it for any scale within this range.

Ranges are half-open intervals [lower, upper). The only exception is the
degenerate point range [x, x], which signals that a result is valid for
scale x only and has to be re-computed whenever the scale changes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scale

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.scale'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.scale")
}
