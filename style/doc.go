/*
Package style holds the result of style resolution: cascades of style
properties.

A Cascade maps style property keys to values, e.g.

    width: 5.0
    color: #ff8000

Resolving the style of a map feature produces a MultiCascade: a cascade
named "default" for the feature itself, plus overlay cascades "over_N" and
"under_N" for lines to be drawn above or below it. Overlays are drawn with
z-index N and -N, respectively. The MultiCascade carries the range of
display scales it is valid for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.style")
}
