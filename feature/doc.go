/*
Package feature defines the read-only view of tagged map features which the
style resolution needs.

Map data is kept elsewhere; styling only asks a feature for its kind,
whether it is geometrically closed and for its tags. Type Primitive is a
simple implementation of interface Feature, used by tests and tools.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package feature

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.feature'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.feature")
}
