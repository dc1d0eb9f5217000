/*
Package rules holds the rules of map-paint style sources and indexes them
for fast matching against tagged map features.

A rule (type Prototype) consists of a condition, a priority, a range of
display scales it is valid for, and style attributes. There are four
categories of rules, each with its own attributes:

    Icon          icon image for point-like features
    Line          base line style for ways
    LineModifier  overlay line drawn above or below the base line
    Area          fill style for closed ways and multipolygons

Conditions are either exact tag tokens or predicates. Exact tokens are
looked up in a hash table, which keeps matching a feature proportional to
the number of its tags. Predicates are tried one after the other in
declaration order.

A style source is constructed once with a Builder and is immutable
afterwards. Sources are handed to resolvers through a Catalog, which
publishes new or reloaded sources atomically.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.rules'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.rules")
}
