/*
Package mapstyle resolves the paint style of tagged map features.

Style rules are grouped into sources (package rules). Each rule carries a
condition on the tags of a feature, a priority, a range of display scales it
is valid for (package scale), and the style attributes of one category:
icons, lines, line modifiers or areas.

Package resolve matches a feature against the rules of one or more sources
and writes the winning attributes to a multi-cascade (package style): a
default cascade plus numbered overlays drawn over or under the feature. The
result carries the range of scales it stays valid for.

Command mapstyle in cmd/mapstyle resolves features declared in a YAML
fixture and prints the resulting cascades.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mapstyle
