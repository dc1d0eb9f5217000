package feature

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the kind of a map feature.
type Kind int8

// Feature kinds. Unusable denotes features which must not be styled, e.g.,
// deleted or incomplete ones.
const (
	Unusable Kind = iota
	Node
	Way
	Relation
)

func (k Kind) String() string {
	switch k {
	case Node:
		return "node"
	case Way:
		return "way"
	case Relation:
		return "relation"
	}
	return "unusable"
}

// Tags is the key/value attribute set of a feature.
type Tags map[string]string

// Keys returns the keys in ascending order. Visiting tags in a stable order
// makes style resolution deterministic.
func (tags Tags) Keys() []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value for key and whether the key is present.
func (tags Tags) Get(key string) (string, bool) {
	v, ok := tags[key]
	return v, ok
}

func (tags Tags) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range tags.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(tags[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Feature is the read-only view of a map feature. Implementations must not
// change a feature while a style resolution is reading it.
type Feature interface {
	Kind() Kind
	IsClosed() bool // for ways only: is the first node the last node?
	Tags() Tags
}

// RelationType returns the value of tag "type" for relations and "" for any
// other kind of feature.
func RelationType(f Feature) string {
	if f == nil || f.Kind() != Relation {
		return ""
	}
	t, _ := f.Tags().Get("type")
	return t
}

// IsPointLike is true for nodes and for turn restrictions.
func IsPointLike(f Feature) bool {
	return f.Kind() == Node || RelationType(f) == "restriction"
}

// IsLineLike is true for ways and for multipolygon relations.
func IsLineLike(f Feature) bool {
	return f.Kind() == Way || RelationType(f) == "multipolygon"
}

// --- Primitive -------------------------------------------------------------

// Primitive is a plain in-memory feature.
type Primitive struct {
	ID         int64
	Type       Kind
	Closed     bool
	Deleted    bool
	Incomplete bool
	TagSet     Tags
}

// NewNode creates a node with tags given as alternating keys and values.
func NewNode(id int64, kv ...string) *Primitive {
	return &Primitive{ID: id, Type: Node, TagSet: tagsFrom(kv)}
}

// NewWay creates a way with tags given as alternating keys and values.
func NewWay(id int64, closed bool, kv ...string) *Primitive {
	return &Primitive{ID: id, Type: Way, Closed: closed, TagSet: tagsFrom(kv)}
}

// NewRelation creates a relation with tags given as alternating keys and values.
func NewRelation(id int64, kv ...string) *Primitive {
	return &Primitive{ID: id, Type: Relation, TagSet: tagsFrom(kv)}
}

func tagsFrom(kv []string) Tags {
	if len(kv)%2 != 0 {
		tracer().Errorf("feature: odd number of tag strings, dropping %q", kv[len(kv)-1])
		kv = kv[:len(kv)-1]
	}
	tags := make(Tags, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		tags[kv[i]] = kv[i+1]
	}
	return tags
}

// Kind is part of interface Feature. Deleted and incomplete primitives
// report kind Unusable.
func (p *Primitive) Kind() Kind {
	if p.Deleted || p.Incomplete {
		return Unusable
	}
	return p.Type
}

// IsClosed is part of interface Feature.
func (p *Primitive) IsClosed() bool {
	return p.Type == Way && p.Closed
}

// Tags is part of interface Feature.
func (p *Primitive) Tags() Tags {
	if p.TagSet == nil {
		return Tags{}
	}
	return p.TagSet
}

func (p *Primitive) String() string {
	return fmt.Sprintf("%s/%d%s", p.Type, p.ID, p.Tags())
}

var _ Feature = &Primitive{}
