package rules

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// ErrUnknownCategory flags a rule or a lookup without a legal category.
var ErrUnknownCategory = errors.New("unknown rule category")

// ErrSealed is returned when registering rules with a builder which has
// already built its source.
var ErrSealed = errors.New("style source already built")

// Source is a style source: a named set of rules, one Index per category.
// Sources are immutable and safe for concurrent use.
type Source struct {
	name    string
	version uint64
	indexes [Area + 1]*Index
}

var sourceVersions atomic.Uint64

// Name returns the name of the source.
func (src *Source) Name() string {
	return src.name
}

// Version is unique for every source built. A reloaded source has a new
// version, which clients may use as part of cache keys.
func (src *Source) Version() uint64 {
	return src.version
}

// Index returns the rule index for a category.
func (src *Source) Index(c Category) (*Index, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("source %q: %w: %s", src.name, ErrUnknownCategory, c)
	}
	return src.indexes[c], nil
}

func (src *Source) String() string {
	return fmt.Sprintf("source %q v%d", src.name, src.version)
}

// --- Builder ---------------------------------------------------------------

// Builder collects rules for a style source. A builder is not safe for
// concurrent use. Once Build has been called, the builder refuses further
// rules.
type Builder struct {
	src *Source
	seq int
}

// NewBuilder creates a builder for a source with the given name.
func NewBuilder(name string) *Builder {
	src := &Source{name: name}
	for _, c := range Categories {
		src.indexes[c] = newIndex(c)
	}
	return &Builder{src: src}
}

// Register adds a rule. An exact rule replaces an earlier exact rule of the
// same category with the same token. Predicate rules are appended in any
// case.
//
// It is an error to register a rule without style attributes, with an
// empty scale range, or without a condition.
func (b *Builder) Register(p Prototype) error {
	if b.src == nil {
		return ErrSealed
	}
	c := p.Category()
	if !c.Valid() {
		return fmt.Errorf("rule %s: %w", p.When, ErrUnknownCategory)
	}
	if p.Range.IsPoint() || math.IsNaN(p.Range.Lower()) || math.IsNaN(p.Range.Upper()) {
		return fmt.Errorf("rule %s: illegal scale range %s", p.When, p.Range)
	}
	if !p.When.IsExact() && !p.When.IsPredicate() {
		return fmt.Errorf("rule for %s has no condition", c)
	}
	b.seq++
	p.seq = b.seq
	b.src.indexes[c].register(&p)
	return nil
}

// MustRegister registers rules and panics on errors. It is intended for
// rules defined in code.
func (b *Builder) MustRegister(ps ...Prototype) *Builder {
	for _, p := range ps {
		if err := b.Register(p); err != nil {
			panic(err)
		}
	}
	return b
}

// Build returns the source. The builder may not be used afterwards.
func (b *Builder) Build() (*Source, error) {
	if b.src == nil {
		return nil, ErrSealed
	}
	src := b.src
	b.src = nil
	src.version = sourceVersions.Add(1)
	tracer().Infof("rules: built %s with %d rules", src, b.seq)
	return src, nil
}
