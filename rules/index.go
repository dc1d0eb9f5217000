package rules

import (
	"github.com/npillmayer/mapstyle/feature"
)

// Index holds the rules of one category of a style source. Rules with
// exact conditions are kept in a table keyed by tag token, rules with
// predicates in a list in declaration order.
//
// An Index is immutable once its source has been built and may be read
// concurrently.
type Index struct {
	category Category
	exact    map[string]*Prototype
	fallback []*Prototype
}

func newIndex(c Category) *Index {
	return &Index{
		category: c,
		exact:    make(map[string]*Prototype),
	}
}

// Category returns the category of the rules in the index.
func (ix *Index) Category() Category {
	return ix.category
}

// Size returns the number of exact and predicate rules.
func (ix *Index) Size() (exact int, predicates int) {
	if ix == nil {
		return 0, 0
	}
	return len(ix.exact), len(ix.fallback)
}

func (ix *Index) register(p *Prototype) {
	if p.When.IsPredicate() {
		ix.fallback = append(ix.fallback, p)
		return
	}
	token := p.When.Token()
	if old, dup := ix.exact[token]; dup {
		tracer().Debugf("rules: %s replaces %s", p, old)
	}
	ix.exact[token] = p
}

// Lookup returns the rule registered for an exact tag token.
func (ix *Index) Lookup(token string) (*Prototype, bool) {
	if ix == nil {
		return nil, false
	}
	p, ok := ix.exact[token]
	return p, ok
}

// EachMatch calls visit for every rule matching tags. Tags are visited in
// key order; for each tag the literal, boolean and presence tokens are
// looked up. Predicate rules are tried afterwards in declaration order.
func (ix *Index) EachMatch(tags feature.Tags, visit func(*Prototype)) {
	if ix == nil {
		return
	}
	if len(ix.exact) > 0 {
		for _, key := range tags.Keys() {
			for _, token := range Tokens(key, tags[key]) {
				if p, ok := ix.exact[token]; ok {
					visit(p)
				}
			}
		}
	}
	for _, p := range ix.fallback {
		if p.When.Accepts(tags) {
			visit(p)
		}
	}
}

// Matches returns every rule matching tags, in the order of EachMatch.
func (ix *Index) Matches(tags feature.Tags) []*Prototype {
	var m []*Prototype
	ix.EachMatch(tags, func(p *Prototype) {
		m = append(m, p)
	})
	return m
}
