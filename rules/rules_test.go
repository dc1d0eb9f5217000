package rules

import (
	"errors"
	"image/color"
	"sync"
	"testing"

	"github.com/npillmayer/mapstyle/feature"
	"github.com/npillmayer/mapstyle/maybe"
	"github.com/npillmayer/mapstyle/scale"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	assert.Equal(t, "nhighway=primary", LiteralToken("highway", "primary"))
	assert.Equal(t, "xbridge", PresenceToken("bridge"))
	for _, v := range []string{"yes", "true", "1", "On", "YES"} {
		tok, ok := BooleanToken("bridge", v)
		assert.True(t, ok, v)
		assert.Equal(t, "bbridge=true", tok, v)
	}
	for _, v := range []string{"no", "false", "0", "off"} {
		tok, _ := BooleanToken("bridge", v)
		assert.Equal(t, "bbridge=false", tok, v)
	}
	_, ok := BooleanToken("bridge", "viaduct")
	assert.False(t, ok)
	assert.Len(t, Tokens("bridge", "yes"), 3)
	assert.Equal(t, []string{"nbridge=viaduct", "xbridge"}, Tokens("bridge", "viaduct"))
}

func TestKeyConditions(t *testing.T) {
	tags := feature.Tags{"highway": "primary", "bridge": "yes", "oneway": "-1"}
	assert.True(t, Tag("highway", "primary").Matches(tags))
	assert.False(t, Tag("highway", "secondary").Matches(tags))
	assert.True(t, Bool("bridge", true).Matches(tags))
	assert.False(t, Bool("bridge", false).Matches(tags))
	assert.False(t, Bool("oneway", true).Matches(tags), "-1 is no boolean")
	assert.True(t, Has("oneway").Matches(tags))
	assert.False(t, Has("tunnel").Matches(tags))
	//
	assert.Equal(t, "bbridge=true", Bool("bridge", true).Token())
	c := When(Tag("highway", "primary"))
	assert.True(t, c.IsExact())
	assert.Equal(t, "nhighway=primary", c.Token())
	c = When(Tag("highway", "primary"), Bool("bridge", true))
	assert.True(t, c.IsPredicate())
	assert.Equal(t, "nhighway=primarybbridge=true", c.Code())
	assert.True(t, c.Accepts(tags))
	assert.False(t, c.Accepts(feature.Tags{"highway": "primary"}))
	assert.False(t, When().IsExact() || When().IsPredicate())
}

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		ref  float64
		want float64
	}{
		{"3", 10, 3},
		{"+2", 5, 7},
		{"-1", 5, 4},
		{"-9", 5, 1},
		{"150%", 4, 6},
		{"-10%", 4, 1},
	}
	for _, c := range cases {
		w, err := ParseWidth(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, w.Relative(c.ref), "width %s of %g", c.in, c.ref)
		assert.Equal(t, c.in, w.String())
	}
	_, err := ParseWidth("wide")
	assert.Error(t, err)
	_, err = ParseWidth("")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)
	c, err = ParseColor("highway_primary#f00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)
	c, err = ParseColor("DarkGreen")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0x64, A: 0xff}, c)
	_, err = ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("no-such-color")
	assert.Error(t, err)
}

func lineRule(prio int, when Condition, width float64) Prototype {
	return NewPrototype(prio, when, LineStyle{Width: width})
}

func TestBuilderRejectsIllegalRules(t *testing.T) {
	b := NewBuilder("test")
	err := b.Register(NewPrototype(1, Exact("xhighway"), nil))
	assert.True(t, errors.Is(err, ErrUnknownCategory), "rule without attributes")
	err = b.Register(Prototype{Priority: 1, When: Exact("xhighway"), Style: LineStyle{}})
	assert.Error(t, err, "zero range is a point range")
	err = b.Register(NewPrototype(1, Condition{}, LineStyle{}))
	assert.Error(t, err, "rule without condition")
	_, err = b.Build()
	require.NoError(t, err)
	err = b.Register(lineRule(1, Exact("xhighway"), 1))
	assert.True(t, errors.Is(err, ErrSealed))
	_, err = b.Build()
	assert.True(t, errors.Is(err, ErrSealed))
}

func TestIndexExactAndFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.rules")
	defer teardown()
	//
	first := lineRule(1, When(Tag("highway", "primary")), 5)
	second := lineRule(1, When(Tag("highway", "primary")), 6)
	bridge := lineRule(2, When(Bool("bridge", true)), 7)
	pred := lineRule(0, Matching("major", func(tags feature.Tags) bool {
		_, ok := tags["highway"]
		return ok
	}), 1)
	src, err := NewBuilder("test").MustRegister(first, second, pred, pred, bridge).Build()
	require.NoError(t, err)
	ix, err := src.Index(Line)
	require.NoError(t, err)
	exact, preds := ix.Size()
	assert.Equal(t, 2, exact, "duplicate token replaces earlier rule")
	assert.Equal(t, 2, preds, "predicate rules are appended regardless of duplicates")
	//
	p, ok := ix.Lookup("nhighway=primary")
	require.True(t, ok)
	assert.Equal(t, 6.0, p.Style.(LineStyle).Width, "last registration wins")
	//
	m := ix.Matches(feature.Tags{"highway": "primary", "bridge": "1"})
	require.Len(t, m, 4)
	assert.Equal(t, "bbridge=true", m[0].Code(), "tags are visited in key order")
	assert.Equal(t, "nhighway=primary", m[1].Code())
	assert.True(t, m[2].When.IsPredicate() && m[3].When.IsPredicate(), "predicates come last")
	assert.Less(t, m[2].Seq(), m[3].Seq(), "predicates in declaration order")
	//
	assert.Empty(t, ix.Matches(feature.Tags{"amenity": "bench"}))
	_, err = src.Index(NoCategory)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestSameAttributes(t *testing.T) {
	green := maybe.Just(MustColor("green"))
	a := NewPrototype(1, Exact("nlanduse=forest"), AreaStyle{Color: green})
	b := NewPrototype(3, Exact("nnatural=wood"), AreaStyle{Color: green})
	c := NewPrototype(1, Exact("nlanduse=forest"), AreaStyle{Color: green, Closed: true})
	assert.True(t, SameAttributes(&a, &b))
	assert.False(t, SameAttributes(&a, &c))
	assert.False(t, SameAttributes(&a, nil))
	assert.True(t, SameAttributes(nil, nil))
	l1 := lineRule(1, Exact("xrailway"), 2)
	l1.Style = LineStyle{Width: 2, Dashes: []float64{3, 3}}
	l2 := l1
	l2.Style = LineStyle{Width: 2, Dashes: []float64{3, 3}}
	assert.True(t, SameAttributes(&l1, &l2))
	l2.Style = LineStyle{Width: 2, Dashes: []float64{3, 4}}
	assert.False(t, SameAttributes(&l1, &l2))
}

func TestSortOverlays(t *testing.T) {
	b := NewBuilder("test")
	mod := func(prio int, token string) Prototype {
		return NewPrototype(prio, Exact(token), LinemodStyle{Width: OffsetWidth(2), Over: true})
	}
	src, err := b.MustRegister(mod(1, "xa"), mod(3, "xb"), mod(1, "xc"), mod(2, "xd")).Build()
	require.NoError(t, err)
	ix, _ := src.Index(LineModifier)
	mods := ix.Matches(feature.Tags{"c": "", "a": "", "d": "", "b": ""})
	SortOverlays(mods)
	codes := make([]string, len(mods))
	for i, m := range mods {
		codes[i] = m.Code()
	}
	assert.Equal(t, []string{"xb", "xd", "xa", "xc"}, codes)
}

func TestCatalogPublish(t *testing.T) {
	var cat Catalog
	assert.Empty(t, cat.Sources())
	s1, _ := NewBuilder("base").Build()
	s2, _ := NewBuilder("extra").Build()
	cat.Publish(s1, s2)
	snapshot := cat.Sources()
	s1b, _ := NewBuilder("base").Build()
	assert.NotEqual(t, s1.Version(), s1b.Version())
	cat.Put(s1b)
	assert.Same(t, s1, snapshot[0], "old snapshot stays valid")
	assert.Same(t, s1b, cat.Sources()[0], "reloaded source keeps its position")
	assert.True(t, cat.Remove("extra"))
	assert.False(t, cat.Remove("extra"))
	assert.Len(t, cat.Sources(), 1)
	//
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, s := range cat.Sources() {
					if _, err := s.Index(Line); err != nil {
						t.Error(err)
					}
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		s, _ := NewBuilder("extra").MustRegister(lineRule(1, Exact("xhighway"), 1).Within(scale.Between(0, 100))).Build()
		cat.Put(s)
	}
	wg.Wait()
}
