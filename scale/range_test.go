package scale

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	r := Between(0, 300)
	assert.True(t, r.Contains(0), "lower bound is included")
	assert.True(t, r.Contains(299.9))
	assert.False(t, r.Contains(300), "upper bound is excluded")
	assert.False(t, r.Contains(-1))
	u := Universal()
	if !u.Contains(-1e300) || !u.Contains(1e300) || !u.IsUniversal() {
		t.Errorf("expected universal range to contain everything, doesn't: %s", u)
	}
	p := Point(5)
	if !p.Contains(5) || p.Contains(5.0001) || !p.IsPoint() {
		t.Errorf("expected point range %s to contain 5 only", p)
	}
}

func TestRangeNew(t *testing.T) {
	_, err := New(3, 3)
	assert.Error(t, err, "empty range")
	_, err = New(4, 3)
	assert.Error(t, err, "inverted range")
	_, err = New(math.NaN(), 3)
	assert.Error(t, err, "NaN bound")
	r, err := New(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, "[1, 2)", r.String())
	assert.Panics(t, func() { Between(2, 1) })
	assert.True(t, AtLeast(7).Contains(1e100))
	assert.False(t, Below(7).Contains(7))
}

func TestRangeCut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.scale")
	defer teardown()
	//
	c := Cut(Universal(), Between(0, 10000))
	assert.True(t, c.Equal(Between(0, 10000)), "cut of universal, have %s", c)
	c = Cut(Between(300, 10000), Between(0, 500))
	assert.True(t, c.Equal(Between(300, 500)), "overlapping ranges, have %s", c)
	c = Cut(Between(0, 1), Between(5, 6))
	assert.True(t, c.IsPoint(), "disjoint ranges degenerate, have %s", c)
	c = Cut(Point(7), Between(0, 10))
	assert.True(t, c.Equal(Point(7)), "point stays point, have %s", c)
}

func TestRangeReduceAround(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mapstyle.scale")
	defer teardown()
	//
	r := Universal().ReduceAround(500, Between(0, 300))
	assert.Equal(t, 300.0, r.Lower(), "other below x raises lower bound")
	assert.True(t, math.IsInf(r.Upper(), 1))
	//
	r = Between(0, 10000).ReduceAround(500, Between(800, 2000))
	assert.True(t, r.Equal(Between(0, 800)), "other above x lowers upper bound, have %s", r)
	//
	r = Between(400, 10000).ReduceAround(500, Between(0, 300))
	assert.True(t, r.Equal(Between(400, 10000)), "already tighter bound is kept, have %s", r)
	//
	r = Between(0, 10000).ReduceAround(500, Between(100, 1000))
	assert.True(t, r.Equal(Point(500)), "other containing x degenerates, have %s", r)
	//
	r = Between(0, 300).ReduceAround(500, Between(1000, 2000))
	assert.True(t, r.Equal(Point(500)), "r not containing x degenerates, have %s", r)
}

func TestRangeReducedStillContainsScale(t *testing.T) {
	others := []Range{Between(0, 10), Between(10, 20), Below(5), AtLeast(30), Between(19.5, 20.5)}
	for _, x := range []float64{0, 9.99, 10, 19, 20, 25, 29.99} {
		r := Universal()
		for _, o := range others {
			r = r.ReduceAround(x, o)
			if !r.Contains(x) {
				t.Fatalf("range %s lost scale %g after reduction by %s", r, x, o)
			}
		}
	}
}
