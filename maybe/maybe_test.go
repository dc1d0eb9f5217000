package maybe_test

import (
	"testing"

	. "github.com/npillmayer/mapstyle/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(500.0)
	y := Nothing[float64]()

	var v float64
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%g)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 500 {
		t.Errorf("expected v to be 500, is %#v", v)
	}

	var w float64
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Error("expected Nothing to not match Just")
	case m.Nothing():
		w = -1
	}
	if w != -1 {
		t.Errorf("expected w to be -1, is %#v", w)
	}
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var annotate Maybe[bool]
	if !annotate.IsNothing() {
		t.Error("expected zero value to be Nothing, isn't")
	}
	if _, ok := annotate.Get(); ok {
		t.Error("expected Get() on Nothing to fail, didn't")
	}
	if annotate.String() != "Nothing" {
		t.Errorf("expected 'Nothing', have %q", annotate.String())
	}
}

func TestMaybeMatchSlice(t *testing.T) {
	dashes := Just([]float64{3, 2})
	var d []float64
	switch m := dashes.Match(); m {
	case m.Just(&d):
	case m.Nothing():
		t.Error("expected Just to match")
	}
	if len(d) != 2 {
		t.Errorf("expected dash pattern of length 2, have %v", d)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100, isn't")
	}
	b := true
	if !FromPtr(&b).WithDefault(false) || !FromPtr[bool](nil).IsNothing() {
		t.Error("expected FromPtr to wrap non-nil pointers only")
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Just(7).Map(double).Get(); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, returned %d", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
