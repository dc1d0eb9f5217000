package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/mapstyle/scale"
	tp "github.com/xlab/treeprint"
)

// Default is the name of the cascade for the feature itself.
const Default = "default"

const (
	overPrefix  = "over_"
	underPrefix = "under_"
)

// OverlayName returns "over_n" or "under_n".
func OverlayName(over bool, n int) string {
	if over {
		return overPrefix + strconv.Itoa(n)
	}
	return underPrefix + strconv.Itoa(n)
}

// ParseOverlayName splits an overlay name into side and number. It returns
// false for names which do not denote overlays.
func ParseOverlayName(name string) (over bool, n int, ok bool) {
	var num string
	switch {
	case strings.HasPrefix(name, overPrefix):
		over, num = true, name[len(overPrefix):]
	case strings.HasPrefix(name, underPrefix):
		num = name[len(underPrefix):]
	default:
		return false, 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return false, 0, false
	}
	return over, n, true
}

// MultiCascade is the result of resolving the style of a feature: a set of
// named cascades, always including Default, and the range of scales the
// result is valid for.
//
// A MultiCascade is owned by a single resolution and is not safe for
// concurrent use.
type MultiCascade struct {
	cascades map[string]*Cascade
	Range    scale.Range
}

// NewMultiCascade creates a multi-cascade with an empty default cascade,
// valid for all scales.
func NewMultiCascade() *MultiCascade {
	mc := &MultiCascade{
		cascades: make(map[string]*Cascade),
		Range:    scale.Universal(),
	}
	mc.cascades[Default] = NewCascade(Default)
	return mc
}

// Cascade returns the cascade with the given name, creating it if
// necessary.
func (mc *MultiCascade) Cascade(name string) *Cascade {
	if mc.cascades == nil {
		mc.cascades = make(map[string]*Cascade)
	}
	c, ok := mc.cascades[name]
	if !ok {
		c = NewCascade(name)
		mc.cascades[name] = c
	}
	return c
}

// Default returns the default cascade.
func (mc *MultiCascade) Default() *Cascade {
	return mc.Cascade(Default)
}

// Lookup returns an existing cascade.
func (mc *MultiCascade) Lookup(name string) (*Cascade, bool) {
	c, ok := mc.cascades[name]
	return c, ok
}

// Has is a predicate whether a cascade exists.
func (mc *MultiCascade) Has(name string) bool {
	_, ok := mc.cascades[name]
	return ok
}

// Size returns the number of cascades.
func (mc *MultiCascade) Size() int {
	return len(mc.cascades)
}

// Names returns the names of the cascades in drawing order: under_N with
// descending N, the default cascade and other non-overlay cascades, then
// over_N with ascending N.
func (mc *MultiCascade) Names() []string {
	names := make([]string, 0, len(mc.cascades))
	for name := range mc.cascades {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		zi, zj := drawingKey(names[i]), drawingKey(names[j])
		if zi != zj {
			return zi < zj
		}
		return names[i] < names[j]
	})
	return names
}

// drawingKey is the z-index of overlays; 0 for any other cascade.
func drawingKey(name string) int {
	over, n, ok := ParseOverlayName(name)
	switch {
	case !ok:
		return 0
	case over:
		return n
	}
	return -n
}

// Equal compares the cascades of two multi-cascades. Ranges are not
// compared.
func (mc *MultiCascade) Equal(other *MultiCascade) bool {
	if mc.Size() != other.Size() {
		return false
	}
	for name, c := range mc.cascades {
		o, ok := other.cascades[name]
		if !ok || !c.Equal(o) {
			return false
		}
	}
	return true
}

// Dump returns a tree representation of the multi-cascade; used for
// debugging.
func (mc *MultiCascade) Dump(title string) string {
	root := tp.New()
	top := root.AddBranch(fmt.Sprintf("%s valid for %s", title, mc.Range))
	for _, name := range mc.Names() {
		c := mc.cascades[name]
		branch := top.AddBranch(name)
		for _, k := range c.Keys() {
			branch.AddMetaNode(k, fmt.Sprintf("%v", c.props[k]))
		}
	}
	return root.String()
}

func (mc *MultiCascade) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MultiCascade %s = {\n", mc.Range)
	for _, name := range mc.Names() {
		b.WriteString(mc.cascades[name].String())
	}
	b.WriteString("}")
	return b.String()
}
