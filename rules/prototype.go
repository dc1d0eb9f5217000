package rules

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/npillmayer/mapstyle/maybe"
	"github.com/npillmayer/mapstyle/scale"
)

// Category is the category of a rule.
type Category int8

// Rule categories. NoCategory is the category of a rule without style
// attributes, which is not a legal rule.
const (
	NoCategory Category = iota
	Icon
	Line
	LineModifier
	Area
)

// Categories lists all legal categories.
var Categories = [...]Category{Icon, Line, LineModifier, Area}

func (c Category) String() string {
	switch c {
	case Icon:
		return "icon"
	case Line:
		return "line"
	case LineModifier:
		return "linemod"
	case Area:
		return "area"
	}
	return fmt.Sprintf("category(%d)", int8(c))
}

// Valid is true for the legal categories.
func (c Category) Valid() bool {
	return c >= Icon && c <= Area
}

// Attributes are the style attributes of a rule. The set of implementations
// is closed: IconStyle, LineStyle, LinemodStyle and AreaStyle.
type Attributes interface {
	Category() Category
	sealed()
}

// IconStyle styles point-like features.
type IconStyle struct {
	Image    string
	Annotate maybe.Maybe[bool] // Nothing leaves the text attribute alone
}

// LineStyle is the base line of a way.
type LineStyle struct {
	Width            float64 // zero or less draws with width 1
	RealWidth        maybe.Maybe[float64]
	Color            maybe.Maybe[color.RGBA]
	Dashes           []float64
	DashesBackground maybe.Maybe[color.RGBA]
}

// LinemodStyle is an overlay line drawn over or under the base line of a way.
type LinemodStyle struct {
	Width            Width
	Color            maybe.Maybe[color.RGBA]
	Dashes           []float64
	DashesBackground maybe.Maybe[color.RGBA]
	Over             bool
}

// AreaStyle fills closed ways and multipolygons. If Closed is set, the rule
// does not apply to ways which are not closed.
type AreaStyle struct {
	Color  maybe.Maybe[color.RGBA]
	Closed bool
}

// Category is part of interface Attributes.
func (IconStyle) Category() Category { return Icon }

// Category is part of interface Attributes.
func (LineStyle) Category() Category { return Line }

// Category is part of interface Attributes.
func (LinemodStyle) Category() Category { return LineModifier }

// Category is part of interface Attributes.
func (AreaStyle) Category() Category { return Area }

func (IconStyle) sealed()    {}
func (LineStyle) sealed()    {}
func (LinemodStyle) sealed() {}
func (AreaStyle) sealed()    {}

// EffectiveWidth returns the width to draw the line with.
func (ls LineStyle) EffectiveWidth() float64 {
	if ls.Width <= 0 {
		return 1
	}
	return ls.Width
}

// --- Prototype -------------------------------------------------------------

// Prototype is a style rule. Prototypes are created by clients, registered
// with a Builder and must not be changed afterwards.
type Prototype struct {
	Priority int
	Range    scale.Range
	When     Condition
	Style    Attributes
	seq      int // declaration order within the source
}

// NewPrototype creates a rule valid for all scales.
func NewPrototype(priority int, when Condition, attrs Attributes) Prototype {
	return Prototype{
		Priority: priority,
		Range:    scale.Universal(),
		When:     when,
		Style:    attrs,
	}
}

// Within returns a copy of p restricted to scale range r.
func (p Prototype) Within(r scale.Range) Prototype {
	p.Range = r
	return p
}

// Category returns the category of the rule, or NoCategory if the rule has
// no style attributes.
func (p *Prototype) Category() Category {
	if p == nil || p.Style == nil {
		return NoCategory
	}
	return p.Style.Category()
}

// Code identifies the condition of the rule.
func (p *Prototype) Code() string {
	return p.When.Code()
}

// Seq is the position of the rule in the declaration order of its source.
func (p *Prototype) Seq() int {
	return p.seq
}

func (p *Prototype) String() string {
	if p == nil {
		return "<no rule>"
	}
	return fmt.Sprintf("%s#%d[%s prio=%d range=%s]", p.Category(), p.seq, p.When, p.Priority, p.Range)
}

// Icon returns the icon attributes of an icon rule.
func (p *Prototype) Icon() (IconStyle, bool) {
	a, ok := p.Style.(IconStyle)
	return a, ok
}

// Line returns the line attributes of a line rule.
func (p *Prototype) Line() (LineStyle, bool) {
	a, ok := p.Style.(LineStyle)
	return a, ok
}

// Linemod returns the attributes of a line modifier rule.
func (p *Prototype) Linemod() (LinemodStyle, bool) {
	a, ok := p.Style.(LinemodStyle)
	return a, ok
}

// Area returns the area attributes of an area rule.
func (p *Prototype) Area() (AreaStyle, bool) {
	a, ok := p.Style.(AreaStyle)
	return a, ok
}

// SameAttributes compares the style attributes of two rules. Two absent
// rules have the same attributes.
func SameAttributes(a, b *Prototype) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.Style.(type) {
	case IconStyle:
		y, ok := b.Style.(IconStyle)
		return ok && x == y
	case AreaStyle:
		y, ok := b.Style.(AreaStyle)
		return ok && x == y
	case LineStyle:
		y, ok := b.Style.(LineStyle)
		return ok && x.Width == y.Width && x.RealWidth == y.RealWidth && x.Color == y.Color &&
			x.DashesBackground == y.DashesBackground && sameDashes(x.Dashes, y.Dashes)
	case LinemodStyle:
		y, ok := b.Style.(LinemodStyle)
		return ok && x.Width == y.Width && x.Over == y.Over && x.Color == y.Color &&
			x.DashesBackground == y.DashesBackground && sameDashes(x.Dashes, y.Dashes)
	}
	return false
}

func sameDashes(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// byOverlayOrder sorts line modifiers: higher priority first, then in
// declaration order.
type byOverlayOrder []*Prototype

func (o byOverlayOrder) Len() int      { return len(o) }
func (o byOverlayOrder) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o byOverlayOrder) Less(i, j int) bool {
	if o[i].Priority != o[j].Priority {
		return o[i].Priority > o[j].Priority
	}
	return o[i].seq < o[j].seq
}

// SortOverlays sorts line modifier rules into the order in which they are
// stacked onto the base line.
func SortOverlays(mods []*Prototype) {
	sort.Stable(byOverlayOrder(mods))
}
