package resolve

import (
	"fmt"

	"github.com/npillmayer/mapstyle/feature"
	"github.com/npillmayer/mapstyle/maybe"
	"github.com/npillmayer/mapstyle/rules"
	"github.com/npillmayer/mapstyle/scale"
	"github.com/npillmayer/mapstyle/style"
)

// Request describes the feature to resolve.
type Request struct {
	Feature feature.Feature
	Scale   float64
	// OuterWay is the outer way of a multipolygon the feature belongs to.
	// If its area style equals the feature's, the feature is not filled.
	OuterWay feature.Feature
	// PretendClosed treats a way as closed, e.g. as the member of a
	// multipolygon.
	PretendClosed bool
}

// Resolve creates a new multi-cascade for a feature and applies all
// sources to it, in order.
func (r *Resolver) Resolve(sources []*rules.Source, req Request) (*style.MultiCascade, error) {
	mc := style.NewMultiCascade()
	if err := r.ApplyAll(mc, sources, req); err != nil {
		return nil, err
	}
	return mc, nil
}

// ApplyAll applies sources to mc, in order. Later sources overwrite style
// properties of earlier ones and stack their overlays on top of existing
// ones. It stops at the first source failing.
func (r *Resolver) ApplyAll(mc *style.MultiCascade, sources []*rules.Source, req Request) error {
	for _, src := range sources {
		if err := r.Apply(mc, src, req); err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
	}
	return nil
}

// Apply resolves the style of a feature from the rules of src and writes it
// to mc. Features which are neither point-like nor line-like, including
// deleted and incomplete ones, are skipped.
//
// If Apply returns an error, mc is unchanged.
func (r *Resolver) Apply(mc *style.MultiCascade, src *rules.Source, req Request) error {
	f := req.Feature
	if f == nil || src == nil {
		return fmt.Errorf("%w: missing feature or source", ErrContractViolation)
	}
	sc := maybe.Nothing[float64]()
	if r.useRanges {
		sc = maybe.Just(req.Scale)
	}
	switch {
	case feature.IsPointLike(f):
		return r.applyPoint(mc, src, f, sc)
	case feature.IsLineLike(f):
		closed := req.PretendClosed || f.Kind() != feature.Way || f.IsClosed()
		return r.applyWay(mc, src, req, closed, sc)
	}
	tracer().Debugf("resolve: skipping %v", f)
	return nil
}

// --- Candidate selection ---------------------------------------------------

// selection collects the decisions of one call to Apply. Nothing is written
// to the multi-cascade until every category has been selected.
type selection struct {
	src      *rules.Source
	sc       maybe.Maybe[float64]
	validity scale.Range
	err      error
}

// each visits the rules of category c matching tags. A rule filed under a
// foreign category stops the selection.
func (sel *selection) each(c rules.Category, tags feature.Tags, visit func(*rules.Prototype)) {
	if sel.err != nil {
		return
	}
	ix, err := sel.src.Index(c)
	if err != nil {
		sel.err = fmt.Errorf("%w: %v", ErrContractViolation, err)
		return
	}
	ix.EachMatch(tags, func(p *rules.Prototype) {
		if sel.err != nil {
			return
		}
		if p.Category() != c {
			sel.err = fmt.Errorf("%w: rule %s found in %s index", ErrContractViolation, p, c)
			tracer().Errorf("resolve: %v", sel.err)
			return
		}
		visit(p)
	})
}

func (sel *selection) best(c rules.Category, tags feature.Tags, filter func(*rules.Prototype) bool) *rules.Prototype {
	var winner *rules.Prototype
	sel.each(c, tags, func(p *rules.Prototype) {
		if filter == nil || filter(p) {
			winner = Select(winner, p, sel.sc, &sel.validity)
		}
	})
	return winner
}

func (sel *selection) area(tags feature.Tags, closed bool) *rules.Prototype {
	return sel.best(rules.Area, tags, func(p *rules.Prototype) bool {
		a, _ := p.Area()
		return closed || !a.Closed
	})
}

// --- Point-like features ---------------------------------------------------

func (r *Resolver) applyPoint(mc *style.MultiCascade, src *rules.Source, f feature.Feature, sc maybe.Maybe[float64]) error {
	sel := &selection{src: src, sc: sc, validity: mc.Range}
	icon := sel.best(rules.Icon, f.Tags(), nil)
	if sel.err != nil {
		return sel.err
	}
	mc.Range = sel.validity
	if icon == nil {
		return nil
	}
	attrs, _ := icon.Icon()
	def := mc.Default()
	def.Put(style.IconImage, attrs.Image)
	if annotate, ok := attrs.Annotate.Get(); ok {
		if annotate {
			def.Put(style.Text, true)
		} else {
			def.Remove(style.Text)
		}
	}
	return nil
}

// --- Line-like features ----------------------------------------------------

type placement struct {
	mod  rules.LinemodStyle
	name string
	z    float64
}

func (r *Resolver) applyWay(mc *style.MultiCascade, src *rules.Source, req Request, closed bool,
	sc maybe.Maybe[float64]) error {
	//
	sel := &selection{src: src, sc: sc, validity: mc.Range}
	tags := req.Feature.Tags()
	area := sel.area(tags, closed)
	var line *rules.Prototype
	sel.each(rules.Line, tags, func(p *rules.Prototype) {
		if Accepts(line, p, sel.sc, &sel.validity) {
			line = p
		}
	})
	overlays := make(map[string]*rules.Prototype)
	sel.each(rules.LineModifier, tags, func(p *rules.Prototype) {
		if Accepts(nil, p, sel.sc, &sel.validity) {
			overlays[p.Code()] = p
		}
	})
	if line != nil {
		// a line rule must not be applied a second time as its own overlay
		delete(overlays, line.Code())
	}
	if req.OuterWay != nil {
		outerArea := sel.area(req.OuterWay.Tags(), true)
		if area != nil && rules.SameAttributes(area, outerArea) {
			tracer().Debugf("resolve: area %s equals area of outer way, not filling", area)
			area = nil
		}
	}
	if sel.err != nil {
		return sel.err
	}
	var lineStyle rules.LineStyle
	if line != nil {
		lineStyle, _ = line.Line()
	}
	prev, _ := mc.Lookup(style.Default)
	refWidth, hasRef := style.Value[float64](prev, style.Width)
	if line != nil {
		refWidth, hasRef = lineStyle.EffectiveWidth(), true
	}
	var places []placement
	if hasRef && len(overlays) > 0 {
		var err error
		if places, err = r.placeOverlays(mc, overlays); err != nil {
			return err
		}
	}
	// from here on nothing may fail
	mc.Range = sel.validity
	def := mc.Default()
	if line != nil {
		def.Put(style.Width, lineStyle.EffectiveWidth())
		style.PutMaybe(def, style.RealWidth, lineStyle.RealWidth)
		style.PutMaybe(def, style.Color, lineStyle.Color)
		def.PutOrClear(style.Dashes, lineStyle.Dashes)
		style.PutMaybe(def, style.DashesBackgroundColor, lineStyle.DashesBackground)
	}
	for _, pl := range places {
		c := mc.Cascade(pl.name)
		c.Put(style.ObjectZIndex, pl.z)
		c.Put(style.Width, pl.mod.Width.Relative(refWidth))
		style.PutMaybe(c, style.Color, pl.mod.Color)
		c.PutOrClear(style.Dashes, pl.mod.Dashes)
		style.PutMaybe(c, style.DashesBackgroundColor, pl.mod.DashesBackground)
	}
	if area != nil {
		a, _ := area.Area()
		style.PutMaybe(def, style.FillColor, a.Color)
		def.Remove(style.FillImage)
	}
	return nil
}

// placeOverlays sorts line modifiers into drawing order and assigns each of
// them the next free overlay number on its side.
func (r *Resolver) placeOverlays(mc *style.MultiCascade, overlays map[string]*rules.Prototype) ([]placement, error) {
	mods := make([]*rules.Prototype, 0, len(overlays))
	for _, p := range overlays {
		mods = append(mods, p)
	}
	rules.SortOverlays(mods)
	free := func(over bool, n int) (int, error) {
		for ; n <= r.maxOverlay; n++ {
			if !mc.Has(style.OverlayName(over, n)) {
				return n, nil
			}
		}
		return 0, fmt.Errorf("%w: %w (max %d)", ErrContractViolation, ErrOverlayExhausted, r.maxOverlay)
	}
	places := make([]placement, 0, len(mods))
	nextOver, nextUnder := 1, 1
	for _, p := range mods {
		mod, _ := p.Linemod()
		var err error
		pl := placement{mod: mod}
		if mod.Over {
			if nextOver, err = free(true, nextOver); err != nil {
				return nil, err
			}
			pl.name, pl.z = style.OverlayName(true, nextOver), float64(nextOver)
			nextOver++
		} else {
			if nextUnder, err = free(false, nextUnder); err != nil {
				return nil, err
			}
			pl.name, pl.z = style.OverlayName(false, nextUnder), -float64(nextUnder)
			nextUnder++
		}
		places = append(places, pl)
		tracer().Debugf("resolve: overlay %s from %s", pl.name, p)
	}
	return places, nil
}
