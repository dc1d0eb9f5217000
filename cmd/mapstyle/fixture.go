package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/npillmayer/mapstyle/feature"
	"github.com/npillmayer/mapstyle/maybe"
	"github.com/npillmayer/mapstyle/rules"
	"github.com/npillmayer/mapstyle/scale"
	"gopkg.in/yaml.v3"
)

// Fixture is a YAML file with style sources and features, used to try out
// style resolution.
type Fixture struct {
	Sources  []SourceDecl  `yaml:"sources"`
	Features []FeatureDecl `yaml:"features"`
}

// SourceDecl declares a style source.
type SourceDecl struct {
	Name  string     `yaml:"name"`
	Rules []RuleDecl `yaml:"rules"`
}

// CondDecl declares a key condition. Exactly one of Value and Bool may be
// set; with neither, the key has to be present.
type CondDecl struct {
	Key   string  `yaml:"key"`
	Value *string `yaml:"value,omitempty"`
	Bool  *bool   `yaml:"bool,omitempty"`
}

// RuleDecl declares a rule. Which attributes apply depends on the category.
type RuleDecl struct {
	Category         string     `yaml:"category"`
	Priority         int        `yaml:"priority"`
	When             []CondDecl `yaml:"when"`
	MinScale         *float64   `yaml:"min-scale,omitempty"`
	MaxScale         *float64   `yaml:"max-scale,omitempty"`
	Icon             string     `yaml:"icon,omitempty"`
	Annotate         *bool      `yaml:"annotate,omitempty"`
	Width            string     `yaml:"width,omitempty"`
	RealWidth        *float64   `yaml:"real-width,omitempty"`
	Color            string     `yaml:"color,omitempty"`
	Dashes           []float64  `yaml:"dashes,omitempty"`
	DashesBackground string     `yaml:"dashes-background-color,omitempty"`
	Over             bool       `yaml:"over,omitempty"`
	Closed           bool       `yaml:"closed,omitempty"`
}

// FeatureDecl declares a feature. Outer references the id of the outer way
// of a multipolygon.
type FeatureDecl struct {
	ID         int64             `yaml:"id"`
	Kind       string            `yaml:"kind"`
	Closed     bool              `yaml:"closed,omitempty"`
	Deleted    bool              `yaml:"deleted,omitempty"`
	Incomplete bool              `yaml:"incomplete,omitempty"`
	Outer      int64             `yaml:"outer,omitempty"`
	Member     bool              `yaml:"member,omitempty"`
	Tags       map[string]string `yaml:"tags"`
}

// LoadFixture reads a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFixture(f)
}

// ReadFixture decodes a fixture. Unknown fields are errors.
func ReadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	fix := &Fixture{}
	if err := dec.Decode(fix); err != nil {
		return nil, fmt.Errorf("cannot decode fixture: %w", err)
	}
	return fix, nil
}

// BuildSources builds the style sources of the fixture, in declaration order.
func (fix *Fixture) BuildSources() ([]*rules.Source, error) {
	sources := make([]*rules.Source, 0, len(fix.Sources))
	for _, sd := range fix.Sources {
		b := rules.NewBuilder(sd.Name)
		for i, rd := range sd.Rules {
			p, err := rd.prototype()
			if err != nil {
				return nil, fmt.Errorf("source %q, rule %d: %w", sd.Name, i+1, err)
			}
			if err := b.Register(p); err != nil {
				return nil, fmt.Errorf("source %q, rule %d: %w", sd.Name, i+1, err)
			}
		}
		src, err := b.Build()
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (rd RuleDecl) prototype() (rules.Prototype, error) {
	var p rules.Prototype
	conds := make([]rules.KeyCondition, len(rd.When))
	for i, c := range rd.When {
		if c.Key == "" {
			return p, fmt.Errorf("condition without key")
		}
		conds[i] = rules.KeyCondition{
			Key:     c.Key,
			Value:   maybe.FromPtr(c.Value),
			Boolean: maybe.FromPtr(c.Bool),
		}
	}
	attrs, err := rd.attributes()
	if err != nil {
		return p, err
	}
	p = rules.NewPrototype(rd.Priority, rules.When(conds...), attrs)
	if rd.MinScale != nil || rd.MaxScale != nil {
		lower, upper := math.Inf(-1), math.Inf(1)
		if rd.MinScale != nil {
			lower = *rd.MinScale
		}
		if rd.MaxScale != nil {
			upper = *rd.MaxScale
		}
		r, err := scale.New(lower, upper)
		if err != nil {
			return p, err
		}
		p = p.Within(r)
	}
	return p, nil
}

func (rd RuleDecl) attributes() (rules.Attributes, error) {
	col, err := optColor(rd.Color)
	if err != nil {
		return nil, err
	}
	bg, err := optColor(rd.DashesBackground)
	if err != nil {
		return nil, err
	}
	switch rd.Category {
	case "icon":
		return rules.IconStyle{Image: rd.Icon, Annotate: maybe.FromPtr(rd.Annotate)}, nil
	case "line":
		ls := rules.LineStyle{
			RealWidth:        maybe.FromPtr(rd.RealWidth),
			Color:            col,
			Dashes:           rd.Dashes,
			DashesBackground: bg,
		}
		if rd.Width != "" {
			if ls.Width, err = strconv.ParseFloat(rd.Width, 64); err != nil {
				return nil, fmt.Errorf("illegal line width %q: %w", rd.Width, err)
			}
		}
		return ls, nil
	case "linemod":
		w := rules.AbsoluteWidth(1)
		if rd.Width != "" {
			if w, err = rules.ParseWidth(rd.Width); err != nil {
				return nil, err
			}
		}
		return rules.LinemodStyle{Width: w, Color: col, Dashes: rd.Dashes, DashesBackground: bg, Over: rd.Over}, nil
	case "area":
		return rules.AreaStyle{Color: col, Closed: rd.Closed}, nil
	}
	return nil, fmt.Errorf("%w: %q", rules.ErrUnknownCategory, rd.Category)
}

func optColor(s string) (maybe.Maybe[color.RGBA], error) {
	if s == "" {
		return maybe.Nothing[color.RGBA](), nil
	}
	c, err := rules.ParseColor(s)
	if err != nil {
		return maybe.Nothing[color.RGBA](), err
	}
	return maybe.Just(c), nil
}

// Primitive creates the feature for a declaration.
func (fd FeatureDecl) Primitive() (*feature.Primitive, error) {
	p := &feature.Primitive{
		ID:         fd.ID,
		Closed:     fd.Closed,
		Deleted:    fd.Deleted,
		Incomplete: fd.Incomplete,
		TagSet:     feature.Tags(fd.Tags),
	}
	switch fd.Kind {
	case "node":
		p.Type = feature.Node
	case "way":
		p.Type = feature.Way
	case "relation":
		p.Type = feature.Relation
	default:
		return nil, fmt.Errorf("feature %d: unknown kind %q", fd.ID, fd.Kind)
	}
	return p, nil
}
