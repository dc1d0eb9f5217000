package style

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/npillmayer/mapstyle/maybe"
)

// Style property keys written by style resolution.
const (
	IconImage             = "icon-image"
	Text                  = "text"
	Width                 = "width"
	RealWidth             = "real-width"
	Color                 = "color"
	Dashes                = "dashes"
	DashesBackgroundColor = "dashes-background-color"
	FillColor             = "fill-color"
	FillImage             = "fill-image"
	ObjectZIndex          = "object-z-index"
)

// Cascade is a named set of style properties. Values are typed: widths and
// z-indices are float64, colors are color.RGBA, dash patterns []float64,
// icon references strings.
type Cascade struct {
	name  string
	props map[string]any
}

// NewCascade creates an empty cascade.
func NewCascade(name string) *Cascade {
	return &Cascade{name: name}
}

// Name returns the name of the cascade. Cascades may not be renamed.
func (c *Cascade) Name() string {
	return c.name
}

// Len returns the number of properties set.
func (c *Cascade) Len() int {
	if c == nil {
		return 0
	}
	return len(c.props)
}

// Keys returns the property keys in ascending order.
func (c *Cascade) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.props))
	for k := range c.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a property value, together with an indicator whether it has
// been found.
func (c *Cascade) Get(key string) (any, bool) {
	if c == nil || c.props == nil {
		return nil, false
	}
	v, ok := c.props[key]
	return v, ok
}

// IsSet is a predicate whether a property is set.
func (c *Cascade) IsSet(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Put sets a property's value. Overwrites an existing value, if present.
func (c *Cascade) Put(key string, value any) {
	if c.props == nil {
		c.props = make(map[string]any)
	}
	c.props[key] = value
}

// PutOrClear sets a property's value, or removes the property if value is
// nil (including nil slices).
func (c *Cascade) PutOrClear(key string, value any) {
	if isNil(value) {
		c.Remove(key)
		return
	}
	c.Put(key, value)
}

// Remove deletes a property.
func (c *Cascade) Remove(key string) {
	if c.props != nil {
		delete(c.props, key)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// PutMaybe sets a property from an optional value: Just(v) puts v, Nothing
// removes the property.
func PutMaybe[T any](c *Cascade, key string, value maybe.Maybe[T]) {
	if v, ok := value.Get(); ok {
		c.Put(key, v)
		return
	}
	c.Remove(key)
}

// Value returns a property value of type T. It returns false if the
// property is not set or has a different type.
func Value[T any](c *Cascade, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Equal compares the properties of two cascades. Names are not compared.
func (c *Cascade) Equal(other *Cascade) bool {
	if c.Len() != other.Len() {
		return false
	}
	for _, k := range c.Keys() {
		w, ok := other.Get(k)
		if !ok {
			return false
		}
		v, _ := c.Get(k)
		if !reflect.DeepEqual(v, w) {
			return false
		}
	}
	return true
}

// Stringer for cascades; used for debugging.
func (c *Cascade) String() string {
	var b strings.Builder
	b.WriteString("[" + c.name + "] =\n")
	for _, k := range c.Keys() {
		fmt.Fprintf(&b, "  %s = %v\n", k, c.props[k])
	}
	return b.String()
}
