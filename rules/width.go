package rules

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	widthAbsolute uint8 = iota
	widthOffset
	widthPercent
)

// Width is the width of a line modifier. It is either absolute or relative
// to the width of the base line, as an offset ("+2", "-1") or as a
// percentage ("150%").
type Width struct {
	value float64
	mode  uint8
}

// AbsoluteWidth returns a fixed width.
func AbsoluteWidth(w float64) Width {
	return Width{value: w, mode: widthAbsolute}
}

// OffsetWidth returns a width of the reference width plus d.
func OffsetWidth(d float64) Width {
	return Width{value: d, mode: widthOffset}
}

// PercentWidth returns a width of p percent of the reference width.
func PercentWidth(p float64) Width {
	return Width{value: p, mode: widthPercent}
}

// ParseWidth parses "3", "+2", "-1" or "150%".
func ParseWidth(s string) (Width, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Width{}, fmt.Errorf("empty width")
	}
	switch {
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Width{}, fmt.Errorf("illegal percentage width %q: %w", s, err)
		}
		return PercentWidth(p), nil
	case s[0] == '+' || s[0] == '-':
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Width{}, fmt.Errorf("illegal offset width %q: %w", s, err)
		}
		return OffsetWidth(d), nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Width{}, fmt.Errorf("illegal width %q: %w", s, err)
	}
	return AbsoluteWidth(w), nil
}

// Relative computes the width for a base line of width ref. Widths of zero
// or less are drawn with width 1.
func (w Width) Relative(ref float64) float64 {
	var res float64
	switch w.mode {
	case widthAbsolute:
		res = w.value
	case widthOffset:
		res = ref + w.value
	case widthPercent:
		if w.value > 0 {
			res = ref * w.value / 100
		}
	}
	if res <= 0 {
		return 1
	}
	return res
}

func (w Width) String() string {
	switch w.mode {
	case widthOffset:
		return fmt.Sprintf("%+g", w.value)
	case widthPercent:
		return fmt.Sprintf("%g%%", w.value)
	}
	return fmt.Sprintf("%g", w.value)
}
