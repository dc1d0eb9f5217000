/*
Package maybe implements an option type.

Resolving styles is possible with or without a display scale, and style
rules may or may not carry an explicit flag for annotations. Both are
modelled as Maybe values:

    sc := maybe.Just(500.0)
    switch m := sc.Match(); m {
    case m.Just(&x):
        …
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just a value of type T or Nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns the empty option.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns Nothing for nil and Just(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// Get returns the value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// IsNothing is true for the empty option.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a Just-value.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switch-statements over Maybe values. See the package
// documentation.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher holds a pointer, which keeps it comparable for any T.
type matcher[T any] struct {
	m *Maybe[T]
}

// Match returns a matcher for m.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: &m}
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
