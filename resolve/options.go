package resolve

// DefaultMaxOverlayIndex is the default bound when probing for a free
// overlay number.
const DefaultMaxOverlayIndex = 4096

// Resolver resolves styles of features. A resolver is configured at
// creation time and may be used concurrently afterwards.
type Resolver struct {
	useRanges  bool
	maxOverlay int
}

// New creates a resolver with options, if you need any.
// Use it like this:
//
//     r := resolve.New(resolve.UseScaleRanges(false))
//     err := r.Apply(mc, src, resolve.Request{Feature: way, Scale: 500})
//
func New(opts ...Option) *Resolver {
	r := &Resolver{
		useRanges:  true,
		maxOverlay: DefaultMaxOverlayIndex,
	}
	for _, option := range opts {
		option(r)
	}
	return r
}

// Option is a type to help initializing resolvers at creation time.
type Option func(*Resolver)

// UseScaleRanges switches between scale dependent resolution (the default)
// and scale independent resolution. If off, the scale ranges of rules are
// ignored and every result is valid for all scales.
func UseScaleRanges(on bool) Option {
	return func(r *Resolver) {
		r.useRanges = on
	}
}

// MaxOverlayIndex sets the bound for overlay numbers. Values less than 1
// are ignored.
func MaxOverlayIndex(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxOverlay = n
		}
	}
}
