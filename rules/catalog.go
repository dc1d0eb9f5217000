package rules

import (
	"sync"
	"sync/atomic"
)

// Catalog publishes the style sources in use. Readers get a consistent
// snapshot of sources without locking; a source is either fully built and
// visible, or not visible at all. Snapshots remain valid after sources have
// been replaced.
type Catalog struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[[]*Source]
}

// Sources returns the current snapshot, in layering order. Clients must
// not modify the returned slice.
func (cat *Catalog) Sources() []*Source {
	if s := cat.current.Load(); s != nil {
		return *s
	}
	return nil
}

// Publish replaces all sources.
func (cat *Catalog) Publish(sources ...*Source) {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	s := append([]*Source(nil), sources...)
	cat.current.Store(&s)
}

// Put publishes src. If a source with the same name is present, it is
// replaced at its position; otherwise src is appended as the topmost layer.
func (cat *Catalog) Put(src *Source) {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	old := cat.Sources()
	s := make([]*Source, 0, len(old)+1)
	replaced := false
	for _, o := range old {
		if o.name == src.name {
			s = append(s, src)
			replaced = true
			continue
		}
		s = append(s, o)
	}
	if !replaced {
		s = append(s, src)
	}
	cat.current.Store(&s)
	tracer().Debugf("rules: published %s", src)
}

// Remove unpublishes the source with the given name.
func (cat *Catalog) Remove(name string) bool {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	old := cat.Sources()
	s := make([]*Source, 0, len(old))
	for _, o := range old {
		if o.name != name {
			s = append(s, o)
		}
	}
	if len(s) == len(old) {
		return false
	}
	cat.current.Store(&s)
	return true
}
