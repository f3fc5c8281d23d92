package surface

import "slices"

type Stats struct {
	Clears, Adds, Replaces, Removes int
}

// Ops is the total number of operations.
func (s Stats) Ops() int { return s.Clears + s.Adds + s.Replaces + s.Removes }

type entry struct {
	handle Handle
	d      Drawable
}

// Recorder is an in-memory Surface that counts the operations it receives.
type Recorder struct {
	entries []entry
	next    Handle
	stats   Stats
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.stats.Clears++
	r.entries = r.entries[:0]
}

func (r *Recorder) Add(d Drawable) Handle {
	r.stats.Adds++
	r.next++
	r.entries = append(r.entries, entry{handle: r.next, d: d})
	return r.next
}

func (r *Recorder) Replace(h Handle, d Drawable) bool {
	i := r.index(h)
	if i < 0 {
		return false
	}
	r.stats.Replaces++
	r.entries[i].d = d
	return true
}

func (r *Recorder) Remove(h Handle) bool {
	i := r.index(h)
	if i < 0 {
		return false
	}
	r.stats.Removes++
	r.entries = slices.Delete(r.entries, i, i+1)
	return true
}

func (r *Recorder) index(h Handle) int {
	if h == 0 {
		return -1
	}
	return slices.IndexFunc(r.entries, func(e entry) bool { return e.handle == h })
}

// Get returns the drawable behind h.
func (r *Recorder) Get(h Handle) (Drawable, bool) {
	if i := r.index(h); i >= 0 {
		return r.entries[i].d, true
	}
	return nil, false
}

// Items returns the live drawables bottom to top.
func (r *Recorder) Items() []Drawable {
	out := make([]Drawable, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.d
	}
	return out
}

// Flatten returns the live drawables with groups expanded.
func (r *Recorder) Flatten() []Drawable {
	var out []Drawable
	for _, e := range r.entries {
		out = flatten(out, e.d)
	}
	return out
}

func flatten(dst []Drawable, d Drawable) []Drawable {
	if g, ok := d.(Group); ok {
		for _, it := range g.Items {
			dst = flatten(dst, it)
		}
		return dst
	}
	return append(dst, d)
}

func (r *Recorder) Stats() Stats { return r.stats }

// ResetStats zeroes the operation counters, the drawables are kept.
func (r *Recorder) ResetStats() { r.stats = Stats{} }

func (r *Recorder) Len() int { return len(r.entries) }
