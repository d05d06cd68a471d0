package model

// Pool is a handle-indexed arena. Removal during a pass only marks the slot, so iteration
// stays valid; Compact drops marked slots once per step.
type Pool[T any] struct {
	items   []T
	ids     []Handle
	removed []bool
	index   map[Handle]int
	marked  int
}

func NewPool[T any]() *Pool[T] {
	return &Pool[T]{index: make(map[Handle]int)}
}

// Insert appends v under id. Inserting during Each is allowed but invalidates the item
// pointer handed to the current callback.
func (p *Pool[T]) Insert(id Handle, v T) {
	p.index[id] = len(p.items)
	p.items = append(p.items, v)
	p.ids = append(p.ids, id)
	p.removed = append(p.removed, false)
}

// Get returns the live item for id.
func (p *Pool[T]) Get(id Handle) (*T, bool) {
	i, ok := p.index[id]
	if !ok || p.removed[i] {
		return nil, false
	}
	return &p.items[i], true
}

// Remove marks id for removal. It reports false if id is unknown or already marked.
func (p *Pool[T]) Remove(id Handle) bool {
	i, ok := p.index[id]
	if !ok || p.removed[i] {
		return false
	}
	p.removed[i] = true
	p.marked++
	return true
}

// Len returns the number of live (unmarked) items.
func (p *Pool[T]) Len() int {
	return len(p.items) - p.marked
}

// Each calls fn for every live item in insertion order until fn returns false.
// Items inserted while iterating are not visited in the same pass.
func (p *Pool[T]) Each(fn func(id Handle, v *T) bool) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if p.removed[i] {
			continue
		}
		if !fn(p.ids[i], &p.items[i]) {
			return
		}
	}
}

// Compact drops every marked item and returns how many were dropped.
func (p *Pool[T]) Compact() int {
	if p.marked == 0 {
		return 0
	}

	dropped := p.marked
	j := 0
	for i := range p.items {
		if p.removed[i] {
			delete(p.index, p.ids[i])
			continue
		}
		p.items[j] = p.items[i]
		p.ids[j] = p.ids[i]
		p.removed[j] = false
		p.index[p.ids[j]] = j
		j++
	}

	// zero the tail so dropped values are not retained
	var zero T
	for i := j; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:j]
	p.ids = p.ids[:j]
	p.removed = p.removed[:j]
	p.marked = 0
	return dropped
}

// Items returns a copy of the live items.
func (p *Pool[T]) Items() []T {
	out := make([]T, 0, p.Len())
	p.Each(func(_ Handle, v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// Clear removes everything, including marked items.
func (p *Pool[T]) Clear() {
	p.items = nil
	p.ids = nil
	p.removed = nil
	p.marked = 0
	p.index = make(map[Handle]int)
}
