package core

// Bounded is an ordered list with a fixed capacity.
// Insertion past capacity is refused rather than growing the list.
type Bounded[T any] struct {
	items []T
	limit int
}

// NewBounded creates an empty list that holds at most limit items.
func NewBounded[T any](limit int) Bounded[T] {
	return Bounded[T]{items: make([]T, 0, limit), limit: limit}
}

// Push appends v and reports whether it was accepted.
// It returns false, leaving the list unchanged, when the list is full.
func (b *Bounded[T]) Push(v T) bool {
	if len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Len returns the number of items.
func (b *Bounded[T]) Len() int {
	return len(b.items)
}

// Cap returns the capacity fixed at construction.
func (b *Bounded[T]) Cap() int {
	return b.limit
}

// Full reports whether Push would be refused.
func (b *Bounded[T]) Full() bool {
	return len(b.items) >= b.limit
}

// Items returns the stored items in insertion order.
// The slice aliases the list; callers may modify elements in place.
func (b *Bounded[T]) Items() []T {
	return b.items
}

// Retain keeps only the items for which keep returns true, compacting the
// list in place and preserving relative order.
func (b *Bounded[T]) Retain(keep func(T) bool) {
	kept := b.items[:0]
	for _, v := range b.items {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	clear(b.items[len(kept):])
	b.items = kept
}

// Clear removes all items.
func (b *Bounded[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}
