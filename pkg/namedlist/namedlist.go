// Package namedlist provides an insertion-ordered collection indexed by
// element name. It backs the lazy player-accumulator registries of the
// replay engine: looking up an unseen name is a first-class branch, not an
// error, and insertion order is preserved (batting order, bowling order).
package namedlist

// Named is implemented by any element that exposes a stable name.
type Named interface {
	PlayerName() string
}

// List is an ordered collection of named elements with O(1) name lookup.
// The zero value is not usable; construct with New.
type List[T Named] struct {
	items []T
	index map[string]int
}

// New creates an empty List.
func New[T Named]() *List[T] {
	return &List[T]{
		index: make(map[string]int),
	}
}

// Append adds an element to the end of the list.
// Appending a name that is already present replaces the indexed entry.
func (l *List[T]) Append(item T) {
	l.index[item.PlayerName()] = len(l.items)
	l.items = append(l.items, item)
}

// Get returns the element with the given name, and whether it exists.
func (l *List[T]) Get(name string) (T, bool) {
	idx, ok := l.index[name]
	if !ok {
		var zero T

		return zero, false
	}

	return l.items[idx], true
}

// GetOrAdd returns the element with the given name, creating it with the
// supplied constructor and appending it when absent. The second result
// reports whether the element already existed.
func (l *List[T]) GetOrAdd(name string, create func() T) (T, bool) {
	item, ok := l.Get(name)
	if ok {
		return item, true
	}

	item = create()
	l.Append(item)

	return item, false
}

// At returns the element at position idx in insertion order.
func (l *List[T]) At(idx int) T {
	return l.items[idx]
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns the elements in insertion order. The returned slice is
// shared with the list and must not be mutated.
func (l *List[T]) Items() []T {
	return l.items
}
