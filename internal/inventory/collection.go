package inventory

// Collection is ordered storage for child nodes with name-keyed lookup.
// Insertion order is significant: it drives rendered order and the
// "last child" determination. Composite nodes embed a Collection by
// value and iterate it explicitly when rendering.
type Collection[T Node] struct {
	items []T
}

// Add appends item to the end of the collection.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Find returns the first item, in insertion order, that is Named and
// whose name equals name. The second return value reports whether a
// match was found.
func (c *Collection[T]) Find(name string) (T, bool) {
	for _, item := range c.items {
		if named, ok := any(item).(Named); ok && named.Name() == name {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Items returns the backing slice. Callers must not mutate it.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Len returns the number of items stored.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Clone returns a collection holding deep copies of every item, in the
// same order, backed by fresh storage.
func (c *Collection[T]) Clone() Collection[T] {
	if c.items == nil {
		return Collection[T]{}
	}
	items := make([]T, len(c.items))
	for i, item := range c.items {
		items[i] = Clone(item)
	}
	return Collection[T]{items: items}
}
