package simulator

// Rotation is a cursor into a fixed ordered list. Advancing past the last item
// wraps to the first, so Index is always in [0, Len()-1].
type Rotation[T any] struct {
	items []T
	index int
}

// NewRotation starts a rotation at index 0. items must not be empty.
func NewRotation[T any](items []T) Rotation[T] {
	return Rotation[T]{items: items}
}

// Advance moves the cursor one step forward and returns the new index.
func (r *Rotation[T]) Advance() int {
	if len(r.items) == 0 {
		return 0
	}
	r.index = (r.index + 1) % len(r.items)
	return r.index
}

func (r *Rotation[T]) Index() int { return r.index }

func (r *Rotation[T]) Len() int { return len(r.items) }

// Current returns the item under the cursor, or the zero value for an empty list.
func (r *Rotation[T]) Current() T {
	var zero T
	if len(r.items) == 0 {
		return zero
	}
	return r.items[r.index]
}

// Reset moves the cursor back to the first item.
func (r *Rotation[T]) Reset() {
	r.index = 0
}
