package lazy

// RootCell is an externally mutable leaf cell. It has no upstream; every
// derived value in a graph ultimately reads from roots.
type RootCell[T any] struct {
	tagSet
	c     *core
	graph *Graph
	value *T
}

// Root creates a leaf cell holding initial and registers it with the active
// graph (or the one given via WithGraph). The initial value is installed
// directly: nothing downstream exists yet, so there is nothing to invalidate.
func Root[T any](initial T, opts ...CellOption) *RootCell[T] {
	r := &RootCell[T]{tagSet: newTagSet()}
	r.c = newCore(r)
	cfg := newCellConfig(opts)
	cfg.applyTags(r)
	r.graph = cfg.graph
	r.value = &initial
	r.graph.add(r)
	return r
}

// Get returns the current value. A root is always constructed with a value,
// so the slot can only be absent if a snapshot that captured an absent state
// was loaded onto it; reading it then is a programming error.
func (r *RootCell[T]) Get() (T, error) {
	if r.value == nil {
		var zero T
		return zero, &ValueAbsentError{Cell: describeCell(r)}
	}
	return *r.value, nil
}

// Set invalidates this cell and everything transitively downstream of it,
// then installs newVal as the current value. The value object is replaced,
// never mutated in place, so handles captured by earlier snapshots keep the
// revision they saw.
func (r *RootCell[T]) Set(newVal T) error {
	_, err := r.graph.dispatch(OpSet, r, func() (any, error) {
		r.c.unset(true)
		r.value = &newVal
		return nil, nil
	})
	return err
}

// Peek returns the current value without going through the error path.
func (r *RootCell[T]) Peek() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// IsCached reports whether the value slot is present.
func (r *RootCell[T]) IsCached() bool {
	return r.value != nil
}

func (r *RootCell[T]) core() *core { return r.c }

func (r *RootCell[T]) release() { r.value = nil }

func (r *RootCell[T]) dump() any { return r.value }

func (r *RootCell[T]) load(v any) error {
	if v == nil {
		r.value = nil
		return nil
	}
	typed, ok := v.(*T)
	if !ok {
		return newTypeMismatchError(r, (*T)(nil), v)
	}
	r.value = typed
	return nil
}
