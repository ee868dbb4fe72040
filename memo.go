package lazy

import "errors"

// MemoCell is a derived cell that caches the result of its compute function
// until an upstream mutation invalidates it. Construct memo cells with
// Node1..Node5.
type MemoCell[T any] struct {
	tagSet
	c       *core
	graph   *Graph
	compute func() (T, error)
	value   *T
}

// Get returns the cached value, computing it first if the cache is absent.
// Upstream Get calls recurse lazily, so a chain of memo cells resolves
// depth-first with each level caching independently. A failing compute leaves
// the cache absent, so a later Get retries.
func (m *MemoCell[T]) Get() (T, error) {
	if m.value != nil {
		return *m.value, nil
	}
	// Result stays typed: a nil interface value does not survive a round
	// trip through any.
	var v T
	_, err := m.graph.dispatch(OpCompute, m, func() (any, error) {
		var cerr error
		v, cerr = m.compute()
		if cerr != nil {
			return nil, cerr
		}
		return v, nil
	})
	if err != nil {
		var zero T
		var ce *ComputeError
		if !errors.As(err, &ce) {
			err = newComputeError(m, err)
		}
		return zero, err
	}
	m.value = &v
	return v, nil
}

// Peek returns the cached value without computing.
func (m *MemoCell[T]) Peek() (T, bool) {
	if m.value == nil {
		var zero T
		return zero, false
	}
	return *m.value, true
}

// IsCached reports whether a value is currently cached.
func (m *MemoCell[T]) IsCached() bool {
	return m.value != nil
}

// Invalidate clears the cache and cascades downstream, as if an upstream
// value had changed.
func (m *MemoCell[T]) Invalidate() {
	m.c.unset(true)
}

func (m *MemoCell[T]) core() *core { return m.c }

func (m *MemoCell[T]) release() { m.value = nil }

func (m *MemoCell[T]) dump() any { return m.value }

func (m *MemoCell[T]) load(v any) error {
	if v == nil {
		m.value = nil
		return nil
	}
	typed, ok := v.(*T)
	if !ok {
		return newTypeMismatchError(m, (*T)(nil), v)
	}
	m.value = typed
	return nil
}
