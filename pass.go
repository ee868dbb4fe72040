package lazy

// PassCell is a derived cell that recomputes on every read and never caches.
// It still sits on the invalidation chain, so memo cells built on top of it
// are invalidated when its upstream changes. Pass cells hold no snapshot-able
// state and are never registered with a graph. Construct them with
// Path1..Path5.
type PassCell[T any] struct {
	tagSet
	c       *core
	compute func() (T, error)
}

// Get evaluates the function against the current upstream values.
func (p *PassCell[T]) Get() (T, error) {
	return p.compute()
}

func (p *PassCell[T]) core() *core { return p.c }

// release is a no-op: there is nothing cached. The cell participates in
// unset traversal purely to forward the signal downstream.
func (p *PassCell[T]) release() {}
