package lazy

//go:generate go run codegen/main.go -w

import "weak"

func Node1[T any, D1 any](
	d1 Upstream[D1],
	fn func(D1) (T, error),
	opts ...CellOption,
) *MemoCell[T] {
	m := &MemoCell[T]{tagSet: newTagSet()}
	m.c = newCore(m)
	m.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(m)
	m.graph = cfg.graph
	w := weak.Make(m.c)
	d1.core().attach(w)
	m.graph.add(m)
	return m
}

func Node2[T any, D1 any, D2 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	fn func(D1, D2) (T, error),
	opts ...CellOption,
) *MemoCell[T] {
	m := &MemoCell[T]{tagSet: newTagSet()}
	m.c = newCore(m)
	m.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(m)
	m.graph = cfg.graph
	w := weak.Make(m.c)
	d1.core().attach(w)
	d2.core().attach(w)
	m.graph.add(m)
	return m
}

func Node3[T any, D1 any, D2 any, D3 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	d3 Upstream[D3],
	fn func(D1, D2, D3) (T, error),
	opts ...CellOption,
) *MemoCell[T] {
	m := &MemoCell[T]{tagSet: newTagSet()}
	m.c = newCore(m)
	m.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v3, err := d3.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2, v3)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(m)
	m.graph = cfg.graph
	w := weak.Make(m.c)
	d1.core().attach(w)
	d2.core().attach(w)
	d3.core().attach(w)
	m.graph.add(m)
	return m
}

func Node4[T any, D1 any, D2 any, D3 any, D4 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	d3 Upstream[D3],
	d4 Upstream[D4],
	fn func(D1, D2, D3, D4) (T, error),
	opts ...CellOption,
) *MemoCell[T] {
	m := &MemoCell[T]{tagSet: newTagSet()}
	m.c = newCore(m)
	m.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v3, err := d3.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v4, err := d4.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2, v3, v4)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(m)
	m.graph = cfg.graph
	w := weak.Make(m.c)
	d1.core().attach(w)
	d2.core().attach(w)
	d3.core().attach(w)
	d4.core().attach(w)
	m.graph.add(m)
	return m
}

func Node5[T any, D1 any, D2 any, D3 any, D4 any, D5 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	d3 Upstream[D3],
	d4 Upstream[D4],
	d5 Upstream[D5],
	fn func(D1, D2, D3, D4, D5) (T, error),
	opts ...CellOption,
) *MemoCell[T] {
	m := &MemoCell[T]{tagSet: newTagSet()}
	m.c = newCore(m)
	m.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v3, err := d3.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v4, err := d4.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v5, err := d5.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2, v3, v4, v5)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(m)
	m.graph = cfg.graph
	w := weak.Make(m.c)
	d1.core().attach(w)
	d2.core().attach(w)
	d3.core().attach(w)
	d4.core().attach(w)
	d5.core().attach(w)
	m.graph.add(m)
	return m
}

func Path1[T any, D1 any](
	d1 Upstream[D1],
	fn func(D1) (T, error),
	opts ...CellOption,
) *PassCell[T] {
	p := &PassCell[T]{tagSet: newTagSet()}
	p.c = newCore(p)
	p.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(p)
	w := weak.Make(p.c)
	d1.core().attach(w)
	return p
}

func Path2[T any, D1 any, D2 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	fn func(D1, D2) (T, error),
	opts ...CellOption,
) *PassCell[T] {
	p := &PassCell[T]{tagSet: newTagSet()}
	p.c = newCore(p)
	p.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(p)
	w := weak.Make(p.c)
	d1.core().attach(w)
	d2.core().attach(w)
	return p
}

func Path3[T any, D1 any, D2 any, D3 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	d3 Upstream[D3],
	fn func(D1, D2, D3) (T, error),
	opts ...CellOption,
) *PassCell[T] {
	p := &PassCell[T]{tagSet: newTagSet()}
	p.c = newCore(p)
	p.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v3, err := d3.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2, v3)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(p)
	w := weak.Make(p.c)
	d1.core().attach(w)
	d2.core().attach(w)
	d3.core().attach(w)
	return p
}

func Path4[T any, D1 any, D2 any, D3 any, D4 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	d3 Upstream[D3],
	d4 Upstream[D4],
	fn func(D1, D2, D3, D4) (T, error),
	opts ...CellOption,
) *PassCell[T] {
	p := &PassCell[T]{tagSet: newTagSet()}
	p.c = newCore(p)
	p.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v3, err := d3.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v4, err := d4.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2, v3, v4)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(p)
	w := weak.Make(p.c)
	d1.core().attach(w)
	d2.core().attach(w)
	d3.core().attach(w)
	d4.core().attach(w)
	return p
}

func Path5[T any, D1 any, D2 any, D3 any, D4 any, D5 any](
	d1 Upstream[D1],
	d2 Upstream[D2],
	d3 Upstream[D3],
	d4 Upstream[D4],
	d5 Upstream[D5],
	fn func(D1, D2, D3, D4, D5) (T, error),
	opts ...CellOption,
) *PassCell[T] {
	p := &PassCell[T]{tagSet: newTagSet()}
	p.c = newCore(p)
	p.compute = func() (T, error) {
		v1, err := d1.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v2, err := d2.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v3, err := d3.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v4, err := d4.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		v5, err := d5.Get()
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(v1, v2, v3, v4, v5)
	}
	cfg := newCellConfig(opts)
	cfg.applyTags(p)
	w := weak.Make(p.c)
	d1.core().attach(w)
	d2.core().attach(w)
	d3.core().attach(w)
	d4.core().attach(w)
	d5.core().attach(w)
	return p
}
