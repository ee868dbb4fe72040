// Package lazy provides a demand-driven incremental-computation engine: a
// small graph of cells where mutating a leaf invalidates exactly the derived
// values that depend on it, and reads recompute lazily.
//
// # Overview
//
// Lazy organizes code around three cell kinds:
//
//  1. Roots: externally mutable leaf values
//  2. Nodes: derived cells that memoize their result until invalidated
//  3. Paths: derived cells that recompute on every read and never cache
//
// Build a graph by declaring dependencies at construction:
//
//	a := lazy.Root(1)
//	b := lazy.Root(2)
//
//	c := lazy.Path2(a, b, func(x, y int) (int, error) {
//	    return x + y, nil
//	})
//
//	d := lazy.Node2(c, a, func(cv, av int) (int, error) {
//	    return cv * av, nil
//	})
//
//	v, err := d.Get() // 3; computed once, cached at d
//
// Mutating a root invalidates every memoized cell transitively downstream;
// unrelated cached cells stay valid:
//
//	a.Set(233)
//	v, err = d.Get() // 54755; recomputed on demand
//
// # Ownership
//
// A derived cell keeps its upstream cells alive: they are captured inside its
// compute closure. The reverse edges, used for invalidation, are weak: an
// upstream cell never keeps its dependents alive, and dangling edges are
// pruned lazily the next time invalidation or a dump traverses them. Dropping
// the last strong reference to a cell is enough to retire it from the graph.
//
// # Snapshots
//
// Roots and nodes register (weakly) with a Graph, which can capture and
// restore all of their cached values as one consistent point in time:
//
//	g := lazy.NewGraph()
//	restore := lazy.UseGraph(g)
//	defer restore()
//
//	// ... construct and use cells ...
//
//	snap, err := g.Dump()
//	// ... more mutation ...
//	err = g.Load(snap) // every captured cell back to the dumped state
//
// Load installs payloads directly without cascading invalidation: the whole
// snapshot is one jointly consistent state. Snapshots are process-local and
// hold shared handles, not copies; every mutation replaces a cell's value
// object, so a captured revision can never change after the fact.
//
// # Extensions
//
// Extensions hook cell and graph operations (compute, set, dump, load)
// through a middleware chain, per graph:
//
//	g := lazy.NewGraph(
//	    lazy.WithExtension(extensions.NewLoggingExtension(logger)),
//	)
//
// # Tags
//
// Tags attach type-safe metadata to cells and graphs. The bundled extensions
// read lazy.CellName() to label cells in output:
//
//	r := lazy.Root(0, lazy.WithTag(lazy.CellName(), "counter"))
//
// # Concurrency
//
// The engine is single-threaded by design: no internal locking, no atomics.
// Graph construction, reads, mutation and snapshot operations must run on one
// logical thread of control at a time. Get may recurse synchronously into
// upstream Get calls; recursion depth is bounded by the longest dependency
// chain.
package lazy
