package lazy

import (
	"context"
	"fmt"
	"sort"
	"weak"

	"github.com/google/uuid"
)

// Graph is a weak-reference registry of data cells and the unit of snapshot
// and restore. Registration never keeps a cell alive: once the last strong
// holder of a cell is gone, the cell disappears from the registry on the next
// traversal.
type Graph struct {
	id         string
	cells      []weak.Pointer[core]
	tags       map[any]any
	extensions []Extension
}

// GraphOption is a modifier for graphs.
type GraphOption func(*Graph)

// WithExtension returns an option that registers an extension on a graph.
func WithExtension(ext Extension) GraphOption {
	return func(g *Graph) {
		if err := g.UseExtension(ext); err != nil {
			panic(err)
		}
	}
}

// WithGraphTag returns an option that sets a tag on a graph.
func WithGraphTag[T any](tag Tag[T], val T) GraphOption {
	return func(g *Graph) {
		tag.SetOnGraph(g, val)
	}
}

// NewGraph creates an empty registry with optional configuration.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		id:   uuid.NewString(),
		tags: make(map[any]any),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

var defaultGraph = NewGraph()
var activeGraph = defaultGraph

// CurrentGraph returns the graph new Root and Node cells register into.
func CurrentGraph() *Graph {
	return activeGraph
}

// UseGraph rebinds the active graph for subsequent constructions and returns
// a restore function, so ambient rebinding keeps stack discipline:
//
//	restore := lazy.UseGraph(g)
//	defer restore()
//
// Previously constructed cells keep their original registration.
func UseGraph(g *Graph) (restore func()) {
	prev := activeGraph
	activeGraph = g
	return func() { activeGraph = prev }
}

// ID returns the graph's identity, carried in logs and operations.
func (g *Graph) ID() string {
	return g.id
}

func (g *Graph) add(cell dataCell) {
	g.cells = append(g.cells, weak.Make(cell.core()))
}

// Dump captures the cache state of every live registered cell into a
// Snapshot. Each captured payload is a shared handle to the cell's current
// value object, not a copy. Registry entries whose cell has been collected
// are dropped along the way.
func (g *Graph) Dump() (*Snapshot, error) {
	result, err := g.dispatch(OpDump, nil, func() (any, error) {
		snap := newSnapshot()
		kept := g.cells[:0]
		for _, w := range g.cells {
			c := w.Value()
			if c == nil {
				continue
			}
			snap.entries = append(snap.entries, snapshotEntry{
				cell:  w,
				value: c.owner.(dataCell).dump(),
			})
			kept = append(kept, w)
		}
		g.cells = kept
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Load restores every captured payload onto its cell. Payloads are installed
// directly, bypassing invalidation: every cell in the snapshot is being
// restored to a jointly consistent state in the same pass, so cascading would
// only destroy state the next pair is about to install. Pairs whose cell has
// been collected are dropped from the snapshot. A type mismatch stops
// installation at the failing pair; earlier payloads stay installed.
func (g *Graph) Load(snap *Snapshot) error {
	_, err := g.dispatch(OpLoad, nil, func() (any, error) {
		kept := snap.entries[:0]
		var loadErr error
		for _, e := range snap.entries {
			c := e.cell.Value()
			if c == nil {
				continue
			}
			kept = append(kept, e)
			if loadErr == nil {
				loadErr = c.owner.(dataCell).load(e.value)
			}
		}
		// Compaction finishes even when a load fails; a partial in-place
		// rewrite would leave the snapshot corrupted.
		snap.entries = kept
		return nil, loadErr
	})
	return err
}

// Size returns the number of live registered cells, pruning dead entries.
func (g *Graph) Size() int {
	kept := g.cells[:0]
	for _, w := range g.cells {
		if w.Value() == nil {
			continue
		}
		kept = append(kept, w)
	}
	g.cells = kept
	return len(g.cells)
}

// ExportDependencyGraph returns the downstream edges of every cell reachable
// from the registry, for debugging and visualization. Pass cells show up as
// dependents even though they are not registered themselves.
func (g *Graph) ExportDependencyGraph() map[AnyCell][]AnyCell {
	out := make(map[AnyCell][]AnyCell)

	var walk func(c *core)
	walk = func(c *core) {
		if _, seen := out[c.owner]; seen {
			return
		}
		children := c.liveDownstream()
		out[c.owner] = children
		for _, child := range children {
			walk(child.core())
		}
	}

	kept := g.cells[:0]
	for _, w := range g.cells {
		c := w.Value()
		if c == nil {
			continue
		}
		kept = append(kept, w)
		walk(c)
	}
	g.cells = kept

	return out
}

// UseExtension registers an extension, keeping the chain sorted by Order.
func (g *Graph) UseExtension(ext Extension) error {
	g.extensions = append(g.extensions, ext)
	sort.SliceStable(g.extensions, func(i, j int) bool {
		return g.extensions[i].Order() < g.extensions[j].Order()
	})
	return ext.Init(g)
}

// dispatch runs fn wrapped by the registered extensions (last registered
// wraps first) and notifies them of errors.
func (g *Graph) dispatch(kind OperationKind, cell AnyCell, fn func() (any, error)) (any, error) {
	if len(g.extensions) == 0 {
		return fn()
	}

	op := &Operation{
		Kind:  kind,
		Cell:  cell,
		Graph: g,
	}

	next := fn
	for i := len(g.extensions) - 1; i >= 0; i-- {
		ext := g.extensions[i]
		currentNext := next
		next = func() (any, error) {
			return ext.Wrap(context.Background(), currentNext, op)
		}
	}

	result, err := next()
	if err != nil {
		for _, ext := range g.extensions {
			ext.OnError(err, op, g)
		}
	}
	return result, err
}

// Dispose tears down the graph's extensions.
func (g *Graph) Dispose() error {
	for _, ext := range g.extensions {
		if err := ext.Dispose(g); err != nil {
			return fmt.Errorf("disposing extension %s: %w", ext.Name(), err)
		}
	}
	return nil
}

// GetTag retrieves a tag value from the graph.
func (g *Graph) GetTag(tag any) (any, bool) {
	val, ok := g.tags[tag]
	return val, ok
}

// SetTag stores a tag value on the graph.
func (g *Graph) SetTag(tag any, val any) {
	g.tags[tag] = val
}
