package lazy

import (
	"fmt"
	"weak"
)

// AnyCell is a type-erased view of a cell, used for metadata and by
// extensions. The propagation methods are unexported, so the set of cell
// kinds (root, memo, pass) is closed.
type AnyCell interface {
	GetTag(tag any) (any, bool)
	SetTag(tag any, val any)
	core() *core
	release()
}

// dataCell is the snapshot capability: cells whose cached value can be
// dumped to and restored from an opaque handle. Pass cells hold no cache and
// are not dataCells.
type dataCell interface {
	AnyCell
	load(v any) error
	dump() any
}

// Upstream is a readable cell usable as a dependency of NodeN/PathN.
type Upstream[T any] interface {
	Get() (T, error)
	core() *core
}

// core carries the downstream edges shared by every cell kind.
//
// Downstream entries are weak references: an upstream cell never keeps its
// dependents alive. The reverse direction is strong (a derived cell captures
// its upstream cells inside its compute closure), which is what prevents
// ownership cycles between mutually linked cells.
type core struct {
	owner      AnyCell
	downstream []weak.Pointer[core]
}

func newCore(owner AnyCell) *core {
	return &core{owner: owner}
}

func (c *core) attach(w weak.Pointer[core]) {
	c.downstream = append(c.downstream, w)
}

// unset clears the owner's cache and cascades the invalidation through every
// live downstream edge, pruning dead edges as it passes them. The downstream
// list keeps insertion order and is not deduplicated: in a diamond a shared
// dependent is released once per path. release is idempotent, so the repeat
// costs time, not correctness.
func (c *core) unset(invalidateSelf bool) {
	if invalidateSelf {
		c.owner.release()
	}
	kept := c.downstream[:0]
	for _, w := range c.downstream {
		d := w.Value()
		if d == nil {
			continue
		}
		d.unset(true)
		kept = append(kept, w)
	}
	c.downstream = kept
}

// liveDownstream resolves the current downstream edges, pruning dead ones.
func (c *core) liveDownstream() []AnyCell {
	kept := c.downstream[:0]
	var live []AnyCell
	for _, w := range c.downstream {
		d := w.Value()
		if d == nil {
			continue
		}
		live = append(live, d.owner)
		kept = append(kept, w)
	}
	c.downstream = kept
	return live
}

// describeCell labels a cell for error messages and logs.
func describeCell(c AnyCell) string {
	if name, ok := CellName().Get(c); ok {
		return name
	}
	return fmt.Sprintf("cell_%p", c)
}
