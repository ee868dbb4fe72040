package extensions

import (
	"fmt"
	"log/slog"

	"github.com/m1gwings/treedrawer/tree"
	lazy "github.com/pumped-fn/lazy-go"
)

// GraphDebugExtension logs a drawing of the affected dependency subtree when
// a cell operation fails.
//
// Usage:
//
//	// Text output
//	ext := extensions.NewGraphDebugExtension(slog.NewTextHandler(os.Stderr, nil))
//
//	// Silent (for testing)
//	ext := extensions.NewGraphDebugExtension(slog.DiscardHandler)
//
// The extension logs at ERROR level.
type GraphDebugExtension struct {
	lazy.BaseExtension
	logger *slog.Logger
}

// NewGraphDebugExtension creates a new graph debug extension.
// logHandler: slog.Handler for logging output.
func NewGraphDebugExtension(logHandler slog.Handler) *GraphDebugExtension {
	return &GraphDebugExtension{
		BaseExtension: lazy.NewBaseExtension("graph-debug"),
		logger:        slog.New(logHandler),
	}
}

// OnError logs the error together with the downstream tree of the failed
// cell, so the blast radius of the failure is visible at a glance.
func (e *GraphDebugExtension) OnError(err error, op *lazy.Operation, g *lazy.Graph) {
	attrs := []any{
		"operation", string(op.Kind),
		"graph", g.ID(),
		"error", err.Error(),
	}
	if op.Cell != nil {
		attrs = append(attrs,
			"cell", cellLabel(op.Cell),
			"downstream_tree", RenderDownstream(g, op.Cell),
		)
	}
	e.logger.Error("cell operation failed", attrs...)
}

// RenderDownstream draws the downstream dependency tree rooted at cell. A
// diamond shows the shared dependent once per path, matching how invalidation
// actually traverses the graph.
func RenderDownstream(g *lazy.Graph, cell lazy.AnyCell) string {
	edges := g.ExportDependencyGraph()
	t := tree.NewTree(tree.NodeString(cellLabel(cell)))
	fillChildren(t, edges, cell, 0)
	return t.String()
}

const maxRenderDepth = 16

func fillChildren(t *tree.Tree, edges map[lazy.AnyCell][]lazy.AnyCell, cell lazy.AnyCell, depth int) {
	if depth >= maxRenderDepth {
		return
	}
	for i, child := range edges[cell] {
		t.AddChild(tree.NodeString(cellLabel(child)))
		childTree, err := t.Child(i)
		if err != nil {
			continue
		}
		fillChildren(childTree, edges, child, depth+1)
	}
}

func cellLabel(cell lazy.AnyCell) string {
	if name, ok := lazy.CellName().Get(cell); ok {
		return name
	}
	return fmt.Sprintf("cell_%p", cell)
}
