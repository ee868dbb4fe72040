package lazy

import "context"

// Extension provides hooks around cell and graph operations.
type Extension interface {
	// Name returns the extension's name
	Name() string

	// Order determines extension execution order (lower = earlier)
	Order() int

	// Init is called when the extension is registered to a graph
	Init(g *Graph) error

	// Wrap intercepts operations (compute, set, dump, load)
	Wrap(ctx context.Context, next func() (any, error), op *Operation) (any, error)

	// OnError handles errors surfaced by an operation
	OnError(err error, op *Operation, g *Graph)

	// Dispose is called when the graph is disposed
	Dispose(g *Graph) error
}

// BaseExtension provides default implementations for Extension methods
type BaseExtension struct {
	name string
}

// NewBaseExtension creates a new base extension with the given name
func NewBaseExtension(name string) BaseExtension {
	return BaseExtension{name: name}
}

func (e *BaseExtension) Name() string {
	return e.name
}

func (e *BaseExtension) Order() int {
	return 100
}

func (e *BaseExtension) Init(g *Graph) error {
	return nil
}

func (e *BaseExtension) Wrap(ctx context.Context, next func() (any, error), op *Operation) (any, error) {
	return next()
}

func (e *BaseExtension) OnError(err error, op *Operation, g *Graph) {
}

func (e *BaseExtension) Dispose(g *Graph) error {
	return nil
}

// Operation describes what operation is happening. Cell is nil for
// graph-wide operations (dump, load).
type Operation struct {
	Kind  OperationKind
	Cell  AnyCell
	Graph *Graph
}

// OperationKind represents the type of operation
type OperationKind string

const (
	// OpCompute indicates a memo cell evaluating its function
	OpCompute OperationKind = "compute"
	// OpSet indicates a root cell mutation
	OpSet OperationKind = "set"
	// OpDump indicates a snapshot capture
	OpDump OperationKind = "dump"
	// OpLoad indicates a snapshot restore
	OpLoad OperationKind = "load"
)
