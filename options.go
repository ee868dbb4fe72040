package lazy

// CellOption is a construction-time modifier for cells.
type CellOption func(*cellConfig)

type cellConfig struct {
	graph *Graph
	tags  map[any]any
}

func newCellConfig(opts []CellOption) *cellConfig {
	cfg := &cellConfig{graph: CurrentGraph()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *cellConfig) applyTags(cell AnyCell) {
	for k, v := range cfg.tags {
		cell.SetTag(k, v)
	}
}

// WithGraph registers the new cell with g instead of the active graph. Pass
// cells ignore it: they hold no snapshot-able state and never register.
func WithGraph(g *Graph) CellOption {
	return func(cfg *cellConfig) {
		cfg.graph = g
	}
}

// WithTag sets a tag on the new cell.
func WithTag[T any](tag Tag[T], val T) CellOption {
	return func(cfg *cellConfig) {
		if cfg.tags == nil {
			cfg.tags = make(map[any]any)
		}
		cfg.tags[tag] = val
	}
}
