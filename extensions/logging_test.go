package extensions

import (
	"errors"
	"testing"

	lazy "github.com/pumped-fn/lazy-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingExtensionRecordsOperations(t *testing.T) {
	zcore, logs := observer.New(zap.DebugLevel)
	g := lazy.NewGraph(lazy.WithExtension(NewLoggingExtension(zap.New(zcore))))

	r := lazy.Root(2, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "base"))
	m := lazy.Node1(r, func(v int) (int, error) {
		return v * 2, nil
	}, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "double"))

	if _, err := m.Get(); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if err := r.Set(3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}

	first := entries[0].ContextMap()
	if first["operation"] != "compute" {
		t.Errorf("Expected compute operation, got %v", first["operation"])
	}
	if first["cell"] != "double" {
		t.Errorf("Expected cell 'double', got %v", first["cell"])
	}

	second := entries[1].ContextMap()
	if second["operation"] != "set" {
		t.Errorf("Expected set operation, got %v", second["operation"])
	}
	if second["cell"] != "base" {
		t.Errorf("Expected cell 'base', got %v", second["cell"])
	}
}

func TestLoggingExtensionLogsFailures(t *testing.T) {
	zcore, logs := observer.New(zap.DebugLevel)
	g := lazy.NewGraph(lazy.WithExtension(NewLoggingExtension(zap.New(zcore))))

	r := lazy.Root(1, lazy.WithGraph(g))
	m := lazy.Node1(r, func(int) (int, error) {
		return 0, errors.New("boom")
	}, lazy.WithGraph(g))

	if _, err := m.Get(); err == nil {
		t.Fatal("Expected compute error")
	}

	failed := logs.FilterMessage("operation failed").All()
	if len(failed) != 1 {
		t.Fatalf("Expected 1 failure entry, got %d", len(failed))
	}
	ctx := failed[0].ContextMap()
	if ctx["operation"] != "compute" {
		t.Errorf("Expected compute operation, got %v", ctx["operation"])
	}
	if ctx["cell"] != "unnamed" {
		t.Errorf("Expected unnamed cell, got %v", ctx["cell"])
	}
}

func TestLoggingExtensionGraphOperations(t *testing.T) {
	zcore, logs := observer.New(zap.DebugLevel)
	g := lazy.NewGraph(lazy.WithExtension(NewLoggingExtension(zap.New(zcore))))

	_ = lazy.Root(1, lazy.WithGraph(g))

	snap, err := g.Dump()
	if err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if err := g.Load(snap); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}
	for i, want := range []string{"dump", "load"} {
		ctx := entries[i].ContextMap()
		if ctx["operation"] != want {
			t.Errorf("Entry %d: expected %s operation, got %v", i, want, ctx["operation"])
		}
		if _, hasCell := ctx["cell"]; hasCell {
			t.Errorf("Entry %d: graph-wide operations carry no cell field", i)
		}
	}
}
