package extensions

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	lazy "github.com/pumped-fn/lazy-go"
)

func TestGraphDebugExtensionRendersOnError(t *testing.T) {
	var buf bytes.Buffer
	g := lazy.NewGraph(lazy.WithExtension(
		NewGraphDebugExtension(slog.NewTextHandler(&buf, nil)),
	))

	r := lazy.Root(1, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "config"))
	m := lazy.Node1(r, func(int) (string, error) {
		return "", errors.New("parse failure")
	}, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "parsed"))

	if _, err := m.Get(); err == nil {
		t.Fatal("Expected compute error")
	}

	out := buf.String()
	for _, want := range []string{"cell operation failed", "parse failure", "parsed", "compute"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGraphDebugExtensionSilentOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	g := lazy.NewGraph(lazy.WithExtension(
		NewGraphDebugExtension(slog.NewTextHandler(&buf, nil)),
	))

	r := lazy.Root(2, lazy.WithGraph(g))
	m := lazy.Node1(r, func(v int) (int, error) {
		return v * 2, nil
	}, lazy.WithGraph(g))

	if _, err := m.Get(); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output on success, got:\n%s", buf.String())
	}
}

func TestRenderDownstream(t *testing.T) {
	g := lazy.NewGraph()

	r := lazy.Root(1, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "source"))
	a := lazy.Node1(r, func(v int) (int, error) {
		return v + 1, nil
	}, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "left"))
	b := lazy.Node1(r, func(v int) (int, error) {
		return v * 2, nil
	}, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "right"))
	c := lazy.Node2(a, b, func(x, y int) (int, error) {
		return x + y, nil
	}, lazy.WithGraph(g), lazy.WithTag(lazy.CellName(), "join"))
	_ = c

	out := RenderDownstream(g, r)
	for _, want := range []string{"source", "left", "right", "join"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected rendered tree to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGraphDebugExtensionDiscard(t *testing.T) {
	g := lazy.NewGraph(lazy.WithExtension(
		NewGraphDebugExtension(slog.DiscardHandler),
	))

	r := lazy.Root(1, lazy.WithGraph(g))
	m := lazy.Node1(r, func(int) (int, error) {
		return 0, errors.New("boom")
	}, lazy.WithGraph(g))

	if _, err := m.Get(); err == nil {
		t.Fatal("Expected compute error")
	}
}
