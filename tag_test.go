package lazy

import "testing"

func TestTagGetSet(t *testing.T) {
	g := NewGraph()
	priority := NewTag[int]("test.priority")

	r := Root(1, WithGraph(g))
	if _, ok := priority.Get(r); ok {
		t.Error("Expected no value for unset tag")
	}
	if got := priority.GetOrDefault(r, 42); got != 42 {
		t.Errorf("Expected default 42, got %d", got)
	}

	priority.Set(r, 7)
	got, ok := priority.Get(r)
	if !ok {
		t.Fatal("Expected tag value after Set")
	}
	if got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if priority.Key() != "test.priority" {
		t.Errorf("Unexpected key %q", priority.Key())
	}
}

func TestTagsAreDistinctKeys(t *testing.T) {
	g := NewGraph()
	a := NewTag[string]("shared")
	b := NewTag[int]("shared")

	r := Root(1, WithGraph(g))
	a.Set(r, "text")
	b.Set(r, 5)

	sv, ok := a.Get(r)
	if !ok || sv != "text" {
		t.Errorf("Expected (text, true), got (%q, %v)", sv, ok)
	}
	iv, ok := b.Get(r)
	if !ok || iv != 5 {
		t.Errorf("Expected (5, true), got (%d, %v)", iv, ok)
	}
}

func TestWithTagOption(t *testing.T) {
	g := NewGraph()

	r := Root(1, WithGraph(g), WithTag(CellName(), "leaf"))
	name, ok := CellName().Get(r)
	if !ok || name != "leaf" {
		t.Errorf("Expected (leaf, true), got (%q, %v)", name, ok)
	}

	p := Path1(r, func(v int) (int, error) {
		return v, nil
	}, WithTag(CellName(), "forward"))
	if got := CellName().GetOrDefault(p, ""); got != "forward" {
		t.Errorf("Expected 'forward', got %q", got)
	}
}
