package grom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeAttributeShapes(t *testing.T) {
	target := NewNode("http://example.org/t")
	n := NewNode("http://example.org/n", "http://example.org/Thing")
	n.Set("single", "one")
	n.Set("multi", "a")
	n.Set("multi", "b")
	n.Link("rel", target)
	n.Set("mixed", "lit")
	n.Link("mixed", target)

	if v, ok := n.Attribute("single"); !ok || v != "one" {
		t.Errorf("single: got %v, %v", v, ok)
	}
	if v, _ := n.Attribute("multi"); !cmp.Equal(v, []any{"a", "b"}) {
		t.Errorf("multi: got %v", v)
	}
	rel, _ := n.Attribute("rel")
	if links, ok := rel.([]*Node); !ok || len(links) != 1 || links[0] != target {
		t.Errorf("rel: got %#v", rel)
	}
	mixed, _ := n.Attribute("mixed")
	if values, ok := mixed.([]any); !ok || len(values) != 2 || values[1] != target {
		t.Errorf("mixed: got %#v", mixed)
	}
	if _, ok := n.Attribute("missing"); ok {
		t.Error("missing attribute reported present")
	}
	if v, _ := n.Attribute(AttrGraphID); v != "http://example.org/n" {
		t.Errorf("graph_id: got %v", v)
	}
	if diff := cmp.Diff([]string{"single", "multi", "rel", "mixed"}, n.AttributeNames()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestNodeNilValueIsPresent(t *testing.T) {
	n := NewNode("_:x")
	n.Set("endDate", nil)
	v, ok := n.Attribute("endDate")
	if !ok || v != nil {
		t.Fatalf("expected present nil, got %v, %v", v, ok)
	}
}

func TestNodeTypes(t *testing.T) {
	n := NewNode("x", "A", "B", "A", " ")
	if diff := cmp.Diff([]string{"A", "B"}, n.Types()); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
	if !n.HasType("B") || n.HasType(BlankType) || n.IsBlank() {
		t.Error("unexpected type membership")
	}

	blank := NewNode("_:b")
	if blank.Type() != BlankType || !blank.IsBlank() {
		t.Error("expected blank node")
	}
	if diff := cmp.Diff([]string{BlankType}, blank.TypeSet()); diff != "" {
		t.Errorf("type set (-want +got):\n%s", diff)
	}
}

func TestNodeTypesAreCopies(t *testing.T) {
	n := NewNode("x", "A")
	types := n.Types()
	types[0] = "Z"
	if n.Type() != "A" {
		t.Fatal("Types must not expose internal storage")
	}
}

func TestNodeAliasAndAccessor(t *testing.T) {
	n := NewNode("x")
	n.Set("personGivenName", "Alice")
	n.Alias("given_name", "personGivenName")
	n.Alias("end_date", "incumbencyEndDate")
	n.AddAccessor("shout", func(node *Node) any {
		v, _ := node.Attribute("given_name")
		return v.(string) + "!"
	})

	if v, ok := n.Attribute("given_name"); !ok || v != "Alice" {
		t.Errorf("alias: got %v, %v", v, ok)
	}
	if v, ok := n.Attribute("end_date"); !ok || v != nil {
		t.Errorf("alias to missing attribute should be present nil, got %v, %v", v, ok)
	}
	if v, _ := n.Attribute("shout"); v != "Alice!" {
		t.Errorf("accessor: got %v", v)
	}
	if diff := cmp.Diff([]string{"end_date", "given_name", "shout"}, n.AccessorNames()); diff != "" {
		t.Errorf("accessor names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"personGivenName"}, n.AttributeNames()); diff != "" {
		t.Errorf("decoration must not add stored attributes (-want +got):\n%s", diff)
	}
}
