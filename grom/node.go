package grom

import (
	"slices"
	"strings"
)

// BlankType is the type identifier reported for nodes without an rdf:type.
const BlankType = "blank_node"

// AttrGraphID is the reserved attribute name resolving to the node identifier.
const AttrGraphID = "graph_id"

// Accessor derives a read-only value from a node. Returning nil reports the
// accessor as present but without a value.
type Accessor func(n *Node) any

// Node is a graph entity built from every triple sharing one subject.
type Node struct {
	id        string
	types     []string
	names     []string
	values    map[string][]any
	links     map[string][]*Node
	accessors map[string]Accessor
}

// NewNode creates an empty node with the given identifier and types.
func NewNode(id string, types ...string) *Node {
	n := &Node{
		id:     id,
		values: make(map[string][]any),
		links:  make(map[string][]*Node),
	}
	for _, typ := range types {
		n.addType(typ)
	}
	return n
}

// ID returns the subject IRI, or "_:label" for blank node subjects.
func (n *Node) ID() string { return n.id }

// String returns the node identifier.
func (n *Node) String() string { return n.id }

// Types returns the node's rdf:type values in document order.
func (n *Node) Types() []string { return slices.Clone(n.types) }

// Type returns the first rdf:type, or BlankType for untyped nodes.
func (n *Node) Type() string {
	if len(n.types) == 0 {
		return BlankType
	}
	return n.types[0]
}

// TypeSet returns the identifiers a type filter matches against: the node's
// types, or just BlankType when it has none.
func (n *Node) TypeSet() []string {
	if len(n.types) == 0 {
		return []string{BlankType}
	}
	return slices.Clone(n.types)
}

// IsBlank reports whether the node has no rdf:type.
func (n *Node) IsBlank() bool { return len(n.types) == 0 }

// HasType reports whether typ is in the node's type set.
func (n *Node) HasType(typ string) bool {
	if len(n.types) == 0 {
		return typ == BlankType
	}
	return slices.Contains(n.types, typ)
}

// Attribute returns the value exposed under name. The boolean reports whether
// the node exposes name at all; a present attribute may still be nil when it
// comes from an accessor over missing data.
//
// A single literal is returned as-is, several literals as []any and links to
// other nodes as []*Node.
func (n *Node) Attribute(name string) (any, bool) {
	if accessor, ok := n.accessors[name]; ok {
		return accessor(n), true
	}
	return n.rawAttribute(name)
}

func (n *Node) rawAttribute(name string) (any, bool) {
	if name == AttrGraphID {
		return n.id, true
	}
	values := n.values[name]
	links := n.links[name]
	switch {
	case len(values) == 0 && len(links) == 0:
		return nil, false
	case len(values) == 0:
		return slices.Clone(links), true
	case len(links) == 0 && len(values) == 1:
		return values[0], true
	}
	combined := make([]any, 0, len(values)+len(links))
	combined = append(combined, values...)
	for _, link := range links {
		combined = append(combined, link)
	}
	return combined, true
}

// Values returns every literal or unresolved reference stored under name.
func (n *Node) Values(name string) []any {
	return slices.Clone(n.values[name])
}

// Links returns the nodes linked through the predicate local name.
func (n *Node) Links(name string) []*Node {
	return slices.Clone(n.links[name])
}

// AttributeNames returns predicate local names in first-seen order,
// excluding rdf:type and accessors.
func (n *Node) AttributeNames() []string {
	return slices.Clone(n.names)
}

// AccessorNames returns the names added by decoration, sorted.
func (n *Node) AccessorNames() []string {
	names := make([]string, 0, len(n.accessors))
	for name := range n.accessors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AddAccessor exposes a derived value under name. Accessors shadow stored
// attributes of the same name.
func (n *Node) AddAccessor(name string, accessor Accessor) {
	if n.accessors == nil {
		n.accessors = make(map[string]Accessor)
	}
	n.accessors[name] = accessor
}

// Alias exposes the stored attribute target under an additional name. The
// alias is present even when target is not, in which case it yields nil.
func (n *Node) Alias(alias, target string) {
	n.AddAccessor(alias, func(node *Node) any {
		value, _ := node.rawAttribute(target)
		return value
	})
}

// Set stores a literal value under name. It is used while reading a graph and
// by callers assembling nodes by hand.
func (n *Node) Set(name string, value any) {
	n.noteName(name)
	n.values[name] = append(n.values[name], value)
}

// Link records a reference from n to target under name.
func (n *Node) Link(name string, target *Node) {
	n.noteName(name)
	n.links[name] = append(n.links[name], target)
}

func (n *Node) noteName(name string) {
	if _, ok := n.values[name]; ok {
		return
	}
	if _, ok := n.links[name]; ok {
		return
	}
	n.names = append(n.names, name)
}

func (n *Node) addType(typ string) {
	typ = strings.TrimSpace(typ)
	if typ == "" || slices.Contains(n.types, typ) {
		return
	}
	n.types = append(n.types, typ)
}
