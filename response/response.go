// Package response wraps the nodes built from one N-Triples document and
// offers type filtering and attribute sorting over them.
package response

import (
	"iter"
	"maps"
	"slices"

	"github.com/geoknoesis/ntriple-go/grom"
	"github.com/geoknoesis/ntriple-go/sortutil"
)

// Response is an ordered, read-only collection of nodes. Operations never
// modify the receiver; filters return new Responses and sorts return new
// slices.
type Response struct {
	nodes  []*grom.Node
	labels map[string]string
}

// New wraps nodes. The slice is copied.
func New(nodes []*grom.Node) *Response {
	return NewWithLabels(nodes, nil)
}

// NewWithLabels wraps nodes together with an rdfs:label table keyed by node
// ID.
func NewWithLabels(nodes []*grom.Node, labels map[string]string) *Response {
	return &Response{
		nodes:  slices.Clone(nodes),
		labels: maps.Clone(labels),
	}
}

// Len returns the number of nodes.
func (r *Response) Len() int { return len(r.nodes) }

// IsEmpty reports whether the response holds no nodes.
func (r *Response) IsEmpty() bool { return len(r.nodes) == 0 }

// At returns the i-th node. It panics if i is out of range.
func (r *Response) At(i int) *grom.Node { return r.nodes[i] }

// Nodes returns a copy of the node list.
func (r *Response) Nodes() []*grom.Node { return slices.Clone(r.nodes) }

// All iterates over index and node pairs.
func (r *Response) All() iter.Seq2[int, *grom.Node] {
	return slices.All(r.nodes)
}

// Each calls fn for every node in order.
func (r *Response) Each(fn func(*grom.Node)) {
	for _, n := range r.nodes {
		fn(n)
	}
}

// Select returns the nodes for which keep returns true.
func (r *Response) Select(keep func(*grom.Node) bool) *Response {
	out := make([]*grom.Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return r.derive(out)
}

// Count returns how many nodes match.
func (r *Response) Count(match func(*grom.Node) bool) int {
	count := 0
	for _, n := range r.nodes {
		if match(n) {
			count++
		}
	}
	return count
}

// Map applies fn to every node of r.
func Map[T any](r *Response, fn func(*grom.Node) T) []T {
	out := make([]T, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = fn(n)
	}
	return out
}

// Labels returns a copy of the rdfs:label table.
func (r *Response) Labels() map[string]string {
	if r.labels == nil {
		return map[string]string{}
	}
	return maps.Clone(r.labels)
}

// Label returns the rdfs:label recorded for a node ID.
func (r *Response) Label(id string) (string, bool) {
	label, ok := r.labels[id]
	return label, ok
}

// derive wraps nodes sharing the receiver's label table, which is never
// written after construction.
func (r *Response) derive(nodes []*grom.Node) *Response {
	return &Response{nodes: nodes, labels: r.labels}
}

// FilterOne returns the nodes whose type set contains typ, in order. Pass
// grom.BlankType to select untyped nodes.
func (r *Response) FilterOne(typ string) *Response {
	return r.FilterMany(typ)[0]
}

// FilterMany buckets nodes by the requested types: the i-th Response holds
// the nodes of types[i], in order. A node with several requested types is
// placed in each matching bucket. With no types the result is empty.
func (r *Response) FilterMany(types ...string) []*Response {
	buckets := make([][]*grom.Node, len(types))
	positions := make(map[string][]int, len(types))
	for i, typ := range types {
		positions[typ] = append(positions[typ], i)
	}
	if len(types) > 0 {
		for _, n := range r.nodes {
			for _, typ := range n.TypeSet() {
				for _, i := range positions[typ] {
					buckets[i] = append(buckets[i], n)
				}
			}
		}
	}
	out := make([]*Response, len(types))
	for i, nodes := range buckets {
		out[i] = r.derive(nodes)
	}
	return out
}

// SortBy sorts ascending by the named attributes; nodes missing any of them
// come first in their original order. See sortutil.SortBy.
func (r *Response) SortBy(names ...string) []*grom.Node {
	return sortutil.SortBy(r.nodes, names)
}

// ReverseSortBy is SortBy reversed as a whole.
func (r *Response) ReverseSortBy(names ...string) []*grom.Node {
	return sortutil.ReverseSortBy(r.nodes, names)
}

// MultiDirectionSort sorts by keys, each ascending or descending. See
// sortutil.MultiDirectionSort.
func (r *Response) MultiDirectionSort(keys ...sortutil.Key) []*grom.Node {
	return sortutil.MultiDirectionSort(r.nodes, keys)
}
