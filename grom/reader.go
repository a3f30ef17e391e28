package grom

import (
	"context"
	"io"

	"github.com/geoknoesis/ntriple-go/rdf"
)

// Graph is the result of reading one document: nodes in order of first
// appearance as a subject, and the rdfs:label table keyed by node ID.
type Graph struct {
	Nodes  []*Node
	Labels map[string]string
}

// Reader turns serialized RDF into graph nodes.
type Reader interface {
	Read(ctx context.Context, r io.Reader) (*Graph, error)
}

// ReaderFunc adapts a function to a Reader.
type ReaderFunc func(ctx context.Context, r io.Reader) (*Graph, error)

// Read calls the underlying function.
func (f ReaderFunc) Read(ctx context.Context, r io.Reader) (*Graph, error) { return f(ctx, r) }

// ReaderOption configures a TripleReader.
type ReaderOption func(*TripleReader)

// OptDecoder selects the triple decoder backend.
func OptDecoder(factory rdf.DecoderFactory) ReaderOption {
	return func(tr *TripleReader) {
		tr.factory = factory
	}
}

// OptDecodeOptions sets decoder limits.
func OptDecodeOptions(opts rdf.DecodeOptions) ReaderOption {
	return func(tr *TripleReader) {
		tr.decodeOpts = opts
	}
}

// OptRawLiterals keeps every literal as its lexical string instead of
// converting typed literals to Go values.
func OptRawLiterals() ReaderOption {
	return func(tr *TripleReader) {
		tr.rawLiterals = true
	}
}

// TripleReader maps decoded triples onto nodes: one node per subject,
// rdf:type objects become node types, literal objects become attribute values
// named after the predicate's local name, and objects naming another subject
// in the same document become links.
type TripleReader struct {
	factory     rdf.DecoderFactory
	decodeOpts  rdf.DecodeOptions
	rawLiterals bool
}

// NewReader returns a TripleReader using the native N-Triples decoder unless
// configured otherwise.
func NewReader(opts ...ReaderOption) *TripleReader {
	tr := &TripleReader{
		factory:    rdf.NewNTriplesDecoder,
		decodeOpts: rdf.DefaultDecodeOptions(),
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

type pendingRef struct {
	from   *Node
	name   string
	target string
}

// Read decodes r and builds the graph. Decoder errors are returned unchanged.
func (tr *TripleReader) Read(ctx context.Context, r io.Reader) (*Graph, error) {
	graph := &Graph{Labels: make(map[string]string)}
	index := make(map[string]*Node)
	var refs []pendingRef

	subject := func(key string) *Node {
		if node, ok := index[key]; ok {
			return node
		}
		node := NewNode(key)
		index[key] = node
		graph.Nodes = append(graph.Nodes, node)
		return node
	}

	err := rdf.ParseTriples(ctx, r, tr.factory, rdf.TripleHandlerFunc(func(t rdf.Triple) error {
		node := subject(t.SubjectKey())
		switch t.P.Value {
		case rdf.RDFType:
			if key := rdf.TermKey(t.O); key != "" {
				node.addType(key)
				return nil
			}
		case rdf.RDFSLabel:
			if lit, ok := t.O.(rdf.Literal); ok {
				if _, seen := graph.Labels[node.id]; !seen {
					graph.Labels[node.id] = lit.Lexical
				}
			}
		}

		name := t.P.LocalName()
		switch o := t.O.(type) {
		case rdf.Literal:
			if tr.rawLiterals {
				node.Set(name, o.Lexical)
			} else {
				node.Set(name, LiteralValue(o))
			}
		default:
			refs = append(refs, pendingRef{from: node, name: name, target: rdf.TermKey(o)})
		}
		return nil
	}), tr.decodeOpts)
	if err != nil {
		return nil, err
	}

	for _, ref := range refs {
		if target, ok := index[ref.target]; ok {
			ref.from.Link(ref.name, target)
			continue
		}
		ref.from.Set(ref.name, ref.target)
	}
	return graph, nil
}
