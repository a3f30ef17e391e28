package rdf

import (
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

const jsonGoldDefaultGraph = "@default"

// jsonGoldDecoder buffers the input, parses it with json-gold's N-Quads
// parser and replays the default graph as triples.
type jsonGoldDecoder struct {
	triples []Triple
	pos     int
}

// NewJSONGoldDecoder returns a decoder backed by json-gold's N-Quads parser.
// Only statements in the default graph are produced.
func NewJSONGoldDecoder(r io.Reader, opts DecodeOptions) (TripleDecoder, error) {
	opts = normalizeDecodeOptions(opts)
	if err := checkDecodeContext(opts.Context); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapParseError(DecoderJSONGold, "", 0, 0, &ioError{err: err})
	}
	if err := checkLineLimit(string(data), opts.MaxLineBytes); err != nil {
		return nil, err
	}

	serializer := &ld.NQuadRDFSerializer{}
	dataset, err := serializer.Parse(string(data))
	if err != nil {
		return nil, wrapParseError(DecoderJSONGold, "", 0, 0, err)
	}

	dec := &jsonGoldDecoder{}
	for _, quad := range dataset.Graphs[jsonGoldDefaultGraph] {
		if quad == nil {
			continue
		}
		triple, err := tripleFromJSONGold(quad)
		if err != nil {
			return nil, wrapParseError(DecoderJSONGold, "", 0, 0, err)
		}
		if opts.MaxTriples > 0 && int64(len(dec.triples)) >= opts.MaxTriples {
			return nil, wrapParseError(DecoderJSONGold, triple.String(), 0, 0, ErrTripleLimitExceeded)
		}
		dec.triples = append(dec.triples, triple)
	}
	return dec, nil
}

func (d *jsonGoldDecoder) Next() (Triple, error) {
	if d.pos >= len(d.triples) {
		return Triple{}, io.EOF
	}
	triple := d.triples[d.pos]
	d.pos++
	return triple, nil
}

func (d *jsonGoldDecoder) Err() error { return nil }

func (d *jsonGoldDecoder) Close() error {
	d.triples = nil
	return nil
}

func checkLineLimit(input string, maxBytes int) error {
	if maxBytes <= 0 {
		return nil
	}
	line := 0
	for input != "" {
		line++
		current, rest, _ := strings.Cut(input, "\n")
		if len(current)+1 > maxBytes {
			return wrapParseError(DecoderJSONGold, "", line, 0, ErrLineTooLong)
		}
		input = rest
	}
	return nil
}

func tripleFromJSONGold(quad *ld.Quad) (Triple, error) {
	subject, err := termFromJSONGold(quad.Subject)
	if err != nil {
		return Triple{}, err
	}
	predicate, ok := quad.Predicate.(ld.IRI)
	if !ok {
		return Triple{}, fmt.Errorf("predicate must be an IRI, got %T", quad.Predicate)
	}
	object, err := termFromJSONGold(quad.Object)
	if err != nil {
		return Triple{}, err
	}
	return Triple{S: subject, P: IRI{Value: predicate.Value}, O: object}, nil
}

func termFromJSONGold(node ld.Node) (Term, error) {
	switch v := node.(type) {
	case ld.IRI:
		return IRI{Value: v.Value}, nil
	case ld.BlankNode:
		return BlankNode{ID: strings.TrimPrefix(v.Attribute, "_:")}, nil
	case ld.Literal:
		lit := Literal{Lexical: v.Value, Lang: v.Language}
		if v.Language == "" && v.Datatype != "" && v.Datatype != XSDString {
			lit.Datatype = IRI{Value: v.Datatype}
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("unexpected json-gold node %T", node)
	}
}
