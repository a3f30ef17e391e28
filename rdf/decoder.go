package rdf

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

const (
	DefaultMaxLineBytes = 1 << 20
)

// DecodeOptions configures parser behavior and limits.
// Zero values use defaults. Use negative values to disable specific limits.
type DecodeOptions struct {
	// MaxLineBytes bounds a single N-Triples line.
	MaxLineBytes int
	// MaxTriples bounds the number of triples a decoder yields (0 = unlimited).
	MaxTriples int64
	// StrictIRIs rejects relative IRIs and malformed schemes.
	StrictIRIs bool
	// Context provides cancellation for decoding work.
	Context context.Context
}

// DefaultDecodeOptions returns safe defaults for parser limits.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

func normalizeDecodeOptions(opts DecodeOptions) DecodeOptions {
	if opts.MaxLineBytes == 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	return opts
}

// TripleDecoder streams RDF triples from an input. Next returns io.EOF once
// the input is exhausted.
type TripleDecoder interface {
	Next() (Triple, error)
	Err() error
	Close() error
}

// TripleHandler processes triples in push mode.
type TripleHandler interface {
	Handle(Triple) error
}

// TripleHandlerFunc adapts a function to a TripleHandler.
type TripleHandlerFunc func(Triple) error

// Handle calls the underlying function.
func (h TripleHandlerFunc) Handle(t Triple) error { return h(t) }

// DecoderFactory opens a TripleDecoder over r.
type DecoderFactory func(r io.Reader, opts DecodeOptions) (TripleDecoder, error)

// Decoder backend names.
const (
	DecoderNTriples = "ntriples"
	DecoderJSONGold = "json-gold"
)

var (
	decodersMu sync.RWMutex
	decoders   = map[string]DecoderFactory{
		DecoderNTriples: NewNTriplesDecoder,
		DecoderJSONGold: NewJSONGoldDecoder,
	}
)

// RegisterDecoder makes a decoder backend available under name, replacing any
// previous registration.
func RegisterDecoder(name string, factory DecoderFactory) {
	decodersMu.Lock()
	defer decodersMu.Unlock()
	decoders[name] = factory
}

// LookupDecoder returns the decoder backend registered under name.
func LookupDecoder(name string) (DecoderFactory, error) {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	factory, ok := decoders[name]
	if !ok || factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return factory, nil
}

// Decoders lists the registered backend names in lexical order.
func Decoders() []string {
	decodersMu.RLock()
	defer decodersMu.RUnlock()
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTriples streams every triple decoded from r to handler.
// If ctx is nil, context.Background() is used.
func ParseTriples(ctx context.Context, r io.Reader, factory DecoderFactory, handler TripleHandler, opts DecodeOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if factory == nil {
		factory = NewNTriplesDecoder
	}
	opts.Context = ctx
	dec, err := factory(r, opts)
	if err != nil {
		return err
	}
	defer dec.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		triple, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler.Handle(triple); err != nil {
			return err
		}
	}
}

// ReadAllTriples decodes r completely and returns the triples in input order.
func ReadAllTriples(ctx context.Context, r io.Reader, factory DecoderFactory, opts DecodeOptions) ([]Triple, error) {
	var triples []Triple
	err := ParseTriples(ctx, r, factory, TripleHandlerFunc(func(t Triple) error {
		triples = append(triples, t)
		return nil
	}), opts)
	if err != nil {
		return nil, err
	}
	return triples, nil
}
