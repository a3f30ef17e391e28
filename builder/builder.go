package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/geoknoesis/ntriple-go/grom"
	"github.com/geoknoesis/ntriple-go/rdf"
	"github.com/geoknoesis/ntriple-go/response"
	"github.com/geoknoesis/ntriple-go/textnorm"
)

// ErrMissingDependency reports that no usable parser is configured.
var ErrMissingDependency = errors.New("builder: missing dependency")

// DecorationError reports a decorator failure for one node.
type DecorationError struct {
	NodeID string
	Err    error
}

func (e *DecorationError) Error() string {
	return fmt.Sprintf("builder: decorating %s: %v", e.NodeID, e.Err)
}

func (e *DecorationError) Unwrap() error { return e.Err }

// Option configures a Builder.
type Option func(*Builder)

// OptDecorator sets the decorator applied to every node.
func OptDecorator(d grom.Decorator) Option {
	return func(b *Builder) {
		b.decorator = d
	}
}

// OptReader replaces the graph reader. Passing nil makes New fail with
// ErrMissingDependency.
func OptReader(r grom.Reader) Option {
	return func(b *Builder) {
		b.reader = r
		b.readerSet = true
	}
}

// OptParser selects a registered rdf decoder by name, e.g. rdf.DecoderJSONGold.
func OptParser(name string) Option {
	return func(b *Builder) {
		b.parser = name
	}
}

// OptDecodeOptions sets the decoder limits used with OptParser or the
// default parser.
func OptDecodeOptions(opts rdf.DecodeOptions) Option {
	return func(b *Builder) {
		b.decodeOpts = opts
	}
}

// OptLogger sets the logger. The default discards everything.
func OptLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// OptNormalizer replaces the body normalizer.
func OptNormalizer(n *textnorm.Normalizer) Option {
	return func(b *Builder) {
		b.normalizer = n
	}
}

// Builder builds Responses from N-Triples bodies.
type Builder struct {
	reader     grom.Reader
	readerSet  bool
	parser     string
	decodeOpts rdf.DecodeOptions
	decorator  grom.Decorator
	normalizer *textnorm.Normalizer
	logger     *zap.Logger
}

// New returns a Builder. Without options it parses with the native
// N-Triples decoder and applies no decoration.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{
		parser:     rdf.DecoderNTriples,
		decodeOpts: rdf.DefaultDecodeOptions(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	if b.normalizer == nil {
		b.normalizer = textnorm.NewNormalizer(b.logger)
	}

	if b.readerSet {
		if b.reader == nil {
			return nil, fmt.Errorf("%w: no reader configured", ErrMissingDependency)
		}
		return b, nil
	}
	factory, err := rdf.LookupDecoder(b.parser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	b.reader = grom.NewReader(grom.OptDecoder(factory), grom.OptDecodeOptions(b.decodeOpts))
	return b, nil
}

// Build parses body and returns the decorated nodes in document order.
// Parser errors are returned unchanged; decorator errors as
// *DecorationError. Nothing is returned on failure.
func (b *Builder) Build(ctx context.Context, body []byte) (*response.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	text := b.normalizer.Normalize(body)

	graph, err := b.reader.Read(ctx, bytes.NewReader([]byte(text)))
	if err != nil {
		b.logger.Debug("parse failed", zap.String("code", string(rdf.Code(err))), zap.Error(err))
		return nil, err
	}

	nodes := graph.Nodes
	if b.decorator != nil {
		nodes = make([]*grom.Node, len(graph.Nodes))
		for i, node := range graph.Nodes {
			decorated, err := b.decorator.Decorate(node)
			if err != nil {
				return nil, &DecorationError{NodeID: node.ID(), Err: err}
			}
			if decorated == nil {
				decorated = node
			}
			nodes[i] = decorated
		}
	}

	b.logger.Debug("built response",
		zap.Int("nodes", len(nodes)),
		zap.Int("labels", len(graph.Labels)),
		zap.Bool("decorated", b.decorator != nil),
	)
	return response.NewWithLabels(nodes, graph.Labels), nil
}

// BuildHTTP reads the body of resp and builds it. Closing the body is left
// to the caller.
func (b *Builder) BuildHTTP(ctx context.Context, resp *http.Response) (*response.Response, error) {
	if resp == nil || resp.Body == nil {
		return b.Build(ctx, nil)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("builder: reading response body: %w", err)
	}
	b.logger.Debug("read http response",
		zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.Header.Get("Content-Type")),
		zap.Int("bytes", len(body)),
	)
	return b.Build(ctx, body)
}
