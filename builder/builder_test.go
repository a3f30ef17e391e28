package builder

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/geoknoesis/ntriple-go/grom"
	"github.com/geoknoesis/ntriple-go/rdf"
	"github.com/geoknoesis/ntriple-go/response"
	"github.com/geoknoesis/ntriple-go/textnorm"
)

const (
	personType     = "http://id.example.org/schema/Person"
	incumbencyType = "http://id.example.org/schema/Incumbency"
)

const body = `<http://id.example.org/p1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://id.example.org/schema/Person> .
<http://id.example.org/p1> <http://id.example.org/schema/personGivenName> "Alice" .
<http://id.example.org/p1> <http://www.w3.org/2000/01/rdf-schema#label> "Alice Smith" .
<http://id.example.org/p2> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://id.example.org/schema/Person> .
<http://id.example.org/p2> <http://id.example.org/schema/personGivenName> "Bob" .
<http://id.example.org/i1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://id.example.org/schema/Incumbency> .
<http://id.example.org/i1> <http://id.example.org/schema/incumbencyStartDate> "2010-05-06"^^<http://www.w3.org/2001/XMLSchema#date> .
`

func ids(r *response.Response) []string {
	return response.Map(r, func(n *grom.Node) string { return n.ID() })
}

func mustNew(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	b, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestBuildWithoutDecorator(t *testing.T) {
	resp, err := mustNew(t).Build(context.Background(), []byte("\xEF\xBB\xBF"+body))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"http://id.example.org/p1", "http://id.example.org/p2", "http://id.example.org/i1"}
	if diff := cmp.Diff(want, ids(resp)); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
	if label, ok := resp.Label("http://id.example.org/p1"); !ok || label != "Alice Smith" {
		t.Fatalf("unexpected label %q, %v", label, ok)
	}
	if _, ok := resp.At(0).Attribute("given_name"); ok {
		t.Fatalf("undecorated node must not expose aliases")
	}
}

func TestBuildAppliesDecoratorToEveryNode(t *testing.T) {
	var seen []string
	counting := grom.DecoratorFunc(func(n *grom.Node) (*grom.Node, error) {
		seen = append(seen, n.ID())
		return nil, nil
	})
	aliases := grom.AliasDecorator{personType: {"given_name": "personGivenName"}}

	b := mustNew(t, OptDecorator(grom.ChainDecorators(counting, aliases)))
	resp, err := b.Build(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("decorator saw %d nodes, want 3", len(seen))
	}
	people := resp.FilterOne(personType)
	names := response.Map(people, func(n *grom.Node) any {
		v, _ := n.Attribute("given_name")
		return v
	})
	if diff := cmp.Diff([]any{"Alice", "Bob"}, names); diff != "" {
		t.Fatalf("alias mismatch (-want +got):\n%s", diff)
	}
	if _, ok := resp.FilterOne(incumbencyType).At(0).Attribute("given_name"); ok {
		t.Fatalf("alias leaked to other type")
	}
}

func TestBuildReturnsParseErrorUnchanged(t *testing.T) {
	_, err := mustNew(t).Build(context.Background(), []byte("<http://a> <http://b> \"unterminated .\n"))
	var parseErr *rdf.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *rdf.ParseError, got %T: %v", err, err)
	}
	if parseErr.Line != 1 || rdf.Code(err) != rdf.ErrCodeParseError {
		t.Fatalf("unexpected parse error %+v", parseErr)
	}
}

func TestBuildWrapsDecoratorFailure(t *testing.T) {
	boom := errors.New("boom")
	dec := grom.DecoratorFunc(func(n *grom.Node) (*grom.Node, error) {
		if n.HasType(incumbencyType) {
			return nil, boom
		}
		return n, nil
	})
	resp, err := mustNew(t, OptDecorator(dec)).Build(context.Background(), []byte(body))
	if resp != nil {
		t.Fatalf("expected no response on failure")
	}
	var decErr *DecorationError
	if !errors.As(err, &decErr) || decErr.NodeID != "http://id.example.org/i1" {
		t.Fatalf("expected DecorationError for i1, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("decoration error must unwrap to the decorator error")
	}
}

func TestNewMissingDependency(t *testing.T) {
	_, err := New(OptParser("rdfa"))
	if !errors.Is(err, ErrMissingDependency) || !errors.Is(err, rdf.ErrUnsupportedFormat) {
		t.Fatalf("expected missing dependency, got %v", err)
	}
	if _, err := New(OptReader(nil)); !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected missing dependency for nil reader, got %v", err)
	}
}

func TestBuildWithJSONGoldParser(t *testing.T) {
	resp, err := mustNew(t, OptParser(rdf.DecoderJSONGold)).Build(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := resp.FilterOne(personType).Len(); got != 2 {
		t.Fatalf("expected 2 people, got %d", got)
	}
}

func TestBuildWithCustomReader(t *testing.T) {
	reader := grom.ReaderFunc(func(ctx context.Context, r io.Reader) (*grom.Graph, error) {
		data, _ := io.ReadAll(r)
		return &grom.Graph{Nodes: []*grom.Node{grom.NewNode(string(data))}}, nil
	})
	resp, err := mustNew(t, OptReader(reader)).Build(context.Background(), []byte("\xEF\xBB\xBFraw"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if resp.At(0).ID() != "raw" {
		t.Fatalf("reader did not receive the normalized body: %q", resp.At(0).ID())
	}
}

func TestBuildEmptyBody(t *testing.T) {
	resp, err := mustNew(t).Build(context.Background(), nil)
	if err != nil || !resp.IsEmpty() {
		t.Fatalf("expected empty response, got %v, %v", resp, err)
	}
}

func TestBuildHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mustNew(t).Build(ctx, []byte(body))
	if !errors.Is(err, context.Canceled) || rdf.Code(err) != rdf.ErrCodeContextCanceled {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestDecodeOptionsLimitTriples(t *testing.T) {
	b := mustNew(t, OptDecodeOptions(rdf.DecodeOptions{MaxTriples: 2}))
	_, err := b.Build(context.Background(), []byte(body))
	if rdf.Code(err) != rdf.ErrCodeTripleLimitExceeded {
		t.Fatalf("expected triple limit error, got %v", err)
	}
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingBody) Close() error             { return nil }

func TestBuildHTTP(t *testing.T) {
	b := mustNew(t)
	resp, err := b.BuildHTTP(context.Background(), &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/n-triples"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	})
	if err != nil {
		t.Fatalf("BuildHTTP: %v", err)
	}
	if resp.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", resp.Len())
	}

	_, err = b.BuildHTTP(context.Background(), &http.Response{Body: failingBody{}})
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestBuildLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := mustNew(t, OptLogger(zap.New(core)))
	if _, err := b.Build(context.Background(), []byte("\xEF\xBB\xBF"+body)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if logs.FilterMessage("removed byte order marks").Len() != 1 {
		t.Fatalf("normalizer did not inherit the builder logger")
	}
	entries := logs.FilterMessage("built response").All()
	if len(entries) != 1 || entries[0].ContextMap()["nodes"] != int64(3) {
		t.Fatalf("unexpected build log entries %v", entries)
	}
}

func TestBuildUsesSuppliedNormalizer(t *testing.T) {
	builderCore, builderLogs := observer.New(zapcore.DebugLevel)
	normCore, normLogs := observer.New(zapcore.DebugLevel)
	b := mustNew(t,
		OptLogger(zap.New(builderCore)),
		OptNormalizer(textnorm.NewNormalizer(zap.New(normCore))),
	)
	resp, err := b.Build(context.Background(), []byte("\xEF\xBB\xBF"+body+"\xEF\xBB\xBF"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if resp.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", resp.Len())
	}
	entries := normLogs.FilterMessage("removed byte order marks").All()
	if len(entries) != 1 || entries[0].ContextMap()["count"] != int64(2) {
		t.Fatalf("supplied normalizer was not used: %v", entries)
	}
	if builderLogs.FilterMessage("removed byte order marks").Len() != 0 {
		t.Fatalf("default normalizer ran alongside the supplied one")
	}
}
