package rdf

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func decodeOne(t *testing.T, input string) (Triple, error) {
	t.Helper()
	dec, err := NewNTriplesDecoder(strings.NewReader(input), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dec.Close()
	return dec.Next()
}

func TestNTriplesDecodeErrors(t *testing.T) {
	if _, err := decodeOne(t, "<http://example.org/s> <http://example.org/p> .\n"); err == nil {
		t.Fatal("expected error for missing object")
	}
	if _, err := decodeOne(t, "<http://example.org/s> <http://example.org/p> <http://example.org/o>\n"); err == nil {
		t.Fatal("expected error for missing dot")
	}
}

func TestNTriplesRejectGraphTerm(t *testing.T) {
	line := "<http://example.org/s> <http://example.org/p> <http://example.org/o> <http://example.org/g> .\n"
	_, err := decodeOne(t, line)
	if err == nil {
		t.Fatal("expected error for graph term in ntriples")
	}
	if !strings.Contains(err.Error(), "graph term") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNTriplesDecodeBlankAndLiteral(t *testing.T) {
	triple, err := decodeOne(t, "_:b1 <http://example.org/p> \"v\"@en .\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := triple.S.(BlankNode); !ok || b.ID != "b1" {
		t.Fatalf("expected blank node subject, got %#v", triple.S)
	}
	if lit, ok := triple.O.(Literal); !ok || lit.Lang != "en" || lit.Lexical != "v" {
		t.Fatalf("expected lang literal, got %#v", triple.O)
	}
}

func TestNTriplesDecodeCompactStatement(t *testing.T) {
	triple, err := decodeOne(t, "_:b1 <http://example.org/p> _:b2.\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := triple.O.(BlankNode); !ok || b.ID != "b2" {
		t.Fatalf("expected blank node object b2, got %#v", triple.O)
	}

	triple, err = decodeOne(t, "<http://example.org/s> <http://example.org/p> \"x\"@en-GB.\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit := triple.O.(Literal); lit.Lang != "en-GB" {
		t.Fatalf("unexpected lang %q", lit.Lang)
	}
}

func TestNTriplesDecodeDatatypeLiteral(t *testing.T) {
	triple, err := decodeOne(t, "<http://example.org/s> <http://example.org/p> \"1\"^^<http://example.org/dt> .\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit, ok := triple.O.(Literal); !ok || lit.Datatype.Value != "http://example.org/dt" {
		t.Fatalf("expected datatype literal")
	}
}

func TestNTriplesDecodeEscapes(t *testing.T) {
	triple, err := decodeOne(t, `<http://example.org/s> <http://example.org/p> "Café \"quoted\"\n\U0001F600" .`+"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Café \"quoted\"\n😀"
	if lit := triple.O.(Literal); lit.Lexical != want {
		t.Fatalf("expected %q, got %q", want, lit.Lexical)
	}
}

func TestNTriplesDecodeSurrogatePair(t *testing.T) {
	triple, err := decodeOne(t, `<http://example.org/s> <http://example.org/p> "😀" .`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lit := triple.O.(Literal); lit.Lexical != "😀" {
		t.Fatalf("unexpected lexical %q", lit.Lexical)
	}
}

func TestNTriplesDecodeTripleTermRejected(t *testing.T) {
	line := "<< <http://example.org/s> <http://example.org/p> <http://example.org/o> >> <http://example.org/p2> <http://example.org/o2> .\n"
	if _, err := decodeOne(t, line); err == nil {
		t.Fatal("expected error for triple term subject")
	}
}

func TestNTriplesDecodeUnterminatedIRI(t *testing.T) {
	if _, err := decodeOne(t, "<http://example.org/s <http://example.org/p> <http://example.org/o> .\n"); err == nil {
		t.Fatal("expected unterminated IRI error")
	}
}

func TestNTriplesDecodeInvalidBlank(t *testing.T) {
	if _, err := decodeOne(t, "_: <http://example.org/p> <http://example.org/o> .\n"); err == nil {
		t.Fatal("expected blank node id error")
	}
}

func TestNTriplesDecodeInvalidLangTag(t *testing.T) {
	if _, err := decodeOne(t, "<http://example.org/s> <http://example.org/p> \"v\"@1en .\n"); err == nil {
		t.Fatal("expected invalid language tag error")
	}
}

func TestNTriplesLiteralSubjectRejected(t *testing.T) {
	if _, err := decodeOne(t, "\"s\" <http://example.org/p> <http://example.org/o> .\n"); err == nil {
		t.Fatal("expected literal subject error")
	}
}

func TestNTriplesSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# header\n\n<http://example.org/s> <http://example.org/p> <http://example.org/o> . # trailing\n   \n"
	dec, err := NewNTriplesDecoder(strings.NewReader(input), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := dec.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := dec.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestNTriplesParseErrorPosition(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n" +
		"<http://example.org/s> <http://example.org/p> oops .\n"
	dec, err := NewNTriplesDecoder(strings.NewReader(input), DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := dec.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = dec.Next()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Line != 2 {
		t.Errorf("expected line 2, got %d", parseErr.Line)
	}
	if parseErr.Column != 47 {
		t.Errorf("expected column 47, got %d", parseErr.Column)
	}
	if parseErr.Format != DecoderNTriples {
		t.Errorf("unexpected format %q", parseErr.Format)
	}
	if dec.Err() != err {
		t.Error("expected decoder to retain the error")
	}
	if _, again := dec.Next(); again != err {
		t.Error("expected cached error on subsequent Next")
	}
}

func TestNTriplesMaxTriples(t *testing.T) {
	input := strings.Repeat("<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n", 3)
	opts := DefaultDecodeOptions()
	opts.MaxTriples = 2
	_, err := ReadAllTriples(context.Background(), strings.NewReader(input), NewNTriplesDecoder, opts)
	if !errors.Is(err, ErrTripleLimitExceeded) {
		t.Fatalf("expected triple limit error, got %v", err)
	}
}

func TestTripleStringRoundTrip(t *testing.T) {
	triple := Triple{
		S: BlankNode{ID: "b1"},
		P: IRI{Value: "http://example.org/p"},
		O: Literal{Lexical: "a \"b\"\nc", Lang: "en"},
	}
	parsed, err := decodeOne(t, triple.String()+"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != triple {
		t.Fatalf("round trip mismatch: %#v != %#v", parsed, triple)
	}
}
