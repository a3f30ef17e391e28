package rdf

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestErrorCode_UnsupportedFormat(t *testing.T) {
	_, err := LookupDecoder("turtle")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := Code(err); code != ErrCodeUnsupportedFormat {
		t.Errorf("expected ErrCodeUnsupportedFormat, got %v", code)
	}
}

func TestErrorCode_LineTooLong(t *testing.T) {
	longLine := strings.Repeat("a", 65<<10)
	opts := DefaultDecodeOptions()
	opts.MaxLineBytes = 64 << 10

	dec, err := NewNTriplesDecoder(strings.NewReader(longLine+"\n"), opts)
	if err != nil {
		t.Fatalf("unexpected error creating decoder: %v", err)
	}
	defer dec.Close()

	_, err = dec.Next()
	if err == nil {
		t.Fatal("expected error")
	}
	if code := Code(err); code != ErrCodeLineTooLong {
		t.Errorf("expected ErrCodeLineTooLong, got %v", code)
	}
}

func TestErrorCode_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ParseTriples(ctx, strings.NewReader("<s> <p> <o> ."), nil, TripleHandlerFunc(func(Triple) error {
		return nil
	}), DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected error")
	}
	if code := Code(err); code != ErrCodeContextCanceled {
		t.Errorf("expected ErrCodeContextCanceled, got %v", code)
	}
}

func TestErrorCode_ParseError(t *testing.T) {
	_, err := ReadAllTriples(context.Background(), strings.NewReader("not a triple\n"), nil, DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected error")
	}
	if code := Code(err); code != ErrCodeParseError {
		t.Errorf("expected ErrCodeParseError, got %v", code)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestErrorCode_IOError(t *testing.T) {
	_, err := ReadAllTriples(context.Background(), failingReader{}, nil, DefaultDecodeOptions())
	if code := Code(err); code != ErrCodeIOError {
		t.Errorf("expected ErrCodeIOError, got %v (%v)", code, err)
	}
}

func TestErrorCode_NilAndEOF(t *testing.T) {
	if Code(nil) != "" {
		t.Error("expected empty code for nil")
	}
	if Code(io.EOF) != "" {
		t.Error("expected empty code for EOF")
	}
}

func TestParseErrorExcerpt(t *testing.T) {
	err := &ParseError{
		Format:    "ntriples",
		Statement: "<s> <p> oops .",
		Line:      3,
		Column:    9,
		Err:       errors.New("unexpected token"),
	}
	want := "ntriples:3:9: unexpected token\n  <s> <p> oops .\n          ^"
	if got := err.Error(); got != want {
		t.Fatalf("unexpected message:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseErrorTruncatesStatement(t *testing.T) {
	err := &ParseError{Format: "ntriples", Statement: strings.Repeat("x", 100), Err: errors.New("bad")}
	if !strings.HasSuffix(err.Error(), strings.Repeat("x", 80)+"...") {
		t.Fatalf("expected truncated excerpt, got %q", err.Error())
	}
}
