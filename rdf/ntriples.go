package rdf

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

type ntDecoder struct {
	reader  *bufio.Reader
	opts    DecodeOptions
	ctx     context.Context
	line    int
	emitted int64
	err     error
}

// NewNTriplesDecoder returns the streaming N-Triples decoder.
func NewNTriplesDecoder(r io.Reader, opts DecodeOptions) (TripleDecoder, error) {
	opts = normalizeDecodeOptions(opts)
	return &ntDecoder{
		reader: bufio.NewReader(r),
		opts:   opts,
		ctx:    opts.Context,
	}, nil
}

func (d *ntDecoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	for {
		if err := checkDecodeContext(d.ctx); err != nil {
			d.err = err
			return Triple{}, err
		}
		raw, err := readLineWithLimit(d.reader, d.opts.MaxLineBytes)
		if err != nil {
			if err == io.EOF {
				return Triple{}, io.EOF
			}
			d.line++
			if !errors.Is(err, ErrLineTooLong) {
				err = &ioError{err: err}
			}
			d.err = wrapParseError(DecoderNTriples, "", d.line, 0, err)
			return Triple{}, d.err
		}
		d.line++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if d.opts.MaxTriples > 0 && d.emitted >= d.opts.MaxTriples {
			d.err = wrapParseError(DecoderNTriples, line, d.line, 0, ErrTripleLimitExceeded)
			return Triple{}, d.err
		}
		triple, err := parseNTLine(line, d.opts.StrictIRIs)
		if err != nil {
			d.err = wrapParseError(DecoderNTriples, line, d.line, 0, err)
			return Triple{}, d.err
		}
		d.emitted++
		return triple, nil
	}
}

func (d *ntDecoder) Err() error {
	return d.err
}

func (d *ntDecoder) Close() error {
	return nil
}

func parseNTLine(line string, strictIRIs bool) (Triple, error) {
	cursor := &ntCursor{input: line, strictIRIs: strictIRIs}
	subject, err := cursor.parseSubject()
	if err != nil {
		return Triple{}, err
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return Triple{}, err
	}
	object, err := cursor.parseObject()
	if err != nil {
		return Triple{}, err
	}
	if !cursor.consume('.') {
		if cursor.peekTerm() {
			return Triple{}, cursor.errorf("graph term not allowed in N-Triples")
		}
		return Triple{}, cursor.errorf("expected '.' at end of statement")
	}
	cursor.skipWS()
	if cursor.pos < len(cursor.input) && cursor.input[cursor.pos] != '#' {
		return Triple{}, cursor.errorf("unexpected content after '.'")
	}
	return Triple{S: subject, P: predicate, O: object}, nil
}

// cursorError carries the 1-based column where the cursor stopped.
type cursorError struct {
	column int
	msg    string
}

func (e *cursorError) Error() string { return e.msg }

type ntCursor struct {
	input      string
	pos        int
	strictIRIs bool
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) peekTerm() bool {
	c.skipWS()
	if c.pos >= len(c.input) {
		return false
	}
	return c.input[c.pos] == '<' || strings.HasPrefix(c.input[c.pos:], "_:")
}

func (c *ntCursor) parseSubject() (Term, error) {
	return c.parseTerm(false)
}

func (c *ntCursor) parseObject() (Term, error) {
	return c.parseTerm(true)
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return nil, c.errorf("triple terms are not supported")
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		switch c.input[c.pos] {
		case ' ', '\t', '<', '"', '{', '}', '|', '^', '`':
			return IRI{}, c.errorf("invalid character %q in IRI", c.input[c.pos])
		}
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++
	if strings.IndexByte(value, '\\') >= 0 {
		unescaped, err := UnescapeString(value)
		if err != nil {
			return IRI{}, c.errorf("IRI: %v", err)
		}
		value = unescaped
	}
	if c.strictIRIs {
		if err := ValidateIRI(value); err != nil {
			return IRI{}, &cursorError{column: start + 1, msg: err.Error()}
		}
	}
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return BlankNode{}, c.errorf("expected blank node")
	}
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A trailing '.' belongs to the statement, not the label.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	if !c.consume('"') {
		return Literal{}, c.errorf("expected literal")
	}
	start := c.pos
	for {
		if c.pos >= len(c.input) {
			return Literal{}, c.errorf("unterminated literal")
		}
		ch := c.input[c.pos]
		if ch == '\\' {
			c.pos += 2
			continue
		}
		if ch == '"' {
			break
		}
		c.pos++
	}
	lexical, err := UnescapeString(c.input[start:c.pos])
	if err != nil {
		return Literal{}, c.errorf("literal: %v", err)
	}
	c.pos++

	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		langStart := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) && c.input[c.pos] != '.' {
			c.pos++
		}
		lang := c.input[langStart:c.pos]
		if !isValidLangTag(lang) {
			return Literal{}, c.errorf("invalid language tag %q", lang)
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return &cursorError{column: c.pos + 1, msg: fmt.Sprintf(format, args...)}
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		quoted := quoteLiteral(value.Lexical)
		if value.Lang != "" {
			return quoted + "@" + value.Lang
		}
		if value.Datatype.Value != "" {
			return quoted + "^^" + renderIRI(value.Datatype)
		}
		return quoted
	default:
		return ""
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

func quoteLiteral(lexical string) string {
	return `"` + literalEscaper.Replace(lexical) + `"`
}
