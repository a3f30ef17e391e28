package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unknown decoder backend.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeLineTooLong indicates a line exceeded the configured limit.
	ErrCodeLineTooLong ErrorCode = "LINE_TOO_LONG"
	// ErrCodeTripleLimitExceeded indicates that the maximum number of triples was exceeded.
	ErrCodeTripleLimitExceeded ErrorCode = "TRIPLE_LIMIT_EXCEEDED"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
)

var (
	// ErrUnsupportedFormat indicates that no decoder is registered under a name.
	ErrUnsupportedFormat = errors.New("rdf: unsupported decoder")
	// ErrLineTooLong indicates a line exceeded the configured limit.
	ErrLineTooLong = errors.New("rdf: line exceeds configured limit")
	// ErrTripleLimitExceeded indicates that the maximum number of triples was exceeded.
	ErrTripleLimitExceeded = errors.New("rdf: maximum number of triples exceeded")
)

// ioError marks failures of the underlying reader.
type ioError struct{ err error }

func (e *ioError) Error() string { return "rdf: read: " + e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF.
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrLineTooLong):
		return ErrCodeLineTooLong
	case errors.Is(err, ErrTripleLimitExceeded):
		return ErrCodeTripleLimitExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}

	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return ErrCodeIOError
	}
	return ErrCodeParseError
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Decoder name, e.g. "ntriples"
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Column    int    // 1-based column number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())

	if excerpt := e.formatExcerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// formatExcerpt shows the statement around the error column with a caret
// underneath, or a truncated statement when the column is unknown.
func (e *ParseError) formatExcerpt() string {
	if e.Statement == "" {
		return ""
	}

	const maxExcerptLen = 80
	const contextLen = 40

	if e.Column <= 0 {
		if len(e.Statement) > maxExcerptLen {
			return e.Statement[:maxExcerptLen] + "..."
		}
		return e.Statement
	}

	start := min(e.Column-1, len(e.Statement))
	excerptStart := max(start-contextLen, 0)
	excerptEnd := min(start+contextLen, len(e.Statement))

	excerpt := e.Statement[excerptStart:excerptEnd]
	caretPos := start - excerptStart
	if excerptStart > 0 {
		excerpt = "..." + excerpt
		caretPos += 3
	}
	if excerptEnd < len(e.Statement) {
		excerpt += "..."
	}

	var result strings.Builder
	result.WriteString(excerpt)
	result.WriteString("\n  ")
	result.WriteString(strings.Repeat(" ", caretPos))
	result.WriteByte('^')
	return result.String()
}

// wrapParseError adds decoder/statement/position context to a parse error.
// Position info already carried by a nested ParseError wins over zero values.
func wrapParseError(format, statement string, line, column int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if line == 0 {
			line = parseErr.Line
		}
		if column == 0 {
			column = parseErr.Column
		}
		if statement == "" {
			statement = parseErr.Statement
		}
		err = parseErr.Err
	}
	var curErr *cursorError
	if column == 0 && errors.As(err, &curErr) {
		column = curErr.column
	}
	return &ParseError{
		Format:    format,
		Statement: statement,
		Line:      line,
		Column:    column,
		Err:       err,
	}
}
