// Package textnorm cleans raw response bodies before they reach a parser.
//
// Servers occasionally prepend, or splice in, byte-order marks that RDF
// parsers reject. Normalize removes every UTF-8 BOM and transcodes bodies
// that start with a UTF-16 BOM to UTF-8. Any other byte is left alone, so
// malformed input still reaches the parser, which reports it properly.
package textnorm

import (
	"bytes"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// Normalizer removes byte-order marks from response bodies. The zero value
// is not usable; call NewNormalizer.
type Normalizer struct {
	logger *zap.Logger
}

// NewNormalizer returns a Normalizer logging to logger. A nil logger
// disables logging.
func NewNormalizer(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{logger: logger}
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize is shorthand for a Normalizer without logging.
func Normalize(body []byte) string {
	return defaultNormalizer.Normalize(body)
}

// Normalize returns body as text with byte-order marks removed. It never
// fails.
func (n *Normalizer) Normalize(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if utf16, ok := n.decodeUTF16(body); ok {
		body = utf16
	}
	count := bytes.Count(body, utf8BOM)
	if count == 0 {
		return string(body)
	}
	n.logger.Debug("removed byte order marks", zap.Int("count", count), zap.Int("bytes", len(body)))
	return string(bytes.ReplaceAll(body, utf8BOM, nil))
}

func (n *Normalizer) decodeUTF16(body []byte) ([]byte, bool) {
	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(body, utf16BEBOM):
		endian = unicode.BigEndian
	case bytes.HasPrefix(body, utf16LEBOM):
		endian = unicode.LittleEndian
	default:
		return nil, false
	}
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(decoder, body)
	if err != nil {
		n.logger.Debug("utf-16 transcoding failed, keeping raw body", zap.Error(err))
		return nil, false
	}
	n.logger.Debug("transcoded utf-16 body", zap.Int("bytes", len(body)))
	return out, true
}
