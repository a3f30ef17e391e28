package rdf

import (
	"fmt"
	"net/url"
)

// ValidateIRI reports whether iri is an absolute IRI as N-Triples requires:
// a scheme starting with a letter followed by letters, digits, '+', '-' or
// '.', and no control characters.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	for i, r := range iri {
		if r < 0x20 || r == 0x7F {
			return fmt.Errorf("invalid control character at position %d in IRI: %q", i, iri)
		}
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("relative IRI not allowed: %s", iri)
	}
	for i := 0; i < len(parsed.Scheme); i++ {
		ch := parsed.Scheme[i]
		letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if i == 0 && !letter {
			return fmt.Errorf("scheme must start with a letter: %s", iri)
		}
		if !letter && !(ch >= '0' && ch <= '9') && ch != '+' && ch != '-' && ch != '.' {
			return fmt.Errorf("invalid scheme character %q: %s", ch, iri)
		}
	}
	return nil
}
