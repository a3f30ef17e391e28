package rdf

import "fmt"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// LocalName returns the part of the IRI after the last '#' or '/'.
// IRIs without either separator are returned whole.
func (i IRI) LocalName() string {
	for idx := len(i.Value) - 1; idx >= 0; idx-- {
		switch i.Value[idx] {
		case '#', '/':
			if idx == len(i.Value)-1 {
				return i.Value
			}
			return i.Value[idx+1:]
		}
	}
	return i.Value
}

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Triple is an RDF triple.
type Triple struct {
	// S is the subject (IRI or BlankNode).
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// String renders the triple as a single N-Triples statement without the
// trailing newline.
func (t Triple) String() string {
	return renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O) + " ."
}

// SubjectKey returns the key identifying the triple's subject: the IRI value
// or the "_:"-prefixed blank node label.
func (t Triple) SubjectKey() string {
	return TermKey(t.S)
}

// TermKey returns the identifier used for IRIs and blank nodes. Literals have
// no identity and yield the empty string.
func TermKey(term Term) string {
	switch v := term.(type) {
	case IRI:
		return v.Value
	case BlankNode:
		return v.String()
	default:
		return ""
	}
}
