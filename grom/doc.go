// Package grom maps RDF triples onto graph objects.
//
// A TripleReader decodes a document and groups triples by subject into Nodes.
// Each Node carries its rdf:type values, literal attributes named after the
// predicate's local name, and links to other nodes of the same document.
// Decorators attach alias names and derived accessors after reading; they
// never change stored data.
package grom
