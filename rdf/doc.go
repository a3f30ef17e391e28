// Package rdf provides a compact RDF term model and streaming N-Triples decoders.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It focuses on the small surface the graph mapper needs:
//   - Decode: NewNTriplesDecoder() and NewJSONGoldDecoder() return pull-style decoders.
//   - Parse: ParseTriples() streams triples to a handler, ReadAllTriples() collects them.
//   - Registry: LookupDecoder() resolves a backend by name ("ntriples", "json-gold").
//
// Example (decoding triples):
//
//	dec, err := rdf.NewNTriplesDecoder(strings.NewReader(input), rdf.DefaultDecodeOptions())
//	if err != nil {
//	    // handle error
//	}
//	defer dec.Close()
//
//	for {
//	    triple, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process triple.S, triple.P, triple.O
//	}
//
// Decoding failures are reported as *ParseError carrying the decoder name, the
// line and column, and an excerpt of the offending statement. Code() maps any
// error to a stable ErrorCode.
//
// Decoder options bound line length and triple count for untrusted input.
// StrictIRIs makes the native decoder reject relative IRIs. RDF-star triple
// terms are rejected.
package rdf
