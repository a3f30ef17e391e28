package rdf

// Vocabulary IRIs the decoders and the graph mapper care about.
const (
	RDFType       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
	RDFSLabel     = "http://www.w3.org/2000/01/rdf-schema#label"

	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	XSDString    = XSDNamespace + "string"
	XSDBoolean   = XSDNamespace + "boolean"
	XSDInteger   = XSDNamespace + "integer"
	XSDInt       = XSDNamespace + "int"
	XSDLong      = XSDNamespace + "long"
	XSDShort     = XSDNamespace + "short"
	XSDByte      = XSDNamespace + "byte"
	XSDDecimal   = XSDNamespace + "decimal"
	XSDDouble    = XSDNamespace + "double"
	XSDFloat     = XSDNamespace + "float"
	XSDDate      = XSDNamespace + "date"
	XSDDateTime  = XSDNamespace + "dateTime"

	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDPositiveInteger    = XSDNamespace + "positiveInteger"
	XSDNegativeInteger    = XSDNamespace + "negativeInteger"
	XSDNonPositiveInteger = XSDNamespace + "nonPositiveInteger"

	XSDUnsignedLong  = XSDNamespace + "unsignedLong"
	XSDUnsignedInt   = XSDNamespace + "unsignedInt"
	XSDUnsignedShort = XSDNamespace + "unsignedShort"
	XSDUnsignedByte  = XSDNamespace + "unsignedByte"
)
