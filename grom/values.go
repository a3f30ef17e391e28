package grom

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/geoknoesis/ntriple-go/rdf"
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02Z07:00",
}

// LiteralValue converts a literal to its natural Go value by datatype:
// integers to int64 (unsigned values above math.MaxInt64 to uint64), decimals and floating point to float64, booleans to bool,
// dates and date-times to time.Time. Anything else, including lexical forms
// that do not parse or overflow, stays a string.
func LiteralValue(lit rdf.Literal) any {
	lexical := strings.TrimSpace(lit.Lexical)
	switch lit.Datatype.Value {
	case rdf.XSDInteger, rdf.XSDInt, rdf.XSDLong, rdf.XSDShort, rdf.XSDByte,
		rdf.XSDNonNegativeInteger, rdf.XSDPositiveInteger,
		rdf.XSDNegativeInteger, rdf.XSDNonPositiveInteger:
		if v, err := strconv.ParseInt(lexical, 10, 64); err == nil {
			return v
		}
	case rdf.XSDUnsignedLong, rdf.XSDUnsignedInt, rdf.XSDUnsignedShort, rdf.XSDUnsignedByte:
		if v, err := strconv.ParseUint(lexical, 10, 64); err == nil {
			if v <= math.MaxInt64 {
				return int64(v)
			}
			return v
		}
	case rdf.XSDDecimal, rdf.XSDDouble, rdf.XSDFloat:
		if v, err := strconv.ParseFloat(lexical, 64); err == nil {
			return v
		}
	case rdf.XSDBoolean:
		switch lexical {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
	case rdf.XSDDateTime:
		for _, layout := range dateTimeLayouts {
			if v, err := time.Parse(layout, lexical); err == nil {
				return v
			}
		}
	case rdf.XSDDate:
		for _, layout := range dateLayouts {
			if v, err := time.Parse(layout, lexical); err == nil {
				return v
			}
		}
	}
	return lit.Lexical
}
