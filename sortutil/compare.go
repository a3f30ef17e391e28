package sortutil

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Comparer is implemented by values that define their own ordering against
// values of the same type.
type Comparer interface {
	Compare(other any) int
}

// kind ranks used when two values of unrelated types meet.
const (
	rankNil = iota
	rankNumber
	rankString
	rankTime
	rankBool
	rankSlice
	rankOther
)

// Compare orders a and b and returns -1, 0 or +1. Numbers of any numeric
// kind, named types such as time.Duration included, compare by value.
// Strings compare lexically by byte, times chronologically and false before
// true. Slices compare element by element, then by length. Values of
// unrelated kinds order by kind: nil, number, string, time, bool, slice, then
// anything else by its fmt rendering.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case rankString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	case rankBool:
		return compareBools(reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool())
	case rankSlice:
		return compareSlices(reflect.ValueOf(a), reflect.ValueOf(b))
	}
	if c, ok := a.(Comparer); ok && reflect.TypeOf(a) == reflect.TypeOf(b) {
		return sign(c.Compare(b))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareTuples(a, b []any) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func rank(v any) int {
	if isNil(v) {
		return rankNil
	}
	if _, ok := v.(time.Time); ok {
		return rankTime
	}
	if _, ok := v.(Comparer); ok {
		return rankOther
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	case reflect.Bool:
		return rankBool
	case reflect.Slice, reflect.Array:
		return rankSlice
	}
	return rankOther
}

// compareNumbers compares two numeric values exactly when both are integers
// and through float64 otherwise.
func compareNumbers(a, b reflect.Value) int {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUnsigned(a) && isUnsigned(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(a) && isUnsigned(b):
		if a.Int() < 0 || b.Uint() > math.MaxInt64 {
			return -1
		}
		return cmp.Compare(a.Int(), int64(b.Uint()))
	case isUnsigned(a) && isSigned(b):
		return -compareNumbers(b, a)
	}
	return cmp.Compare(asFloat(a), asFloat(b))
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func asFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	}
	return v.Float()
}

// stringValue returns the underlying string of any string-kinded value.
func stringValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareSlices(a, b reflect.Value) int {
	for i := 0; i < min(a.Len(), b.Len()); i++ {
		if c := Compare(a.Index(i).Interface(), b.Index(i).Interface()); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
