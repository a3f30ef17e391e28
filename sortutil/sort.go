package sortutil

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Attributer is implemented by elements that expose named attributes. The
// boolean reports whether the element has the attribute at all.
type Attributer interface {
	Attribute(name string) (any, bool)
}

// Attrs is a plain attribute bag.
type Attrs map[string]any

// Attribute returns the value stored under name.
func (a Attrs) Attribute(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Direction is the sort direction of a Key.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return 0, fmt.Errorf("sortutil: unknown sort direction %q", s)
	}
}

// factor maps the direction onto a comparison multiplier. Any value other
// than Descending, the zero value included, sorts ascending.
func (d Direction) factor() int {
	if d == Descending {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Key pairs an attribute name with a direction. A zero Direction sorts
// ascending.
type Key struct {
	Name      string
	Direction Direction
}

// Asc returns an ascending key.
func Asc(name string) Key { return Key{Name: name, Direction: Ascending} }

// Desc returns a descending key.
func Desc(name string) Key { return Key{Name: name, Direction: Descending} }

// Option configures a sort.
type Option func(*options)

type options struct {
	prependRejected bool
	locale          language.Tag
}

func newOptions(opts []Option) options {
	o := options{prependRejected: true, locale: language.Und}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OptPrependRejected controls whether rejected elements go before (true, the
// default) or after the sorted elements.
func OptPrependRejected(prepend bool) Option {
	return func(o *options) {
		o.prependRejected = prepend
	}
}

// OptLocale sets the language used to lower-case string values in SortBy.
func OptLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// Partition splits list into elements exposing a non-nil value for every
// name and the rest. Both results keep input order.
func Partition[T Attributer](list []T, names []string) (eligible, rejected []T) {
	eligible = make([]T, 0, len(list))
	for _, item := range list {
		if hasAll(item, names) {
			eligible = append(eligible, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return eligible, rejected
}

func hasAll(item Attributer, names []string) bool {
	for _, name := range names {
		v, ok := item.Attribute(name)
		if !ok || isNil(v) {
			return false
		}
	}
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// SortBy sorts list ascending by the tuple of the named attributes, left to
// right. Strings compare transliterated and lower-cased so accents and case
// do not affect order. The sort is stable.
func SortBy[T Attributer](list []T, names []string, opts ...Option) []T {
	o := newOptions(opts)
	eligible, rejected := Partition(list, names)

	type keyed struct {
		item T
		keys []any
	}
	fold := newFolder(o.locale)
	items := make([]keyed, len(eligible))
	for i, item := range eligible {
		keys := make([]any, len(names))
		for j, name := range names {
			v, _ := item.Attribute(name)
			if s, ok := stringValue(v); ok {
				v = fold.fold(s)
			}
			keys[j] = v
		}
		items[i] = keyed{item: item, keys: keys}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return compareTuples(a.keys, b.keys)
	})

	sorted := make([]T, len(items))
	for i, it := range items {
		sorted[i] = it.item
	}
	return assemble(sorted, rejected, o.prependRejected)
}

// ReverseSortBy is SortBy followed by reversing the whole result, so the
// rejected block also moves to the opposite end and is itself reversed.
func ReverseSortBy[T Attributer](list []T, names []string, opts ...Option) []T {
	sorted := SortBy(list, names, opts...)
	slices.Reverse(sorted)
	return sorted
}

// MultiDirectionSort sorts list by keys in order, each ascending or
// descending. Values compare in their natural order without transliteration.
// Elements equal on every key keep their input order.
func MultiDirectionSort[T Attributer](list []T, keys []Key, opts ...Option) []T {
	o := newOptions(opts)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Name
	}
	eligible, rejected := Partition(list, names)

	slices.SortStableFunc(eligible, func(a, b T) int {
		for _, k := range keys {
			av, _ := a.Attribute(k.Name)
			bv, _ := b.Attribute(k.Name)
			if c := Compare(av, bv) * k.Direction.factor(); c != 0 {
				return c
			}
		}
		return 0
	})
	return assemble(eligible, rejected, o.prependRejected)
}

func assemble[T any](sorted, rejected []T, prependRejected bool) []T {
	out := make([]T, 0, len(sorted)+len(rejected))
	if prependRejected {
		out = append(out, rejected...)
		return append(out, sorted...)
	}
	out = append(out, sorted...)
	return append(out, rejected...)
}
