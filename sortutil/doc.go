// Package sortutil sorts and partitions collections of elements whose
// attributes may be missing.
//
// Elements expose attributes through the Attributer interface. Every sort
// first splits the input into eligible elements, which expose a non-nil value
// for each requested attribute, and rejected ones. Rejected elements keep
// their input order and are placed in front of the sorted block unless
// OptPrependRejected(false) is given.
//
//	people := []sortutil.Attrs{
//		{"name": "Bob", "count": 1},
//		{"name": "Amy", "count": 5},
//		{"name": "Zoe", "count": 5},
//	}
//	sorted := sortutil.MultiDirectionSort(people, []sortutil.Key{
//		sortutil.Desc("count"),
//		sortutil.Asc("name"),
//	})
//	// Amy, Zoe, Bob
//
// Inputs are never modified; every function returns a new slice.
package sortutil
