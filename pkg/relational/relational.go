package relational

import (
	"cmp"
	"slices"
)

// Number is the set of element types SumBy accumulates.
type Number interface {
	~int | ~int64 | ~float64
}

// Filter returns the elements of src for which keep returns true, in source
// order.
func Filter[T any](src []T, keep func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, v := range src {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to every element of src.
func Map[T, U any](src []T, fn func(T) U) []U {
	out := make([]U, 0, len(src))
	for _, v := range src {
		out = append(out, fn(v))
	}
	return out
}

// FilterMap projects the elements of src that satisfy keep.
func FilterMap[T, U any](src []T, keep func(T) bool, fn func(T) U) []U {
	out := make([]U, 0, len(src))
	for _, v := range src {
		if keep(v) {
			out = append(out, fn(v))
		}
	}
	return out
}

// Reduce folds src left to right starting from seed.
func Reduce[T, A any](src []T, seed A, fn func(A, T) A) A {
	acc := seed
	for _, v := range src {
		acc = fn(acc, v)
	}
	return acc
}

// SumBy adds field over every element of src. Zero values are summed like
// any other.
func SumBy[T any, N Number](src []T, field func(T) N) N {
	var total N
	for _, v := range src {
		total += field(v)
	}
	return total
}

// FlatMap concatenates the slices fn returns for each element of src.
func FlatMap[T, U any](src []T, fn func(T) []U) []U {
	var out []U
	for _, v := range src {
		out = append(out, fn(v)...)
	}
	if out == nil {
		out = []U{}
	}
	return out
}

// GroupBy buckets src by key. Buckets keep source order.
func GroupBy[T any, K comparable](src []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range src {
		k := key(v)
		out[k] = append(out[k], v)
	}
	return out
}

// GroupAppend appends val(v) under every key in keys(v). A record that
// yields several keys contributes to each of them.
func GroupAppend[T any, K comparable, V any](src []T, keys func(T) []K, val func(T) V) map[K][]V {
	out := make(map[K][]V)
	for _, v := range src {
		for _, k := range keys(v) {
			if _, ok := out[k]; !ok {
				out[k] = []V{}
			}
			out[k] = append(out[k], val(v))
		}
	}
	return out
}

// CountBy counts how often each key appears across keys(v) for all v.
func CountBy[T any, K comparable](src []T, keys func(T) []K) map[K]int {
	out := make(map[K]int)
	for _, v := range src {
		for _, k := range keys(v) {
			out[k]++
		}
	}
	return out
}

// Unique collects the values nested in each element of src, keeping the
// first occurrence of each in left-to-right scan order.
func Unique[T any, K comparable](src []T, values func(T) []K) []K {
	seen := make(map[K]struct{})
	out := []K{}
	for _, v := range src {
		for _, k := range values(v) {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// Contains reports whether v is an element of src.
func Contains[K comparable](src []K, v K) bool {
	return slices.Contains(src, v)
}

// ContainsAny reports whether any element of candidates is in src.
func ContainsAny[K comparable](src, candidates []K) bool {
	for _, c := range candidates {
		if slices.Contains(src, c) {
			return true
		}
	}
	return false
}

// Ascending orders by key, smallest first.
func Ascending[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Descending orders by key, largest first.
func Descending[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// SortStable returns a sorted copy of src. Elements that compare equal keep
// their source order.
func SortStable[T any](src []T, compare func(a, b T) int) []T {
	out := slices.Clone(src)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, compare)
	return out
}

// SortStableInPlace sorts src itself and returns it. Every holder of src
// observes the new order.
func SortStableInPlace[T any](src []T, compare func(a, b T) int) []T {
	slices.SortStableFunc(src, compare)
	return src
}

// MaxBy returns the first element with the largest key. ok is false when src
// is empty.
func MaxBy[T any, K cmp.Ordered](src []T, key func(T) K) (best T, ok bool) {
	for i, v := range src {
		if i == 0 || key(v) > key(best) {
			best = v
		}
	}
	return best, len(src) > 0
}

// IndexBy builds a lookup table over src. A later element with a duplicate
// key replaces the earlier one.
func IndexBy[T any, K comparable](src []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(src))
	for _, v := range src {
		out[key(v)] = v
	}
	return out
}

// JoinByOffset pairs each primary element with secondary[offset(p)]. The
// result has one element per primary element. An offset outside secondary
// panics.
func JoinByOffset[P, S, R any](primary []P, secondary []S, offset func(P) int, combine func(P, S) R) []R {
	out := make([]R, 0, len(primary))
	for _, p := range primary {
		out = append(out, combine(p, secondary[offset(p)]))
	}
	return out
}

// JoinWhere pairs each primary element with every secondary element match
// accepts, in secondary order, and combines them. Primary elements with no
// matches are combined with an empty slice.
func JoinWhere[P, S, R any](primary []P, secondary []S, match func(P, S) bool, combine func(P, []S) R) []R {
	out := make([]R, 0, len(primary))
	for _, p := range primary {
		related := Filter(secondary, func(s S) bool { return match(p, s) })
		out = append(out, combine(p, related))
	}
	return out
}

// Complement returns the keys of all that do not appear in referenced, in
// the order of all.
func Complement[K comparable](all, referenced []K) []K {
	ref := make(map[K]struct{}, len(referenced))
	for _, k := range referenced {
		ref[k] = struct{}{}
	}
	return Filter(all, func(k K) bool {
		_, hit := ref[k]
		return !hit
	})
}
