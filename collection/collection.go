// Package collection provides conditional mutation helpers for slices
// and maps. Mutating helpers accept nil inputs and treat them as
// no-ops; nothing in this package panics.
package collection

// AppendIfMissing appends v to s unless s already contains it.
func AppendIfMissing[T comparable](s []T, v T) []T {
	for _, e := range s {
		if e == v {
			return s
		}
	}
	return append(s, v)
}

// AppendNonZero appends v to s unless v is the zero value of its type.
func AppendNonZero[T comparable](s []T, v T) []T {
	var zero T
	if v == zero {
		return s
	}
	return append(s, v)
}

// SetIfAbsent stores v under k unless the key is already present, and
// reports whether it stored. A nil map is left alone and reports false.
func SetIfAbsent[K comparable, V any](m map[K]V, k K, v V) bool {
	if m == nil {
		return false
	}
	if _, ok := m[k]; ok {
		return false
	}
	m[k] = v
	return true
}

// GetOrDefault returns the value stored under k, or def when the key is
// absent. A nil map always yields def.
func GetOrDefault[K comparable, V any](m map[K]V, k K, def V) V {
	if v, ok := m[k]; ok {
		return v
	}
	return def
}

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
