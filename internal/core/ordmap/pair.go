package ordmap

import "fmt"

// Pair is the element stored in a Map. Pairs are ordered and compared by Key only.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// MakePair creates a pair from a key and a value.
func MakePair[K any, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// keyPair builds a search probe carrying only the key.
func keyPair[K any, V any](key K) Pair[K, V] {
	return Pair[K, V]{Key: key}
}

// String returns a string representation of the pair
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}

// byKey lifts a key comparison to pairs.
func byKey[K any, V any](compare func(a, b K) int) func(a, b Pair[K, V]) int {
	return func(a, b Pair[K, V]) int {
		return compare(a.Key, b.Key)
	}
}
