package workload

import (
	"fmt"
	"math/rand"
	"strings"
)

// Order defines the sequence in which keys are fed to a map
type Order int

const (
	OrderAscending Order = iota
	OrderDescending
	OrderRandom
	OrderZigzag
)

// Orders lists every supported order.
var Orders = []Order{OrderAscending, OrderDescending, OrderRandom, OrderZigzag}

// String returns a string representation of the order
func (o Order) String() string {
	switch o {
	case OrderAscending:
		return "ascending"
	case OrderDescending:
		return "descending"
	case OrderRandom:
		return "random"
	case OrderZigzag:
		return "zigzag"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// ParseOrder converts a name to an Order
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascending", "asc", "sorted":
		return OrderAscending, nil
	case "descending", "desc":
		return OrderDescending, nil
	case "random", "shuffled":
		return OrderRandom, nil
	case "zigzag":
		return OrderZigzag, nil
	default:
		return 0, fmt.Errorf("unknown order %q (valid options: ascending, descending, random, zigzag)", name)
	}
}

// GenerateKeys returns the keys 1..n arranged in the given order. seed only
// affects OrderRandom.
func GenerateKeys(order Order, n int, seed int64) []int {
	keys := make([]int, 0, n)
	switch order {
	case OrderDescending:
		for i := n; i >= 1; i-- {
			keys = append(keys, i)
		}
	case OrderZigzag:
		// alternate smallest and largest remaining keys
		for lo, hi := 1, n; lo <= hi; lo, hi = lo+1, hi-1 {
			keys = append(keys, lo)
			if lo != hi {
				keys = append(keys, hi)
			}
		}
	case OrderRandom:
		for i := 1; i <= n; i++ {
			keys = append(keys, i)
		}
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	default:
		for i := 1; i <= n; i++ {
			keys = append(keys, i)
		}
	}
	return keys
}
