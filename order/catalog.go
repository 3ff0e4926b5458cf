// SPDX-License-Identifier: MIT

package order

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	methodFromIndex = "FromIndex"
	methodIndex     = "Index"
	methodForDegree = "ForDegree"
	methodParse     = "Parse"
)

// FromIndex maps slot index i to its Order.
//
// Errors:
//   - ErrIndexOutOfRange if i ∉ [0, N).
//
// The returned Order may be unavailable; check Available(i) when it matters.
func FromIndex(i int) (Order, error) {
	if i < 0 || i >= N {
		return 0, fmt.Errorf("%s: index %d: %w", methodFromIndex, i, ErrIndexOutOfRange)
	}

	return Order(pointCounts[i]), nil
}

// Index returns the catalog slot of o.
//
// Implementation:
//   - Binary search over the ascending point-count table.
//
// Errors:
//   - ErrUnsupportedOrder if o is not a catalog order.
//
// Complexity: O(log N).
func Index(o Order) (int, error) {
	lo, hi := 0, N
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pointCounts[mid] < int(o) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == N || pointCounts[lo] != int(o) {
		return -1, fmt.Errorf("%s: %d points: %w", methodIndex, int(o), ErrUnsupportedOrder)
	}

	return lo, nil
}

// Available reports whether slot i holds a realizable rule.
// Out-of-range indices report false.
func Available(i int) bool {
	return i >= 0 && i < N && available[i]
}

// Degree returns the exactness degree of slot i, or 0 if i is out of range.
func Degree(i int) int {
	if i < 0 || i >= N {
		return 0
	}

	return degrees[i]
}

// PointCount returns the number of points of slot i, or 0 if i is out of range.
func PointCount(i int) int {
	if i < 0 || i >= N {
		return 0
	}

	return pointCounts[i]
}

// Points returns the number of points of o. It equals int(o) for catalog
// orders and 0 otherwise.
func (o Order) Points() int {
	i, err := Index(o)
	if err != nil {
		return 0
	}

	return pointCounts[i]
}

// Degree returns the exactness degree of o, or 0 if o is not a catalog order.
func (o Order) Degree() int {
	i, err := Index(o)
	if err != nil {
		return 0
	}

	return degrees[i]
}

// Available reports whether o is a catalog order flagged available.
func (o Order) Available() bool {
	i, err := Index(o)

	return err == nil && available[i]
}

// String renders o as "Order<points>".
func (o Order) String() string {
	return "Order" + strconv.Itoa(int(o))
}

// All returns every catalog order in ascending slot order.
// The slice is freshly allocated.
func All() []Order {
	out := make([]Order, N)
	for i := range pointCounts {
		out[i] = Order(pointCounts[i])
	}

	return out
}

// AvailableOrders returns the orders flagged available, ascending.
// The slice is freshly allocated.
func AvailableOrders() []Order {
	out := make([]Order, 0, N)
	for i := range pointCounts {
		if available[i] {
			out = append(out, Order(pointCounts[i]))
		}
	}

	return out
}

// ForDegree returns the smallest available order whose exactness degree is at
// least d. Degrees below 3 select Order6.
//
// Errors:
//   - ErrDegreeTooHigh if d exceeds the largest catalog degree.
func ForDegree(d int) (Order, error) {
	for i := 0; i < N; i++ {
		if available[i] && degrees[i] >= d {
			return Order(pointCounts[i]), nil
		}
	}

	return 0, fmt.Errorf("%s: degree %d: %w", methodForDegree, d, ErrDegreeTooHigh)
}

// Parse reads an order from text. Accepted forms are "590", "Order590" and
// "order590" (surrounding spaces ignored). The result must be a catalog order;
// availability is not checked.
//
// Errors:
//   - ErrUnsupportedOrder for malformed input or a non-catalog point count.
func Parse(s string) (Order, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "Order"), "order")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", methodParse, s, ErrUnsupportedOrder)
	}
	o := Order(n)
	if _, err = Index(o); err != nil {
		return 0, fmt.Errorf("%s: %q: %w", methodParse, s, ErrUnsupportedOrder)
	}

	return o, nil
}
