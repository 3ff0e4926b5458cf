// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lebedev/octahedral"
	"github.com/katalvlaran/lebedev/order"
)

// code is a Lebedev–Laikov generator code.
type code uint8

const (
	octa    code = iota + 1 // (1,0,0), 6 points
	edge                    // (a,a,0), a = 1/√2, 12 points
	cube                    // (a,a,a), a = 1/√3, 8 points
	diag                    // (a,a,b), b = √(1−2a²), 24 points
	planar                  // (a,b,0), b = √(1−a²), 24 points
	general                 // (a,b,c), c = √(1−a²−b²), 48 points
)

// row is one generator line {code, a, b, v} as printed in the published
// tables. a and b are ignored where the code fixes the coordinates.
type row struct {
	code code
	a, b float64
	v    float64
}

const (
	methodRepresentatives = "Representatives"

	panicBadRow       = "table: invalid generator row for order %d (row %d): %v"
	panicPointCount   = "table: order %d expands to %d points"
	panicDuplicate    = "table: order %d registered twice"
	panicUnknownOrder = "table: order %d is not a catalog order"
)

var registry = map[order.Order][]octahedral.Representative{}

// register converts rows into representatives and records them for o.
// It panics on malformed data; it only runs during package initialisation.
func register(o order.Order, rows []row) {
	if _, dup := registry[o]; dup {
		panic(fmt.Sprintf(panicDuplicate, int(o)))
	}
	if _, err := order.Index(o); err != nil {
		panic(fmt.Sprintf(panicUnknownOrder, int(o)))
	}

	reps := make([]octahedral.Representative, len(rows))
	total := 0
	for i, r := range rows {
		rep := r.representative()
		if err := octahedral.Validate(rep); err != nil {
			panic(fmt.Sprintf(panicBadRow, int(o), i, err))
		}
		reps[i] = rep
		total += rep.Class.Size()
	}
	if total != o.Points() {
		panic(fmt.Sprintf(panicPointCount, int(o), total))
	}
	registry[o] = reps
}

func (r row) representative() octahedral.Representative {
	switch r.code {
	case octa:
		return octahedral.Octa(r.v)
	case edge:
		return octahedral.Edge(r.v)
	case cube:
		return octahedral.Cube(r.v)
	case diag:
		return octahedral.Diagonal(r.a, r.v)
	case planar:
		return octahedral.Planar(r.a, r.v)
	case general:
		return octahedral.General(r.a, r.b, r.v)
	default:
		return octahedral.Representative{Weight: r.v}
	}
}

// Representatives returns the generator list for o, in table order.
// The slice is a fresh copy; callers may modify it.
//
// Errors:
//   - order.ErrUnsupportedOrder if o is not a catalog order, is flagged
//     unavailable, or has no compiled-in table.
func Representatives(o order.Order) ([]octahedral.Representative, error) {
	reps, ok := registry[o]
	if !ok || !o.Available() {
		return nil, fmt.Errorf("%s: %v: %w", methodRepresentatives, o, order.ErrUnsupportedOrder)
	}
	out := make([]octahedral.Representative, len(reps))
	copy(out, reps)

	return out, nil
}

// Supported reports whether a coefficient table is compiled in for o.
func Supported(o order.Order) bool {
	_, ok := registry[o]

	return ok && o.Available()
}

// SupportedOrders lists every order with a compiled-in table, ascending.
func SupportedOrders() []order.Order {
	out := make([]order.Order, 0, len(registry))
	for o := range registry {
		if o.Available() {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
