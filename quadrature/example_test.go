// SPDX-License-Identifier: MIT

package quadrature_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
)

func ExampleNew() {
	ps, err := quadrature.New(order.Order6)
	if err != nil {
		fmt.Println(err)
		return
	}
	area := ps.Integrate(func(_, _, _ float64) float64 { return 1 })
	fmt.Printf("points=%d degree=%d area/π=%.12f\n", ps.Len(), ps.Degree(), area/math.Pi)
	// Output: points=6 degree=3 area/π=4.000000000000
}

func ExamplePointSet_Integrate() {
	ps := quadrature.MustNew(order.Order590)
	v := ps.Integrate(func(x, y, z float64) float64 { return x * x * y * y * z * z })
	fmt.Printf("%.10f\n", v*105/(4*math.Pi))
	// Output: 1.0000000000
}

func ExamplePointSet_VerifyExactness() {
	rep, err := quadrature.MustNew(order.Order110).VerifyExactness()
	fmt.Println(rep.Order, rep.Degree, rep.Monomials, rep.Exact, err)
	// Output: Order110 17 165 true <nil>
}
