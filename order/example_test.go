// SPDX-License-Identifier: MIT

package order_test

import (
	"fmt"

	"github.com/katalvlaran/lebedev/order"
)

func ExampleForDegree() {
	o, err := order.ForDegree(41)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(o, o.Points(), o.Degree())
	// Output: Order590 590 41
}

func ExampleFromIndex() {
	for i := 14; i <= 16; i++ {
		o, _ := order.FromIndex(i)
		fmt.Printf("%d %v degree=%d available=%v\n", i, o, order.Degree(i), order.Available(i))
	}
	// Output:
	// 14 Order350 degree=31 available=true
	// 15 Order386 degree=33 available=false
	// 16 Order434 degree=35 available=true
}
