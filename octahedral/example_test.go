// SPDX-License-Identifier: MIT

package octahedral_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lebedev/octahedral"
)

func ExampleExpand() {
	x, y, z, err := octahedral.Expand(octahedral.Octa(1.0/6.0), nil, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := range x {
		fmt.Printf("(%g, %g, %g)\n", x[i], y[i], z[i])
	}
	// Output:
	// (1, 0, 0)
	// (-1, 0, 0)
	// (0, 1, 0)
	// (0, -1, 0)
	// (0, 0, 1)
	// (0, 0, -1)
}

func ExampleValidate() {
	bad := octahedral.Representative{A: 0.6, B: 0.8, Class: octahedral.Points48}
	err := octahedral.Validate(bad)
	fmt.Println(errors.Is(err, octahedral.ErrContractViolation))
	// Output: true
}
