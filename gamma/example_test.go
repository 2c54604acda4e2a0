// SPDX-License-Identifier: MIT

package gamma_test

import (
	"fmt"

	"github.com/katalvlaran/kummer/gamma"
)

// ExampleGamma prints 5! computed as Γ(6).
func ExampleGamma() {
	fmt.Printf("%.6f\n", gamma.Gamma(6))
	// Output:
	// 120.000000
}

// ExamplePoch prints the rising factorial 2.5·3.5·4.5.
func ExamplePoch() {
	fmt.Printf("%.6f\n", gamma.Poch(2.5, 3))
	// Output:
	// 39.375000
}
