// SPDX-License-Identifier: MIT

package hyp1f1_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kummer/hyp1f1"
)

// ExampleHyp1F1 evaluates M(1,2,1) = e − 1 through the exp_ratio identity.
func ExampleHyp1F1() {
	m := hyp1f1.Hyp1F1(1, 2, 1, hyp1f1.MachineEpsilon)
	fmt.Printf("%.6f\n", m)
	// Output:
	// 1.718282
}

// ExampleHyp1F1_polynomial evaluates the terminating series
// M(−2,−5,3) = 1 + (2/5)·3 + (1/20)·9.
func ExampleHyp1F1_polynomial() {
	m := hyp1f1.Hyp1F1(-2, -5, 3, hyp1f1.MachineEpsilon)
	fmt.Printf("%.2f\n", m)
	// Output:
	// 2.65
}

// ExampleClassify shows the regime tags picked by the guard cascade.
func ExampleClassify() {
	fmt.Println(hyp1f1.Classify(-2, -5, 3))
	fmt.Println(hyp1f1.Classify(1.5, -2, 1))
	fmt.Println(hyp1f1.Classify(2.5, 2.5, 1))
	fmt.Println(hyp1f1.Classify(0.5, 10, 1))
	fmt.Println(hyp1f1.Classify(2.5, 5.33, 6.4))
	// Output:
	// polynomial_b
	// pole
	// kummer
	// fast_series
	// fallback_series
}

// ExampleEvaluate reports a pole as a sentinel error alongside +Inf.
func ExampleEvaluate() {
	m, err := hyp1f1.Evaluate(1, -3, 2, hyp1f1.MachineEpsilon)
	fmt.Println(m, errors.Is(err, hyp1f1.ErrPole))
	// Output:
	// +Inf true
}
