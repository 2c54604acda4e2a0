// SPDX-License-Identifier: MIT

package backtest

import "github.com/katalvlaran/kummer/hyp1f1"

// Defaults mirror the original back-test sweep.
const (
	// DefaultSeed is the seed used when Config.Seed is 0.
	DefaultSeed int64 = 1

	// DefaultSamples is the number of sampled triples.
	DefaultSamples = 1000

	// DefaultTolerance is the scaled error a sample may show and still pass.
	DefaultTolerance = 1e-6
)

// Range is a half-open sampling interval [Lo, Hi). Lo == Hi pins the value.
type Range struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Config describes one back-test run.
type Config struct {
	Seed      int64   `yaml:"seed"`
	Samples   int     `yaml:"samples"`
	A         Range   `yaml:"a"`
	B         Range   `yaml:"b"`
	Z         Range   `yaml:"z"`
	Eps       float64 `yaml:"eps"`
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultConfig returns a∈[−5,−1], b∈[1,6], z∈[0,60], 1000 samples,
// eps = MachineEpsilon, tolerance 1e-6.
func DefaultConfig() Config {
	return Config{
		Seed:      DefaultSeed,
		Samples:   DefaultSamples,
		A:         Range{Lo: -5, Hi: -1},
		B:         Range{Lo: 1, Hi: 6},
		Z:         Range{Lo: 0, Hi: 60},
		Eps:       hyp1f1.MachineEpsilon,
		Tolerance: DefaultTolerance,
	}
}

// Sample is one parameter triple.
type Sample struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	Z float64 `yaml:"z"`
}

// Outcome classifies a compared sample.
type Outcome int

const (
	// Pass — both sides finite and within tolerance.
	Pass Outcome = iota
	// Fail — both sides finite, error above tolerance.
	Fail
	// Skip — NaN or ±Inf on either side.
	Skip
)

// String returns "pass", "fail" or "skip".
func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the outcome by name.
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Result is the comparison of one sample.
type Result struct {
	Sample     `yaml:",inline"`
	Regime     string  `yaml:"regime"`
	Dispatcher float64 `yaml:"dispatcher"`
	Reference  float64 `yaml:"reference"`
	Error      float64 `yaml:"error"`
	Outcome    Outcome `yaml:"outcome"`
}

// Observer receives every Result as Run produces it.
type Observer interface {
	Observe(Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Result)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Result) { f(r) }
