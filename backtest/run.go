// SPDX-License-Identifier: MIT

package backtest

import (
	"math"

	"github.com/katalvlaran/kummer/hyp1f1"
)

// Report summarizes a run.
type Report struct {
	Seed      int64          `yaml:"seed"`
	Tolerance float64        `yaml:"tolerance"`
	Samples   int            `yaml:"samples"`
	Passed    int            `yaml:"passed"`
	Failed    int            `yaml:"failed"`
	Skipped   int            `yaml:"skipped"`
	MaxError  float64        `yaml:"max_error"`
	Worst     *Result        `yaml:"worst,omitempty"`
	Regimes   map[string]int `yaml:"regimes"`
	Failures  []Result       `yaml:"failures,omitempty"`
}

// OK reports whether no sample failed.
func (r Report) OK() bool { return r.Failed == 0 }

// Run samples cfg, evaluates each triple with hyp1f1.Hyp1F1 and hyp1f1.Slow,
// and aggregates the comparison. opts are passed to both evaluators; obs,
// when non-nil, sees every Result in sample order.
//
// Errors: whatever cfg.Validate reports. Failing samples are not errors;
// check Report.OK.
//
// Complexity: O(Samples · DefaultReferenceMaxIter).
func Run(cfg Config, obs Observer, opts ...hyp1f1.Option) (Report, error) {
	samples, err := Samples(cfg)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Seed:      cfg.Seed,
		Tolerance: cfg.Tolerance,
		Samples:   len(samples),
		Regimes:   make(map[string]int),
	}
	for _, s := range samples {
		res := Compare(s, cfg.Eps, cfg.Tolerance, opts...)
		rep.Regimes[res.Regime]++

		switch res.Outcome {
		case Pass:
			rep.Passed++
		case Fail:
			rep.Failed++
			rep.Failures = append(rep.Failures, res)
		case Skip:
			rep.Skipped++
		}
		if res.Outcome != Skip && res.Error > rep.MaxError {
			rep.MaxError = res.Error
			worst := res
			rep.Worst = &worst
		}

		if obs != nil {
			obs.Observe(res)
		}
	}

	return rep, nil
}

// Compare evaluates one sample on both paths.
func Compare(s Sample, eps, tolerance float64, opts ...hyp1f1.Option) Result {
	res := Result{
		Sample:     s,
		Regime:     hyp1f1.Classify(s.A, s.B, s.Z, opts...).String(),
		Dispatcher: hyp1f1.Hyp1F1(s.A, s.B, s.Z, eps, opts...),
		Reference:  hyp1f1.Slow(s.A, s.B, s.Z, eps, opts...),
	}
	if !isFinite(res.Dispatcher) || !isFinite(res.Reference) {
		res.Error = math.NaN()
		res.Outcome = Skip

		return res
	}

	res.Error = scaledError(res.Dispatcher, res.Reference)
	if res.Error <= tolerance {
		res.Outcome = Pass
	} else {
		res.Outcome = Fail
	}

	return res
}

// scaledError is |got−want| / max(|want|, 1).
func scaledError(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(math.Abs(want), 1)
}
