// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/kummer/backtest"
)

// metrics holds one command run's collectors on a private registry.
type metrics struct {
	reg *prometheus.Registry

	evalLatency      *prometheus.HistogramVec
	backtestSamples  *prometheus.CounterVec
	backtestMaxError prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),

		// evalLatency measures single Hyp1F1 calls.
		// Labels: regime
		evalLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kummer",
			Subsystem: "eval",
			Name:      "latency_seconds",
			Help:      "Latency of single M(a,b,z) evaluations in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-8, 4, 10),
		}, []string{"regime"}),

		// backtestSamples counts compared samples.
		// Labels: regime, outcome (pass, fail, skip)
		backtestSamples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kummer",
			Subsystem: "backtest",
			Name:      "samples_total",
			Help:      "Back-test samples by regime and outcome",
		}, []string{"regime", "outcome"}),

		backtestMaxError: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "kummer",
			Subsystem: "backtest",
			Name:      "max_error",
			Help:      "Largest scaled dispatcher/reference error of the run",
		}),
	}
	m.reg.MustRegister(m.evalLatency, m.backtestSamples, m.backtestMaxError)

	return m
}

func (m *metrics) observeLatency(regime string, d time.Duration) {
	m.evalLatency.WithLabelValues(regime).Observe(d.Seconds())
}

// Observe implements backtest.Observer.
func (m *metrics) Observe(r backtest.Result) {
	m.backtestSamples.WithLabelValues(r.Regime, r.Outcome.String()).Inc()
}

func (m *metrics) setMaxError(v float64) {
	m.backtestMaxError.Set(v)
}

// dump writes every gathered family in the text exposition format.
func (m *metrics) dump(w io.Writer) error {
	families, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
