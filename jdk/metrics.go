// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package jdk

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jdk_core_validations_total",
			Help: "Total number of JDK directory validations by outcome",
		},
		[]string{"outcome"},
	)

	probeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jdk_core_probe_duration_seconds",
			Help:    "Duration of complete detect calls (validate + enrich) in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	enrichErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jdk_core_enrich_errors_total",
			Help: "Total number of swallowed enrichment failures by stage",
		},
		[]string{"stage"},
	)
)

// Validation outcomes for metric labels.
const (
	outcomeOK              = "ok"
	outcomeInvalidArgument = "invalid_argument"
	outcomeNotFound        = "not_found"
	outcomeNotAJDK         = "not_a_jdk"
)

// Enrichment stages for metric labels.
const (
	stageArchProbe    = "arch_probe"
	stageVersionParse = "version_parse"
	stageBuildProbe   = "build_probe"
)

func recordValidation(outcome string) {
	validationsTotal.WithLabelValues(outcome).Inc()
}

func recordEnrichError(stage string) {
	enrichErrorsTotal.WithLabelValues(stage).Inc()
}

func observeProbeDuration(d time.Duration) {
	probeDuration.Observe(d.Seconds())
}
