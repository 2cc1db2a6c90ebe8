// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics defines the observability hooks of site generation. The
// generator records through a Recorder; the server wires the Prometheus
// implementation and everything else uses NoopRecorder.
package metrics

import "time"

// Outcome labels for generation counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Cache lookup results.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheDisabled = "disabled"
)

// Recorder receives generation metrics. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveGeneration(d time.Duration, outcome string)
	IncCacheLookup(result string)
	IncAssetSource(role, source string)
	IncPublish(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(time.Duration, string) {}
func (NoopRecorder) IncCacheLookup(string)                   {}
func (NoopRecorder) IncAssetSource(string, string)           {}
func (NoopRecorder) IncPublish(bool)                         {}
