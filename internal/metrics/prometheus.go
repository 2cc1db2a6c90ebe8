// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sitesmith"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	generationDuration *prom.HistogramVec
	generations        *prom.CounterVec
	cacheLookups       *prom.CounterVec
	assetSources       *prom.CounterVec
	publishes          *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg. A
// nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		generationDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of site generation calls",
			Buckets:   prom.DefBuckets,
		}, []string{"outcome"}),
		generations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Site generations by outcome",
		}, []string{"outcome"}),
		cacheLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Rendered site cache lookups by result",
		}, []string{"result"}),
		assetSources: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "asset_sources_total",
			Help:      "Resolved site images by role and source",
		}, []string{"role", "source"}),
		publishes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "publishes_total",
			Help:      "Object storage publishes by result",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.generationDuration, pr.generations, pr.cacheLookups, pr.assetSources, pr.publishes)
	return pr
}

func (p *PrometheusRecorder) ObserveGeneration(d time.Duration, outcome string) {
	p.generationDuration.WithLabelValues(outcome).Observe(d.Seconds())
	p.generations.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncCacheLookup(result string) {
	p.cacheLookups.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) IncAssetSource(role, source string) {
	p.assetSources.WithLabelValues(role, source).Inc()
}

func (p *PrometheusRecorder) IncPublish(success bool) {
	result := "success"
	if !success {
		result = "failed"
	}
	p.publishes.WithLabelValues(result).Inc()
}

// NewRegistry returns a registry with the Go runtime and process collectors
// already registered.
func NewRegistry() *prom.Registry {
	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// HTTPHandler returns an http.Handler that serves the metrics of reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
