package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prom.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveGeneration(120*time.Millisecond, OutcomeSuccess)
	pr.ObserveGeneration(80*time.Millisecond, OutcomeSuccess)
	pr.IncCacheLookup(CacheHit)
	pr.IncAssetSource("logo", "placeholder")
	pr.IncPublish(false)

	tests := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"sitesmith_generations_total", map[string]string{"outcome": "success"}, 2},
		{"sitesmith_cache_lookups_total", map[string]string{"result": "hit"}, 1},
		{"sitesmith_asset_sources_total", map[string]string{"role": "logo", "source": "placeholder"}, 1},
		{"sitesmith_publishes_total", map[string]string{"result": "failed"}, 1},
	}
	for _, tt := range tests {
		if got := counterValue(t, reg, tt.name, tt.labels); got != tt.want {
			t.Errorf("%s%v = %v, want %v", tt.name, tt.labels, got, tt.want)
		}
	}
}

func TestHTTPHandler(t *testing.T) {
	reg := NewRegistry()
	NewPrometheusRecorder(reg).IncCacheLookup(CacheMiss)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `sitesmith_cache_lookups_total{result="miss"} 1`) {
		t.Errorf("cache counter missing from scrape:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("runtime collector missing from scrape")
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGeneration(time.Second, OutcomeFailed)
	r.IncCacheLookup(CacheDisabled)
	r.IncAssetSource("logo", "stub")
	r.IncPublish(true)
}
