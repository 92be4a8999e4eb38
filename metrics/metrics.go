// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-nps/models"
	"github.com/danielhkuo/quickly-nps/nps"
)

var (
	responsesDesc = prometheus.NewDesc(
		"quickly_nps_responses",
		"Stored survey responses by NPS category",
		[]string{"category"},
		nil,
	)
	scoreDesc = prometheus.NewDesc(
		"quickly_nps_score",
		"Current Net Promoter Score; absent while there are no responses",
		nil,
		nil,
	)
)

// Source loads the current response collection
type Source interface {
	LoadAll(ctx context.Context) []models.Response
}

// StatsCollector is a custom Prometheus collector that recomputes the
// survey statistics from the store on each scrape.
type StatsCollector struct {
	source Source
}

// Describe sends the metric descriptors to the channel.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- responsesDesc
	ch <- scoreDesc
}

// Collect loads all responses and emits category counts and the NPS.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := nps.ComputeStats(c.source.LoadAll(context.Background()))

	for category, count := range map[nps.Category]int{
		nps.Promoter:  stats.PromoterCount,
		nps.Passive:   stats.PassiveCount,
		nps.Detractor: stats.DetractorCount,
	} {
		ch <- prometheus.MustNewConstMetric(responsesDesc, prometheus.GaugeValue, float64(count), string(category))
	}

	if stats.NPS.Valid {
		ch <- prometheus.MustNewConstMetric(scoreDesc, prometheus.GaugeValue, float64(stats.NPS.Value))
	}
}

// Action outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics owns a registry with the stats collector and action counters
type Metrics struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
}

// New creates a registry wired to source
func New(source Source) *Metrics {
	reg := prometheus.NewRegistry()

	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickly_nps_actions_total",
		Help: "Survey actions by kind and outcome",
	}, []string{"action", "outcome"})

	reg.MustRegister(
		&StatsCollector{source: source},
		actions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{registry: reg, actions: actions}
}

// RecordAction counts a submit, export, or clear outcome. Safe on a nil receiver.
func (m *Metrics) RecordAction(action, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(action, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
