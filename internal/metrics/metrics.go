// Package metrics holds the Prometheus collectors shared by the hosts.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session Metrics
var (
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	SessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsTotal,
			Help: HelpTextSessionsTotal,
		},
	)

	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelTrigger, LabelResult},
	)
)

// Farm Metrics
var (
	DaysCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDaysCompleted,
			Help: HelpTextDaysCompleted,
		},
		[]string{LabelForced},
	)

	GoldShipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldShipped,
			Help: HelpTextGoldShipped,
		},
	)

	CropsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
	)
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// RecordDay counts one finished day and what it produced.
func RecordDay(forced bool, earnings, cropsHarvested int) {
	DaysCompleted.WithLabelValues(strconv.FormatBool(forced)).Inc()
	if earnings > 0 {
		GoldShipped.Add(float64(earnings))
	}
	if cropsHarvested > 0 {
		CropsHarvested.Add(float64(cropsHarvested))
	}
}

// RecordSave counts one save attempt.
func RecordSave(trigger string, ok bool) {
	result := ResultOK
	if !ok {
		result = ResultFailed
	}
	Saves.WithLabelValues(trigger, result).Inc()
}
