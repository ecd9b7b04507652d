package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	customerCreatedTotal      prometheus.Counter
	customerUpdatedTotal      *prometheus.CounterVec
	customerDeletedTotal      prometheus.Counter
	leadEventsTotal           *prometheus.CounterVec
	customerListDuration      prometheus.Histogram
	dashboardRefreshDuration  prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
	customersTotal            prometheus.Gauge
	leadsByStatus             *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		customerCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerUpdatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_updated_total",
				Help: "Total number of customer updates by field",
			},
			[]string{"field"},
		),
		customerDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		leadEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_events_total",
				Help: "Total number of lead create/update/delete events",
			},
			[]string{"event", "status"},
		),
		customerListDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_list_duration_seconds",
				Help:    "Customer list query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		dashboardRefreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_refresh_duration_seconds",
				Help:    "Dashboard aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		customersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "customers_total",
				Help: "Current number of customers",
			},
		),
		leadsByStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "leads_by_status",
				Help: "Current number of leads per pipeline status",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "customer_created":
		m.customerCreatedTotal.Inc()
	case "customer_updated":
		if field := tags["field"]; field != "" {
			m.customerUpdatedTotal.WithLabelValues(field).Inc()
		}
	case "customer_deleted":
		m.customerDeletedTotal.Inc()
	case "lead_created", "lead_updated", "lead_deleted":
		m.leadEventsTotal.WithLabelValues(name, tags["status"]).Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_list":
		m.customerListDuration.Observe(duration.Seconds())
	case "dashboard_refresh":
		m.dashboardRefreshDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "customers_total":
		m.customersTotal.Set(value)
	case "leads_by_status":
		if status := tags["status"]; status != "" {
			m.leadsByStatus.WithLabelValues(status).Set(value)
		}
	}
}
