package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/flexo/backend/internal/domain/billing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/shared"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metric names
const (
	MetricHTTPRequestsTotal      = "flexo_http_requests_total"
	MetricHTTPRequestDuration    = "flexo_http_request_duration_seconds"
	MetricOrdersCreatedTotal     = "flexo_service_orders_created_total"
	MetricOrderTransitionsTotal  = "flexo_service_order_transitions_total"
	MetricReplacementsTotal      = "flexo_replacements_total"
	MetricLossAmountTotal        = "flexo_replacement_loss_amount_total"
	MetricInvoiceTransitionTotal = "flexo_invoice_transitions_total"
	MetricInvoicedAmountTotal    = "flexo_invoiced_amount_total"
	MetricDocumentsRenderedTotal = "flexo_documents_rendered_total"
)

// HTTPDurationBuckets covers fast JSON endpoints up to slow PDF renders
var HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics owns the registry scraped at /metrics.
//
// Safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	ordersCreated     *prometheus.CounterVec
	orderTransitions  *prometheus.CounterVec
	replacements      *prometheus.CounterVec
	lossAmount        *prometheus.CounterVec
	invoiceTransition *prometheus.CounterVec
	invoicedAmount    prometheus.Counter
	documentsRendered *prometheus.CounterVec
}

// NewMetrics builds a registry with the Go runtime and process collectors
// plus the HTTP and business metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPRequestDuration,
			Help:    "HTTP request latency in seconds",
			Buckets: HTTPDurationBuckets,
		}, []string{"method", "route"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOrdersCreatedTotal,
			Help: "Service orders opened by product type",
		}, []string{"product_type"}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOrderTransitionsTotal,
			Help: "Service order status transitions by target status",
		}, []string{"status"}),
		replacements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricReplacementsTotal,
			Help: "Replacement orders by responsible party",
		}, []string{"responsible"}),
		lossAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricLossAmountTotal,
			Help: "Value of replacement orders in BRL by responsible party",
		}, []string{"responsible"}),
		invoiceTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricInvoiceTransitionTotal,
			Help: "Invoice status transitions by target status",
		}, []string{"status"}),
		invoicedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricInvoicedAmountTotal,
			Help: "Total of issued invoices in BRL",
		}),
		documentsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricDocumentsRenderedTotal,
			Help: "Documents served by kind and whether the cache answered",
		}, []string{"kind", "cached"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.ordersCreated,
		m.orderTransitions,
		m.replacements,
		m.lossAmount,
		m.invoiceTransition,
		m.invoicedAmount,
		m.documentsRendered,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request. route is the matched pattern,
// never the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDocument records a served PDF or spreadsheet
func (m *Metrics) ObserveDocument(kind string, cached bool) {
	m.documentsRendered.WithLabelValues(kind, strconv.FormatBool(cached)).Inc()
}

// EventMetrics feeds the business counters from domain events
type EventMetrics struct {
	metrics *Metrics
}

// NewEventMetrics creates the handler to subscribe on the event bus
func NewEventMetrics(m *Metrics) *EventMetrics {
	return &EventMetrics{metrics: m}
}

// EventTypes lists the production and billing events counted
func (h *EventMetrics) EventTypes() []string {
	return []string{
		production.EventTypeServiceOrderCreated,
		production.EventTypeServiceOrderStatusChanged,
		production.EventTypeReplacementCreated,
		billing.EventTypeInvoiceIssued,
		billing.EventTypeInvoicePaid,
		billing.EventTypeInvoiceCancelled,
	}
}

// Handle never fails; unknown events are ignored
func (h *EventMetrics) Handle(_ context.Context, event shared.DomainEvent) error {
	m := h.metrics
	switch e := event.(type) {
	case *production.ServiceOrderCreatedEvent:
		m.ordersCreated.WithLabelValues(string(e.ProductType)).Inc()
	case *production.ServiceOrderStatusChangedEvent:
		m.orderTransitions.WithLabelValues(string(e.NewStatus)).Inc()
	case *production.ReplacementCreatedEvent:
		responsible := string(e.Responsible)
		m.replacements.WithLabelValues(responsible).Inc()
		m.lossAmount.WithLabelValues(responsible).Add(e.Amount.InexactFloat64())
	case *billing.InvoiceStatusChangedEvent:
		m.invoiceTransition.WithLabelValues(string(e.Status)).Inc()
		if e.EventType() == billing.EventTypeInvoiceIssued {
			m.invoicedAmount.Add(e.Total.InexactFloat64())
		}
	}
	return nil
}

var _ shared.EventHandler = (*EventMetrics)(nil)
