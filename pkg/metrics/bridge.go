package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BridgeMetrics records provider-facing traffic.
type BridgeMetrics struct {
	dispatch *prometheus.CounterVec
	webhook  *prometheus.CounterVec
	proxy    *prometheus.CounterVec
}

// NewBridgeMetrics registers the bridge metrics on the provided registerer.
func NewBridgeMetrics(reg prometheus.Registerer) *BridgeMetrics {
	if reg == nil {
		return &BridgeMetrics{}
	}
	dispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_dispatch_total",
		Help: "Provider API dispatches by matched route identifier.",
	}, []string{"route"})
	webhook := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "status_webhook_total",
		Help: "Order status webhook outcomes.",
	}, []string{"result"})
	proxy := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "widget_proxy_total",
		Help: "Widget proxy forwards by HTTP method.",
	}, []string{"method"})
	reg.MustRegister(dispatch, webhook, proxy)
	return &BridgeMetrics{
		dispatch: dispatch,
		webhook:  webhook,
		proxy:    proxy,
	}
}

// IncDispatch increments the dispatch counter for the matched identifier.
func (m *BridgeMetrics) IncDispatch(route string) {
	if m == nil || m.dispatch == nil {
		return
	}
	m.dispatch.WithLabelValues(normalizeLabel(route)).Inc()
}

// IncWebhook increments the webhook outcome counter.
func (m *BridgeMetrics) IncWebhook(result string) {
	if m == nil || m.webhook == nil {
		return
	}
	m.webhook.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncProxy increments the proxy forward counter.
func (m *BridgeMetrics) IncProxy(method string) {
	if m == nil || m.proxy == nil {
		return
	}
	m.proxy.WithLabelValues(normalizeLabel(method)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
