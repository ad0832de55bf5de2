package renderctx

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric label names
const (
	metricLabelFormat      = "format"
	metricLabelSource      = "source"
	metricLabelContentType = "content_type"
	metricLabelNone        = "none"
)

// Metrics counts negotiation outcomes and the content types served.
type Metrics struct {
	negotiations *prometheus.CounterVec
	contentTypes *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// If reg is nil, a fresh registry is used.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		negotiations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: DefaultMetricsNamespace,
				Subsystem: DefaultMetricsSubsystem,
				Name:      "format_negotiations_total",
				Help:      "Response format negotiations by resolved format and deciding signal.",
			},
			[]string{metricLabelFormat, metricLabelSource},
		),
		contentTypes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: DefaultMetricsNamespace,
				Subsystem: DefaultMetricsSubsystem,
				Name:      "content_types_total",
				Help:      "Responses by content type derived from the render context.",
			},
			[]string{metricLabelContentType},
		),
	}

	if err := reg.Register(m.negotiations); err != nil {
		return nil, err
	}
	if err := reg.Register(m.contentTypes); err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveNegotiation counts one negotiation outcome.
func (m *Metrics) ObserveNegotiation(format Format, source FormatSource) {
	label := string(format)
	if format == FormatNone {
		label = metricLabelNone
	}
	m.negotiations.WithLabelValues(label, string(source)).Inc()
}

// ObserveContentType counts one response served with contentType.
func (m *Metrics) ObserveContentType(contentType string) {
	m.contentTypes.WithLabelValues(contentType).Inc()
}
