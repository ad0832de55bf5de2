package renderctx

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Run("registers collectors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := NewMetrics(reg)
		require.NoError(t, err)

		m.ObserveNegotiation(FormatXML, FormatSourceAccept)
		m.ObserveContentType(ContentTypeXML)

		count, err := testutil.GatherAndCount(reg,
			"renderctx_http_format_negotiations_total",
			"renderctx_http_content_types_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("nil registerer", func(t *testing.T) {
		m, err := NewMetrics(nil)
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := NewMetrics(reg)
		require.NoError(t, err)

		_, err = NewMetrics(reg)
		require.Error(t, err)
		var already prometheus.AlreadyRegisteredError
		assert.True(t, errors.As(err, &already))
	})
}

func TestMetrics_ObserveNegotiation(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveNegotiation(FormatNone, FormatSourceNone)
	m.ObserveNegotiation(FormatJSON, FormatSourceForced)
	m.ObserveNegotiation(FormatJSON, FormatSourceForced)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.negotiations.WithLabelValues(metricLabelNone, string(FormatSourceNone))))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.negotiations.WithLabelValues(string(FormatJSON), string(FormatSourceForced))))
}
