package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrCounter(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter(MetricNameIssuedVouchers)
	m.IncrCounter(MetricNameIssuedVouchers)
	m.IncrCounter(MetricName("unknown"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.counters[MetricNameIssuedVouchers]))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.counters[MetricNameReplayedNonces]))

	// a second instance has its own registry
	other := NewMetrics()
	assert.Equal(t, float64(0), testutil.ToFloat64(other.counters[MetricNameIssuedVouchers]))
}

func TestRegisterHandlers(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter(MetricNameRejectedVouchers)
	r := mux.NewRouter()
	m.RegisterHandlers(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "voucher_signer_issuer_rejected_vouchers 1"))
}
