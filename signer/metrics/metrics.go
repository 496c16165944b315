package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricName string

const (
	MetricNameIssuedVouchers   MetricName = "issued_vouchers"
	MetricNameRejectedVouchers MetricName = "rejected_vouchers"
	MetricNameReplayedNonces   MetricName = "replayed_nonces"
)

func (m MetricName) String() string {
	return string(m)
}

const (
	NamespaceSigner = "voucher_signer"
	SubsystemIssuer = "issuer"
)

// Metrics holds the signer counters in a private registry.
type Metrics struct {
	registry *prometheus.Registry
	counters map[MetricName]prometheus.Counter
}

func NewMetrics() *Metrics {
	counters := map[MetricName]prometheus.Counter{
		MetricNameIssuedVouchers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NamespaceSigner,
			Subsystem: SubsystemIssuer,
			Name:      MetricNameIssuedVouchers.String(),
			Help:      "Number of signed vouchers",
		}),
		MetricNameRejectedVouchers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NamespaceSigner,
			Subsystem: SubsystemIssuer,
			Name:      MetricNameRejectedVouchers.String(),
			Help:      "Number of voucher requests rejected as invalid",
		}),
		MetricNameReplayedNonces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: NamespaceSigner,
			Subsystem: SubsystemIssuer,
			Name:      MetricNameReplayedNonces.String(),
			Help:      "Number of voucher requests reusing an issued nonce",
		}),
	}
	registry := prometheus.NewRegistry()
	for _, counter := range counters {
		registry.MustRegister(counter)
	}
	return &Metrics{registry: registry, counters: counters}
}

func (m *Metrics) IncrCounter(name MetricName) {
	if counter, ok := m.counters[name]; ok {
		counter.Inc()
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RegisterHandlers(r *mux.Router) {
	r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}
