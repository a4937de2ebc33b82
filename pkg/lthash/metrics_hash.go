package lthash

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	hashPrometheusMetrics sync.Once

	hashOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "lthash",
			Name:      "hash_operations_total",
			Help:      "Number of operations performed against homomorphic set hashes.",
		},
		[]string{"name", "operation"})
	hashElementSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "lthash",
			Name:      "hash_element_size_bytes",
			Help:      "Size of elements added to or removed from homomorphic set hashes, in bytes.",
			Buckets:   append([]float64{0}, prometheus.ExponentialBuckets(1.0, 2.0, 25)...),
		},
		[]string{"name", "operation"})
)

type metricsHash struct {
	base Hash

	addOperations      prometheus.Counter
	addSizeBytes       prometheus.Observer
	removeOperations   prometheus.Counter
	removeSizeBytes    prometheus.Observer
	sumOperations      prometheus.Counter
	setStateOperations prometheus.Counter
}

// NewMetricsHash creates a decorator for Hash that exposes the number
// of operations and the size of elements as Prometheus metrics.
func NewMetricsHash(base Hash, name string) Hash {
	hashPrometheusMetrics.Do(func() {
		prometheus.MustRegister(hashOperationsTotal)
		prometheus.MustRegister(hashElementSizeBytes)
	})

	return &metricsHash{
		base: base,

		addOperations:      hashOperationsTotal.WithLabelValues(name, "Add"),
		addSizeBytes:       hashElementSizeBytes.WithLabelValues(name, "Add"),
		removeOperations:   hashOperationsTotal.WithLabelValues(name, "Remove"),
		removeSizeBytes:    hashElementSizeBytes.WithLabelValues(name, "Remove"),
		sumOperations:      hashOperationsTotal.WithLabelValues(name, "Sum"),
		setStateOperations: hashOperationsTotal.WithLabelValues(name, "SetState"),
	}
}

func (h *metricsHash) Add(element []byte) {
	h.addOperations.Inc()
	h.addSizeBytes.Observe(float64(len(element)))
	h.base.Add(element)
}

func (h *metricsHash) Remove(element []byte) {
	h.removeOperations.Inc()
	h.removeSizeBytes.Observe(float64(len(element)))
	h.base.Remove(element)
}

func (h *metricsHash) Sum(prefix []byte) []byte {
	h.sumOperations.Inc()
	return h.base.Sum(prefix)
}

func (h *metricsHash) SetState(state []byte) {
	h.setStateOperations.Inc()
	h.base.SetState(state)
}
