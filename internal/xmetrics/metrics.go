// Package xmetrics wires the skip-list queue's contention behavior into
// Prometheus. It is a thin, allocation-free recorder: skl.Queue calls it on
// the hot path, so every method must be safe to call without a lock and
// cheap enough not to distort the very contention it measures.
package xmetrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder is the metrics surface skl.Queue depends on. Nil-receiver calls
// are safe no-ops so a queue built without WithMetrics pays nothing.
type Recorder struct {
	pushes      prometheus.Counter
	pops        prometheus.Counter
	popMisses   prometheus.Counter
	retries     *prometheus.CounterVec
	size        prometheus.Gauge
	retryLength prometheus.Histogram
}

// NewRecorder registers a fresh set of collectors under the given
// Prometheus namespace/subsystem and returns a Recorder ready to be handed
// to skl.WithMetrics. Callers that already run a registry per-queue should
// pass a dedicated *prometheus.Registry; the default registerer is used
// only when reg is nil.
func NewRecorder(reg prometheus.Registerer, namespace, subsystem string) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "pushes_total",
			Help: "Completed Push operations.",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "pops_total",
			Help: "Successful TryPop claims.",
		}),
		popMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "pop_misses_total",
			Help: "TryPop calls that returned false (empty, busy, or lost claim).",
		}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "cas_retries_total",
			Help: "CAS-loss retries observed per operation kind.",
		}, []string{"op"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "size",
			Help: "Approximate element count.",
		}),
		retryLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem, Name: "op_retry_length",
			Help:    "Attempts (CAS-loss retries plus one, upper-level link retries included) a single Push or successful TryPop took.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	reg.MustRegister(r.pushes, r.pops, r.popMisses, r.retries, r.size, r.retryLength)
	return r
}

func (r *Recorder) ObservePush(retries int) {
	if r == nil {
		return
	}
	r.pushes.Inc()
	r.retries.WithLabelValues("push").Add(float64(retries))
	r.retryLength.Observe(float64(retries + 1))
}

func (r *Recorder) ObservePopSuccess(retries int) {
	if r == nil {
		return
	}
	r.pops.Inc()
	r.retries.WithLabelValues("pop").Add(float64(retries))
	r.retryLength.Observe(float64(retries + 1))
}

func (r *Recorder) ObservePopMiss() {
	if r == nil {
		return
	}
	r.popMisses.Inc()
}

func (r *Recorder) SetSize(n int64) {
	if r == nil {
		return
	}
	r.size.Set(float64(n))
}
