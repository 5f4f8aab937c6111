package xmetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestRecorder_ObservePushAndPop(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg, "xlfskl_test", "queue")

	r.ObservePush(2)
	r.ObservePopSuccess(0)
	r.ObservePopMiss()
	r.SetSize(5)

	assert.Equal(t, float64(1), counterValue(t, r.pushes))
	assert.Equal(t, float64(1), counterValue(t, r.pops))
	assert.Equal(t, float64(1), counterValue(t, r.popMisses))
	assert.Equal(t, float64(5), gaugeValue(t, r.size))
}

func TestRecorder_NilReceiverIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObservePush(1)
		r.ObservePopSuccess(1)
		r.ObservePopMiss()
		r.SetSize(1)
	})
}
