package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStorefrontMetricsRecord(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncCartMutation("add")
	m.IncCartMutation("add")
	m.IncCartMutation("")
	m.IncOrderPlaced()
	m.ObserveOrderValue(1534)

	if got := testutil.ToFloat64(m.cartMutations.WithLabelValues("add")); got != 2 {
		t.Fatalf("expected 2 add mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.cartMutations.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty op to count as unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.ordersPlaced); got != 1 {
		t.Fatalf("expected 1 order placed, got %v", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *StorefrontMetrics
	m.IncCartMutation("add")
	m.IncOrderPlaced()
	m.ObserveOrderValue(10)

	empty := NewStorefrontMetrics(nil)
	empty.IncCartMutation("add")
	empty.IncOrderPlaced()
	empty.ObserveOrderValue(10)
}
