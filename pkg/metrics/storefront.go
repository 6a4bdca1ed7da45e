package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart and checkout activity.
type StorefrontMetrics struct {
	cartMutations *prometheus.CounterVec
	ordersPlaced  prometheus.Counter
	orderValue    prometheus.Histogram
}

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders appended to the order log.",
	})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value",
		Help:    "Order totals in base currency units.",
		Buckets: prometheus.ExponentialBuckets(100, 2.5, 8),
	})
	reg.MustRegister(cartMutations, ordersPlaced, orderValue)
	return &StorefrontMetrics{
		cartMutations: cartMutations,
		ordersPlaced:  ordersPlaced,
		orderValue:    orderValue,
	}
}

// IncCartMutation counts one cart operation (add, update, remove, clear).
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncOrderPlaced counts a successful checkout.
func (m *StorefrontMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

// ObserveOrderValue records the rounded order total.
func (m *StorefrontMetrics) ObserveOrderValue(total int64) {
	if m == nil || m.orderValue == nil {
		return
	}
	m.orderValue.Observe(float64(total))
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
