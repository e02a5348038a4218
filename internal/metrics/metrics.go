package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	ListingsServed    prometheus.Counter
	ProductsReturned  prometheus.Counter
	StoreReadFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics. Call it once per process;
// promauto registers against the default registry.
func New() *Metrics {
	return &Metrics{
		ListingsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catalog_listings_served_total",
			Help: "Total number of catalog listing requests answered successfully",
		}),
		ProductsReturned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catalog_products_returned_total",
			Help: "Total number of products returned across all listings",
		}),
		StoreReadFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "catalog_store_read_failures_total",
			Help: "Total number of listing reads that failed against the document store",
		}),
	}
}

// IncListingsServed increments the served-listings counter by 1.
func (m *Metrics) IncListingsServed() {
	m.ListingsServed.Inc()
}

// AddProductsReturned adds the size of one listing result to the counter.
func (m *Metrics) AddProductsReturned(n int) {
	m.ProductsReturned.Add(float64(n))
}

// IncStoreReadFailures increments the store-failure counter by 1.
func (m *Metrics) IncStoreReadFailures() {
	m.StoreReadFailures.Inc()
}
