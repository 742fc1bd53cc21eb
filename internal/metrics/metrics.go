package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_searches_total",
		Help: "Total number of offer searches by tier",
	}, []string{"tier"})

	PackagesAssembledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_packages_assembled_total",
		Help: "Total number of assembled travel packages by tier",
	}, []string{"tier"})

	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_payments_total",
		Help: "Total number of payment validations by method and result",
	}, []string{"method", "result"})

	PackageTotalPrice = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "travel_package_total_price",
		Help:    "Total price of assembled travel packages",
		Buckets: prometheus.ExponentialBuckets(10000, 2, 8),
	}, []string{"tier"})
)

func PaymentResult(paid bool) string {
	if paid {
		return "accepted"
	}
	return "declined"
}
