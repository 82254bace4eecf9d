package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mutationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_cart_mutations_total",
	Help: "Completed cart mutations by operation.",
}, []string{"operation"})
