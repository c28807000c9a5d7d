package data

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pageSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "offsetpager_page_results",
	Help:    "Number of records returned per page",
	Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
}, []string{"listing"})
