package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "releng_sop_catalog_cache_lookups_total",
		Help: "Catalog cache lookups by result (hit or miss)",
	},
	[]string{"result"},
)
