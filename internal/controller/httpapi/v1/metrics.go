package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// calculationsTotal counts link budget calculations by outcome.
var calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "linkbudget_calculations_total",
	Help: "Total number of link budget calculations, labeled by outcome.",
}, []string{"status"})
