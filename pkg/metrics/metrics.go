package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream request outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeRejected       = "rejected"
	OutcomeTransportError = "transport_error"
)

var (
	RecordsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weather_records_created_total",
		Help: "Total number of weather records created",
	})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_upstream_requests_total",
		Help: "Total number of weather API requests by outcome",
	}, []string{"outcome"})

	RecordsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "weather_records_stored",
		Help: "Number of weather records currently held in the store",
	})
)
