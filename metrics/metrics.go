package metrics

import (
	"net/http"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DefaultMetrics = initMetrics()
)

const metricsNamespace = "routedestinations"

type Metrics struct {
	Handler        http.Handler
	ObservedValues ObservedValues
}

type ObservedValues struct {
	LastUpdatedAt        prometheus.Gauge
	NumberOfRoutes       prometheus.Gauge
	NumberOfDestinations prometheus.Gauge

	DestinationsMapped   prometheus.Counter
	DestinationsUnmapped prometheus.Counter
	PortSyncs            prometheus.Counter
	ValidationFailures   *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
}

func initMetrics() Metrics {
	m := Metrics{
		Handler: promhttp.Handler(),
		ObservedValues: ObservedValues{
			LastUpdatedAt: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "last_updated_at", Help: "Unix timestamp indicating last successful snapshot"}),
			NumberOfRoutes: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "routes", Help: "Number of routes in the last snapshot"}),
			NumberOfDestinations: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "destinations", Help: "Number of destinations in the last snapshot"}),
			DestinationsMapped: prometheus.NewCounter(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "destinations_mapped_total", Help: "Destinations created on routes"}),
			DestinationsUnmapped: prometheus.NewCounter(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "destinations_unmapped_total", Help: "Destinations removed from routes"}),
			PortSyncs: prometheus.NewCounter(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "process_port_syncs_total", Help: "Process port recomputations pushed to the port syncer"}),
			ValidationFailures: prometheus.NewCounterVec(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "validation_failures_total", Help: "Rejected destination updates by kind"},
				[]string{"kind"}),
			NotificationFailures: prometheus.NewCounterVec(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "notification_failures_total", Help: "Failed post-commit notifications by sink"},
				[]string{"sink"}),
		},
	}

	prometheus.MustRegister(m.ObservedValues.LastUpdatedAt)
	prometheus.MustRegister(m.ObservedValues.NumberOfRoutes)
	prometheus.MustRegister(m.ObservedValues.NumberOfDestinations)
	prometheus.MustRegister(m.ObservedValues.DestinationsMapped)
	prometheus.MustRegister(m.ObservedValues.DestinationsUnmapped)
	prometheus.MustRegister(m.ObservedValues.PortSyncs)
	prometheus.MustRegister(m.ObservedValues.ValidationFailures)
	prometheus.MustRegister(m.ObservedValues.NotificationFailures)

	return m
}

func Update(snapshot *models.RouteSnapshot) {
	destinations := 0
	for _, r := range snapshot.Routes {
		destinations += len(r.Destinations)
	}
	DefaultMetrics.ObservedValues.LastUpdatedAt.SetToCurrentTime()
	DefaultMetrics.ObservedValues.NumberOfRoutes.Set(float64(len(snapshot.Routes)))
	DefaultMetrics.ObservedValues.NumberOfDestinations.Set(float64(destinations))
}

func RecordChanges(mapped, unmapped, processesSynced int) {
	DefaultMetrics.ObservedValues.DestinationsMapped.Add(float64(mapped))
	DefaultMetrics.ObservedValues.DestinationsUnmapped.Add(float64(unmapped))
	DefaultMetrics.ObservedValues.PortSyncs.Add(float64(processesSynced))
}

func RecordValidationFailure(kind string) {
	DefaultMetrics.ObservedValues.ValidationFailures.WithLabelValues(kind).Inc()
}

func RecordNotificationFailure(sink string) {
	DefaultMetrics.ObservedValues.NotificationFailures.WithLabelValues(sink).Inc()
}
