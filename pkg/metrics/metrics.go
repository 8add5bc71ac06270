// Package metrics registers the service's prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wms_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wms_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// ImportRecords counts records written by the spreadsheet import,
	// labelled by entity (customer|leadtime|schedule).
	ImportRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wms_import_records_total",
		Help: "Records created or updated by spreadsheet imports.",
	}, []string{"entity"})

	ImportErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wms_import_errors_total",
		Help: "Row and key errors reported by spreadsheet imports.",
	})

	ImportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wms_import_runs_total",
		Help: "Spreadsheet imports by outcome.",
	}, []string{"outcome"})

	StatusReevaluations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wms_order_status_reevaluations_total",
		Help: "Orders whose elapsed delay triggered a status re-evaluation.",
	})
)

// Middleware records count and latency per matched route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes the default registry.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
