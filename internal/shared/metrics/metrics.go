package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promhttppkg "github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	FieldErrorCode = "error_code"
	FieldReport    = "report"
	FieldOperation = "operation"

	ValueNoError = ""

	Namespace     = "function_insights"
	SubIngestion  = "ingestion"
	SubStats      = "stats"
	SubIndexCache = "index_cache"
	SubRegistry   = "registry"
	SubStream     = "stream"
	SubHTTP       = "http"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// GaugeOpts is a type alias for prometheus.GaugeOpts.
type GaugeOpts = prometheus.GaugeOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// NewCounterVec creates a CounterVec registered with the default registry.
var NewCounterVec = promauto.NewCounterVec

// NewCounter creates a Counter registered with the default registry.
var NewCounter = promauto.NewCounter

// NewGauge creates a Gauge registered with the default registry.
var NewGauge = promauto.NewGauge

// NewHistogramVec creates a HistogramVec registered with the default registry.
var NewHistogramVec = promauto.NewHistogramVec

type promHTTP struct{}

// Handler returns an http.Handler for the Prometheus metrics endpoint.
func (promHTTP) Handler() http.Handler {
	return promhttppkg.Handler()
}

// PromHTTP exposes the promhttp handler as metrics.PromHTTP.Handler().
var PromHTTP = promHTTP{}
