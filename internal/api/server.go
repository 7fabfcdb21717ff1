// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the gym check-in service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gympass/internal/api/auth"
	"gympass/internal/api/handler/v1handler"
	"gympass/internal/config"
	"gympass/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// AuthConfig configures session-token verification for protected endpoints.
	AuthConfig auth.Config

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AuthConfig: auth.Config{Secret: cfg.JWT.Secret, TTL: cfg.JWT.TTL},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps
}

// publicRouteSkipper reports whether a request may bypass authentication:
// registration, sessions, health, docs and operational endpoints.
func publicRouteSkipper(metricsPath string) auth.Skipper {
	return func(r *http.Request) bool {
		switch {
		case r.URL.Path == metricsPath,
			r.URL.Path == "/healthz",
			r.URL.Path == "/specs/v1.yaml",
			strings.HasPrefix(r.URL.Path, "/v1/docs/"),
			strings.HasPrefix(r.URL.Path, "/debug/pprof/"):
			return true
		case r.Method == http.MethodPost && r.URL.Path == "/v1/users":
			return true
		case r.Method == http.MethodPost && r.URL.Path == "/v1/sessions":
			return true
		}

		return false
	}
}

// withRequestMetrics records request count and duration through the otel
// meter provider backed by the Prometheus exporter.
func withRequestMetrics(mp *sdkmetric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter("gympass/api")
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("HTTP request handling time"))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration.Record(r.Context(), time.Since(start).Seconds())
	}), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes with the JWT auth middleware
// - pprof endpoints for profiling
// It also wraps the mux with CORS, recovery and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Gym Check-In Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1handler.New(deps.Deps, v1handler.Options{AuthConfig: opts.AuthConfig}).RegisterRoutes(mux)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// auth
	authMW := auth.NewMiddleware(opts.AuthConfig, publicRouteSkipper(opts.MetricsPath))
	handler := authMW.Wrap(mux)

	// request metrics
	handler, err = withRequestMetrics(mp, handler)
	if err != nil {
		return nil, err
	}

	// cors
	handler = controller.WithCORS(handler)

	// recovery
	handler = controller.WithRecovery(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
