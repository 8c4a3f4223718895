package metrics

import (
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "influencer-hub"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal          metric.Int64Counter
	HTTPRequestDuration        metric.Float64Histogram
	AuthRequestsTotal          metric.Int64Counter
	SearchRequestsTotal        metric.Int64Counter
	TemplateRenderDuration     metric.Float64Histogram
	CampaignApplicationsTotal  metric.Int64Counter
	DBQueryDurationSeconds     metric.Float64Histogram
	DBQueryErrorsTotal         metric.Int64Counter
	MalformedSessionsDiscarded metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	initErr    error
	once       sync.Once
)

// InitAppMetrics creates the instruments from the global MeterProvider. Only
// the first call has any effect, so the provider must be installed before it.
func InitAppMetrics() error {
	once.Do(func() {
		appMetrics, initErr = newAppMetrics(otel.GetMeterProvider().Meter(meterName))
	})
	return initErr
}

func newAppMetrics(meter metric.Meter) (*AppMetrics, error) {
	var errs []error
	check := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("metrics: failed to create %s: %w", name, err))
		}
	}

	m := &AppMetrics{}
	var err error

	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests completed"),
		metric.WithUnit("{request}"),
	)
	check("http_requests_total", err)

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	)
	check("http_request_duration_seconds", err)

	m.AuthRequestsTotal, err = meter.Int64Counter(
		"auth_requests_total",
		metric.WithDescription("Total number of login attempts"),
		metric.WithUnit("{request}"),
	)
	check("auth_requests_total", err)

	m.SearchRequestsTotal, err = meter.Int64Counter(
		"search_requests_total",
		metric.WithDescription("Total number of filtered campaign and conversation searches"),
		metric.WithUnit("{request}"),
	)
	check("search_requests_total", err)

	m.TemplateRenderDuration, err = meter.Float64Histogram(
		"template_render_duration_seconds",
		metric.WithDescription("Duration of template rendering in seconds"),
		metric.WithUnit("s"),
	)
	check("template_render_duration_seconds", err)

	m.CampaignApplicationsTotal, err = meter.Int64Counter(
		"campaign_applications_total",
		metric.WithDescription("Total number of campaign applications"),
		metric.WithUnit("{application}"),
	)
	check("campaign_applications_total", err)

	m.DBQueryDurationSeconds, err = meter.Float64Histogram(
		"db_query_duration_seconds",
		metric.WithDescription("Duration of database queries in seconds"),
		metric.WithUnit("s"),
	)
	check("db_query_duration_seconds", err)

	m.DBQueryErrorsTotal, err = meter.Int64Counter(
		"db_query_errors_total",
		metric.WithDescription("Total number of database query errors"),
		metric.WithUnit("{error}"),
	)
	check("db_query_errors_total", err)

	m.MalformedSessionsDiscarded, err = meter.Int64Counter(
		"malformed_sessions_discarded_total",
		metric.WithDescription("Total number of stored sessions rejected on restore"),
		metric.WithUnit("{session}"),
	)
	check("malformed_sessions_discarded_total", err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}

// Get returns the instruments, creating them from the global provider on
// first use. Tests that never install a provider get no-op instruments.
func Get() *AppMetrics {
	if err := InitAppMetrics(); err != nil {
		panic(err)
	}
	return appMetrics
}
