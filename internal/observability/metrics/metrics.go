package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	catalogQueries  metric.Int64Counter
	tokensIssued    metric.Int64Counter
	loginFailures   metric.Int64Counter
	registrations   metric.Int64Counter
	rateLimitDenied metric.Int64Counter
	seededPriceRows metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "rentcatalog"
	}
	meter := provider.Meter(name)

	catalogQueries, err := meter.Int64Counter("rentcatalog_catalog_queries_total",
		metric.WithDescription("Product catalog reads by operation"))
	if err != nil {
		return nil, err
	}
	tokensIssued, err := meter.Int64Counter("rentcatalog_tokens_issued_total")
	if err != nil {
		return nil, err
	}
	loginFailures, err := meter.Int64Counter("rentcatalog_login_failures_total")
	if err != nil {
		return nil, err
	}
	registrations, err := meter.Int64Counter("rentcatalog_registrations_total")
	if err != nil {
		return nil, err
	}
	rateLimitDenied, err := meter.Int64Counter("rentcatalog_rate_limit_denied_total")
	if err != nil {
		return nil, err
	}
	seededPriceRows, err := meter.Int64Counter("rentcatalog_seeded_price_rows_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		catalogQueries:  catalogQueries,
		tokensIssued:    tokensIssued,
		loginFailures:   loginFailures,
		registrations:   registrations,
		rateLimitDenied: rateLimitDenied,
		seededPriceRows: seededPriceRows,
	}, nil
}

// RecordCatalogQuery counts list and detail reads. region is the filter code
// or empty when unfiltered.
func (m *Metrics) RecordCatalogQuery(ctx context.Context, operation, region string) {
	if m == nil {
		return
	}
	if region == "" {
		region = "all"
	}
	attrs := FilterAttributes(
		attribute.String("operation", strings.TrimSpace(operation)),
		attribute.String("region", strings.ToUpper(strings.TrimSpace(region))),
	)
	m.catalogQueries.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *Metrics) RecordTokenIssued(ctx context.Context) {
	if m == nil {
		return
	}
	m.tokensIssued.Add(ctx, 1)
}

// RecordLoginFailure counts rejected credential checks by reason.
func (m *Metrics) RecordLoginFailure(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("reason", strings.TrimSpace(reason)))
	m.loginFailures.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *Metrics) RecordRegistration(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("outcome", strings.TrimSpace(outcome)))
	m.registrations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordRateLimitDenied increments rate limit deny counts.
func (m *Metrics) RecordRateLimitDenied(ctx context.Context, endpoint string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("endpoint", strings.TrimSpace(endpoint)))
	m.rateLimitDenied.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (m *Metrics) RecordSeededPrices(ctx context.Context, rows int) {
	if m == nil || rows <= 0 {
		return
	}
	m.seededPriceRows.Add(ctx, int64(rows))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"operation":   {},
	"region":      {},
	"endpoint":    {},
	"status_code": {},
	"reason":      {},
	"outcome":     {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
