package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("region", "SG"),
		attribute.String("username", "alice"),
		attribute.String("operation", "list"),
	)
	require.Len(t, attrs, 2)
	assert.Equal(t, attribute.Key("region"), attrs[0].Key)
	assert.Equal(t, attribute.Key("operation"), attrs[1].Key)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.RecordCatalogQuery(ctx, "list", "")
		m.RecordTokenIssued(ctx)
		m.RecordLoginFailure(ctx, "bad_password")
		m.RecordRegistration(ctx, "created")
		m.RecordRateLimitDenied(ctx, "/token")
		m.RecordSeededPrices(ctx, 108)
	})
}

func TestNewWithNoopProvider(t *testing.T) {
	m, err := New(Config{}, noop.NewMeterProvider())
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		m.RecordCatalogQuery(context.Background(), "get", "my")
	})
}
