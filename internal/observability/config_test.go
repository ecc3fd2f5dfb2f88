package observability

import (
	"testing"

	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(config.Config{
		AppVersion:   " 1.2.0 ",
		Environment:  "production",
		OTLPEndpoint: " collector:4317 ",
		Telemetry: config.TelemetryConfig{
			LogLevel:      " INFO ",
			LogFormat:     "Console",
			OtelEnabled:   true,
			OtelProtocol:  "HTTP",
			SamplingRatio: 4,
		},
	})

	assert.Equal(t, "rentcatalog", cfg.ServiceName)
	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "collector:4317", cfg.OtelExporterEndpoint)
	assert.Equal(t, "http", cfg.OtelExporterProtocol)
	assert.Equal(t, 1.0, cfg.OtelSamplingRatio)
	assert.False(t, cfg.Debug())
}

func TestConfigDebug(t *testing.T) {
	assert.True(t, Config{LogLevel: "debug", Environment: "production"}.Debug())
	assert.True(t, Config{Environment: " Local "}.Debug())
	assert.False(t, Config{Environment: "staging"}.Debug())
}
