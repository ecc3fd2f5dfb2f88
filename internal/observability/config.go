package observability

import (
	"strings"

	"github.com/smallbiznis/rentcatalog/internal/config"
)

const defaultServiceName = "rentcatalog"

// Config is the normalized view of the telemetry settings shared by the
// logger, tracer and metrics providers.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64
}

func NewConfig(cfg config.Config) Config {
	name := strings.TrimSpace(cfg.AppName)
	if name == "" {
		name = defaultServiceName
	}

	ratio := cfg.Telemetry.SamplingRatio
	if ratio < 0 || ratio > 1 {
		ratio = 1
	}

	return Config{
		ServiceName:          name,
		Environment:          strings.TrimSpace(cfg.Environment),
		Version:              strings.TrimSpace(cfg.AppVersion),
		LogLevel:             lower(cfg.Telemetry.LogLevel),
		LogFormat:            lower(cfg.Telemetry.LogFormat),
		OtelEnabled:          cfg.Telemetry.OtelEnabled,
		OtelExporterEndpoint: strings.TrimSpace(cfg.OTLPEndpoint),
		OtelExporterProtocol: lower(cfg.Telemetry.OtelProtocol),
		OtelSamplingRatio:    ratio,
	}
}

// Debug turns on gin debug mode, caller stacks and verbose gorm logging.
func (c Config) Debug() bool {
	if c.LogLevel == "debug" {
		return true
	}
	switch lower(c.Environment) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func lower(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
