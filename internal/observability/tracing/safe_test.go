package tracing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSafeAttributesDropsCredentials(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("http.route", "/token"),
		attribute.String("password", "hunter2"),
		attribute.String("auth.token", "abc"),
	)

	assert.Len(t, attrs, 1)
	assert.Equal(t, attribute.Key("http.route"), attrs[0].Key)
}

func TestSafeError(t *testing.T) {
	assert.Nil(t, SafeError(nil))

	long := errors.New(strings.Repeat("x", 1000))
	assert.Len(t, SafeError(long).Error(), maxErrorMessage)

	assert.Equal(t, "redacted", SafeError(errors.New("bad password for bob")).Error())
	assert.Equal(t, "connection refused", SafeError(errors.New(" connection refused ")).Error())
}

func TestSamplingRatioClamp(t *testing.T) {
	assert.Equal(t, 0.0, samplingRatio(-1))
	assert.Equal(t, 1.0, samplingRatio(3))
	assert.Equal(t, 0.25, samplingRatio(0.25))
}
