package jaeger

import (
	"fmt"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/exporters/jaeger"
)

// MustNewJaeger creates a span exporter posting to the collector at tracing.endpoint.
// Nothing is sent until the tracer provider flushes a batch.
func MustNewJaeger() *jaeger.Exporter {
	endpoint := viper.GetString("tracing.endpoint")

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(endpoint),
	))
	if err != nil {
		panic(fmt.Sprintf("Failed to create Jaeger exporter for %s: %v", endpoint, err))
	}

	return exp
}
