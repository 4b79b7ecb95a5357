package jaeger

import (
	"context"
	"testing"

	"github.com/spf13/viper"
)

func TestMustNewJaeger(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("tracing.endpoint", "http://127.0.0.1:14268/api/traces")

	exp := MustNewJaeger()
	if exp == nil {
		t.Fatal("MustNewJaeger() returned nil")
	}
	if err := exp.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
