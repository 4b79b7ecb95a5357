package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/corray333/grubdash/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MustInit loads .env (if any) and config.yaml into viper and installs the default logger.
func MustInit() {
	if err := godotenv.Load("./.env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("error while loading .env file: " + err.Error())
	}

	SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/grubdash")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("error while reading config file: " + err.Error())
		}
	}
	SetupLogger()
}

// SetDefaults registers a value for every key the service reads,
// so it starts without a config file.
func SetDefaults() {
	viper.SetDefault("server.http.port", "5001")
	viper.SetDefault("server.http.read_timeout_seconds", 10)
	viper.SetDefault("server.http.write_timeout_seconds", 10)
	viper.SetDefault("server.http.idle_timeout_seconds", 60)
	viper.SetDefault("server.http.cors.allowed_origins", []string{"*"})
	viper.SetDefault("server.http.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("server.http.cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-Id"})
	viper.SetDefault("server.http.cors.exposed_headers", []string{"X-Request-Id"})
	viper.SetDefault("server.http.cors.allow_credentials", false)
	viper.SetDefault("server.http.cors.max_age", 300)
	viper.SetDefault("server.shutdown_timeout_seconds", 10)

	viper.SetDefault("logger.level", "info")

	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("seed.path", "")

	viper.SetDefault("rabbitmq.enabled", false)
	viper.SetDefault("rabbitmq.host", "localhost")
	viper.SetDefault("rabbitmq.port", 5672)
	viper.SetDefault("rabbitmq.exchange", "")
	viper.SetDefault("rabbitmq.queue", "grubdash.events")
	viper.SetDefault("rabbitmq.outbox.poll_interval_seconds", 1)
	viper.SetDefault("rabbitmq.outbox.batch_size", 100)
	viper.SetDefault("rabbitmq.outbox.retry_interval_seconds", 30)
	viper.SetDefault("rabbitmq.outbox.max_retries", 5)

	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.endpoint", "http://localhost:14268/api/traces")
	viper.SetDefault("tracing.service_name", "grubdash")
}

func SetupLogger() {
	handler := logger.NewHandler(&slog.HandlerOptions{
		Level: logger.ParseLevel(viper.GetString("logger.level")),
	})
	log := slog.New(handler)
	slog.SetDefault(log)
}
