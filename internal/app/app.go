package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corray333/grubdash/internal/dal/interfaces/ieventrepo"
	"github.com/corray333/grubdash/internal/dal/memory"
	"github.com/corray333/grubdash/internal/dal/rabbitmq"
	"github.com/corray333/grubdash/internal/dal/repositories/events"
	"github.com/corray333/grubdash/internal/dal/seed"
	"github.com/corray333/grubdash/internal/otel"
	"github.com/corray333/grubdash/internal/service/idgen"
	"github.com/corray333/grubdash/internal/service/services/dishsvc"
	"github.com/corray333/grubdash/internal/service/services/ordersvc"
	httptransport "github.com/corray333/grubdash/internal/transport/http"
	outboxworker "github.com/corray333/grubdash/internal/worker/outbox"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// App represents the application.
type App struct {
	dishSvc        *dishsvc.DishService
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	rabbitmqClient *rabbitmq.Client
	outboxWorker   *outboxworker.Worker
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	data := mustLoadSeed()

	ids := idgen.New()
	ids.Observe(data.IDs()...)

	app := &App{}

	if viper.GetBool("tracing.enabled") {
		app.otelController = otel.MustInitOtel()
	}

	// Services write events to the outbox; the worker relays them to RabbitMQ.
	var publisher ieventrepo.IEventRepository
	if viper.GetBool("rabbitmq.enabled") {
		app.rabbitmqClient = rabbitmq.MustNewClient()
		broker := events.NewRabbitMQRepository(
			app.rabbitmqClient,
			viper.GetString("rabbitmq.exchange"),
			viper.GetString("rabbitmq.queue"),
		)
		outboxRepo := memory.NewOutboxRepository()
		app.outboxWorker = outboxworker.NewWorker(outboxRepo, broker)
		publisher = outboxRepo
	}

	app.dishSvc = dishsvc.MustNewDishService(
		dishsvc.WithRepository(memory.NewDishRepository(data.Dishes...)),
		dishsvc.WithIDGenerator(ids),
		dishsvc.WithEventPublisher(publisher),
	)
	app.orderSvc = ordersvc.MustNewOrderService(
		ordersvc.WithRepository(memory.NewOrderRepository(data.Orders...)),
		ordersvc.WithIDGenerator(ids),
		ordersvc.WithEventPublisher(publisher),
	)

	app.transport = httptransport.NewHTTPTransport(app.dishSvc, app.orderSvc)
	app.transport.RegisterRoutes()

	slog.Info("Application initialized",
		"dishes", len(data.Dishes),
		"orders", len(data.Orders),
		"events", app.rabbitmqClient != nil,
		"tracing", app.otelController != nil,
	)

	return app
}

func mustLoadSeed() seed.Data {
	if !viper.GetBool("seed.enabled") {
		return seed.Data{}
	}

	data, err := seed.Load(viper.GetString("seed.path"))
	if err != nil {
		panic(fmt.Sprintf("Failed to load seed data: %v", err))
	}

	return data
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting HTTP server", "port", viper.GetString("server.http.port"))
		if err := a.transport.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	if a.outboxWorker != nil {
		g.Go(func() error {
			a.outboxWorker.Start(gctx)

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")

		return a.stopTransport()
	})

	if err := g.Wait(); err != nil {
		slog.Error("Application stopped with error", "error", err)
	}

	a.closeResources()

	slog.Info("Application shutdown complete")
}

func (a *App) stopTransport() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout())
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)

		return err
	}
	slog.Info("HTTP server stopped gracefully")

	return nil
}

// closeResources runs after the outbox worker has made its last pass.
func (a *App) closeResources() {
	if a.rabbitmqClient != nil {
		if err := a.rabbitmqClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if a.otelController != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout())
		defer cancel()

		if err := a.otelController.Shutdown(ctx); err != nil {
			slog.Error("Tracer provider shutdown error", "error", err)
		} else {
			slog.Info("Tracer provider flushed")
		}
	}
}

func shutdownTimeout() time.Duration {
	return time.Duration(viper.GetInt("server.shutdown_timeout_seconds")) * time.Second
}
