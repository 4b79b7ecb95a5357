package httptransport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	_ "github.com/corray333/grubdash/docs"
	"github.com/corray333/grubdash/internal/service/models/dish"
	"github.com/corray333/grubdash/internal/service/models/order"
	"github.com/corray333/grubdash/internal/service/models/payload"
	"github.com/corray333/grubdash/internal/transport/http/dishes"
	"github.com/corray333/grubdash/internal/transport/http/envelope"
	"github.com/corray333/grubdash/internal/transport/http/orders"
	"github.com/corray333/grubdash/pkg/http/middleware/trace"
	"github.com/corray333/grubdash/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type dishService interface {
	List(ctx context.Context) ([]dish.Dish, error)
	Create(ctx context.Context, p payload.Payload) (dish.Dish, error)
	Get(ctx context.Context, id string) (dish.Dish, error)
	Update(ctx context.Context, id string, p payload.Payload) (dish.Dish, error)
}

type orderService interface {
	List(ctx context.Context) ([]order.Order, error)
	Create(ctx context.Context, p payload.Payload) (order.Order, error)
	Get(ctx context.Context, id string) (order.Order, error)
	Update(ctx context.Context, id string, p payload.Payload) (order.Order, error)
	Delete(ctx context.Context, id string) error
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	dishSvc  dishService
	orderSvc orderService
}

func NewHTTPTransport(dishSvc dishService, orderSvc orderService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:   server,
		router:   router,
		dishSvc:  dishSvc,
		orderSvc: orderSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// Handler exposes the router, mostly for tests.
func (h *HTTPTransport) Handler() http.Handler {
	return h.router
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	// Set before mounting so the resource sub-routers inherit them.
	h.router.NotFound(notFound)
	h.router.MethodNotAllowed(methodNotAllowed)

	h.router.Route("/dishes", func(r chi.Router) {
		r.Get("/", h.listDishes)
		r.Post("/", h.createDish)
		r.Get("/{"+dishes.IDParam+"}", h.readDish)
		r.Put("/{"+dishes.IDParam+"}", h.updateDish)
	})
	h.router.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.createOrder)
		r.Get("/{"+orders.IDParam+"}", h.readOrder)
		r.Put("/{"+orders.IDParam+"}", h.updateOrder)
		r.Delete("/{"+orders.IDParam+"}", h.deleteOrder)
	})
	h.router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (h *HTTPTransport) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes.List(w, r, h.dishSvc)
}

func (h *HTTPTransport) createDish(w http.ResponseWriter, r *http.Request) {
	dishes.Create(w, r, h.dishSvc)
}

func (h *HTTPTransport) readDish(w http.ResponseWriter, r *http.Request) {
	dishes.Read(w, r, h.dishSvc)
}

func (h *HTTPTransport) updateDish(w http.ResponseWriter, r *http.Request) {
	dishes.Update(w, r, h.dishSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	orders.List(w, r, h.orderSvc)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	orders.Create(w, r, h.orderSvc)
}

func (h *HTTPTransport) readOrder(w http.ResponseWriter, r *http.Request) {
	orders.Read(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateOrder(w http.ResponseWriter, r *http.Request) {
	orders.Update(w, r, h.orderSvc)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orders.Delete(w, r, h.orderSvc)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	envelope.Message(w, http.StatusNotFound, "Path not found: "+r.URL.Path)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	envelope.Message(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", r.Method, r.URL.Path))
}

// recoverer turns a handler panic into the generic 500 body.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.ErrorContext(r.Context(), "Panic recovered", "panic", rec, "stack", string(debug.Stack()))
			envelope.Message(w, http.StatusInternalServerError, envelope.InternalMessage)
		}()

		next.ServeHTTP(w, r)
	})
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(recoverer)
	if viper.GetBool("tracing.enabled") {
		router.Use(trace.NewTraceMiddleware(viper.GetString("tracing.service_name")))
	}

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler:      router,
		ReadTimeout:  seconds("server.http.read_timeout_seconds"),
		WriteTimeout: seconds("server.http.write_timeout_seconds"),
		IdleTimeout:  seconds("server.http.idle_timeout_seconds"),
	}
}

func seconds(key string) time.Duration {
	return time.Duration(viper.GetInt(key)) * time.Second
}
