//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server

// Package server exposes the storefront and admin operations over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/checkout"
	"github.com/sevenam/diamondstore/internal/store"
)

type Store interface {
	Orders() []store.Order
	OrdersByStatus(status store.OrderStatus) []store.Order
	Order(id string) (store.Order, error)
	AddOrder(ctx context.Context, in store.NewOrder) (store.Order, error)
	UpdateOrder(ctx context.Context, id string, patch store.OrderPatch) (store.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	PaymentMethods() []store.PaymentMethod
	ActivePaymentMethods() []store.PaymentMethod
	AddPaymentMethod(ctx context.Context, in store.NewPaymentMethod) (store.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id string, patch store.PaymentMethodPatch) (store.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id string) error

	DiamondPackages() []store.DiamondPackage
	ActivePackages() []store.DiamondPackage
	FeaturedPackages() []store.DiamondPackage
	AddDiamondPackage(ctx context.Context, in store.NewDiamondPackage) (store.DiamondPackage, error)
	UpdateDiamondPackage(ctx context.Context, id string, patch store.DiamondPackagePatch) (store.DiamondPackage, error)
	DeleteDiamondPackage(ctx context.Context, id string) error

	Settings() store.SystemSettings
	UpdateSystemSettings(ctx context.Context, patch store.SettingsPatch) (store.SystemSettings, error)

	ActivityLogs() []store.ActivityLog
	AddActivityLog(ctx context.Context, in store.NewActivityLog) (store.ActivityLog, error)

	GetStats() store.Stats
}

type Checkout interface {
	Submit(ctx context.Context, req checkout.Request) (store.Order, error)
}

type Server struct {
	store    Store
	checkout Checkout
	logger   *zap.Logger
	server   *http.Server

	maxUploadBytes int64
}

func New(st Store, co Checkout, maxUploadBytes int64, logger *zap.Logger) *Server {
	return &Server{
		store:          st,
		checkout:       co,
		logger:         logger.With(zap.String("component", "http")),
		maxUploadBytes: maxUploadBytes,
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("HTTP server shutdown completed")
	return nil
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestLogMiddleware)
	// Use only wraps matched routes
	router.NotFoundHandler = s.requestLogMiddleware(http.HandlerFunc(handleNotFound))
	router.MethodNotAllowedHandler = s.requestLogMiddleware(http.HandlerFunc(handleMethodNotAllowed))

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/storefront", s.handleStorefront).Methods(http.MethodGet)
	api.HandleFunc("/checkout", s.handleCheckout).Methods(http.MethodPost)

	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleUpdateOrder).Methods(http.MethodPatch)
	api.HandleFunc("/orders/{id}", s.handleDeleteOrder).Methods(http.MethodDelete)

	api.HandleFunc("/payment-methods", s.handleListPaymentMethods).Methods(http.MethodGet)
	api.HandleFunc("/payment-methods", s.handleCreatePaymentMethod).Methods(http.MethodPost)
	api.HandleFunc("/payment-methods/{id}", s.handleUpdatePaymentMethod).Methods(http.MethodPatch)
	api.HandleFunc("/payment-methods/{id}", s.handleDeletePaymentMethod).Methods(http.MethodDelete)

	api.HandleFunc("/packages", s.handleListPackages).Methods(http.MethodGet)
	api.HandleFunc("/packages", s.handleCreatePackage).Methods(http.MethodPost)
	api.HandleFunc("/packages/featured", s.handleFeaturedPackages).Methods(http.MethodGet)
	api.HandleFunc("/packages/{id}", s.handleUpdatePackage).Methods(http.MethodPatch)
	api.HandleFunc("/packages/{id}", s.handleDeletePackage).Methods(http.MethodDelete)

	api.HandleFunc("/settings", s.handleGetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handleUpdateSettings).Methods(http.MethodPatch)

	api.HandleFunc("/activity-logs", s.handleListActivityLogs).Methods(http.MethodGet)
	api.HandleFunc("/activity-logs", s.handleCreateActivityLog).Methods(http.MethodPost)

	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	return router
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Not found")
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
