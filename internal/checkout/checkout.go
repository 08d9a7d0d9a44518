// Package checkout turns a storefront submission into a stored order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/metrics"
	"github.com/sevenam/diamondstore/internal/notify"
	"github.com/sevenam/diamondstore/internal/store"
)

const notifyTimeout = 30 * time.Second

type Store interface {
	Settings() store.SystemSettings
	DiamondPackage(id string) (store.DiamondPackage, error)
	ActivePaymentMethods() []store.PaymentMethod
	CountOrdersSince(t time.Time) int
	AddOrder(ctx context.Context, in store.NewOrder) (store.Order, error)
}

type Encoder interface {
	Encode(ctx context.Context, r io.Reader) (string, error)
}

type Request struct {
	PackageID     string            `json:"packageId" validate:"required"`
	AccountName   string            `json:"accountName" validate:"required,max=100"`
	MlbbID        string            `json:"mlbbId" validate:"required,numeric,min=6,max=10"`
	ServerID      string            `json:"serverId" validate:"required,numeric,min=3,max=5"`
	PhoneNumber   string            `json:"phoneNumber" validate:"required,phone"`
	PaymentMethod store.PaymentType `json:"paymentMethod" validate:"required,oneof=kpay wavepay aya cb uab"`
	Email         string            `json:"email" validate:"omitempty,email"`
	Notes         string            `json:"notes" validate:"max=500"`
	Screenshot    io.Reader         `json:"-" validate:"-"`
}

type Service struct {
	store    Store
	encoder  Encoder
	notifier notify.Notifier
	validate *validator.Validate
	logger   *zap.Logger
	timeNow  func() time.Time

	wg sync.WaitGroup
}

func NewService(st Store, encoder Encoder, notifier notify.Notifier, logger *zap.Logger) *Service {
	return &Service{
		store:    st,
		encoder:  encoder,
		notifier: notifier,
		validate: newValidator(),
		logger:   logger.With(zap.String("component", "checkout")),
		timeNow:  time.Now,
	}
}

// Submit validates the request against the current settings and catalogue,
// stores the order and notifies admins in the background.
func (s *Service) Submit(ctx context.Context, req Request) (store.Order, error) {
	order, err := s.submit(ctx, req)
	if err != nil && IsRejection(err) {
		metrics.CheckoutRejectedTotal.WithLabelValues(reason(err)).Inc()
		s.logger.Info("checkout rejected", zap.String("package_id", req.PackageID), zap.Error(err))
	}
	return order, err
}

func (s *Service) submit(ctx context.Context, req Request) (store.Order, error) {
	settings := s.store.Settings()
	if settings.MaintenanceMode {
		return store.Order{}, ErrMaintenance
	}

	if err := s.validate.Struct(req); err != nil {
		return store.Order{}, validationError(err)
	}
	if req.Screenshot == nil {
		return store.Order{}, ErrScreenshotRequired
	}

	pkg, err := s.store.DiamondPackage(req.PackageID)
	if err != nil || !pkg.IsActive {
		return store.Order{}, fmt.Errorf("%w: %s", ErrPackageUnavailable, req.PackageID)
	}
	if !hasActiveMethod(s.store.ActivePaymentMethods(), req.PaymentMethod) {
		return store.Order{}, fmt.Errorf("%w: %s", ErrPaymentUnavailable, req.PaymentMethod)
	}

	now := s.timeNow()
	if settings.MaxOrdersPerDay > 0 && s.store.CountOrdersSince(startOfDay(now)) >= settings.MaxOrdersPerDay {
		return store.Order{}, ErrDailyLimitReached
	}
	if (settings.MinOrderAmount > 0 && pkg.Price < settings.MinOrderAmount) ||
		(settings.MaxOrderAmount > 0 && pkg.Price > settings.MaxOrderAmount) {
		return store.Order{}, fmt.Errorf("%w: %d MMK", ErrAmountOutOfRange, pkg.Price)
	}

	screenshot, err := s.encoder.Encode(ctx, req.Screenshot)
	if err != nil {
		return store.Order{}, err
	}

	status := store.StatusPending
	if settings.AutoApproval {
		status = store.StatusCompleted
	}

	order, err := s.store.AddOrder(ctx, store.NewOrder{
		MlbbID:        req.MlbbID,
		ServerID:      req.ServerID,
		PhoneNumber:   req.PhoneNumber,
		CustomerName:  req.AccountName,
		Email:         req.Email,
		Diamonds:      pkg.Diamonds,
		Price:         pkg.Price,
		PaymentMethod: string(req.PaymentMethod),
		Status:        status,
		Priority:      PriorityFor(pkg.Price),
		Notes:         req.Notes,
		Screenshot:    screenshot,
	})
	if order.ID == "" {
		return order, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("diamonds", order.Diamonds),
		zap.Int64("price", order.Price),
		zap.String("status", string(order.Status)))
	s.notifyAsync(order)
	return order, err
}

func (s *Service) notifyAsync(order store.Order) {
	if s.notifier == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, notify.NewOrderMessage(order)); err != nil {
			s.logger.Warn("failed to notify about order", zap.String("order_id", order.ID), zap.Error(err))
		}
	}()
}

// Wait blocks until in-flight notifications finish.
func (s *Service) Wait() {
	s.wg.Wait()
}

// PriorityFor ranks orders by amount: above 20000 MMK is high, above 10000
// medium.
func PriorityFor(price int64) store.Priority {
	switch {
	case price > 20000:
		return store.PriorityHigh
	case price > 10000:
		return store.PriorityMedium
	default:
		return store.PriorityLow
	}
}

func hasActiveMethod(methods []store.PaymentMethod, t store.PaymentType) bool {
	for _, m := range methods {
		if m.IsActive && m.Type == t {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrMaintenance):
		return "maintenance"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid"
	case errors.Is(err, ErrScreenshotRequired), errors.Is(err, ErrScreenshotTooLarge), errors.Is(err, ErrNotAnImage):
		return "screenshot"
	case errors.Is(err, ErrPackageUnavailable):
		return "package"
	case errors.Is(err, ErrPaymentUnavailable):
		return "payment"
	case errors.Is(err, ErrDailyLimitReached):
		return "daily_limit"
	case errors.Is(err, ErrAmountOutOfRange):
		return "amount"
	default:
		return "other"
	}
}
