//go:generate mockgen -source ./store.go -destination=./mocks/backend.go -package=mock_store

// Package store holds the storefront state container: orders, payment
// methods, diamond packages, the settings singleton and the activity log.
//
// Every mutation appends one activity log entry and then writes the whole
// state to the Backend under SnapshotKey before returning.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/metrics"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNoSnapshot = errors.New("no snapshot persisted")
	ErrPersist    = errors.New("failed to persist store")
)

const (
	AdminName       = "Admin User"
	MaxActivityLogs = 100
)

type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.timeNow = now
	}
}

// WithActivityHook registers fn to receive every appended activity log entry.
// Hooks run after the store lock is released.
func WithActivityHook(fn func(ActivityLog)) Option {
	return func(s *Store) {
		s.hooks = append(s.hooks, fn)
	}
}

type Store struct {
	mu      sync.RWMutex
	backend Backend
	logger  *zap.Logger
	timeNow func() time.Time
	hooks   []func(ActivityLog)

	state     State
	lastLogMs int64
}

// New rehydrates the store from backend, falling back to the seed data when
// nothing has been persisted under SnapshotKey.
func New(ctx context.Context, backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		logger:  zap.NewNop(),
		timeNow: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	blob, err := backend.Load(ctx, SnapshotKey)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		s.state = Seed()
		s.logger.Info("no snapshot found, starting from seed data", zap.String("key", SnapshotKey))
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	default:
		st, err := decodeState(blob)
		if err != nil {
			return nil, err
		}
		s.state = st
		s.logger.Info("store rehydrated",
			zap.String("key", SnapshotKey),
			zap.Int("orders", len(st.Orders)),
			zap.Int("activity_logs", len(st.ActivityLogs)))
	}

	if len(s.state.ActivityLogs) > 0 {
		s.lastLogMs = logStamp(s.state.ActivityLogs[0])
	}
	metrics.ActivityLogSize.Set(float64(len(s.state.ActivityLogs)))
	return s, nil
}

func (s *Store) AddOrder(ctx context.Context, in NewOrder) (Order, error) {
	s.mu.Lock()
	now := s.timeNow()
	s.state.Sequences.Order++
	order := Order{
		ID:            formatID("ORD", s.state.Sequences.Order),
		MlbbID:        in.MlbbID,
		ServerID:      in.ServerID,
		PhoneNumber:   in.PhoneNumber,
		CustomerName:  in.CustomerName,
		Email:         in.Email,
		Diamonds:      in.Diamonds,
		Price:         in.Price,
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
		Priority:      in.Priority,
		CreatedAt:     now,
		UpdatedAt:     now,
		Notes:         in.Notes,
		Screenshot:    in.Screenshot,
	}
	s.state.Orders = append(s.state.Orders, order)
	entry := s.appendLog(NewActivityLog{
		Action:   "Order Created",
		Details:  fmt.Sprintf("Created new order %s for %s", order.ID, in.CustomerName),
		Type:     LogOrder,
		Severity: SeveritySuccess,
	})
	err := s.persist(ctx, "add_order")
	s.mu.Unlock()

	metrics.OrdersCreatedTotal.Inc()
	s.notify(entry)
	return order, err
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (Order, error) {
	s.mu.Lock()
	i := s.orderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	patch.apply(&s.state.Orders[i], s.timeNow())
	updated := s.state.Orders[i]
	entry := s.appendLog(NewActivityLog{
		Action:   "Order Updated",
		Details:  fmt.Sprintf("Updated order %s", id),
		Type:     LogOrder,
		Severity: SeverityInfo,
	})
	err := s.persist(ctx, "update_order")
	s.mu.Unlock()

	s.notify(entry)
	return updated, err
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.orderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	removed := s.state.Orders[i]
	s.state.Orders = append(s.state.Orders[:i], s.state.Orders[i+1:]...)
	entry := s.appendLog(NewActivityLog{
		Action:   "Order Deleted",
		Details:  fmt.Sprintf("Deleted order %s - %s", id, removed.CustomerName),
		Type:     LogOrder,
		Severity: SeverityWarning,
	})
	err := s.persist(ctx, "delete_order")
	s.mu.Unlock()

	s.notify(entry)
	return err
}

func (s *Store) AddPaymentMethod(ctx context.Context, in NewPaymentMethod) (PaymentMethod, error) {
	s.mu.Lock()
	s.state.Sequences.Payment++
	pm := PaymentMethod{
		ID:            formatID("PAY", s.state.Sequences.Payment),
		Name:          in.Name,
		Type:          in.Type,
		PhoneNumber:   in.PhoneNumber,
		AccountHolder: in.AccountHolder,
		Username:      in.Username,
		IsActive:      in.IsActive,
		DailyLimit:    in.DailyLimit,
		CurrentUsage:  in.CurrentUsage,
		QRCode:        in.QRCode,
		Notes:         in.Notes,
	}
	s.state.PaymentMethods = append(s.state.PaymentMethods, pm)
	entry := s.appendLog(NewActivityLog{
		Action:   "Payment Method Added",
		Details:  fmt.Sprintf("Added %s (%s)", in.Name, strings.ToUpper(string(in.Type))),
		Type:     LogPayment,
		Severity: SeveritySuccess,
	})
	err := s.persist(ctx, "add_payment_method")
	s.mu.Unlock()

	s.notify(entry)
	return pm, err
}

func (s *Store) UpdatePaymentMethod(ctx context.Context, id string, patch PaymentMethodPatch) (PaymentMethod, error) {
	s.mu.Lock()
	i := s.paymentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return PaymentMethod{}, fmt.Errorf("payment method %s: %w", id, ErrNotFound)
	}
	patch.apply(&s.state.PaymentMethods[i])
	updated := s.state.PaymentMethods[i]
	entry := s.appendLog(NewActivityLog{
		Action:   "Payment Method Updated",
		Details:  fmt.Sprintf("Updated payment method %s", id),
		Type:     LogPayment,
		Severity: SeverityInfo,
	})
	err := s.persist(ctx, "update_payment_method")
	s.mu.Unlock()

	s.notify(entry)
	return updated, err
}

func (s *Store) DeletePaymentMethod(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.paymentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("payment method %s: %w", id, ErrNotFound)
	}
	removed := s.state.PaymentMethods[i]
	s.state.PaymentMethods = append(s.state.PaymentMethods[:i], s.state.PaymentMethods[i+1:]...)
	entry := s.appendLog(NewActivityLog{
		Action:   "Payment Method Deleted",
		Details:  fmt.Sprintf("Deleted payment method %s", removed.Name),
		Type:     LogPayment,
		Severity: SeverityWarning,
	})
	err := s.persist(ctx, "delete_payment_method")
	s.mu.Unlock()

	s.notify(entry)
	return err
}

func (s *Store) AddDiamondPackage(ctx context.Context, in NewDiamondPackage) (DiamondPackage, error) {
	s.mu.Lock()
	s.state.Sequences.Package++
	pkg := DiamondPackage{
		ID:            formatID("DP", s.state.Sequences.Package),
		Diamonds:      in.Diamonds,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Popular:       in.Popular,
		IsActive:      in.IsActive,
		Discount:      in.Discount,
		Description:   in.Description,
		Category:      in.Category,
		Bonus:         in.Bonus,
	}
	s.state.DiamondPackages = append(s.state.DiamondPackages, pkg)
	entry := s.appendLog(NewActivityLog{
		Action:   "Package Added",
		Details:  fmt.Sprintf("Added %d diamond package for %d MMK", in.Diamonds, in.Price),
		Type:     LogPackage,
		Severity: SeveritySuccess,
	})
	err := s.persist(ctx, "add_diamond_package")
	s.mu.Unlock()

	s.notify(entry)
	return pkg, err
}

func (s *Store) UpdateDiamondPackage(ctx context.Context, id string, patch DiamondPackagePatch) (DiamondPackage, error) {
	s.mu.Lock()
	i := s.packageIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return DiamondPackage{}, fmt.Errorf("diamond package %s: %w", id, ErrNotFound)
	}
	patch.apply(&s.state.DiamondPackages[i])
	updated := s.state.DiamondPackages[i]
	entry := s.appendLog(NewActivityLog{
		Action:   "Package Updated",
		Details:  fmt.Sprintf("Updated diamond package %s", id),
		Type:     LogPackage,
		Severity: SeverityInfo,
	})
	err := s.persist(ctx, "update_diamond_package")
	s.mu.Unlock()

	s.notify(entry)
	return updated, err
}

func (s *Store) DeleteDiamondPackage(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.packageIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("diamond package %s: %w", id, ErrNotFound)
	}
	removed := s.state.DiamondPackages[i]
	s.state.DiamondPackages = append(s.state.DiamondPackages[:i], s.state.DiamondPackages[i+1:]...)
	entry := s.appendLog(NewActivityLog{
		Action:   "Package Deleted",
		Details:  fmt.Sprintf("Deleted %d diamond package", removed.Diamonds),
		Type:     LogPackage,
		Severity: SeverityWarning,
	})
	err := s.persist(ctx, "delete_diamond_package")
	s.mu.Unlock()

	s.notify(entry)
	return err
}

func (s *Store) UpdateSystemSettings(ctx context.Context, patch SettingsPatch) (SystemSettings, error) {
	s.mu.Lock()
	patch.apply(&s.state.SystemSettings)
	updated := copySettings(s.state.SystemSettings)
	entry := s.appendLog(NewActivityLog{
		Action:   "Settings Updated",
		Details:  fmt.Sprintf("Updated system settings: %s", strings.Join(patch.Fields(), ", ")),
		Type:     LogSettings,
		Severity: SeverityInfo,
	})
	err := s.persist(ctx, "update_system_settings")
	s.mu.Unlock()

	s.notify(entry)
	return updated, err
}

// AddActivityLog appends an entry on its own; an empty AdminName gets the
// default actor.
func (s *Store) AddActivityLog(ctx context.Context, in NewActivityLog) (ActivityLog, error) {
	s.mu.Lock()
	entry := s.appendLog(in)
	err := s.persist(ctx, "add_activity_log")
	s.mu.Unlock()

	s.notify(entry)
	return entry, err
}

// appendLog must be called with s.mu held.
func (s *Store) appendLog(in NewActivityLog) ActivityLog {
	now := s.timeNow()
	ms := now.UnixMilli()
	if ms <= s.lastLogMs {
		ms = s.lastLogMs + 1
	}
	s.lastLogMs = ms

	actor := in.AdminName
	if actor == "" {
		actor = AdminName
	}
	entry := ActivityLog{
		ID:        fmt.Sprintf("LOG%d", ms),
		AdminName: actor,
		Action:    in.Action,
		Details:   in.Details,
		Timestamp: now,
		Type:      in.Type,
		Severity:  in.Severity,
	}

	logs := make([]ActivityLog, 0, min(len(s.state.ActivityLogs)+1, MaxActivityLogs))
	logs = append(logs, entry)
	keep := min(len(s.state.ActivityLogs), MaxActivityLogs-1)
	logs = append(logs, s.state.ActivityLogs[:keep]...)
	s.state.ActivityLogs = logs

	metrics.ActivityLogSize.Set(float64(len(logs)))
	return entry
}

// persist must be called with s.mu held so writes land in mutation order.
func (s *Store) persist(ctx context.Context, op string) error {
	metrics.StoreMutationsTotal.WithLabelValues(op).Inc()

	blob, err := encodeState(s.state)
	if err != nil {
		metrics.PersistErrorsTotal.Inc()
		s.logger.Error("failed to encode snapshot", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.backend.Save(ctx, SnapshotKey, blob); err != nil {
		metrics.PersistErrorsTotal.Inc()
		s.logger.Error("failed to save snapshot", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (s *Store) notify(entry ActivityLog) {
	for _, fn := range s.hooks {
		fn(entry)
	}
}

func (s *Store) orderIndex(id string) int {
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) paymentIndex(id string) int {
	for i := range s.state.PaymentMethods {
		if s.state.PaymentMethods[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) packageIndex(id string) int {
	for i := range s.state.DiamondPackages {
		if s.state.DiamondPackages[i].ID == id {
			return i
		}
	}
	return -1
}
