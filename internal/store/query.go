package store

import (
	"fmt"
	"slices"
	"time"
)

// Readers return copies, callers may modify the results freely.

func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Orders)
}

func (s *Store) OrdersByStatus(status OrderStatus) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]Order, 0)
	for _, o := range s.state.Orders {
		if o.Status == status {
			orders = append(orders, o)
		}
	}
	return orders
}

func (s *Store) Order(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.orderIndex(id); i >= 0 {
		return s.state.Orders[i], nil
	}
	return Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// CountOrdersSince counts orders created at or after t.
func (s *Store) CountOrdersSince(t time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, o := range s.state.Orders {
		if !o.CreatedAt.Before(t) {
			n++
		}
	}
	return n
}

func (s *Store) PaymentMethods() []PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.PaymentMethods)
}

func (s *Store) ActivePaymentMethods() []PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	methods := make([]PaymentMethod, 0)
	for _, m := range s.state.PaymentMethods {
		if m.IsActive {
			methods = append(methods, m)
		}
	}
	return methods
}

func (s *Store) DiamondPackages() []DiamondPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.DiamondPackages)
}

func (s *Store) ActivePackages() []DiamondPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkgs := make([]DiamondPackage, 0)
	for _, p := range s.state.DiamondPackages {
		if p.IsActive {
			pkgs = append(pkgs, p)
		}
	}
	return pkgs
}

func (s *Store) DiamondPackage(id string) (DiamondPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.packageIndex(id); i >= 0 {
		return s.state.DiamondPackages[i], nil
	}
	return DiamondPackage{}, fmt.Errorf("diamond package %s: %w", id, ErrNotFound)
}

// FeaturedPackages resolves the featured identifiers from settings in their
// configured order, skipping ones that no longer exist.
func (s *Store) FeaturedPackages() []DiamondPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pkgs := make([]DiamondPackage, 0, len(s.state.SystemSettings.FeaturedPackages))
	for _, id := range s.state.SystemSettings.FeaturedPackages {
		if i := s.packageIndex(id); i >= 0 {
			pkgs = append(pkgs, s.state.DiamondPackages[i])
		}
	}
	return pkgs
}

func (s *Store) Settings() SystemSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySettings(s.state.SystemSettings)
}

// ActivityLogs returns the log newest first.
func (s *Store) ActivityLogs() []ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.ActivityLogs)
}

func copySettings(in SystemSettings) SystemSettings {
	out := in
	out.FeaturedPackages = slices.Clone(in.FeaturedPackages)
	return out
}
