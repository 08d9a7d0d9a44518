package store

// GetStats derives the dashboard figures from the current collections.
func (s *Store) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		st    Stats
		total int64
	)
	st.TotalOrders = len(s.state.Orders)
	for _, o := range s.state.Orders {
		total += o.Price
		switch o.Status {
		case StatusPending:
			st.PendingOrders++
			st.PendingRevenue += o.Price
		case StatusProcessing:
			st.ProcessingOrders++
		case StatusCompleted:
			st.CompletedOrders++
			st.TotalRevenue += o.Price
			st.TotalDiamonds += o.Diamonds
		case StatusRejected:
			st.RejectedOrders++
		case StatusCancelled:
			st.CancelledOrders++
		}
	}
	if st.TotalOrders > 0 {
		st.AverageOrderValue = float64(total) / float64(st.TotalOrders)
	}

	for _, m := range s.state.PaymentMethods {
		if m.IsActive {
			st.ActivePaymentMethods++
		}
	}
	for _, p := range s.state.DiamondPackages {
		if p.IsActive {
			st.ActivePackages++
		}
	}
	return st
}
