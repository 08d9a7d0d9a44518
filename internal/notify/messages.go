package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/sevenam/diamondstore/internal/store"
)

func NewOrderMessage(o store.Order) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Order: %s\n", o.ID)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", o.CustomerName, o.PhoneNumber)
	fmt.Fprintf(&b, "Game ID: %s (%s)\n", o.MlbbID, o.ServerID)
	fmt.Fprintf(&b, "Diamonds: %d\n", o.Diamonds)
	fmt.Fprintf(&b, "Price: %d MMK\n", o.Price)
	fmt.Fprintf(&b, "Payment: %s\n", strings.ToUpper(o.PaymentMethod))
	fmt.Fprintf(&b, "Status: %s\n", o.Status)
	fmt.Fprintf(&b, "Priority: %s", o.Priority)

	return Message{
		Subject: fmt.Sprintf("New order %s - %d diamonds", o.ID, o.Diamonds),
		Body:    b.String(),
	}
}

func DailySummaryMessage(siteName string, day time.Time, stats store.Stats, ordersToday int) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Orders in the last 24h: %d\n", ordersToday)
	fmt.Fprintf(&b, "Total orders: %d\n", stats.TotalOrders)
	fmt.Fprintf(&b, "Pending: %d, processing: %d, completed: %d\n",
		stats.PendingOrders, stats.ProcessingOrders, stats.CompletedOrders)
	fmt.Fprintf(&b, "Rejected: %d, cancelled: %d\n", stats.RejectedOrders, stats.CancelledOrders)
	fmt.Fprintf(&b, "Revenue: %d MMK (pending %d MMK)\n", stats.TotalRevenue, stats.PendingRevenue)
	fmt.Fprintf(&b, "Diamonds delivered: %d\n", stats.TotalDiamonds)
	fmt.Fprintf(&b, "Average order: %.0f MMK", stats.AverageOrderValue)

	return Message{
		Subject: fmt.Sprintf("%s daily summary %s", siteName, day.Format("2006-01-02")),
		Body:    b.String(),
	}
}
