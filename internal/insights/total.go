// Package insights computes the derived views the admin panel renders:
// order totals, per-customer aggregates and time-windowed revenue reports.
// Everything here is pure and works on whatever slice it is handed, so the
// same code runs against Mongo results and test fixtures.
package insights

import "rammo-backend/internal/models"

// OrderTotal sums price times quantity over an order's line items. An empty
// or nil item list yields zero. Negative quantities or prices are not
// rejected here; order creation is the only validation point.
func OrderTotal(items []models.OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
