package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rammo-backend/internal/models"
)

func orderWith(customerID, name, contact string, createdAt time.Time, items ...models.OrderItem) models.Order {
	return models.Order{
		CustomerID:   customerID,
		CustomerName: name,
		Contact:      contact,
		Items:        items,
		Status:       models.StatusPending,
		CreatedAt:    createdAt,
	}
}

func item(price int64, quantity int) models.OrderItem {
	return models.OrderItem{Price: price, Quantity: quantity}
}

func TestCustomerKeyPrefersCustomerID(t *testing.T) {
	withID := orderWith("101", "Budi", "budi@example.com", time.Now())
	assert.Equal(t, "101", CustomerKey(withID))

	guest := orderWith("", "Budi", "budi@example.com", time.Now())
	assert.Equal(t, "budi@example.com", CustomerKey(guest))

	blankID := orderWith("   ", "Budi", "budi@example.com", time.Now())
	assert.Equal(t, "budi@example.com", CustomerKey(blankID))
}

func TestDeriveCustomersAggregates(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	orders := []models.Order{
		orderWith("", "Andi", "a@x.com", jan, item(100000, 2)),
		orderWith("", "Andi", "a@x.com", feb, item(50000, 1)),
	}

	customers := DeriveCustomers(orders)
	require.Len(t, customers, 1)

	c := customers[0]
	assert.Equal(t, "a@x.com", c.Key)
	assert.Equal(t, 2, c.TotalOrders)
	assert.Equal(t, int64(250000), c.TotalSpent)
	assert.Equal(t, feb, c.LastOrderDate)
	assert.Len(t, c.Orders, 2)
}

func TestDeriveCustomersDistinctKeys(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWith("101", "Budi", "budi@example.com", now, item(99000, 1)),
		orderWith("", "Siti", "+6281234567890", now, item(150000, 1)),
		orderWith("101", "Budi", "budi@example.com", now, item(130000, 1)),
		orderWith("", "Rina", "rina@example.com", now, item(250000, 1)),
	}

	customers := DeriveCustomers(orders)
	assert.Len(t, customers, 3)

	// First appearance order is preserved.
	assert.Equal(t, "101", customers[0].Key)
	assert.Equal(t, "+6281234567890", customers[1].Key)
	assert.Equal(t, "rina@example.com", customers[2].Key)
}

func TestDeriveCustomersSpendConservation(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWith("", "A", "a@x.com", now, item(100, 3), item(200, 1)),
		orderWith("", "B", "b@x.com", now, item(500, 2)),
		orderWith("", "A", "a@x.com", now, item(50, 4)),
	}

	var inputTotal int64
	for _, o := range orders {
		inputTotal += OrderTotal(o.Items)
	}

	var derivedTotal int64
	for _, c := range DeriveCustomers(orders) {
		derivedTotal += c.TotalSpent
	}

	assert.Equal(t, inputTotal, derivedTotal)
}

func TestDeriveCustomersLastOrderDateIsMax(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	}

	orders := make([]models.Order, 0, len(dates))
	for _, d := range dates {
		orders = append(orders, orderWith("", "A", "a@x.com", d, item(100, 1)))
	}

	customers := DeriveCustomers(orders)
	require.Len(t, customers, 1)

	max := customers[0].LastOrderDate
	assert.Equal(t, dates[0], max)
	for _, o := range customers[0].Orders {
		assert.False(t, o.CreatedAt.After(max))
	}
}

func TestDeriveCustomersEmptyInput(t *testing.T) {
	assert.Empty(t, DeriveCustomers(nil))
	assert.Empty(t, DeriveCustomers([]models.Order{}))
}

func TestSortCustomersBySpentIsStable(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWith("", "A", "a@x.com", now, item(100, 1)),
		orderWith("", "B", "b@x.com", now, item(300, 1)),
		orderWith("", "C", "c@x.com", now, item(100, 1)),
	}

	descending := DeriveCustomers(orders)
	SortCustomers(descending, SortByTotalSpent, false)
	assert.Equal(t, []string{"B", "A", "C"}, names(descending))

	ascending := DeriveCustomers(orders)
	SortCustomers(ascending, SortByTotalSpent, true)
	assert.Equal(t, []string{"A", "C", "B"}, names(ascending))
}

func TestSortCustomersByName(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWith("", "siti", "s@x.com", now, item(100, 1)),
		orderWith("", "Budi", "b@x.com", now, item(100, 1)),
		orderWith("", "andi", "a@x.com", now, item(100, 1)),
	}

	customers := DeriveCustomers(orders)
	SortCustomers(customers, SortByName, true)

	// Collation ignores case, unlike a byte compare.
	assert.Equal(t, []string{"andi", "Budi", "siti"}, names(customers))
}

func TestFilterCustomers(t *testing.T) {
	now := time.Now()
	customers := DeriveCustomers([]models.Order{
		orderWith("", "Budi Santoso", "budi@example.com", now, item(100, 1)),
		orderWith("", "Siti Nurhayati", "+6281234567890", now, item(100, 1)),
	})

	assert.Len(t, FilterCustomers(customers, "budi"), 1)
	assert.Len(t, FilterCustomers(customers, "628"), 1)
	assert.Len(t, FilterCustomers(customers, ""), 2)
	assert.Empty(t, FilterCustomers(customers, "nobody"))
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"", "name", "totalOrders", "totalSpent"} {
		_, ok := ParseSortKey(valid)
		assert.True(t, ok, valid)
	}

	_, ok := ParseSortKey("createdAt")
	assert.False(t, ok)
}

func names(customers []Customer) []string {
	out := make([]string, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.Name)
	}
	return out
}
