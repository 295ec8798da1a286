package insights

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rammo-backend/internal/models"
)

// Customer is derived from order history on every request; it is never
// persisted.
type Customer struct {
	Key           string         `json:"key"`
	Name          string         `json:"name"`
	Contact       string         `json:"contact"`
	TotalOrders   int            `json:"totalOrders"`
	TotalSpent    int64          `json:"totalSpent"`
	LastOrderDate time.Time      `json:"lastOrderDate"`
	Orders        []models.Order `json:"orders"`
}

type SortKey string

const (
	SortByName        SortKey = "name"
	SortByTotalOrders SortKey = "totalOrders"
	SortByTotalSpent  SortKey = "totalSpent"
)

// ParseSortKey maps a query value onto a sort key; empty means "keep the
// grouping order".
func ParseSortKey(value string) (SortKey, bool) {
	switch SortKey(value) {
	case SortByName, SortByTotalOrders, SortByTotalSpent:
		return SortKey(value), true
	case "":
		return "", true
	}
	return "", false
}

// CustomerKey is the canonical customer identity: the customer id when one
// was recorded, otherwise the contact string. Every grouping call site goes
// through here.
func CustomerKey(order models.Order) string {
	if id := strings.TrimSpace(order.CustomerID); id != "" {
		return id
	}
	return order.Contact
}

// DeriveCustomers groups orders by customer identity and aggregates totals,
// order counts and the most recent order date per group. The result keeps
// the order in which each customer first appears in the input.
func DeriveCustomers(orders []models.Order) []Customer {
	result := []Customer{}
	index := make(map[string]int, len(orders))

	for _, order := range orders {
		key := CustomerKey(order)
		total := OrderTotal(order.Items)

		if i, ok := index[key]; ok {
			c := &result[i]
			c.TotalOrders++
			c.TotalSpent += total
			c.Orders = append(c.Orders, order)
			if order.CreatedAt.After(c.LastOrderDate) {
				c.LastOrderDate = order.CreatedAt
			}
			continue
		}

		index[key] = len(result)
		result = append(result, Customer{
			Key:           key,
			Name:          order.CustomerName,
			Contact:       order.Contact,
			TotalOrders:   1,
			TotalSpent:    total,
			LastOrderDate: order.CreatedAt,
			Orders:        []models.Order{order},
		})
	}

	return result
}

// FilterCustomers keeps customers whose name or contact contains the term,
// case-insensitively. An empty term keeps everyone.
func FilterCustomers(customers []Customer, term string) []Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return customers
	}

	out := []Customer{}
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Contact), term) {
			out = append(out, c)
		}
	}
	return out
}

// SortCustomers orders the slice by the given key. The sort is stable, so
// ties keep their grouping order. Names compare with Indonesian collation,
// matching how the storefront displays them.
func SortCustomers(customers []Customer, key SortKey, ascending bool) {
	switch key {
	case SortByName:
		collator := collate.New(language.Indonesian, collate.IgnoreCase)
		sort.SliceStable(customers, func(i, j int) bool {
			cmp := collator.CompareString(customers[i].Name, customers[j].Name)
			if ascending {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortByTotalOrders:
		sort.SliceStable(customers, func(i, j int) bool {
			if ascending {
				return customers[i].TotalOrders < customers[j].TotalOrders
			}
			return customers[i].TotalOrders > customers[j].TotalOrders
		})
	case SortByTotalSpent:
		sort.SliceStable(customers, func(i, j int) bool {
			if ascending {
				return customers[i].TotalSpent < customers[j].TotalSpent
			}
			return customers[i].TotalSpent > customers[j].TotalSpent
		})
	}
}
