package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rammo-backend/internal/insights"
	"rammo-backend/internal/models"
	"rammo-backend/internal/store"
)

func customersRouter(orders *store.MemoryOrders) *gin.Engine {
	router := gin.New()
	router.GET("/admin/api/customers", GetCustomers(orders))
	return router
}

func getCustomers(t *testing.T, router *gin.Engine, query string) []insights.Customer {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/api/customers"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var customers []insights.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &customers); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return customers
}

func TestGetCustomersDerivesFromOrders(t *testing.T) {
	orders := store.NewMemoryOrders()
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	orders.Seed(models.Order{
		CustomerName: "Andi",
		Contact:      "a@x.com",
		Items:        []models.OrderItem{{Price: 100000, Quantity: 2}},
		Status:       models.StatusCompleted,
		CreatedAt:    jan,
	})
	orders.Seed(models.Order{
		CustomerName: "Andi",
		Contact:      "a@x.com",
		Items:        []models.OrderItem{{Price: 50000, Quantity: 1}},
		Status:       models.StatusPending,
		CreatedAt:    feb,
	})

	customers := getCustomers(t, customersRouter(orders), "")
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}

	c := customers[0]
	if c.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", c.TotalOrders)
	}
	if c.TotalSpent != 250000 {
		t.Errorf("expected 250000 spent, got %d", c.TotalSpent)
	}
	if !c.LastOrderDate.Equal(feb) {
		t.Errorf("expected last order date %v, got %v", feb, c.LastOrderDate)
	}
}

func TestGetCustomersSortAndSearch(t *testing.T) {
	orders := store.NewMemoryOrders()
	now := time.Now()

	seed := func(name, contact string, price int64) {
		orders.Seed(models.Order{
			CustomerName: name,
			Contact:      contact,
			Items:        []models.OrderItem{{Price: price, Quantity: 1}},
			Status:       models.StatusPending,
			CreatedAt:    now,
		})
	}
	seed("Budi", "budi@example.com", 100)
	seed("Siti", "siti@example.com", 300)
	seed("Rina", "rina@example.com", 200)

	router := customersRouter(orders)

	bySpent := getCustomers(t, router, "?sort=totalSpent")
	if bySpent[0].Name != "Siti" || bySpent[2].Name != "Budi" {
		t.Errorf("expected descending spend order, got %v", []string{bySpent[0].Name, bySpent[1].Name, bySpent[2].Name})
	}

	ascending := getCustomers(t, router, "?sort=totalSpent&order=asc")
	if ascending[0].Name != "Budi" {
		t.Errorf("expected ascending spend order, got %s first", ascending[0].Name)
	}

	searched := getCustomers(t, router, "?search=rina")
	if len(searched) != 1 || searched[0].Name != "Rina" {
		t.Errorf("expected only Rina, got %d results", len(searched))
	}
}

func TestGetCustomersRejectsBadParams(t *testing.T) {
	router := customersRouter(store.NewMemoryOrders())

	for _, query := range []string{"?sort=createdAt", "?order=sideways"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/api/customers"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", query, w.Code)
		}
	}
}

func TestGetCustomersEmptyStore(t *testing.T) {
	customers := getCustomers(t, customersRouter(store.NewMemoryOrders()), "")
	if len(customers) != 0 {
		t.Errorf("expected no customers, got %d", len(customers))
	}
}
