package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rammo-backend/internal/insights"
	"rammo-backend/internal/store"
)

/*
GET /admin/api/customers
- Derived from order history on every request, nothing is persisted
- search: substring match on name or contact
- sort: name | totalOrders | totalSpent (default keeps grouping order)
- order: asc | desc (default desc)
*/
func GetCustomers(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/customers"
		defer handlePanic(c, route)

		sortKey, ok := insights.ParseSortKey(c.Query("sort"))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "invalid sort key")
			return
		}

		direction := c.DefaultQuery("order", "desc")
		if direction != "asc" && direction != "desc" {
			respondWithError(c, http.StatusBadRequest, route, "invalid sort order")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		all, err := orders.Fetch(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}

		customers := insights.DeriveCustomers(all)
		customers = insights.FilterCustomers(customers, c.Query("search"))
		if sortKey != "" {
			insights.SortCustomers(customers, sortKey, direction == "asc")
		}

		log.Printf("[%s] derived %d customers from %d orders", route, len(customers), len(all))
		c.JSON(http.StatusOK, customers)
	}
}
