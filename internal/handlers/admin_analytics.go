package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rammo-backend/internal/cache"
	"rammo-backend/internal/insights"
	"rammo-backend/internal/store"
)

/*
GET /admin/api/analytics?range=week|month|quarter|year|all
- Report is recomputed from the order history; a redis cache (when
  configured) memoizes the JSON per range for a short TTL
*/
func GetAnalytics(orders store.OrderStore, reportCache cache.Cache, cacheTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/analytics"
		defer handlePanic(c, route)

		window, ok := insights.ParseWindow(c.Query("range"))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "invalid range")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cacheKey := cache.Key("analytics", string(window))
		if reportCache != nil {
			if cached, err := reportCache.Get(ctx, cacheKey); err != nil {
				log.Printf("[%s] cache read failed: %v", route, err)
			} else if cached != "" {
				c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
				return
			}
		}

		all, err := orders.Fetch(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}

		report := insights.BuildReport(all, window, time.Now())

		if reportCache != nil {
			if body, err := json.Marshal(report); err == nil {
				if err := reportCache.Set(ctx, cacheKey, string(body), cacheTTL); err != nil {
					log.Printf("[%s] cache write failed: %v", route, err)
				}
			}
		}

		log.Printf("[%s] report for range=%s over %d orders", route, window, report.OrderCount)
		c.JSON(http.StatusOK, report)
	}
}
