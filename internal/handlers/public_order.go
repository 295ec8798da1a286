package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rammo-backend/internal/models"
	"rammo-backend/internal/store"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	CustomerID   string                   `json:"customerId"`
	CustomerName string                   `json:"customerName" binding:"required"`
	Contact      string                   `json:"contact" binding:"required"`
	Notes        string                   `json:"notes"`
	Items        []createOrderItemRequest `json:"items" binding:"required"`
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(products store.ProductStore, orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// Item name and price come from the catalog at submission time and
		// stay frozen on the order afterwards.
		for i, item := range order.Items {
			product, err := products.FetchByID(ctx, item.ProductID)
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(c, http.StatusBadRequest, route, fmt.Sprintf("product not found: %s", item.ProductID.Hex()))
				return
			}
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			if !product.IsActive {
				respondWithError(c, http.StatusBadRequest, route, fmt.Sprintf("product not available: %s", product.Name))
				return
			}
			if !product.HasSize(item.Size) {
				respondWithError(c, http.StatusBadRequest, route, fmt.Sprintf("size %s not offered for %s", item.Size, product.Name))
				return
			}

			order.Items[i].Name = product.Name
			order.Items[i].Price = product.Price
		}

		created, err := orders.Create(ctx, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] order %s created for contact %s", route, created.Reference, created.Contact)
		c.JSON(http.StatusCreated, created)
	}
}

/* =========================
   ORDER TRACKING
========================= */

// TrackOrders returns a customer's order history, looked up by the contact
// string they ordered with.
func TrackOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/track"
		defer handlePanic(c, route)

		contact := strings.TrimSpace(c.Query("contact"))
		if contact == "" {
			respondWithError(c, http.StatusBadRequest, route, "contact is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := orders.FetchByContact(ctx, contact)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

/* =========================
   BUILD ORDER
========================= */

func buildOrderFromRequest(req createOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, errors.New("at least one item is required")
	}

	contact := strings.TrimSpace(req.Contact)
	if contact == "" {
		return models.Order{}, errors.New("contact is required")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return models.Order{}, errors.New("invalid productId")
		}

		if item.Quantity <= 0 {
			return models.Order{}, errors.New("quantity must be greater than zero")
		}

		if strings.TrimSpace(item.Size) == "" {
			return models.Order{}, errors.New("size is required")
		}

		items = append(items, models.OrderItem{
			ProductID: productID,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	return models.Order{
		CustomerID:   strings.TrimSpace(req.CustomerID),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Contact:      contact,
		Notes:        strings.TrimSpace(req.Notes),
		Items:        items,
	}, nil
}
