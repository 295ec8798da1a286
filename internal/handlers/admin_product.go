package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rammo-backend/internal/models"
	"rammo-backend/internal/store"
)

/* =======================
   REQUEST DTOs
======================= */

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"required"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes" binding:"required"`
	Stock       *int     `json:"stock"`
	IsActive    *bool    `json:"isActive"`
}

type updateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	Image       *string   `json:"image"`
	Sizes       *[]string `json:"sizes"`
	Stock       *int      `json:"stock"`
	IsActive    *bool     `json:"isActive"`
}

/* =======================
   HELPERS
======================= */

func normalizeSizes(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values))

	for _, v := range values {
		size := strings.TrimSpace(v)
		if size == "" {
			continue
		}
		if _, ok := seen[size]; ok {
			continue
		}
		seen[size] = struct{}{}
		out = append(out, size)
	}
	return out
}

func validateProductFields(name string, price int64, sizes []string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if len(sizes) == 0 {
		return errors.New("at least one size is required")
	}
	return nil
}

/* =======================
   CRUD
======================= */

func GetAdminProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := products.FetchAll(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "products could not be fetched")
			return
		}

		pageStr := c.Query("page")
		limitStr := c.Query("limit")

		if pageStr == "" && limitStr == "" {
			c.JSON(http.StatusOK, result)
			return
		}

		page, limit, err := parsePaginationParams(pageStr, limitStr)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": paginate(result, page, limit),
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": len(result),
			},
		})
	}
}

func CreateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sizes := normalizeSizes(req.Sizes)
		if err := validateProductFields(req.Name, req.Price, sizes); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		product := models.Product{
			Name:        strings.TrimSpace(req.Name),
			Description: strings.TrimSpace(req.Description),
			Price:       req.Price,
			Image:       strings.TrimSpace(req.Image),
			Sizes:       sizes,
			Stock:       req.Stock,
			IsActive:    true,
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		created, err := products.Create(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] product %s created", route, created.ID.Hex())
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		existing, err := products.FetchByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if req.Name != nil {
			existing.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			existing.Description = strings.TrimSpace(*req.Description)
		}
		if req.Price != nil {
			existing.Price = *req.Price
		}
		if req.Image != nil {
			existing.Image = strings.TrimSpace(*req.Image)
		}
		if req.Sizes != nil {
			existing.Sizes = normalizeSizes(*req.Sizes)
		}
		if req.Stock != nil {
			existing.Stock = req.Stock
		}
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		if err := validateProductFields(existing.Name, existing.Price, existing.Sizes); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		updated, err := products.Update(ctx, id, existing)
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		deleted, err := products.Delete(ctx, id)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if !deleted {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
