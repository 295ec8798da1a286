package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"rammo-backend/internal/cache"
	"rammo-backend/internal/config"
	"rammo-backend/internal/database"
	"rammo-backend/internal/handlers"
	"rammo-backend/internal/middleware"
	"rammo-backend/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("admin index warning: %v", err)
	}

	products := store.NewMongoProducts(db)
	orders := store.NewMongoOrders(db)
	settings := store.NewMongoSettings(db)
	admins := store.NewMongoAdmins(db)

	var reportCache cache.Cache
	if config.AppEnv.RedisAddr != "" {
		reportCache = cache.NewRedis(config.AppEnv.RedisAddr)
		log.Println("report cache enabled:", config.AppEnv.RedisAddr)
	}

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(products))
	r.GET("/products/:id", handlers.GetProduct(products))
	r.POST("/orders", handlers.CreateOrder(products, orders))
	r.GET("/orders/track", handlers.TrackOrders(orders))
	r.GET("/settings", handlers.GetSettings(settings))

	r.POST("/admin/login", handlers.AdminLogin(admins, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.GetAdminProducts(products))
		admin.POST("/products", handlers.CreateProduct(products))
		admin.PUT("/products/:id", handlers.UpdateProduct(products))
		admin.DELETE("/products/:id", handlers.DeleteProduct(products))

		admin.GET("/orders", handlers.GetAllOrders(orders))
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(orders))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(orders))

		admin.GET("/customers", handlers.GetCustomers(orders))
		admin.GET("/analytics", handlers.GetAnalytics(orders, reportCache, config.AppEnv.ReportCacheTTL))

		admin.GET("/settings", handlers.GetSettings(settings))
		admin.PUT("/settings", handlers.UpdateSettings(settings))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
