package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/hazemhalim/dukkan/internal/config"
	"github.com/hazemhalim/dukkan/internal/server/http/handlers"
	"github.com/hazemhalim/dukkan/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	storefrontHandler := handlers.NewStorefrontHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	returnHandler := handlers.NewReturnHandler(facade)
	expenseHandler := handlers.NewExpenseHandler(facade)
	templateHandler := handlers.NewTemplateHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade, cfg.RecentOrdersLimit)

	api := engine.Group("/api")
	api.GET("/products", storefrontHandler.ListProducts)
	api.GET("/products/:id", storefrontHandler.GetProduct)
	api.POST("/checkout", storefrontHandler.Checkout)
	api.GET("/orders/:id", storefrontHandler.GetOrder)

	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", authHandler.Login)

	admin := adminGroup.Group("")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/dashboard", dashboardHandler.Stats)

	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/orders/:id/notification", templateHandler.Preview)
	admin.DELETE("/orders/:id", orderHandler.Delete)

	admin.GET("/customers", customerHandler.List)
	admin.GET("/customers/:id", customerHandler.Get)
	admin.POST("/customers", customerHandler.Create)
	admin.DELETE("/customers/:id", customerHandler.Delete)

	admin.GET("/products", productHandler.List)
	admin.GET("/products/low-stock", productHandler.LowStock)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.POST("/products/:id/stock/adjust", productHandler.AdjustStock)
	admin.PUT("/products/:id/stock", productHandler.SetStock)

	admin.GET("/returns", returnHandler.List)
	admin.GET("/returns/:id", returnHandler.Get)
	admin.POST("/returns", returnHandler.Create)

	admin.GET("/expenses", expenseHandler.List)
	admin.POST("/expenses", expenseHandler.Create)
	admin.DELETE("/expenses/:id", expenseHandler.Delete)

	admin.GET("/templates", templateHandler.List)
	admin.PUT("/templates/:status", templateHandler.Update)

	return engine
}
