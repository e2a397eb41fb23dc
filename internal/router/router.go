package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"retail_admin/internal/handlers"
	"retail_admin/internal/providers"
)

// Deps collects everything the route table needs.
type Deps struct {
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Retailers  *handlers.RetailerHandler
	Products   *handlers.ProductHandler
	Catalog    *handlers.CatalogHandler
	Inventory  *handlers.InventoryHandler
	Orders     *handlers.OrderHandler
	Attendance *handlers.AttendanceHandler
	Docs       *handlers.DocsHandler

	AuthProvider providers.AuthProvider
}

// New builds the engine. Unknown methods on known paths get a 405 with an
// Allow header instead of a 404.
func New(d Deps) *gin.Engine {
	e := gin.Default()
	e.HandleMethodNotAllowed = true
	e.NoMethod(methodNotAllowed(e))

	e.GET("/docs/openapi.json", d.Docs.OpenAPI)

	api := e.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", d.Auth.Login)
		auth.POST("/signup", d.Auth.Signup)
		auth.POST("/refresh", d.Auth.Refresh)
		auth.POST("/logout", d.Auth.Logout)
	}

	protected := api.Group("")
	protected.Use(handlers.AuthMiddleware(d.AuthProvider))

	users := protected.Group("/users")
	{
		users.GET("", d.Users.List)
		users.POST("", d.Users.Create)
		users.GET("/:id", d.Users.Get)
		users.PUT("/:id", d.Users.Update)
		users.DELETE("/:id", d.Users.Delete)
		users.GET("/:id/workers", d.Users.Workers)
		users.GET("/:id/employers", d.Users.Employers)
	}

	workers := protected.Group("/workers")
	{
		workers.POST("", d.Users.CreateWorker)
		workers.DELETE("/:retailerId/:employeeId", d.Users.DeleteWorker)
	}

	retailers := protected.Group("/retailers")
	{
		retailers.GET("", d.Retailers.List)
		retailers.POST("", d.Retailers.Create)
		retailers.GET("/accounts", d.Retailers.ListAccounts)
		retailers.POST("/accounts", d.Retailers.CreateAccount)
		retailers.GET("/:id", d.Retailers.Get)
		retailers.PUT("/:id", d.Retailers.Update)
		retailers.DELETE("/:id", d.Retailers.Delete)
		retailers.GET("/:id/account", d.Retailers.GetAccount)
		retailers.POST("/:id/coins/add", d.Retailers.AddCoins)
		retailers.POST("/:id/coins/deduct", d.Retailers.DeductCoins)
		retailers.GET("/:id/inventory", d.Inventory.ListRetailerInventory)
		retailers.POST("/:id/inventory", d.Inventory.CreateRetailerInventory)
		retailers.GET("/:id/inventory/:productId", d.Inventory.GetRetailerInventory)
		retailers.PUT("/:id/inventory/:productId", d.Inventory.UpdateRetailerInventory)
		retailers.DELETE("/:id/inventory/:productId", d.Inventory.DeleteRetailerInventory)
	}

	products := protected.Group("/products")
	{
		products.GET("", d.Products.List)
		products.POST("", d.Products.Create)
		products.GET("/:id", d.Products.Get)
		products.PUT("/:id", d.Products.Update)
		products.DELETE("/:id", d.Products.Delete)
		products.GET("/:id/images", d.Catalog.ListProductImages)
	}

	details := protected.Group("/product-details")
	{
		details.POST("", d.Products.CreateDetails)
		details.GET("/:id", d.Products.GetDetails)
		details.PUT("/:id", d.Products.UpdateDetails)
	}

	categories := protected.Group("/product-categories")
	{
		categories.GET("", d.Catalog.ListCategories)
		categories.POST("", d.Catalog.CreateCategory)
		categories.PUT("/:id", d.Catalog.UpdateCategory)
		categories.DELETE("/:id", d.Catalog.DeleteCategory)
	}

	images := protected.Group("/product-images")
	{
		images.POST("", d.Catalog.CreateImage)
		images.PUT("/:id", d.Catalog.UpdateImage)
		images.DELETE("/:id", d.Catalog.DeleteImage)
	}

	colors := protected.Group("/product-colors")
	{
		colors.GET("", d.Catalog.ListColors)
		colors.POST("", d.Catalog.CreateColor)
		colors.PUT("/:id", d.Catalog.UpdateColor)
		colors.DELETE("/:id", d.Catalog.DeleteColor)
	}

	sizes := protected.Group("/product-sizes")
	{
		sizes.GET("", d.Catalog.ListSizes)
		sizes.POST("", d.Catalog.CreateSize)
		sizes.PUT("/:id", d.Catalog.UpdateSize)
		sizes.DELETE("/:id", d.Catalog.DeleteSize)
	}

	inventory := protected.Group("/inventory")
	{
		inventory.GET("", d.Inventory.List)
		inventory.POST("", d.Inventory.Create)
		inventory.GET("/low-stock", d.Inventory.LowStock)
		inventory.GET("/:id", d.Inventory.Get)
		inventory.PUT("/:id", d.Inventory.Update)
		inventory.DELETE("/:id", d.Inventory.Delete)
	}

	orders := protected.Group("/orders")
	{
		orders.GET("", d.Orders.List)
		orders.POST("", d.Orders.Create)
		orders.GET("/statistics", d.Orders.Statistics)
		orders.GET("/:id", d.Orders.Get)
		orders.PUT("/:id", d.Orders.Update)
		orders.DELETE("/:id", d.Orders.Delete)
		orders.PUT("/:id/status", d.Orders.UpdateStatus)
		orders.GET("/:id/items", d.Orders.ListItems)
	}

	items := protected.Group("/order-items")
	{
		items.PUT("/:id", d.Orders.UpdateItem)
		items.DELETE("/:id", d.Orders.DeleteItem)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.GET("", d.Attendance.List)
		attendance.POST("", d.Attendance.Create)
		attendance.GET("/today", d.Attendance.Today)
		attendance.POST("/check-in", d.Attendance.CheckIn)
		attendance.POST("/check-out", d.Attendance.CheckOut)
		attendance.POST("/absent", d.Attendance.MarkAbsent)
		attendance.POST("/leave", d.Attendance.MarkLeave)
		attendance.GET("/:id", d.Attendance.Get)
		attendance.PUT("/:id", d.Attendance.Update)
		attendance.DELETE("/:id", d.Attendance.Delete)
		attendance.GET("/:id/monthly", d.Attendance.Monthly)
		attendance.GET("/:id/stats", d.Attendance.Stats)
	}

	return e
}

// methodNotAllowed answers a 405 with an Allow header listing the methods
// actually registered for the path.
func methodNotAllowed(e *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var allowed []string
		for _, route := range e.Routes() {
			if pathMatches(route.Path, c.Request.URL.Path) {
				allowed = append(allowed, route.Method)
			}
		}
		if len(allowed) > 0 {
			c.Header("Allow", strings.Join(allowed, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	}
}

func pathMatches(pattern, path string) bool {
	ps := strings.Split(pattern, "/")
	rs := strings.Split(path, "/")
	if len(ps) != len(rs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") || strings.HasPrefix(ps[i], "*") {
			continue
		}
		if ps[i] != rs[i] {
			return false
		}
	}
	return true
}
