package routes

import (
	"shopsphere/internal/adapter/http/handlers"
	"shopsphere/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, userHandler *handlers.UserHandler, productHandler *handlers.ProductHandler, orderHandler *handlers.OrderHandler, protect gin.HandlerFunc) {
	admin := rg.Group(PathAdmin, protect, middleware.AdminOnly())
	{
		admin.GET("/stats", adminHandler.GetStats)

		admin.GET("/users", userHandler.ListUsers)
		admin.GET("/users/:id", userHandler.GetUser)
		admin.PUT("/users/:id", userHandler.UpdateUser)
		admin.DELETE("/users/:id", userHandler.DeleteUser)

		admin.GET("/products", productHandler.ListAllProducts)
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.GET("/orders", orderHandler.ListAllOrders)
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
	}
}
