package routes

import (
	"shopsphere/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathUsers    = "/users"
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addAccountRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, cartHandler *handlers.CartHandler, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler, protect gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", protect, authHandler.Me)
	}

	users := rg.Group(PathUsers, protect)
	{
		users.GET("/profile", userHandler.GetProfile)
		users.PUT("/profile", userHandler.UpdateProfile)

		users.GET("/wishlist", userHandler.GetWishlist)
		users.POST("/wishlist/:productId", userHandler.AddToWishlist)
		users.DELETE("/wishlist/:productId", userHandler.RemoveFromWishlist)

		users.GET("/cart", cartHandler.GetCart)
		users.POST("/cart", cartHandler.AddItem)
		users.PUT("/cart/:itemId", cartHandler.UpdateItem)
		users.DELETE("/cart/:itemId", cartHandler.RemoveItem)
		users.DELETE("/cart", cartHandler.ClearCart)

		users.GET("/orders", orderHandler.ListMyOrders)
	}

	orders := rg.Group(PathOrders, protect)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/pay", orderHandler.PayOrder)
	}

	pay := rg.Group(PathPayments)
	{
		pay.POST("/create-intent", protect, paymentHandler.CreateIntent)
		pay.POST("/webhook", paymentHandler.Webhook)
	}
}
