package routes

import (
	"shopsphere/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathAnalytics = "/analytics"
	PathChat      = "/chat"
)

func addCatalogRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, forecastHandler *handlers.ForecastHandler, chatHandler *handlers.ChatHandler, protect gin.HandlerFunc) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/featured", productHandler.ListFeatured)
		products.GET("/category/:category", productHandler.ListByCategory)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/reviews", productHandler.ListReviews)
		products.POST("/:id/reviews", protect, productHandler.CreateReview)
	}

	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/forecast/:productId", forecastHandler.GetProductForecast)
	}

	rg.POST(PathChat, chatHandler.Ask)
}
