package routes

import (
	"log"
	"os"
	"strconv"

	_ "shopsphere/docs" // This will be auto-generated
	"shopsphere/internal/adapter/http/handlers"
	"shopsphere/internal/adapter/http/middleware"
	repository2 "shopsphere/internal/adapter/persistence/repository"
	"shopsphere/internal/infrastructure/assistant"
	"shopsphere/internal/infrastructure/database"
	"shopsphere/internal/infrastructure/payments"
	"shopsphere/internal/usecase"
	"shopsphere/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	cartRepo := repository2.NewCartDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Printf("[auth][routes] JWT_SECRET not set, using insecure default")
		jwtSecret = "dev-secret"
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var assistantGateway interfaces.IAssistantGateway
	groqClient, err := assistant.NewGroqClient(os.Getenv("GROQ_API_KEY"))
	if err != nil {
		log.Printf("Groq assistant not configured: %v", err)
	} else {
		assistantGateway = groqClient
	}

	forecastUseCase := usecase.NewForecastUseCase(productRepo, orderRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, reviewRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, cartRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtSecret)
	userUseCase := usecase.NewUserUseCase(userRepo, productRepo)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, paymentGateway)
	chatUseCase := usecase.NewChatUseCase(assistantGateway)
	adminUseCase := usecase.NewAdminUseCase(userRepo, productRepo, orderRepo)

	forecastHandler := handlers.NewForecastHandler(forecastUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	protect := middleware.Protect(authUseCase)

	api := router.Group("/api")
	addHealthRoutes(api, ddb)
	addCatalogRoutes(api, productHandler, forecastHandler, chatHandler, protect)
	addAccountRoutes(api, authHandler, userHandler, cartHandler, orderHandler, paymentHandler, protect)
	addAdminRoutes(api, adminHandler, userHandler, productHandler, orderHandler, protect)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
