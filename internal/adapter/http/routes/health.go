package routes

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
)

func addHealthRoutes(rg *gin.RouterGroup, ddb *dynamodb.Client) {
	rg.GET("/health", func(c *gin.Context) {
		dbStatus := "up"
		_, err := ddb.ListTables(c.Request.Context(), &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
		if err != nil {
			dbStatus = "down"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"server":   "up",
			"database": dbStatus,
		})
	})
}
