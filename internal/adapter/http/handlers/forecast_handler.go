package handlers

import (
	"errors"
	"net/http"

	response "shopsphere/internal/adapter/http/dto/response"
	"shopsphere/internal/usecase"
	"shopsphere/pkg"

	"github.com/gin-gonic/gin"
)

// ForecastHandler serves the demand-forecast analytics endpoint.
type ForecastHandler struct {
	usecase usecase.IForecastUseCase
}

func NewForecastHandler(uc usecase.IForecastUseCase) *ForecastHandler {
	return &ForecastHandler{usecase: uc}
}

// GetProductForecast returns the restock forecast for one product.
//
// The product id is validated before any storage access, so malformed ids
// never cost a read.
func (h *ForecastHandler) GetProductForecast(c *gin.Context) {
	forecast, err := h.usecase.GetProductDemandForecast(c.Request.Context(), c.Param("productId"))
	if err != nil {
		appErr := mapForecastError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForecast(forecast))
}

func mapForecastError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
