package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "shopsphere/internal/adapter/http/dto/request"
	response "shopsphere/internal/adapter/http/dto/response"
	"shopsphere/internal/adapter/http/middleware"
	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase"
	"shopsphere/internal/usecase/interfaces"
	"shopsphere/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidReviewPayload  = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
)

// ProductHandler serves the public catalog, reviews and the admin product
// CRUD.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts returns a filtered, sorted and paginated catalog page.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := interfaces.ProductFilter{
		Category:  entities.ProductCategory(c.Query("category")),
		Search:    c.Query("search"),
		MinPrice:  queryFloat(c, "minPrice"),
		MaxPrice:  queryFloat(c, "maxPrice"),
		MinRating: queryFloat(c, "minRating"),
		Sort:      c.Query("sort"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 12),
	}

	products, total, err := h.usecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductPage(products, total, filter.Page, filter.Limit))
}

func (h *ProductHandler) ListFeatured(c *gin.Context) {
	products, err := h.usecase.ListFeatured(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductList(products))
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products, err := h.usecase.ListByCategory(c.Request.Context(), entities.ProductCategory(c.Param("category")))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductList(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSingleProduct(product))
}

func (h *ProductHandler) ListReviews(c *gin.Context) {
	reviews, err := h.usecase.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func (h *ProductHandler) CreateReview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized).ToHTTPError())
		return
	}

	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.CreateReview(c.Request.Context(), c.Param("id"), user, payload.Rating, payload.Comment)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSingleReview(review))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSingleProduct(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	update := payload.ToEntity()
	update.ID = c.Param("id")
	update.Active = true

	product, err := h.usecase.UpdateProduct(c.Request.Context(), update)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSingleProduct(product))
}

// DeleteProduct deactivates the product instead of removing it, keeping
// order history references intact.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.DeactivateProduct(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) ListAllProducts(c *gin.Context) {
	products, err := h.usecase.ListAllProducts(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductList(products))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct), errors.Is(err, usecase.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReview):
		return pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyReviewed):
		return pkg.NewDomainErrorSimple("ALREADY_REVIEWED", "Product already reviewed by this user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func queryFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
