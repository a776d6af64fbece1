package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopsphere/internal/adapter/http/handlers/mocks"
	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := entities.User{ID: "u1"}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/api/users/cart", asUser(user), h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/api/users/cart", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/api/users/cart", asUser(user), h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "u1", "p1", 1, entities.ItemVariant{}).Return(entities.Cart{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/users/cart", bytes.NewBufferString(`{"productId":"p1","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/api/users/cart", asUser(user), h.AddItem)

		variant := entities.ItemVariant{Size: "M", Color: "blue"}
		uc.EXPECT().AddItem(gomock.Any(), "u1", "p1", 2, variant).Return(entities.Cart{
			UserID: "u1",
			Items:  []entities.CartItem{{ID: "i1", ProductID: "p1", Quantity: 2, Variant: variant}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/users/cart", bytes.NewBufferString(`{"productId":"p1","quantity":2,"variant":{"size":"M","color":"blue"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["userId"] != "u1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := entities.User{ID: "u1"}

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PUT("/api/users/cart/:itemId", asUser(user), h.UpdateItem)

		uc.EXPECT().UpdateItemQuantity(gomock.Any(), "u1", "missing", 3).Return(entities.Cart{}, usecase.ErrCartItemNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/users/cart/missing", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.PUT("/api/users/cart/:itemId", asUser(user), h.UpdateItem)

		uc.EXPECT().UpdateItemQuantity(gomock.Any(), "u1", "i1", 3).Return(entities.Cart{UserID: "u1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/users/cart/i1", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.DELETE("/api/users/cart", asUser(entities.User{ID: "u1"}), h.ClearCart)

	uc.EXPECT().ClearCart(gomock.Any(), "u1").Return(entities.Cart{UserID: "u1", Items: []entities.CartItem{}}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapCartError(t *testing.T) {
	if got := mapCartError(usecase.ErrInvalidCartItem); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCartError(usecase.ErrCartItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCartError(usecase.ErrProductNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCartError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
