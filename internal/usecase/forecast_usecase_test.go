package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shopsphere/internal/domain/entities"
	mock_interfaces "shopsphere/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const forecastProductID = "1f0c6a2d-5b1e-4b8e-9c3a-2d6f8e4a7b91"

func newForecastFixture(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIProductRepository, *mock_interfaces.MockIOrderRepository, *ForecastUseCase) {
	ctrl := gomock.NewController(t)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewForecastUseCase(products, orders)
	return ctrl, products, orders, uc
}

func TestForecastUseCase_GetProductDemandForecast_Validation(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		uc := NewForecastUseCase(nil, nil)
		_, err := uc.GetProductDemandForecast(context.Background(), "not-a-uuid")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("empty product id", func(t *testing.T) {
		uc := NewForecastUseCase(nil, nil)
		_, err := uc.GetProductDemandForecast(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl, products, _, uc := newForecastFixture(t)
		defer ctrl.Finish()

		products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{}, nil)

		_, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("product repo error", func(t *testing.T) {
		ctrl, products, _, uc := newForecastFixture(t)
		defer ctrl.Finish()

		products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{}, errors.New("db"))

		_, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order repo error", func(t *testing.T) {
		ctrl, products, orders, uc := newForecastFixture(t)
		defer ctrl.Finish()

		products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Phone", Stock: 10}, nil)
		orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestForecastUseCase_GetProductDemandForecast_Window(t *testing.T) {
	ctrl, products, orders, uc := newForecastFixture(t)
	defer ctrl.Finish()

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }

	products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Phone", Stock: 10}, nil)
	orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, at.Add(-7*24*time.Hour)).Return(7, nil)

	if _, err := uc.GetProductDemandForecast(context.Background(), forecastProductID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestForecastUseCase_GetProductDemandForecast_NoSales(t *testing.T) {
	ctrl, products, orders, uc := newForecastFixture(t)
	defer ctrl.Finish()

	products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Quiet Phone", Stock: 42}, nil)
	orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, gomock.Any()).Return(0, nil)

	res, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Last7DaysSold != 0 || res.DailyAverage != 0 || res.ForecastNext7Days != 0 {
		t.Fatalf("expected zeroed forecast, got %+v", res)
	}
	if res.CurrentStock != 42 || res.NeedsRestock {
		t.Fatalf("expected stock passthrough without restock flag, got %+v", res)
	}
	if res.RestockPriority != entities.RestockPriorityNone {
		t.Fatalf("expected priority none, got %s", res.RestockPriority)
	}
	if res.DaysUntilStockOut != nil {
		t.Fatalf("expected nil daysUntilStockOut, got %v", *res.DaysUntilStockOut)
	}
	if !strings.Contains(res.Message, "Not enough historical sales data") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestForecastUseCase_GetProductDemandForecast_Computation(t *testing.T) {
	t.Run("medium priority with restock needed", func(t *testing.T) {
		ctrl, products, orders, uc := newForecastFixture(t)
		defer ctrl.Finish()

		products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Phone", Stock: 10}, nil)
		orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, gomock.Any()).Return(21, nil)

		res, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Last7DaysSold != 21 || res.DailyAverage != 3.0 || res.ForecastNext7Days != 21 {
			t.Fatalf("unexpected computation: %+v", res)
		}
		if !res.NeedsRestock {
			t.Fatalf("expected restock needed")
		}
		if res.DaysUntilStockOut == nil || *res.DaysUntilStockOut != 3.3 {
			t.Fatalf("expected 3.3 days until stockout, got %v", res.DaysUntilStockOut)
		}
		if res.RestockPriority != entities.RestockPriorityMedium {
			t.Fatalf("expected medium priority, got %s", res.RestockPriority)
		}
		if !strings.Contains(res.Message, "4 days") {
			t.Fatalf("expected ceil(3.3) in message, got %q", res.Message)
		}
	})

	t.Run("high priority near stockout", func(t *testing.T) {
		ctrl, products, orders, uc := newForecastFixture(t)
		defer ctrl.Finish()

		products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Hot Item", Stock: 2}, nil)
		orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, gomock.Any()).Return(14, nil)

		res, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DailyAverage != 2.0 || res.ForecastNext7Days != 14 {
			t.Fatalf("unexpected computation: %+v", res)
		}
		if res.DaysUntilStockOut == nil || *res.DaysUntilStockOut != 1.0 {
			t.Fatalf("expected 1.0 days until stockout, got %v", res.DaysUntilStockOut)
		}
		if res.RestockPriority != entities.RestockPriorityHigh {
			t.Fatalf("expected high priority, got %s", res.RestockPriority)
		}
	})

	t.Run("healthy stock keeps low priority", func(t *testing.T) {
		ctrl, products, orders, uc := newForecastFixture(t)
		defer ctrl.Finish()

		products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Slow Mover", Stock: 100}, nil)
		orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, gomock.Any()).Return(7, nil)

		res, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NeedsRestock {
			t.Fatalf("expected no restock with stock above forecast")
		}
		if res.RestockPriority != entities.RestockPriorityLow {
			t.Fatalf("expected low priority, got %s", res.RestockPriority)
		}
		if !strings.Contains(res.Message, "healthy") {
			t.Fatalf("unexpected message: %q", res.Message)
		}
	})
}

func TestForecastUseCase_GetProductDemandForecast_PriorityBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		sold     int
		days     float64
		priority entities.RestockPriority
	}{
		{name: "exactly three days is high", stock: 3, sold: 7, days: 3.0, priority: entities.RestockPriorityHigh},
		{name: "just over three days is medium", stock: 31, sold: 70, days: 3.1, priority: entities.RestockPriorityMedium},
		{name: "two days is high", stock: 2, sold: 7, days: 2.0, priority: entities.RestockPriorityHigh},
		{name: "rounds up to seven days is medium", stock: 199, sold: 200, days: 7.0, priority: entities.RestockPriorityMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, products, orders, uc := newForecastFixture(t)
			defer ctrl.Finish()

			products.EXPECT().GetByID(gomock.Any(), forecastProductID).Return(entities.Product{ID: forecastProductID, Name: "Boundary", Stock: tc.stock}, nil)
			orders.EXPECT().SumProductUnitsSince(gomock.Any(), forecastProductID, gomock.Any()).Return(tc.sold, nil)

			res, err := uc.GetProductDemandForecast(context.Background(), forecastProductID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.NeedsRestock {
				t.Fatalf("expected restock needed for stock=%d sold=%d", tc.stock, tc.sold)
			}
			if res.DaysUntilStockOut == nil || *res.DaysUntilStockOut != tc.days {
				t.Fatalf("expected %.1f days, got %v", tc.days, res.DaysUntilStockOut)
			}
			if res.RestockPriority != tc.priority {
				t.Fatalf("expected %s priority, got %s", tc.priority, res.RestockPriority)
			}
		})
	}
}
