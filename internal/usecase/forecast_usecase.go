package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"shopsphere/internal/domain/entities"
	"shopsphere/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidProductID = errors.New("invalid product id")

const forecastWindowDays = 7

// IForecastUseCase exposes the demand-forecast query.
type IForecastUseCase interface {
	GetProductDemandForecast(ctx context.Context, productID string) (entities.ForecastResult, error)
}

// ForecastUseCase computes a rule-based demand forecast for one product:
// trailing 7-day sales, daily average, a same-period carry-forward
// projection and a restock-priority classification.
//
// The computation is stateless and side-effect free; both collaborator
// reads are snapshots and slight staleness between them is acceptable.
type ForecastUseCase struct {
	products interfaces.IProductRepository
	orders   interfaces.IOrderRepository
	now      func() time.Time
}

var _ IForecastUseCase = (*ForecastUseCase)(nil)

func NewForecastUseCase(products interfaces.IProductRepository, orders interfaces.IOrderRepository) *ForecastUseCase {
	return &ForecastUseCase{products: products, orders: orders, now: time.Now}
}

func (u *ForecastUseCase) GetProductDemandForecast(ctx context.Context, productID string) (entities.ForecastResult, error) {
	productID = strings.TrimSpace(productID)
	if _, err := uuid.Parse(productID); err != nil {
		return entities.ForecastResult{}, ErrInvalidProductID
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.ForecastResult{}, err
	}
	if product.ID == "" {
		return entities.ForecastResult{}, ErrProductNotFound
	}

	now := u.now().UTC()
	windowStart := now.Add(-forecastWindowDays * 24 * time.Hour)

	soldLast7Days, err := u.orders.SumProductUnitsSince(ctx, productID, windowStart)
	if err != nil {
		return entities.ForecastResult{}, err
	}

	if soldLast7Days == 0 {
		return entities.ForecastResult{
			ProductID:       product.ID,
			ProductName:     product.Name,
			CurrentStock:    product.Stock,
			NeedsRestock:    false,
			RestockPriority: entities.RestockPriorityNone,
			Message:         "Not enough historical sales data to generate forecast yet.",
		}, nil
	}

	dailyAverage := float64(soldLast7Days) / forecastWindowDays
	forecastNext7Days := int(math.Ceil(dailyAverage * forecastWindowDays))
	currentStock := product.Stock
	needsRestock := currentStock < forecastNext7Days

	// dailyAverage > 0 is implied by soldLast7Days > 0, but the guard stays
	// explicit so nil can only mean "no sales in the window".
	var daysUntilStockOut *float64
	if dailyAverage > 0 {
		d := math.Round(float64(currentStock)/dailyAverage*10) / 10
		daysUntilStockOut = &d
	}

	priority := entities.RestockPriorityLow
	message := "Stock levels are healthy based on current sales trends."
	if needsRestock {
		switch {
		case daysUntilStockOut != nil && *daysUntilStockOut <= 3:
			priority = entities.RestockPriorityHigh
			message = fmt.Sprintf("Low stock! Restocking recommended - estimated stockout in %d days.", int(math.Ceil(*daysUntilStockOut)))
		case daysUntilStockOut != nil && *daysUntilStockOut <= 7:
			priority = entities.RestockPriorityMedium
			message = fmt.Sprintf("Stock running low. Consider restocking - estimated stockout in %d days.", int(math.Ceil(*daysUntilStockOut)))
		default:
			priority = entities.RestockPriorityLow
			message = "Stock is below forecasted demand. Monitor inventory levels."
		}
	}

	return entities.ForecastResult{
		ProductID:         product.ID,
		ProductName:       product.Name,
		Last7DaysSold:     soldLast7Days,
		DailyAverage:      math.Round(dailyAverage*10) / 10,
		ForecastNext7Days: forecastNext7Days,
		CurrentStock:      currentStock,
		NeedsRestock:      needsRestock,
		RestockPriority:   priority,
		DaysUntilStockOut: daysUntilStockOut,
		Message:           message,
	}, nil
}
