package response

import "shopsphere/internal/domain/entities"

// ForecastResponse is the demand-forecast wire format. DaysUntilStockOut
// serializes as null when the window had no sales.
type ForecastResponse struct {
	Success           bool     `json:"success"`
	ProductID         string   `json:"productId"`
	ProductName       string   `json:"productName"`
	Last7DaysSold     int      `json:"last7DaysSold"`
	DailyAverage      float64  `json:"dailyAverage"`
	ForecastNext7Days int      `json:"forecastNext7Days"`
	CurrentStock      int      `json:"currentStock"`
	NeedsRestock      bool     `json:"needsRestock"`
	RestockPriority   string   `json:"restockPriority"`
	DaysUntilStockOut *float64 `json:"daysUntilStockOut"`
	Message           string   `json:"message"`
}

func FromForecast(f entities.ForecastResult) ForecastResponse {
	return ForecastResponse{
		Success:           true,
		ProductID:         f.ProductID,
		ProductName:       f.ProductName,
		Last7DaysSold:     f.Last7DaysSold,
		DailyAverage:      f.DailyAverage,
		ForecastNext7Days: f.ForecastNext7Days,
		CurrentStock:      f.CurrentStock,
		NeedsRestock:      f.NeedsRestock,
		RestockPriority:   string(f.RestockPriority),
		DaysUntilStockOut: f.DaysUntilStockOut,
		Message:           f.Message,
	}
}
