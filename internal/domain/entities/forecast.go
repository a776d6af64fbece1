package entities

// RestockPriority is the coarse urgency label derived from the estimated
// days until stock depletion.
type RestockPriority string

const (
	RestockPriorityNone   RestockPriority = "none"
	RestockPriorityLow    RestockPriority = "low"
	RestockPriorityMedium RestockPriority = "medium"
	RestockPriorityHigh   RestockPriority = "high"
)

// ForecastResult is the demand forecast for one product.
//
// It is never persisted: it is a pure function of the evaluation time, the
// product's live stock and the non-cancelled orders inside the trailing
// 7-day window, recomputed on every request.
//
// DailyAverage is rounded to one decimal for presentation;
// DaysUntilStockOut is nil exactly when the window contains no sales.
type ForecastResult struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Last7DaysSold     int             `json:"last_7_days_sold"`
	DailyAverage      float64         `json:"daily_average"`
	ForecastNext7Days int             `json:"forecast_next_7_days"`
	CurrentStock      int             `json:"current_stock"`
	NeedsRestock      bool            `json:"needs_restock"`
	RestockPriority   RestockPriority `json:"restock_priority"`
	DaysUntilStockOut *float64        `json:"days_until_stock_out"`
	Message           string          `json:"message"`
}
