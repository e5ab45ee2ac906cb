package models

// DailySales is the pre-aggregated response of GET /sales/today. The
// client only formats it, it never recomputes the totals.
type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	TotalItems int     `json:"total_items"`
	OrderCount int     `json:"order_count"`
	Orders     []Order `json:"orders"`
}
