package dto

import "github.com/shopspring/decimal"

// TopProductDTO un producto en el widget de más vendidos.
type TopProductDTO struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO resumen del dashboard del panel de administración.
type DashboardSummaryDTO struct {
	ProductCount    int                `json:"product_count"`
	OutOfStockCount int                `json:"out_of_stock_count"`
	OrdersByStatus  map[string]int     `json:"orders_by_status"`
	TodayRevenue    decimal.Decimal    `json:"today_revenue"`
	MonthRevenue    decimal.Decimal    `json:"month_revenue"`
	TopProducts     []TopProductDTO    `json:"top_products"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}
