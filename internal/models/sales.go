package models

type DailySale struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

type SalesSummary struct {
	Days        int     `json:"days"`
	TotalSales  float64 `json:"total_sales"`
	TotalOrders int     `json:"total_orders"`
}

// SummarizeSales additionne les ventes journalières
func SummarizeSales(sales []DailySale) SalesSummary {
	summary := SalesSummary{Days: len(sales)}
	for _, day := range sales {
		summary.TotalSales += day.TotalSales
		summary.TotalOrders += day.OrderCount
	}
	return summary
}
