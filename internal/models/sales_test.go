package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeSales(t *testing.T) {
	summary := SummarizeSales([]DailySale{
		{Date: "2026-10-17", TotalSales: 1200.5, OrderCount: 12},
		{Date: "2026-10-18", TotalSales: 800, OrderCount: 7},
	})

	assert.Equal(t, 2, summary.Days)
	assert.InDelta(t, 2000.5, summary.TotalSales, 0.001)
	assert.Equal(t, 19, summary.TotalOrders)
}

func TestSummarizeSalesEmpty(t *testing.T) {
	assert.Equal(t, SalesSummary{}, SummarizeSales(nil))
}

func TestIngredientAddonAndLowStock(t *testing.T) {
	qty, price := 30.0, 40.0
	ing := Ingredient{Stock: 100, ReorderLevel: 100, AddonsQuantity: &qty, AddonPrice: &price}
	assert.True(t, ing.IsAddon())
	assert.True(t, ing.IsLowStock())

	zero := 0.0
	ing.AddonPrice = &zero
	ing.Stock = 101
	assert.False(t, ing.IsAddon())
	assert.False(t, ing.IsLowStock())
}
