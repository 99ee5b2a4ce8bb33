package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary holds today's headline figures.
type SalesSummary struct {
	TotalSales decimal.Decimal `json:"totalSales"`
	OrderCount int             `json:"orderCount"`
}

// ItemSales is one row of the top-selling-items report.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// CategorySales is one row of the sales-by-category report.
type CategorySales struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailySales is one point of the trailing-week sales trend.
type DailySales struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
