package model

import "github.com/shopspring/decimal"

type Product struct {
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitsInStock int             `json:"units_in_stock"`
}
