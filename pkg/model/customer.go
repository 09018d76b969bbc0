package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID  string  `json:"customer_id"`
	CompanyName string  `json:"company_name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Region      string  `json:"region,omitempty"`
	PostalCode  string  `json:"postal_code"`
	Country     string  `json:"country"`
	Phone       string  `json:"phone"`
	Fax         string  `json:"fax,omitempty"`
	Orders      []Order `json:"orders"`
}

type Order struct {
	OrderID   int             `json:"order_id"`
	OrderDate time.Time       `json:"order_date"`
	Total     decimal.Decimal `json:"total"`
}
