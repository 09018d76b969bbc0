package catalogue

import (
	"github.com/goydb/goyagg/internal/fixtures"
	"github.com/goydb/goyagg/pkg/aggregate"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/shopspring/decimal"
)

// Min returns the lowest digit.
func Min() (int, error) {
	return aggregate.Min(fixtures.Digits(), aggregate.Identity[int])
}

// MinByLength returns the length of the shortest word.
func MinByLength() (int, error) {
	return aggregate.Min(fixtures.Words(), wordLength)
}

// CheapestPrice returns the lowest unit price per category.
func CheapestPrice() ([]aggregate.Result[string, decimal.Decimal], error) {
	return aggregate.GroupAggregateErr(fixtures.Products(), productCategory, func(group []model.Product) (decimal.Decimal, error) {
		return aggregate.MinDecimal(group, unitPrice)
	})
}

// Max returns the highest digit.
func Max() (int, error) {
	return aggregate.Max(fixtures.Digits(), aggregate.Identity[int])
}

// MaxByLength returns the length of the longest word.
func MaxByLength() (int, error) {
	return aggregate.Max(fixtures.Words(), wordLength)
}

// MostExpensivePrice returns the highest unit price per category.
func MostExpensivePrice() ([]aggregate.Result[string, decimal.Decimal], error) {
	return aggregate.GroupAggregateErr(fixtures.Products(), productCategory, func(group []model.Product) (decimal.Decimal, error) {
		return aggregate.MaxDecimal(group, unitPrice)
	})
}

func unitPrice(p model.Product) decimal.Decimal {
	return p.UnitPrice
}
