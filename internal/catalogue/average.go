package catalogue

import (
	"github.com/goydb/goyagg/internal/fixtures"
	"github.com/goydb/goyagg/pkg/aggregate"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/shopspring/decimal"
)

// Average returns the mean of the digits.
func Average() (float64, error) {
	return aggregate.Average(fixtures.Digits(), aggregate.Identity[int])
}

// AverageByLength returns the mean word length.
func AverageByLength() (float64, error) {
	return aggregate.Average(fixtures.Words(), wordLength)
}

// AveragePrice returns the mean unit price per category.
func AveragePrice() ([]aggregate.Result[string, decimal.Decimal], error) {
	return aggregate.GroupAggregateErr(fixtures.Products(), productCategory, func(group []model.Product) (decimal.Decimal, error) {
		return aggregate.AverageDecimal(group, unitPrice)
	})
}
