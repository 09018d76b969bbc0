package catalogue

import (
	"github.com/goydb/goyagg/internal/fixtures"
	"github.com/goydb/goyagg/pkg/aggregate"
	"github.com/goydb/goyagg/pkg/model"
)

// Sum adds up the digits.
func Sum() (int, error) {
	return aggregate.Sum(fixtures.Digits(), aggregate.Identity[int])
}

// SumByLength returns the total number of characters of all words.
func SumByLength() (int, error) {
	return aggregate.Sum(fixtures.Words(), wordLength)
}

// TotalUnitsInStock returns the units in stock per category.
func TotalUnitsInStock() ([]aggregate.Result[string, int], error) {
	return aggregate.GroupAggregateErr(fixtures.Products(), productCategory, func(group []model.Product) (int, error) {
		return aggregate.Sum(group, func(p model.Product) int { return p.UnitsInStock })
	})
}

func wordLength(w string) int {
	return len([]rune(w))
}
