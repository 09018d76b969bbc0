package catalogue

import (
	"github.com/goydb/goyagg/internal/fixtures"
	"github.com/goydb/goyagg/pkg/aggregate"
	"github.com/goydb/goyagg/pkg/model"
)

// CountNumbers counts the elements of the numbers fixture.
func CountNumbers() int {
	return aggregate.Count(fixtures.Numbers())
}

// CountOddNumbers counts the odd digits.
func CountOddNumbers() (int, error) {
	return aggregate.CountWhere(fixtures.Digits(), func(n int) bool {
		return n%2 != 0
	})
}

// CustomersOrdersCount returns the number of orders of every customer.
// Customers without orders are reported with zero.
func CustomersOrdersCount() ([]aggregate.Result[string, int], error) {
	return aggregate.GroupAggregateErr(fixtures.Customers(),
		func(c model.Customer) string { return c.CustomerID },
		func(group []model.Customer) (int, error) {
			return aggregate.Sum(group, func(c model.Customer) int {
				return aggregate.Count(c.Orders)
			})
		})
}

// ProductsInCategoryCount returns the number of products per category.
func ProductsInCategoryCount() ([]aggregate.Result[string, int], error) {
	return aggregate.GroupAggregate(fixtures.Products(), productCategory, aggregate.Count[model.Product])
}

func productCategory(p model.Product) string {
	return p.Category
}
