package catalogue

import (
	"github.com/goydb/goyagg/internal/fixtures"
	"github.com/goydb/goyagg/pkg/aggregate"
)

// Aggregate multiplies all doubles.
func Aggregate() (float64, error) {
	return aggregate.Reduce(fixtures.Doubles(), func(product, d float64) float64 {
		return product * d
	})
}

// SeededAggregate subtracts each withdrawal from the start balance
// unless the balance would drop below zero.
func SeededAggregate() float64 {
	return aggregate.Fold(fixtures.Withdrawals(), fixtures.StartBalance, func(balance float64, w int) float64 {
		if next := balance - float64(w); next >= 0 {
			return next
		}
		return balance
	})
}
