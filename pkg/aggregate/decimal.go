package aggregate

import (
	"github.com/shopspring/decimal"
)

// SumDecimal adds up the projected decimal values.
func SumDecimal[T any](items []T, proj func(T) decimal.Decimal) (decimal.Decimal, error) {
	if proj == nil {
		return decimal.Zero, ErrInvalidProjection
	}
	return Fold(items, decimal.Zero, func(acc decimal.Decimal, item T) decimal.Decimal {
		return acc.Add(proj(item))
	}), nil
}

// MinDecimal returns the smallest projected decimal value.
func MinDecimal[T any](items []T, proj func(T) decimal.Decimal) (decimal.Decimal, error) {
	return bestDecimal(items, proj, decimal.Decimal.LessThan)
}

// MaxDecimal returns the largest projected decimal value.
func MaxDecimal[T any](items []T, proj func(T) decimal.Decimal) (decimal.Decimal, error) {
	return bestDecimal(items, proj, decimal.Decimal.GreaterThan)
}

// AverageDecimal returns sum / count without leaving decimal
// arithmetic. Division uses decimal.DivisionPrecision.
func AverageDecimal[T any](items []T, proj func(T) decimal.Decimal) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrEmptySequence
	}
	sum, err := SumDecimal(items, proj)
	if err != nil {
		return decimal.Zero, err
	}
	return sum.Div(decimal.NewFromInt(int64(len(items)))), nil
}

func bestDecimal[T any](items []T, proj func(T) decimal.Decimal, better func(a, b decimal.Decimal) bool) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrEmptySequence
	}
	if proj == nil {
		return decimal.Zero, ErrInvalidProjection
	}

	v := proj(items[0])
	for _, item := range items[1:] {
		if p := proj(item); better(p, v) {
			v = p
		}
	}
	return v, nil
}
