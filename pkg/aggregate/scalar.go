// Package aggregate implements single pass aggregations (count, sum,
// min, max, average and fold) over in-memory sequences, both over the
// whole sequence and per group of records sharing a key.
package aggregate

import (
	"golang.org/x/exp/constraints"
)

// Number is any type that supports addition and division.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count returns the number of items.
func Count[T any](items []T) int {
	return len(items)
}

// CountWhere returns the number of items matching pred.
func CountWhere[T any](items []T, pred func(T) bool) (int, error) {
	if pred == nil {
		return 0, ErrInvalidProjection
	}

	var n int
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n, nil
}

// Sum adds up the projected values, an empty sequence sums to zero.
func Sum[T any, N Number](items []T, proj func(T) N) (N, error) {
	if proj == nil {
		return 0, ErrInvalidProjection
	}
	return Fold(items, N(0), func(acc N, item T) N {
		return acc + proj(item)
	}), nil
}

// Min returns the smallest projected value.
func Min[T any, N constraints.Ordered](items []T, proj func(T) N) (N, error) {
	return best(items, proj, func(a, b N) bool { return a < b })
}

// Max returns the largest projected value.
func Max[T any, N constraints.Ordered](items []T, proj func(T) N) (N, error) {
	return best(items, proj, func(a, b N) bool { return a > b })
}

// MinBy returns the item with the smallest projected value. On ties
// the first item wins.
func MinBy[T any, N constraints.Ordered](items []T, proj func(T) N) (T, error) {
	return bestBy(items, proj, func(a, b N) bool { return a < b })
}

// MaxBy returns the item with the largest projected value. On ties
// the first item wins.
func MaxBy[T any, N constraints.Ordered](items []T, proj func(T) N) (T, error) {
	return bestBy(items, proj, func(a, b N) bool { return a > b })
}

// Average returns sum / count of the projected values.
func Average[T any, N Number](items []T, proj func(T) N) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmptySequence
	}
	if proj == nil {
		return 0, ErrInvalidProjection
	}

	var sum float64
	for _, item := range items {
		sum += float64(proj(item))
	}
	return sum / float64(len(items)), nil
}

// Fold accumulates the items left to right starting with seed. The
// combining function may return acc unchanged to skip an item.
func Fold[T, A any](items []T, seed A, fn func(acc A, item T) A) A {
	acc := seed
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Reduce is a Fold seeded with the first item.
func Reduce[T any](items []T, fn func(acc, item T) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	if fn == nil {
		var zero T
		return zero, ErrInvalidProjection
	}
	return Fold(items[1:], items[0], fn), nil
}

// Identity is a projection returning the item itself.
func Identity[T any](item T) T {
	return item
}

func best[T any, N constraints.Ordered](items []T, proj func(T) N, better func(a, b N) bool) (N, error) {
	var v N
	if len(items) == 0 {
		return v, ErrEmptySequence
	}
	if proj == nil {
		return v, ErrInvalidProjection
	}

	v = proj(items[0])
	for _, item := range items[1:] {
		if p := proj(item); better(p, v) {
			v = p
		}
	}
	return v, nil
}

func bestBy[T any, N constraints.Ordered](items []T, proj func(T) N, better func(a, b N) bool) (T, error) {
	var res T
	if len(items) == 0 {
		return res, ErrEmptySequence
	}
	if proj == nil {
		return res, ErrInvalidProjection
	}

	res = items[0]
	v := proj(res)
	for _, item := range items[1:] {
		if p := proj(item); better(p, v) {
			res, v = item, p
		}
	}
	return res, nil
}
