package aggregate

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digits = []int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}

func TestCount(t *testing.T) {
	assert.Equal(t, 5, Count([]int{2, 2, 3, 5, 5}))
	assert.Equal(t, 0, Count([]int{}))

	odd, err := CountWhere(digits, func(n int) bool { return n%2 != 0 })
	require.NoError(t, err)
	assert.Equal(t, 5, odd)
}

func TestScalarDigits(t *testing.T) {
	sum, err := Sum(digits, Identity[int])
	require.NoError(t, err)
	assert.Equal(t, 45, sum)

	min, err := Min(digits, Identity[int])
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	max, err := Max(digits, Identity[int])
	require.NoError(t, err)
	assert.Equal(t, 9, max)

	avg, err := Average(digits, Identity[int])
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
}

func TestScalarWords(t *testing.T) {
	words := []string{"cherry", "apple", "blueberry"}
	length := func(s string) int { return len(s) }

	sum, err := Sum(words, length)
	require.NoError(t, err)
	assert.Equal(t, 20, sum)

	min, err := Min(words, length)
	require.NoError(t, err)
	assert.Equal(t, 5, min)

	shortest, err := MinBy(words, length)
	require.NoError(t, err)
	assert.Equal(t, "apple", shortest)

	longest, err := MaxBy(words, length)
	require.NoError(t, err)
	assert.Equal(t, "blueberry", longest)

	avg, err := Average(words, length)
	require.NoError(t, err)
	assert.InDelta(t, 6.6666, avg, 0.001)
}

func TestMinByTiesKeepFirst(t *testing.T) {
	words := []string{"kiwi", "pear", "fig", "yam"}
	w, err := MinBy(words, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, "fig", w)
}

func TestEmptySequence(t *testing.T) {
	var empty []int

	_, err := Min(empty, Identity[int])
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = Max(empty, Identity[int])
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = MinBy(empty, Identity[int])
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = Average(empty, Identity[int])
	assert.ErrorIs(t, err, ErrEmptySequence)
	_, err = Reduce(empty, func(a, b int) int { return a + b })
	assert.ErrorIs(t, err, ErrEmptySequence)

	// sum and count are defined for empty sequences
	sum, err := Sum(empty, Identity[int])
	require.NoError(t, err)
	assert.Equal(t, 0, sum)
	assert.Equal(t, 0, Count(empty))
	odd, err := CountWhere(empty, func(n int) bool { return n%2 != 0 })
	require.NoError(t, err)
	assert.Equal(t, 0, odd)
}

func TestNilProjection(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{"count where", func() error { _, err := CountWhere[int](digits, nil); return err }},
		{"sum", func() error { _, err := Sum[int, int](digits, nil); return err }},
		{"sum empty", func() error { _, err := Sum[int, int](nil, nil); return err }},
		{"min", func() error { _, err := Min[int, int](digits, nil); return err }},
		{"max", func() error { _, err := Max[int, int](digits, nil); return err }},
		{"min by", func() error { _, err := MinBy[int, int](digits, nil); return err }},
		{"max by", func() error { _, err := MaxBy[int, int](digits, nil); return err }},
		{"average", func() error { _, err := Average[int, int](digits, nil); return err }},
		{"reduce", func() error { _, err := Reduce[int](digits, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = tt.call() })
			assert.ErrorIs(t, err, ErrInvalidProjection)
		})
	}
}

func TestSeededFold(t *testing.T) {
	withdrawals := []int{20, 10, 40, 50, 10, 70, 30}
	balance := Fold(withdrawals, 100.0, func(balance float64, w int) float64 {
		if balance-float64(w) >= 0 {
			return balance - float64(w)
		}
		return balance
	})
	assert.Equal(t, 20.0, balance)
}

func TestFoldProduct(t *testing.T) {
	doubles := []float64{1.7, 2.3, 1.9, 4.1, 2.9}
	product, err := Reduce(doubles, func(a, b float64) float64 { return a * b })
	require.NoError(t, err)
	assert.InDelta(t, 88.33081, product, 1e-9)
}

func TestSumMatchesFold(t *testing.T) {
	sequences := [][]int{
		{1},
		{2, 2, 3, 5, 5},
		digits,
		{-4, 7, 0, -1},
	}
	for i, s := range sequences {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			sum, err := Sum(s, Identity[int])
			require.NoError(t, err)
			assert.Equal(t, Fold(s, 0, func(a, b int) int { return a + b }), sum)
			assert.Equal(t, len(s), Count(s))

			min, err := Min(s, Identity[int])
			require.NoError(t, err)
			max, err := Max(s, Identity[int])
			require.NoError(t, err)
			for _, v := range s {
				assert.LessOrEqual(t, min, v)
				assert.GreaterOrEqual(t, max, v)
			}
		})
	}
}
