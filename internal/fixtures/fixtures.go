// Package fixtures holds the static data sets the aggregation
// catalogue runs on. Every accessor returns a fresh copy.
package fixtures

func Numbers() []int {
	return []int{2, 2, 3, 5, 5}
}

func Digits() []int {
	return []int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}
}

func Words() []string {
	return []string{"cherry", "apple", "blueberry"}
}

func Doubles() []float64 {
	return []float64{1.7, 2.3, 1.9, 4.1, 2.9}
}

// Withdrawals are attempted against StartBalance in order.
func Withdrawals() []int {
	return []int{20, 10, 40, 50, 10, 70, 30}
}

const StartBalance = 100.0
