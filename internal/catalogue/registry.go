// Package catalogue contains the aggregation examples and a registry
// to list, look up and run them by name.
package catalogue

import (
	"context"
	"errors"
	"fmt"

	"github.com/goydb/goyagg/pkg/model"
)

var ErrUnknownExample = errors.New("unknown example")

// RunFunc computes the result of an example. It fails without
// computing anything if ctx is already done.
type RunFunc func(ctx context.Context) (interface{}, error)

type Example struct {
	model.ExampleInfo
	Run RunFunc
}

type Registry struct {
	examples []Example
	index    map[string]int
}

// NewRegistry returns a registry of the given examples, in order.
// Registering a name twice is an error.
func NewRegistry(examples ...Example) (*Registry, error) {
	r := &Registry{
		index: make(map[string]int, len(examples)),
	}
	for _, e := range examples {
		if _, ok := r.index[e.Name]; ok {
			return nil, fmt.Errorf("example %q registered twice", e.Name)
		}
		if e.Run == nil {
			return nil, fmt.Errorf("example %q has no run function", e.Name)
		}
		r.index[e.Name] = len(r.examples)
		r.examples = append(r.examples, e)
	}
	return r, nil
}

// Default returns the registry of all catalogue examples.
func Default() *Registry {
	r, err := NewRegistry(Examples()...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) All() []Example {
	return append([]Example(nil), r.examples...)
}

func (r *Registry) Infos() []model.ExampleInfo {
	infos := make([]model.ExampleInfo, len(r.examples))
	for i, e := range r.examples {
		infos[i] = e.ExampleInfo
	}
	return infos
}

func (r *Registry) Lookup(name string) (Example, error) {
	i, ok := r.index[name]
	if !ok {
		return Example{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	return r.examples[i], nil
}

// Run looks up the example and runs it.
func (r *Registry) Run(ctx context.Context, name string) (interface{}, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	v, err := e.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("example %q: %w", name, err)
	}
	return v, nil
}

func value[T any](fn func() T) RunFunc {
	return func(ctx context.Context) (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return fn(), nil
	}
}

func valueErr[T any](fn func() (T, error)) RunFunc {
	return func(ctx context.Context) (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func info(name, operation, description string) model.ExampleInfo {
	return model.ExampleInfo{
		Name:        name,
		Operation:   operation,
		Description: description,
	}
}

// Examples returns every catalogue example.
func Examples() []Example {
	return []Example{
		{info("CountNumbers", "count", "Calculates the count of elements in sequence."), value(CountNumbers)},
		{info("CountOddNumbers", "count", "Calculates the number of odd numbers in the array."), valueErr(CountOddNumbers)},
		{info("CustomersOrdersCount", "count", "Calculates for each customer the count of his orders."), valueErr(CustomersOrdersCount)},
		{info("ProductsInCategoryCount", "count", "Defines a sequence of categories and how many products each has."), valueErr(ProductsInCategoryCount)},
		{info("Sum", "sum", "Calculates the sum of the numbers in an array."), valueErr(Sum)},
		{info("SumByLength", "sum", "Calculates the total number of characters of all words in the array."), valueErr(SumByLength)},
		{info("TotalUnitsInStock", "sum", "Calculates the total units in stock for each product category."), valueErr(TotalUnitsInStock)},
		{info("Min", "min", "Calculates the lowest number in an array."), valueErr(Min)},
		{info("MinByLength", "min", "Calculates the length of the shortest word in an array."), valueErr(MinByLength)},
		{info("CheapestPrice", "min", "Calculates the cheapest price among each category's products."), valueErr(CheapestPrice)},
		{info("Max", "max", "Calculates the highest number in an array."), valueErr(Max)},
		{info("MaxByLength", "max", "Calculates the length of the longest word in an array."), valueErr(MaxByLength)},
		{info("MostExpensivePrice", "max", "Calculates the most expensive price among each category's products."), valueErr(MostExpensivePrice)},
		{info("Average", "average", "Gets the average of all numbers in an array."), valueErr(Average)},
		{info("AverageByLength", "average", "Gets the average length of the words in the array."), valueErr(AverageByLength)},
		{info("AveragePrice", "average", "Gets the average price of each category's products."), valueErr(AveragePrice)},
		{info("Aggregate", "aggregate", "Multiplies all doubles of an array with a fold."), valueErr(Aggregate)},
		{info("SeededAggregate", "aggregate", "Subtracts each withdrawal from the initial balance of 100, as long as the balance never drops below 0."), value(SeededAggregate)},
	}
}
