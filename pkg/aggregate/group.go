package aggregate

import (
	"fmt"
)

// Group holds the items sharing a key, in input order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Result is the aggregated value of one group.
type Result[K comparable, V any] struct {
	Key   K `json:"key" bson:"key" cbor:"key"`
	Value V `json:"value" bson:"value" cbor:"value"`
}

// GroupBy partitions items by key. Groups are returned in the order
// their key was first seen. key is called exactly once per item.
func GroupBy[T any, K comparable](items []T, key func(T) K) ([]Group[K, T], error) {
	if key == nil {
		return nil, ErrInvalidProjection
	}

	groups := make([]Group[K, T], 0)
	index := make(map[K]int)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups, nil
}

// GroupAggregate reduces every group to a single value.
func GroupAggregate[T any, K comparable, V any](items []T, key func(T) K, reduce func([]T) V) ([]Result[K, V], error) {
	if reduce == nil {
		return nil, ErrInvalidProjection
	}
	return GroupAggregateErr(items, key, func(group []T) (V, error) {
		return reduce(group), nil
	})
}

// GroupAggregateErr is like GroupAggregate for reducers that can fail.
// The first failing group aborts the aggregation.
func GroupAggregateErr[T any, K comparable, V any](items []T, key func(T) K, reduce func([]T) (V, error)) ([]Result[K, V], error) {
	if reduce == nil {
		return nil, ErrInvalidProjection
	}

	groups, err := GroupBy(items, key)
	if err != nil {
		return nil, err
	}

	results := make([]Result[K, V], len(groups))
	for i, g := range groups {
		v, err := reduce(g.Items)
		if err != nil {
			return nil, fmt.Errorf("group %v: %w", g.Key, err)
		}
		results[i] = Result[K, V]{Key: g.Key, Value: v}
	}

	return results, nil
}
