// Package keygroup keeps per key state for view reducers.
package keygroup

import (
	"reflect"

	"github.com/goydb/goyagg/pkg/model"
)

// Groups keeps state per key in first seen order. Hashable keys are
// found through a map, composite keys (arrays and objects emitted by
// scripts) by deep comparison.
type Groups[S any] struct {
	keys      []interface{}
	states    []S
	index     map[interface{}]int
	composite []int
	init      func() S
}

func New[S any](init func() S) *Groups[S] {
	return &Groups[S]{
		index: make(map[interface{}]int),
		init:  init,
	}
}

// Get returns the state of the group of doc. Without group every doc
// belongs to the group with the nil key. The pointer is valid until
// the next call to Get.
func (g *Groups[S]) Get(doc *model.Document, group bool) *S {
	var key interface{}
	if group {
		key = doc.Key
	}

	hashable := key == nil || reflect.TypeOf(key).Comparable()
	if hashable {
		if i, ok := g.index[key]; ok {
			return &g.states[i]
		}
	} else {
		for _, i := range g.composite {
			if reflect.DeepEqual(g.keys[i], key) {
				return &g.states[i]
			}
		}
	}

	i := len(g.states)
	g.keys = append(g.keys, key)
	g.states = append(g.states, g.init())
	if hashable {
		g.index[key] = i
	} else {
		g.composite = append(g.composite, i)
	}
	return &g.states[i]
}

// Len returns the number of groups.
func (g *Groups[S]) Len() int {
	return len(g.states)
}

// Each calls fn for every group in order.
func (g *Groups[S]) Each(fn func(key interface{}, state *S)) {
	for i := range g.states {
		fn(g.keys[i], &g.states[i])
	}
}

// Result builds one row per group.
func (g *Groups[S]) Result(value func(*S) interface{}) []*model.Document {
	docs := make([]*model.Document, len(g.states))
	for i := range g.states {
		docs[i] = &model.Document{
			Key:   g.keys[i],
			Value: value(&g.states[i]),
		}
	}
	return docs
}
