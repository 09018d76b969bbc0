package gojaview

import (
	"context"
	"fmt"

	"github.com/dop251/goja"
	"github.com/goydb/goyagg/internal/adapter/keygroup"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/goydb/goyagg/pkg/port"
)

var _ port.Reducer = (*Reducer)(nil)

const reduceOver = 100

type partial struct {
	keys   []interface{}
	values []interface{}
}

// Reducer evaluates a javascript reduce function of the form
// function(keys, values, rereduce). Rows of a group are reduced in
// batches of reduceOver, the batch results are rereduced.
type Reducer struct {
	vm         *goja.Runtime
	reduceFn   goja.Callable
	groups     *keygroup.Groups[partial]
	reduceOver int
}

// NewReducer compiles the reduce function. Evaluating the source is
// interrupted once ctx is done.
func NewReducer(ctx context.Context, source string) (port.Reducer, error) {
	vm := goja.New()
	fn := `
	function sum(values) {
		var _sum = 0;
		values.forEach(function (value) {
			_sum += value
		});
		return _sum;
	}`
	_, err := vm.RunString(fn)
	if err != nil {
		return nil, fmt.Errorf("script error %v: %w", fn, err)
	}
	err = run(ctx, vm, func() error {
		_, err := vm.RunScript("reducer.js", "var reduceFn = "+source+";")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("script error %v: %w", source, err)
	}
	reduceFn, ok := goja.AssertFunction(vm.Get("reduceFn"))
	if !ok {
		return nil, fmt.Errorf("reduce function is not a function")
	}

	return &Reducer{
		vm:         vm,
		reduceFn:   reduceFn,
		groups:     keygroup.New(func() partial { return partial{} }),
		reduceOver: reduceOver,
	}, nil
}

// Reduce only collects the row, the reduce function runs in Result.
func (r *Reducer) Reduce(doc *model.Document, group bool) {
	p := r.groups.Get(doc, group)
	p.keys = append(p.keys, doc.Key)
	p.values = append(p.values, doc.Value)
}

// Result reduces every group. A group with more than reduceOver rows
// is reduced batch by batch and the batch results are rereduced.
func (r *Reducer) Result(ctx context.Context) ([]*model.Document, error) {
	reduced := make(map[*partial]interface{}, r.groups.Len())
	err := run(ctx, r.vm, func() error {
		var err error
		r.groups.Each(func(key interface{}, p *partial) {
			if err != nil {
				return
			}
			reduced[p], err = r.reduceGroup(p)
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.groups.Result(func(p *partial) interface{} {
		return reduced[p]
	}), nil
}

func (r *Reducer) reduceGroup(p *partial) (interface{}, error) {
	var batches []interface{}
	for start := 0; start < len(p.values); start += r.reduceOver {
		end := start + r.reduceOver
		if end > len(p.values) {
			end = len(p.values)
		}
		v, err := r.call(p.keys[start:end], p.values[start:end], false)
		if err != nil {
			return nil, err
		}
		batches = append(batches, v)
	}

	switch len(batches) {
	case 0:
		return nil, nil
	case 1:
		return batches[0], nil
	default:
		return r.call(nil, batches, true) // final rereduce
	}
}

func (r *Reducer) call(keys, values []interface{}, rereduce bool) (interface{}, error) {
	k := goja.Null()
	if keys != nil {
		k = r.vm.ToValue(keys)
	}
	res, err := r.reduceFn(goja.Undefined(), k, r.vm.ToValue(values), r.vm.ToValue(rereduce))
	if err != nil {
		return nil, fmt.Errorf("reduce function: %w", err)
	}
	return res.Export(), nil
}
