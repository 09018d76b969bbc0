package gojaview

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/goydb/goyagg/pkg/port"
)

var _ port.ViewServer = (*ViewServer)(nil)

// ViewServer evaluates a javascript map function. A runtime is not
// safe for concurrent use, create one server per query.
type ViewServer struct {
	vm *goja.Runtime
}

// NewViewServer compiles the map function. Evaluating the source is
// interrupted once ctx is done.
func NewViewServer(ctx context.Context, fn string) (port.ViewServer, error) {
	vm := goja.New()
	fn = `
	var _result = [];
	var _doc = {};
	var docs = [];
	function emit(key, value) {
		_result.push([key, value, _doc._id]);
	}
	var docFn = ` + fn + `;`
	err := run(ctx, vm, func() error {
		_, err := vm.RunString(fn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("script error %v: %w", fn, err)
	}
	if _, ok := goja.AssertFunction(vm.Get("docFn")); !ok {
		return nil, fmt.Errorf("map function is not a function")
	}

	return &ViewServer{
		vm: vm,
	}, nil
}

func (s *ViewServer) Process(ctx context.Context, docs []*model.Document) ([]*model.Document, error) {
	s.vm.Set("docs", simpleDocs(docs)) // nolint: errcheck

	err := run(ctx, s.vm, func() error {
		_, err := s.vm.RunString(`_result = [];
	docs.forEach(function (doc) {
		_doc = doc;
		docFn(doc);
	});`)
		return err
	})
	if err != nil {
		return nil, err
	}

	resultData, ok := s.vm.Get("_result").Export().([]interface{})
	if !ok {
		return nil, fmt.Errorf("unable to export")
	}
	result := make([]*model.Document, len(resultData))

	for i, rd := range resultData {
		row := rd.([]interface{})
		id, _ := row[2].(string)
		result[i] = &model.Document{
			Key:   row[0],
			Value: row[1],
			ID:    id,
		}
	}

	return result, nil
}

// run calls fn with vm interrupted as soon as ctx is done. An
// interrupted script fails with the error of ctx.
func run(ctx context.Context, vm *goja.Runtime, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	vm.ClearInterrupt()
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	err := fn()
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) && ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ctx.Err(), err)
	}
	return err
}

func simpleDocs(docs []*model.Document) []interface{} {
	simple := make([]interface{}, len(docs))
	for i, doc := range docs {
		data := make(map[string]interface{}, len(doc.Data)+1)
		for k, v := range doc.Data {
			data[k] = v
		}
		data["_id"] = doc.ID
		simple[i] = data
	}
	return simple
}
