package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/goydb/goyagg/internal/adapter/reducer"
	"github.com/goydb/goyagg/internal/adapter/view/gojaview"
	"github.com/goydb/goyagg/internal/adapter/view/tengoview"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/goydb/goyagg/pkg/port"
)

var (
	ErrNoMapFunction   = errors.New("no map function in the query")
	ErrUnknownLanguage = errors.New("unknown language")
)

// ViewEngines are the languages map functions can be written in.
var ViewEngines = port.ViewEngines{
	model.LanguageJavaScript: gojaview.NewViewServer,
	model.LanguageTengo:      tengoview.NewViewServer,
}

// ReducerEngines are the languages custom reduce functions can be
// written in.
var ReducerEngines = port.ReducerEngines{
	model.LanguageJavaScript: gojaview.NewReducer,
}

// View runs an ad-hoc map/reduce query over a collection. Nil engines
// default to ViewEngines and ReducerEngines.
type View struct {
	Collections    port.Collections
	ViewEngines    port.ViewEngines
	ReducerEngines port.ReducerEngines
	Collection     string
	Functions      model.ViewFunctions
	Group          bool
}

func (v View) language() string {
	if v.Functions.Language == "" {
		return model.LanguageJavaScript
	}
	return v.Functions.Language
}

func (v View) ViewServer(ctx context.Context) (port.ViewServer, error) {
	engines := v.ViewEngines
	if engines == nil {
		engines = ViewEngines
	}

	builder, ok := engines[v.language()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, v.language())
	}
	return builder(ctx, v.Functions.MapFn)
}

// Reducer returns the built-in reducer named by the query, or a
// reducer for reduce function source in the query language.
func (v View) Reducer(ctx context.Context) (port.Reducer, error) {
	if v.Functions.ReduceFn == "" || v.Functions.IsBuiltinReduce() {
		return reducer.New(v.Functions.ReduceFn)
	}

	engines := v.ReducerEngines
	if engines == nil {
		engines = ReducerEngines
	}

	builder, ok := engines[v.language()]
	if !ok {
		return nil, fmt.Errorf("%w: no custom reduce functions in %q", ErrUnknownLanguage, v.language())
	}
	return builder(ctx, v.Functions.ReduceFn)
}

// Run maps every document of the collection and reduces the emitted
// rows. It returns the rows and the number of mapped rows.
func (v View) Run(ctx context.Context) ([]*model.Document, int, error) {
	if v.Functions.MapFn == "" {
		return nil, 0, ErrNoMapFunction
	}

	docs, err := v.Collections.Documents(ctx, v.Collection)
	if err != nil {
		return nil, 0, err
	}

	server, err := v.ViewServer(ctx)
	if err != nil {
		return nil, 0, err
	}
	r, err := v.Reducer(ctx)
	if err != nil {
		return nil, 0, err
	}

	viewDocs, err := server.Process(ctx, docs)
	if err != nil {
		return nil, 0, fmt.Errorf("map: %w", err)
	}

	for _, doc := range viewDocs {
		r.Reduce(doc, v.Group)
	}
	rows, err := r.Result(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("reduce: %w", err)
	}

	return rows, len(viewDocs), nil
}
