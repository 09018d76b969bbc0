package controller

import (
	"context"
	"testing"
	"time"

	"github.com/goydb/goyagg/internal/adapter/docs"
	"github.com/goydb/goyagg/internal/adapter/reducer"
	"github.com/goydb/goyagg/internal/adapter/view/gojaview"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/goydb/goyagg/pkg/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, v View) []*model.Document {
	t.Helper()
	v.Collections = docs.Fixtures{}
	rows, _, err := v.Run(context.Background())
	require.NoError(t, err)
	return rows
}

func TestView_ProductsInCategoryCount(t *testing.T) {
	for _, fns := range []model.ViewFunctions{
		{MapFn: `function(doc) { emit(doc.category, 1) }`, ReduceFn: "_count"},
		{Language: "tengo", MapFn: `func(doc) { emit(doc.category, 1) }`, ReduceFn: "_count"},
		{MapFn: `function(doc) { emit(doc.category, 1) }`, ReduceFn: `function(keys, values) { return values.length }`},
	} {
		rows := run(t, View{Collection: "products", Functions: fns, Group: true})
		require.Len(t, rows, 8)
		assert.Equal(t, &model.Document{Key: "Beverages", Value: int64(3)}, rows[0])
		assert.Equal(t, &model.Document{Key: "Condiments", Value: int64(6)}, rows[1])
		assert.Equal(t, &model.Document{Key: "Grains/Cereals", Value: int64(2)}, rows[7])
	}
}

func TestView_TotalUnitsInStock(t *testing.T) {
	rows := run(t, View{
		Collection: "products",
		Functions: model.ViewFunctions{
			MapFn:    `function(doc) { emit(doc.category, doc.units_in_stock) }`,
			ReduceFn: reducer.SumName,
		},
		Group: true,
	})
	require.Len(t, rows, 8)
	assert.Equal(t, int64(76), rows[0].Value)
	assert.Equal(t, int64(231), rows[1].Value)
}

func TestView_Ungrouped(t *testing.T) {
	tests := []struct {
		collection string
		reduce     string
		want       interface{}
	}{
		{"digits", reducer.AverageName, 4.5},
		{"digits", reducer.SumName, int64(45)},
		{"numbers", reducer.CountName, int64(5)},
		{"numbers", reducer.AverageName, 3.4},
	}
	for _, tt := range tests {
		t.Run(tt.collection+tt.reduce, func(t *testing.T) {
			rows := run(t, View{
				Collection: tt.collection,
				Functions: model.ViewFunctions{
					MapFn:    `function(doc) { emit(null, doc.value) }`,
					ReduceFn: tt.reduce,
				},
			})
			assert.Equal(t, []*model.Document{{Key: nil, Value: tt.want}}, rows)
		})
	}
}

func TestView_CustomersOrdersCount(t *testing.T) {
	rows := run(t, View{
		Collection: "customers",
		Functions: model.ViewFunctions{
			MapFn:    `function(doc) { emit(doc._id, doc.orders.length) }`,
			ReduceFn: reducer.SumName,
		},
		Group: true,
	})
	assert.Equal(t, []*model.Document{
		{Key: "ALFKI", Value: int64(6)},
		{Key: "ANATR", Value: int64(4)},
		{Key: "ANTON", Value: int64(7)},
		{Key: "FISSA", Value: int64(0)},
	}, rows)
}

func TestView_NoReduce(t *testing.T) {
	rows, total, err := View{
		Collections: docs.Fixtures{},
		Collection:  "words",
		Functions: model.ViewFunctions{
			MapFn: `function(doc) { emit(doc.value.length, doc.value) }`,
		},
	}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []*model.Document{
		{ID: "0", Key: int64(6), Value: "cherry"},
		{ID: "1", Key: int64(5), Value: "apple"},
		{ID: "2", Key: int64(9), Value: "blueberry"},
	}, rows)
}

func TestView_Engines(t *testing.T) {
	var built []string
	v := View{
		Collections: docs.Fixtures{},
		Collection:  "words",
		ViewEngines: port.ViewEngines{
			"upper": func(ctx context.Context, fn string) (port.ViewServer, error) {
				built = append(built, "view "+fn)
				return gojaview.NewViewServer(ctx, `function(doc) { emit(doc.value.toUpperCase(), 1) }`)
			},
		},
		ReducerEngines: port.ReducerEngines{
			"upper": func(ctx context.Context, fn string) (port.Reducer, error) {
				built = append(built, "reduce "+fn)
				return reducer.New(reducer.CountName)
			},
		},
		Functions: model.ViewFunctions{Language: "upper", MapFn: "m", ReduceFn: "r"},
		Group:     true,
	}
	rows, total, err := v.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"view m", "reduce r"}, built)
	assert.Equal(t, "CHERRY", rows[0].Key)

	v.Functions.Language = model.LanguageJavaScript
	_, _, err = v.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestView_Cancel(t *testing.T) {
	tests := []struct {
		name string
		fns  model.ViewFunctions
	}{
		{"map source", model.ViewFunctions{MapFn: `function(doc) {}; while (true) {}`}},
		{"map", model.ViewFunctions{MapFn: `function(doc) { while (true) {} }`}},
		{"reduce source", model.ViewFunctions{MapFn: `function(doc) { emit(null, 1) }`, ReduceFn: `function(keys, values) {}; while (true) {}`}},
		{"reduce", model.ViewFunctions{MapFn: `function(doc) { emit(null, 1) }`, ReduceFn: `function(keys, values) { while (true) {} }`}},
		{"tengo map", model.ViewFunctions{Language: model.LanguageTengo, MapFn: `func(doc) { for true {} }`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				_, _, err := View{Collections: docs.Fixtures{}, Collection: "words", Functions: tt.fns}.Run(ctx)
				done <- err
			}()

			select {
			case err := <-done:
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			case <-time.After(5 * time.Second):
				t.Fatal("query kept running after its deadline")
			}
		})
	}
}

func TestView_Errors(t *testing.T) {
	tests := []struct {
		name string
		view View
		err  error
	}{
		{"no map", View{Collection: "words"}, ErrNoMapFunction},
		{"unknown collection", View{Collection: "orders", Functions: model.ViewFunctions{MapFn: "function(doc) {}"}}, docs.ErrUnknownCollection},
		{"unknown language", View{Collection: "words", Functions: model.ViewFunctions{Language: "lua", MapFn: "x"}}, ErrUnknownLanguage},
		{"unknown reducer", View{Collection: "words", Functions: model.ViewFunctions{MapFn: "function(doc) {}", ReduceFn: "_median"}}, reducer.ErrUnknownReducer},
		{"tengo custom reduce", View{Collection: "words", Functions: model.ViewFunctions{Language: "tengo", MapFn: "func(doc) {}", ReduceFn: "func(k, v) {}"}}, ErrUnknownLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.view.Collections = docs.Fixtures{}
			_, _, err := tt.view.Run(context.Background())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
