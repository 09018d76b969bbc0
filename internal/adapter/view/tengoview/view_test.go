package tengoview

import (
	"context"
	"testing"
	"time"

	"github.com/goydb/goyagg/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var products = []*model.Document{
	{ID: "1", Data: map[string]interface{}{"product_name": "Chai", "category": "Beverages", "units_in_stock": 39}},
	{ID: "3", Data: map[string]interface{}{"product_name": "Aniseed Syrup", "category": "Condiments", "units_in_stock": 13}},
	{ID: "5", Data: map[string]interface{}{"product_name": "Chef Anton's Gumbo Mix", "category": "Condiments", "units_in_stock": 0}},
}

func TestViewServer_Process(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		docs    []*model.Document
		want    []*model.Document
		wantErr bool
	}{
		{
			name:   "no emit",
			script: `func(doc) {}`,
			docs:   products,
			want:   []*model.Document{},
		},
		{
			name: "emit per product",
			script: `func(doc) {
				emit(doc.category, doc.units_in_stock)
			}`,
			docs: products,
			want: []*model.Document{
				{ID: "1", Key: "Beverages", Value: int64(39)},
				{ID: "3", Key: "Condiments", Value: int64(13)},
				{ID: "5", Key: "Condiments", Value: int64(0)},
			},
		},
		{
			name: "in stock only",
			script: `func(doc) {
				if doc.units_in_stock > 0 {
					emit(doc._id, 1)
				}
			}`,
			docs: products,
			want: []*model.Document{
				{ID: "1", Key: "1", Value: int64(1)},
				{ID: "3", Key: "3", Value: int64(1)},
			},
		},
		{
			name: "stdlib",
			script: `func(doc) {
				emit(text.to_upper(doc.category), len(doc.product_name))
			}`,
			docs: products[:1],
			want: []*model.Document{
				{ID: "1", Key: "BEVERAGES", Value: int64(4)},
			},
		},
		{
			name: "orders of a customer",
			script: `func(doc) {
				for o in doc.orders {
					emit(doc._id, o.total)
				}
			}`,
			docs: []*model.Document{
				{ID: "ANATR", Data: map[string]interface{}{"orders": []interface{}{
					map[string]interface{}{"order_id": 10308, "total": 88.8},
					map[string]interface{}{"order_id": 10625, "total": 479.75},
				}}},
				{ID: "FISSA", Data: map[string]interface{}{"orders": []interface{}{}}},
			},
			want: []*model.Document{
				{ID: "ANATR", Key: "ANATR", Value: 88.8},
				{ID: "ANATR", Key: "ANATR", Value: 479.75},
			},
		},
		{
			name:    "runtime error",
			script:  `func(doc) { emit(doc.category.name.first, 1) }`,
			docs:    products[:1],
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewViewServer(context.Background(), tt.script)
			require.NoError(t, err)
			got, err := s.Process(context.Background(), tt.docs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, got)
		})
	}
}

func TestViewServer_Cancel(t *testing.T) {
	s, err := NewViewServer(context.Background(), `func(doc) {
		for true {}
	}`)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = s.Process(ctx, products[:1])
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewViewServer(t *testing.T) {
	_, err := NewViewServer(context.Background(), `func(doc) {`)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewViewServer(ctx, `func(doc) {}`)
	assert.ErrorIs(t, err, context.Canceled)
}
