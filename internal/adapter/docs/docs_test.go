package docs

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures_Names(t *testing.T) {
	assert.Equal(t, []string{"customers", "digits", "numbers", "products", "words"}, Fixtures{}.Names())
}

func TestFixtures_Products(t *testing.T) {
	docs, err := Fixtures{}.Documents(context.Background(), "products")
	require.NoError(t, err)
	require.Len(t, docs, 24)

	assert.Equal(t, "1", docs[0].ID)
	assert.Equal(t, "Chai", docs[0].Data["product_name"])
	assert.Equal(t, "Beverages", docs[0].Data["category"])
	assert.Equal(t, 18.0, docs[0].Data["unit_price"])
	assert.Equal(t, 39, docs[0].Data["units_in_stock"])
}

func TestFixtures_Customers(t *testing.T) {
	docs, err := Fixtures{}.Documents(context.Background(), "customers")
	require.NoError(t, err)
	require.Len(t, docs, 4)

	assert.Equal(t, "ALFKI", docs[0].ID)
	assert.Equal(t, "Berlin", docs[0].Data["city"])
	orders, ok := docs[0].Data["orders"].([]interface{})
	require.True(t, ok)
	assert.Len(t, orders, 6)
	assert.Equal(t, "1997-08-25T00:00:00Z", orders[0].(map[string]interface{})["order_date"])

	assert.Empty(t, docs[3].Data["orders"])
}

func TestFixtures_Values(t *testing.T) {
	tests := []struct {
		collection string
		want       []interface{}
	}{
		{"numbers", []interface{}{2, 2, 3, 5, 5}},
		{"digits", []interface{}{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}},
		{"words", []interface{}{"cherry", "apple", "blueberry"}},
	}
	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			docs, err := Fixtures{}.Documents(context.Background(), tt.collection)
			require.NoError(t, err)
			values := make([]interface{}, len(docs))
			for i, doc := range docs {
				assert.Equal(t, strconv.Itoa(i), doc.ID)
				values[i] = doc.Data["value"]
			}
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestFixtures_Unknown(t *testing.T) {
	_, err := Fixtures{}.Documents(context.Background(), "orders")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
