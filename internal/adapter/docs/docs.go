// Package docs exposes the fixtures as document collections for the
// map/reduce query engine.
package docs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/goydb/goyagg/internal/fixtures"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/goydb/goyagg/pkg/port"
	"github.com/shopspring/decimal"
)

var ErrUnknownCollection = errors.New("unknown collection")

var _ port.Collections = Fixtures{}

// Fixtures serves the static fixtures, converted on every request.
type Fixtures struct{}

var collections = map[string]func() []*model.Document{
	"products":  productDocs,
	"customers": customerDocs,
	"numbers":   numberDocs,
	"digits":    digitDocs,
	"words":     wordDocs,
}

func (Fixtures) Names() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (Fixtures) Documents(ctx context.Context, name string) ([]*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fn, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return fn(), nil
}

func number(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func productDocs() []*model.Document {
	products := fixtures.Products()
	docs := make([]*model.Document, len(products))
	for i, p := range products {
		docs[i] = &model.Document{
			ID: strconv.Itoa(p.ProductID),
			Data: map[string]interface{}{
				"product_id":     p.ProductID,
				"product_name":   p.ProductName,
				"category":       p.Category,
				"unit_price":     number(p.UnitPrice),
				"units_in_stock": p.UnitsInStock,
			},
		}
	}
	return docs
}

func customerDocs() []*model.Document {
	customers := fixtures.Customers()
	docs := make([]*model.Document, len(customers))
	for i, c := range customers {
		orders := make([]interface{}, len(c.Orders))
		for j, o := range c.Orders {
			orders[j] = map[string]interface{}{
				"order_id":   o.OrderID,
				"order_date": o.OrderDate.Format(time.RFC3339),
				"total":      number(o.Total),
			}
		}

		docs[i] = &model.Document{
			ID: c.CustomerID,
			Data: map[string]interface{}{
				"customer_id":  c.CustomerID,
				"company_name": c.CompanyName,
				"address":      c.Address,
				"city":         c.City,
				"region":       c.Region,
				"postal_code":  c.PostalCode,
				"country":      c.Country,
				"phone":        c.Phone,
				"fax":          c.Fax,
				"orders":       orders,
			},
		}
	}
	return docs
}

func numberDocs() []*model.Document {
	return valueDocs(fixtures.Numbers())
}

func digitDocs() []*model.Document {
	return valueDocs(fixtures.Digits())
}

func wordDocs() []*model.Document {
	return valueDocs(fixtures.Words())
}

func valueDocs[T any](values []T) []*model.Document {
	docs := make([]*model.Document, len(values))
	for i, v := range values {
		docs[i] = &model.Document{
			ID:   strconv.Itoa(i),
			Data: map[string]interface{}{"value": v},
		}
	}
	return docs
}
