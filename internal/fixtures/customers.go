package fixtures

import (
	"time"

	"github.com/goydb/goyagg/pkg/model"
	"github.com/shopspring/decimal"
)

func order(id int, date, total string) model.Order {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Order{
		OrderID:   id,
		OrderDate: d,
		Total:     decimal.RequireFromString(total),
	}
}

// Customers returns a subset of the Northwind customers with their
// orders.
func Customers() []model.Customer {
	return []model.Customer{
		{
			CustomerID:  "ALFKI",
			CompanyName: "Alfreds Futterkiste",
			Address:     "Obere Str. 57",
			City:        "Berlin",
			PostalCode:  "12209",
			Country:     "Germany",
			Phone:       "030-0074321",
			Fax:         "030-0076545",
			Orders: []model.Order{
				order(10643, "1997-08-25", "814.50"),
				order(10692, "1997-10-03", "878.00"),
				order(10702, "1997-10-13", "330.00"),
				order(10835, "1998-01-15", "845.80"),
				order(10952, "1998-03-16", "471.20"),
				order(11011, "1998-04-09", "933.50"),
			},
		},
		{
			CustomerID:  "ANATR",
			CompanyName: "Ana Trujillo Emparedados y helados",
			Address:     "Avda. de la Constitución 2222",
			City:        "México D.F.",
			PostalCode:  "05021",
			Country:     "Mexico",
			Phone:       "(5) 555-4729",
			Fax:         "(5) 555-3745",
			Orders: []model.Order{
				order(10308, "1996-09-18", "88.80"),
				order(10625, "1997-08-08", "479.75"),
				order(10759, "1997-11-28", "320.00"),
				order(10926, "1998-03-04", "514.40"),
			},
		},
		{
			CustomerID:  "ANTON",
			CompanyName: "Antonio Moreno Taquería",
			Address:     "Mataderos  2312",
			City:        "México D.F.",
			PostalCode:  "05023",
			Country:     "Mexico",
			Phone:       "(5) 555-3932",
			Orders: []model.Order{
				order(10365, "1996-11-27", "403.20"),
				order(10507, "1997-04-15", "749.06"),
				order(10535, "1997-05-13", "1940.85"),
				order(10573, "1997-06-19", "2082.00"),
				order(10677, "1997-09-22", "813.37"),
				order(10682, "1997-09-25", "375.50"),
				order(10856, "1998-01-28", "660.00"),
			},
		},
		{
			CustomerID:  "FISSA",
			CompanyName: "FISSA Fabrica Inter. Salchichas S.A.",
			Address:     "C/ Moralzarzal, 86",
			City:        "Madrid",
			PostalCode:  "28034",
			Country:     "Spain",
			Phone:       "(91) 555 94 44",
			Fax:         "(91) 555 55 93",
		},
	}
}
