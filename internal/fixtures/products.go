package fixtures

import (
	"github.com/goydb/goyagg/pkg/model"
	"github.com/shopspring/decimal"
)

func product(id int, name, category, price string, stock int) model.Product {
	return model.Product{
		ProductID:    id,
		ProductName:  name,
		Category:     category,
		UnitPrice:    decimal.RequireFromString(price),
		UnitsInStock: stock,
	}
}

// Products returns a subset of the Northwind product list.
func Products() []model.Product {
	return []model.Product{
		product(1, "Chai", "Beverages", "18.00", 39),
		product(2, "Chang", "Beverages", "19.00", 17),
		product(3, "Aniseed Syrup", "Condiments", "10.00", 13),
		product(4, "Chef Anton's Cajun Seasoning", "Condiments", "22.00", 53),
		product(5, "Chef Anton's Gumbo Mix", "Condiments", "21.35", 0),
		product(6, "Grandma's Boysenberry Spread", "Condiments", "25.00", 120),
		product(7, "Uncle Bob's Organic Dried Pears", "Produce", "30.00", 15),
		product(8, "Northwoods Cranberry Sauce", "Condiments", "40.00", 6),
		product(9, "Mishi Kobe Niku", "Meat/Poultry", "97.00", 29),
		product(10, "Ikura", "Seafood", "31.00", 31),
		product(11, "Queso Cabrales", "Dairy Products", "21.00", 22),
		product(12, "Queso Manchego La Pastora", "Dairy Products", "38.00", 86),
		product(13, "Konbu", "Seafood", "6.00", 24),
		product(14, "Tofu", "Produce", "23.25", 35),
		product(15, "Genen Shouyu", "Condiments", "15.50", 39),
		product(16, "Pavlova", "Confections", "17.45", 29),
		product(17, "Alice Mutton", "Meat/Poultry", "39.00", 0),
		product(18, "Carnarvon Tigers", "Seafood", "62.50", 42),
		product(19, "Teatime Chocolate Biscuits", "Confections", "9.20", 25),
		product(20, "Sir Rodney's Marmalade", "Confections", "81.00", 40),
		product(21, "Sir Rodney's Scones", "Confections", "10.00", 3),
		product(22, "Gustaf's Knäckebröd", "Grains/Cereals", "21.00", 104),
		product(23, "Tunnbröd", "Grains/Cereals", "9.00", 61),
		product(24, "Guaraná Fantástica", "Beverages", "4.50", 20),
	}
}
