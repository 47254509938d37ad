package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	catSoups     = Category{ID: uuid.New(), NameLT: "Sriubos", NameEN: "Soups", Order: 1}
	catMain      = Category{ID: uuid.New(), NameLT: "Pagrindiniai", NameEN: "Main Course", Order: 2}
	catMainLight = Category{ID: uuid.New(), NameLT: "Lengvi pagrindiniai", NameEN: "Main Light", Order: 3}
	catPizza     = Category{ID: uuid.New(), NameLT: "Picos", NameEN: "Pizza", Order: 4}
	catDesserts  = Category{ID: uuid.New(), NameLT: "Desertai", NameEN: "Desserts", Order: 5}
)

func testDish(cat Category, nameLT, nameEN, price string) Dish {
	return Dish{
		ID:        uuid.New(),
		Category:  cat,
		NameLT:    nameLT,
		NameEN:    nameEN,
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
}

func withHalfPrice(d Dish, half string) Dish {
	d.HalfPrice = decimal.NewNullDecimal(decimal.RequireFromString(half))
	return d
}

func testComplex(nameEN string, order int32, opts ...Option) Complex {
	return Complex{
		ID:      uuid.New(),
		NameLT:  nameEN + " LT",
		NameEN:  nameEN,
		Price:   decimal.RequireFromString("5.00"),
		Order:   order,
		Options: opts,
	}
}

func testOption(soupSize, mainType string, order int32) Option {
	return Option{ID: uuid.New(), SoupSize: soupSize, MainDishType: mainType, Order: order}
}

var testDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
