// Package menu builds the customer-facing lunch menu from a day's snapshot:
// category classification, grouping with the light-main merge, complex
// expansion and response assembly. Everything here is pure; loading the
// snapshot is the caller's job.
package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of menu dates.
const DateLayout = "2006-01-02"

// Category is the part of a catalog category the menu needs.
type Category struct {
	ID     uuid.UUID
	NameLT string
	NameEN string
	Order  int32
}

// Dish is one dish offered on a day, carrying its link flags.
type Dish struct {
	ID            uuid.UUID
	Category      Category
	NameLT        string
	NameEN        string
	IngredientsLT string
	IngredientsEN string
	Price         decimal.Decimal
	HalfPrice     decimal.NullDecimal
	Image         string
	Available     bool
	SoldOut       bool
}

// Option is one abstract shape within a complex.
type Option struct {
	ID           uuid.UUID
	SoupSize     string
	MainDishType string
	IncludeDrink bool
	Order        int32
}

// Complex is a combo template with its options in display order.
type Complex struct {
	ID      uuid.UUID
	NameLT  string
	NameEN  string
	Price   decimal.Decimal
	Order   int32
	Options []Option
}

// Snapshot is everything the assembler needs for one date. Dishes must
// already be filtered to available, not sold-out links.
type Snapshot struct {
	Date      time.Time
	Published bool
	Dishes    []Dish
	Complexes []Complex
}

// --- Response types ---

type DishView struct {
	ID            uuid.UUID `json:"id"`
	NameLT        string    `json:"name_lt"`
	NameEN        string    `json:"name_en"`
	IngredientsLT string    `json:"ingredients_lt"`
	IngredientsEN string    `json:"ingredients_en"`
	Price         string    `json:"price"`
	HalfPrice     *string   `json:"half_price"`
	Image         *string   `json:"image"`
	Available     bool      `json:"available"`
	SoldOut       bool      `json:"sold_out"`
}

type CategoryView struct {
	ID     uuid.UUID  `json:"id"`
	NameLT string     `json:"name_lt"`
	NameEN string     `json:"name_en"`
	Order  int32      `json:"order"`
	Dishes []DishView `json:"dishes"`
}

// DishSummary is the short form of a dish used inside combinations.
type DishSummary struct {
	ID     uuid.UUID `json:"id"`
	NameLT string    `json:"name_lt"`
	NameEN string    `json:"name_en"`
	Image  *string   `json:"image"`
}

// Combination is one concrete soup and main pairing for an option.
type Combination struct {
	ID           uuid.UUID    `json:"id"`
	Soup         *DishSummary `json:"soup"`
	SoupSize     string       `json:"soup_size"`
	MainDish     DishSummary  `json:"main_dish"`
	MainDishType string       `json:"main_dish_type"`
	IncludeDrink bool         `json:"include_drink"`
	Order        int32        `json:"order"`
}

type ComplexView struct {
	ID          uuid.UUID     `json:"id"`
	NameLT      string        `json:"name_lt"`
	NameEN      string        `json:"name_en"`
	Price       string        `json:"price"`
	Order       int32         `json:"order"`
	DishOptions []Combination `json:"dish_options"`
}

// DayMenu is the lunch-menu payload for one date.
type DayMenu struct {
	Date       string         `json:"date"`
	Published  bool           `json:"published"`
	Categories []CategoryView `json:"categories"`
	Complexes  []ComplexView  `json:"complexes"`
	Message    string         `json:"message,omitempty"`
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatHalfPrice(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
