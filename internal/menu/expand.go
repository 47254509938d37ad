package menu

import (
	"cmp"
	"slices"

	"github.com/krapesto/menu-api/internal/enum"
)

// SoupRule decides which dishes count as soups.
type SoupRule int

const (
	// SoupByHalfPrice treats any dish with a half price as a soup.
	SoupByHalfPrice SoupRule = iota
	// SoupByCategoryName uses the category classifier.
	SoupByCategoryName
)

func (r SoupRule) isSoup(d Dish) bool {
	if r == SoupByCategoryName {
		return ClassifyCategory(d.Category) == KindSoup
	}
	return d.HalfPrice.Valid
}

// Buckets holds the day's dishes split by the role they can play in a complex.
type Buckets struct {
	Soups      []Dish
	Mains      []Dish
	MainsLight []Dish
	Pizzas     []Dish
}

// Sort fills the buckets in input order. Under SoupByHalfPrice a dish may
// land both in Soups and in a main bucket.
func Sort(dishes []Dish, rule SoupRule) Buckets {
	var b Buckets
	for _, d := range dishes {
		if rule.isSoup(d) {
			b.Soups = append(b.Soups, d)
		}
		switch ClassifyCategory(d.Category) {
		case KindMainCourseLight:
			b.MainsLight = append(b.MainsLight, d)
		case KindMainCourse:
			b.Mains = append(b.Mains, d)
		case KindPizza:
			b.Pizzas = append(b.Pizzas, d)
		}
	}
	return b
}

// ForType returns the main-dish candidates for a main_dish_type value.
func (b Buckets) ForType(mainDishType string) []Dish {
	switch mainDishType {
	case enum.MainDishTypeMain:
		return b.Mains
	case enum.MainDishTypeMainLight:
		return b.MainsLight
	case enum.MainDishTypePizza:
		return b.Pizzas
	}
	return nil
}

// Expand resolves every complex's option shapes against the buckets.
//
// Each option yields the cross-product of its soup candidates and main
// candidates. An option asking for soup when there is none, or whose main
// bucket is empty, yields nothing. Pairings where a dish is missing either
// name are dropped. Complexes that end up with no combinations are left
// out. Complexes are ordered by (order, English name), options by order.
func Expand(complexes []Complex, b Buckets, images ImageResolver) []ComplexView {
	sorted := sortedComplexes(complexes)
	out := make([]ComplexView, 0, len(sorted))
	for _, c := range sorted {
		var combos []Combination
		for _, opt := range sortedOptions(c.Options) {
			combos = append(combos, expandOption(opt, b, images)...)
		}
		if len(combos) == 0 {
			continue
		}
		out = append(out, ComplexView{
			ID:          c.ID,
			NameLT:      c.NameLT,
			NameEN:      c.NameEN,
			Price:       formatPrice(c.Price),
			Order:       c.Order,
			DishOptions: combos,
		})
	}
	return out
}

func expandOption(opt Option, b Buckets, images ImageResolver) []Combination {
	// A nil entry stands for "no soup".
	soups := []*Dish{nil}
	if opt.SoupSize != enum.SoupSizeNone {
		if len(b.Soups) == 0 {
			return nil
		}
		soups = make([]*Dish, len(b.Soups))
		for i := range b.Soups {
			soups[i] = &b.Soups[i]
		}
	}

	mains := b.ForType(opt.MainDishType)
	if len(mains) == 0 {
		return nil
	}

	var out []Combination
	for _, soup := range soups {
		if soup != nil && !hasBothNames(*soup) {
			continue
		}
		for _, main := range mains {
			if !hasBothNames(main) {
				continue
			}
			combo := Combination{
				ID:           opt.ID,
				SoupSize:     opt.SoupSize,
				MainDish:     summarize(main, images),
				MainDishType: opt.MainDishType,
				IncludeDrink: opt.IncludeDrink,
				Order:        opt.Order,
			}
			if soup != nil {
				s := summarize(*soup, images)
				combo.Soup = &s
			}
			out = append(out, combo)
		}
	}
	return out
}

func sortedComplexes(in []Complex) []Complex {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(x, y Complex) int {
		return cmp.Or(cmp.Compare(x.Order, y.Order), cmp.Compare(x.NameEN, y.NameEN))
	})
	return out
}

func sortedOptions(in []Option) []Option {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(x, y Option) int {
		return cmp.Compare(x.Order, y.Order)
	})
	return out
}

func hasBothNames(d Dish) bool {
	return d.NameLT != "" && d.NameEN != ""
}

func summarize(d Dish, images ImageResolver) DishSummary {
	return DishSummary{
		ID:     d.ID,
		NameLT: d.NameLT,
		NameEN: d.NameEN,
		Image:  images.Resolve(d.Image),
	}
}
