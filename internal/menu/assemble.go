package menu

import "time"

// Messages returned with an empty day.
const (
	MessageNoMenu      = "No menu published for this date"
	MessageUnpublished = "Menu for this date is not published yet"
)

// Assemble builds the lunch-menu payload for a published snapshot. The
// published flag is copied from the snapshot as stored. Soups for complexes
// are the dishes carrying a half price.
func Assemble(s Snapshot, images ImageResolver) DayMenu {
	groups := Group(s.Dishes)
	categories := make([]CategoryView, len(groups))
	for i, g := range groups {
		categories[i] = toCategoryView(g, images)
	}

	return DayMenu{
		Date:       s.Date.Format(DateLayout),
		Published:  s.Published,
		Categories: categories,
		Complexes:  Expand(s.Complexes, Sort(s.Dishes, SoupByHalfPrice), images),
	}
}

// Empty is the payload for a date with no menu to show. published is the
// stored flag when a menu exists and false otherwise.
func Empty(date time.Time, published bool, message string) DayMenu {
	return DayMenu{
		Date:       date.Format(DateLayout),
		Published:  published,
		Categories: []CategoryView{},
		Complexes:  []ComplexView{},
		Message:    message,
	}
}

func toCategoryView(g CategoryGroup, images ImageResolver) CategoryView {
	dishes := make([]DishView, len(g.Dishes))
	for i, d := range g.Dishes {
		dishes[i] = DishView{
			ID:            d.ID,
			NameLT:        d.NameLT,
			NameEN:        d.NameEN,
			IngredientsLT: d.IngredientsLT,
			IngredientsEN: d.IngredientsEN,
			Price:         formatPrice(d.Price),
			HalfPrice:     formatHalfPrice(d.HalfPrice),
			Image:         images.Resolve(d.Image),
			Available:     d.Available,
			SoldOut:       d.SoldOut,
		}
	}
	return CategoryView{
		ID:     g.Category.ID,
		NameLT: g.Category.NameLT,
		NameEN: g.Category.NameEN,
		Order:  g.Category.Order,
		Dishes: dishes,
	}
}
