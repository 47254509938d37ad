package menu

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// CategoryGroup is a display section: one category and its dishes.
type CategoryGroup struct {
	Category Category
	Dishes   []Dish
}

// Group sorts the day's dishes into category sections.
//
// Dishes from light-main categories are held aside and appended to the
// first main-course category seen; the light categories never get a
// section of their own. Without a main-course category the light dishes
// are left out. Sections are ordered by (order, English name) and dishes
// within a section by English name.
func Group(dishes []Dish) []CategoryGroup {
	var (
		groups  []*CategoryGroup
		byID    = make(map[uuid.UUID]*CategoryGroup)
		light   []Dish
		mainCat *CategoryGroup
	)

	for _, d := range dishes {
		kind := ClassifyCategory(d.Category)
		if kind == KindMainCourseLight {
			light = append(light, d)
			continue
		}

		g, ok := byID[d.Category.ID]
		if !ok {
			g = &CategoryGroup{Category: d.Category}
			byID[d.Category.ID] = g
			groups = append(groups, g)
		}
		g.Dishes = append(g.Dishes, d)

		if kind == KindMainCourse && mainCat == nil {
			mainCat = g
		}
	}

	if mainCat != nil {
		mainCat.Dishes = append(mainCat.Dishes, light...)
	}

	out := make([]CategoryGroup, 0, len(groups))
	for _, g := range groups {
		slices.SortStableFunc(g.Dishes, func(a, b Dish) int {
			return cmp.Compare(a.NameEN, b.NameEN)
		})
		out = append(out, *g)
	}
	slices.SortStableFunc(out, func(a, b CategoryGroup) int {
		return cmp.Or(
			cmp.Compare(a.Category.Order, b.Category.Order),
			cmp.Compare(a.Category.NameEN, b.Category.NameEN),
		)
	})
	return out
}
