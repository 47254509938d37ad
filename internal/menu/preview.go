package menu

import (
	"github.com/google/uuid"

	"github.com/krapesto/menu-api/internal/enum"
)

// PreviewDish is a dish rendered in a single language.
type PreviewDish struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Ingredients string    `json:"ingredients"`
	Price       string    `json:"price"`
	HalfPrice   *string   `json:"half_price"`
	Image       *string   `json:"image"`
}

type PreviewCategory struct {
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Dishes []PreviewDish `json:"dishes"`
}

// PreviewLine is one display line for a complex option.
type PreviewLine struct {
	ComplexID    uuid.UUID `json:"complex_id"`
	OptionID     uuid.UUID `json:"option_id"`
	DisplayName  string    `json:"display_name"`
	Price        string    `json:"price"`
	IncludeDrink bool      `json:"include_drink"`
}

// Preview is the staff view of a daily menu as customers would see it.
type Preview struct {
	Date       string            `json:"date"`
	Published  bool              `json:"published"`
	Language   string            `json:"language"`
	Categories []PreviewCategory `json:"categories"`
	Complexes  []PreviewLine     `json:"complexes"`
}

// BuildPreview renders a snapshot in lang. The snapshot's complexes should
// be the day's available links. Soups come from the category classifier and
// each option shows only the first soup and first main of its buckets.
func BuildPreview(s Snapshot, lang string, images ImageResolver) Preview {
	lang = NormalizeLanguage(lang)

	groups := Group(s.Dishes)
	categories := make([]PreviewCategory, len(groups))
	for i, g := range groups {
		dishes := make([]PreviewDish, len(g.Dishes))
		for j, d := range g.Dishes {
			dishes[j] = PreviewDish{
				ID:          d.ID,
				Name:        ResolveLocalized(d.NameEN, d.NameLT, lang),
				Ingredients: ResolveLocalized(d.IngredientsEN, d.IngredientsLT, lang),
				Price:       formatPrice(d.Price),
				HalfPrice:   formatHalfPrice(d.HalfPrice),
				Image:       images.Resolve(d.Image),
			}
		}
		categories[i] = PreviewCategory{
			ID:     g.Category.ID,
			Name:   ResolveLocalized(g.Category.NameEN, g.Category.NameLT, lang),
			Dishes: dishes,
		}
	}

	buckets := Sort(s.Dishes, SoupByCategoryName)
	lines := []PreviewLine{}
	for _, c := range sortedComplexes(s.Complexes) {
		for _, opt := range sortedOptions(c.Options) {
			lines = append(lines, PreviewLine{
				ComplexID:    c.ID,
				OptionID:     opt.ID,
				DisplayName:  displayName(c, opt, buckets, lang),
				Price:        formatPrice(c.Price),
				IncludeDrink: opt.IncludeDrink,
			})
		}
	}

	return Preview{
		Date:       s.Date.Format(DateLayout),
		Published:  s.Published,
		Language:   lang,
		Categories: categories,
		Complexes:  lines,
	}
}

func displayName(c Complex, opt Option, b Buckets, lang string) string {
	var soup, sizeMark string
	if opt.SoupSize != enum.SoupSizeNone && len(b.Soups) > 0 {
		soup = ResolveLocalized(b.Soups[0].NameEN, b.Soups[0].NameLT, lang)
		if opt.SoupSize == enum.SoupSizeHalf {
			sizeMark = " ½ size"
			if lang == enum.LanguageLT {
				sizeMark = " ½ porcijos"
			}
		}
	}

	var main string
	if mains := b.ForType(opt.MainDishType); len(mains) > 0 {
		main = ResolveLocalized(mains[0].NameEN, mains[0].NameLT, lang)
	}

	connector := " and "
	if lang == enum.LanguageLT {
		connector = " ir "
	}

	switch {
	case soup != "" && main != "":
		return soup + sizeMark + connector + main
	case soup != "":
		return soup
	case main != "":
		return main
	}
	return ResolveLocalized(c.NameEN, c.NameLT, lang)
}
