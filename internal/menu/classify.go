package menu

import "strings"

// Kind is the role a category plays when composing complexes.
type Kind int

const (
	KindOther Kind = iota
	KindSoup
	KindMainCourse
	KindMainCourseLight
	KindPizza
)

func (k Kind) String() string {
	switch k {
	case KindSoup:
		return "soup"
	case KindMainCourse:
		return "main_course"
	case KindMainCourseLight:
		return "main_course_light"
	case KindPizza:
		return "pizza"
	}
	return "other"
}

var (
	tokensMain  = []string{"main", "pagrindinis"}
	tokensLight = []string{"light", "lengvas"}
	tokensPizza = []string{"pizza", "pica"}
	tokensSoup  = []string{"soup", "sriuba"}
)

// Classify maps a category's bilingual name to its kind. Matching is a
// case-insensitive substring test of every token against both names.
// Precedence: MainCourseLight, MainCourse, Pizza, Soup, Other.
func Classify(nameLT, nameEN string) Kind {
	lt := strings.ToLower(nameLT)
	en := strings.ToLower(nameEN)

	isMain := containsAny(lt, en, tokensMain)
	switch {
	case isMain && containsAny(lt, en, tokensLight):
		return KindMainCourseLight
	case isMain:
		return KindMainCourse
	case containsAny(lt, en, tokensPizza):
		return KindPizza
	case containsAny(lt, en, tokensSoup):
		return KindSoup
	}
	return KindOther
}

// ClassifyCategory is Classify over a Category.
func ClassifyCategory(c Category) Kind {
	return Classify(c.NameLT, c.NameEN)
}

func containsAny(lt, en string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(lt, t) || strings.Contains(en, t) {
			return true
		}
	}
	return false
}
