package enum

// ── Group A: Roles (CHECK constrained in DB) ──

const (
	UserRoleAdmin = "ADMIN"
	UserRoleStaff = "STAFF"
)

// ── Group B: Complex option shapes (Postgres enums) ──

const (
	SoupSizeNone = "none"
	SoupSizeHalf = "half"
	SoupSizeFull = "full"
)

const (
	MainDishTypeMain      = "main"
	MainDishTypeMainLight = "main_light"
	MainDishTypePizza     = "pizza"
)

// ── Group C: Request and event labels (no DB constraint) ──

const (
	LanguageEN = "en"
	LanguageLT = "lt"
)

const (
	DishStatusActive   = "active"
	DishStatusInactive = "inactive"
	DishStatusAll      = "all"
)

const (
	EventMenuUpdated = "menu.updated"
)

const (
	ReasonMenuCreated     = "menu_created"
	ReasonMenuUpdated     = "menu_updated"
	ReasonMenuDeleted     = "menu_deleted"
	ReasonMenuPublished   = "menu_published"
	ReasonDishLinked      = "dish_linked"
	ReasonDishUpdated     = "dish_updated"
	ReasonDishUnlinked    = "dish_unlinked"
	ReasonComplexLinked   = "complex_linked"
	ReasonComplexUpdated  = "complex_updated"
	ReasonComplexUnlinked = "complex_unlinked"
)

func IsValidSoupSize(s string) bool {
	switch s {
	case SoupSizeNone, SoupSizeHalf, SoupSizeFull:
		return true
	}
	return false
}

func IsValidMainDishType(s string) bool {
	switch s {
	case MainDishTypeMain, MainDishTypeMainLight, MainDishTypePizza:
		return true
	}
	return false
}

func IsValidRole(s string) bool {
	return s == UserRoleAdmin || s == UserRoleStaff
}
