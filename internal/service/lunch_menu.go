package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/menu"
)

// ErrMenuNotFound is returned when a daily menu id does not exist.
var ErrMenuNotFound = errors.New("daily menu not found")

// LunchMenuStore defines the DB methods needed to load a day's snapshot.
// Satisfied by *database.Queries.
type LunchMenuStore interface {
	GetDailyMenu(ctx context.Context, id uuid.UUID) (database.DailyMenu, error)
	GetDailyMenuByDate(ctx context.Context, menuDate pgtype.Date) (database.DailyMenu, error)
	ListPublishedDailyMenusInRange(ctx context.Context, arg database.ListPublishedDailyMenusInRangeParams) ([]database.DailyMenu, error)
	ListMenuDishes(ctx context.Context, arg database.ListMenuDishesParams) ([]database.ListMenuDishesRow, error)
	ListMenuComplexes(ctx context.Context, arg database.ListMenuComplexesParams) ([]database.ListMenuComplexesRow, error)
	ListActiveComplexes(ctx context.Context) ([]database.Complex, error)
	ListOptionsByComplexIDs(ctx context.Context, complexIds []uuid.UUID) ([]database.ComplexDishOption, error)
}

// LunchMenuService loads daily menus and hands them to the menu package.
type LunchMenuService struct {
	store LunchMenuStore
	loc   *time.Location
	now   func() time.Time
}

// NewLunchMenuService creates a LunchMenuService. loc decides which
// calendar day "today" is.
func NewLunchMenuService(store LunchMenuStore, loc *time.Location) *LunchMenuService {
	if loc == nil {
		loc = time.UTC
	}
	return &LunchMenuService{store: store, loc: loc, now: time.Now}
}

// Today returns the menu for the current date in the service's location.
func (s *LunchMenuService) Today(ctx context.Context, images menu.ImageResolver) (menu.DayMenu, error) {
	return s.ForDate(ctx, s.today(), images)
}

// ForDate returns the menu for date. A missing or unpublished menu is not
// an error; it yields an empty day with a message.
func (s *LunchMenuService) ForDate(ctx context.Context, date time.Time, images menu.ImageResolver) (menu.DayMenu, error) {
	dm, err := s.store.GetDailyMenuByDate(ctx, toPgDate(date))
	if errors.Is(err, pgx.ErrNoRows) {
		return menu.Empty(date, false, menu.MessageNoMenu), nil
	}
	if err != nil {
		return menu.DayMenu{}, fmt.Errorf("get daily menu %s: %w", date.Format(menu.DateLayout), err)
	}
	if !dm.IsPublished {
		return menu.Empty(date, dm.IsPublished, menu.MessageUnpublished), nil
	}

	snap, err := s.publicSnapshot(ctx, dm)
	if err != nil {
		return menu.DayMenu{}, err
	}
	return menu.Assemble(snap, images), nil
}

// Week returns the published menus from Monday to Sunday of the current
// week, ordered by date.
func (s *LunchMenuService) Week(ctx context.Context, images menu.ImageResolver) ([]menu.DayMenu, error) {
	monday, sunday := WeekBounds(s.today())
	menus, err := s.store.ListPublishedDailyMenusInRange(ctx, database.ListPublishedDailyMenusInRangeParams{
		FromDate: toPgDate(monday),
		ToDate:   toPgDate(sunday),
	})
	if err != nil {
		return nil, fmt.Errorf("list week menus: %w", err)
	}

	days := make([]menu.DayMenu, 0, len(menus))
	for _, dm := range menus {
		snap, err := s.publicSnapshot(ctx, dm)
		if err != nil {
			return nil, err
		}
		days = append(days, menu.Assemble(snap, images))
	}
	return days, nil
}

// Preview renders a daily menu for staff in one language, whether or not
// it is published.
func (s *LunchMenuService) Preview(ctx context.Context, dailyMenuID uuid.UUID, lang string, images menu.ImageResolver) (menu.Preview, error) {
	dm, err := s.store.GetDailyMenu(ctx, dailyMenuID)
	if errors.Is(err, pgx.ErrNoRows) {
		return menu.Preview{}, ErrMenuNotFound
	}
	if err != nil {
		return menu.Preview{}, fmt.Errorf("get daily menu: %w", err)
	}

	dishes, err := s.availableDishes(ctx, dm.ID)
	if err != nil {
		return menu.Preview{}, err
	}

	links, err := s.store.ListMenuComplexes(ctx, database.ListMenuComplexesParams{
		DailyMenuID:   dm.ID,
		AvailableOnly: true,
	})
	if err != nil {
		return menu.Preview{}, fmt.Errorf("list menu complexes: %w", err)
	}
	complexes := make([]menu.Complex, len(links))
	for i, l := range links {
		complexes[i] = menu.Complex{
			ID:     l.ComplexID,
			NameLT: l.NameLt,
			NameEN: l.NameEn,
			Price:  numericToDecimal(l.Price),
			Order:  l.SortOrder,
		}
	}
	if err := s.attachOptions(ctx, complexes); err != nil {
		return menu.Preview{}, err
	}

	snap := menu.Snapshot{
		Date:      dm.MenuDate.Time,
		Published: dm.IsPublished,
		Dishes:    dishes,
		Complexes: complexes,
	}
	return menu.BuildPreview(snap, lang, images), nil
}

// publicSnapshot pairs the day's available dishes with every active complex.
func (s *LunchMenuService) publicSnapshot(ctx context.Context, dm database.DailyMenu) (menu.Snapshot, error) {
	dishes, err := s.availableDishes(ctx, dm.ID)
	if err != nil {
		return menu.Snapshot{}, err
	}

	rows, err := s.store.ListActiveComplexes(ctx)
	if err != nil {
		return menu.Snapshot{}, fmt.Errorf("list active complexes: %w", err)
	}
	complexes := make([]menu.Complex, len(rows))
	for i, c := range rows {
		complexes[i] = menu.Complex{
			ID:     c.ID,
			NameLT: c.NameLt,
			NameEN: c.NameEn,
			Price:  numericToDecimal(c.Price),
			Order:  c.SortOrder,
		}
	}
	if err := s.attachOptions(ctx, complexes); err != nil {
		return menu.Snapshot{}, err
	}

	return menu.Snapshot{
		Date:      dm.MenuDate.Time,
		Published: dm.IsPublished,
		Dishes:    dishes,
		Complexes: complexes,
	}, nil
}

func (s *LunchMenuService) availableDishes(ctx context.Context, dailyMenuID uuid.UUID) ([]menu.Dish, error) {
	rows, err := s.store.ListMenuDishes(ctx, database.ListMenuDishesParams{
		DailyMenuID:   dailyMenuID,
		AvailableOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list menu dishes: %w", err)
	}

	dishes := make([]menu.Dish, len(rows))
	for i, r := range rows {
		dishes[i] = menu.Dish{
			ID: r.DishID,
			Category: menu.Category{
				ID:     r.CategoryID,
				NameLT: r.CategoryNameLt,
				NameEN: r.CategoryNameEn,
				Order:  r.CategorySortOrder,
			},
			NameLT:        r.NameLt,
			NameEN:        r.NameEn,
			IngredientsLT: r.IngredientsLt,
			IngredientsEN: r.IngredientsEn,
			Price:         numericToDecimal(r.Price),
			HalfPrice:     numericToNullDecimal(r.HalfPrice),
			Image:         r.ImageUrl.String,
			Available:     r.IsAvailable,
			SoldOut:       r.IsSoldOut,
		}
	}
	return dishes, nil
}

// attachOptions loads options for all complexes in one query.
func (s *LunchMenuService) attachOptions(ctx context.Context, complexes []menu.Complex) error {
	if len(complexes) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(complexes))
	index := make(map[uuid.UUID]int, len(complexes))
	for i, c := range complexes {
		ids[i] = c.ID
		index[c.ID] = i
	}

	opts, err := s.store.ListOptionsByComplexIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("list complex options: %w", err)
	}
	for _, o := range opts {
		i, ok := index[o.ComplexID]
		if !ok {
			continue
		}
		complexes[i].Options = append(complexes[i].Options, menu.Option{
			ID:           o.ID,
			SoupSize:     string(o.SoupSize),
			MainDishType: string(o.MainDishType),
			IncludeDrink: o.IncludeDrink,
			Order:        o.SortOrder,
		})
	}
	return nil
}

func (s *LunchMenuService) today() time.Time {
	t := s.now().In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekBounds returns the Monday and Sunday of the week containing day.
func WeekBounds(day time.Time) (time.Time, time.Time) {
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

func toPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func numericToNullDecimal(n pgtype.Numeric) decimal.NullDecimal {
	if !n.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(numericToDecimal(n))
}
