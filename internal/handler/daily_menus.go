package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/events"
	"github.com/krapesto/menu-api/internal/export"
	"github.com/krapesto/menu-api/internal/menu"
	"github.com/krapesto/menu-api/internal/service"
)

const maxExportDays = 366

// DailyMenuStore defines the database methods needed by daily menu handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type DailyMenuStore interface {
	ListDailyMenus(ctx context.Context) ([]database.DailyMenu, error)
	ListDailyMenusInRange(ctx context.Context, arg database.ListDailyMenusInRangeParams) ([]database.DailyMenu, error)
	GetDailyMenu(ctx context.Context, id uuid.UUID) (database.DailyMenu, error)
	CreateDailyMenu(ctx context.Context, arg database.CreateDailyMenuParams) (database.DailyMenu, error)
	UpdateDailyMenu(ctx context.Context, arg database.UpdateDailyMenuParams) (database.DailyMenu, error)
	SetDailyMenuPublished(ctx context.Context, arg database.SetDailyMenuPublishedParams) (database.DailyMenu, error)
	DeleteDailyMenu(ctx context.Context, id uuid.UUID) (int64, error)

	ListMenuDishes(ctx context.Context, arg database.ListMenuDishesParams) ([]database.ListMenuDishesRow, error)
	GetMenuDish(ctx context.Context, arg database.GetMenuDishParams) (database.DailyMenuDish, error)
	GetMenuDishByDish(ctx context.Context, arg database.GetMenuDishByDishParams) (database.DailyMenuDish, error)
	CreateMenuDish(ctx context.Context, arg database.CreateMenuDishParams) (database.DailyMenuDish, error)
	UpdateMenuDish(ctx context.Context, arg database.UpdateMenuDishParams) (database.DailyMenuDish, error)
	DeleteMenuDish(ctx context.Context, arg database.DeleteMenuDishParams) (int64, error)

	ListMenuComplexes(ctx context.Context, arg database.ListMenuComplexesParams) ([]database.ListMenuComplexesRow, error)
	GetMenuComplex(ctx context.Context, arg database.GetMenuComplexParams) (database.DailyMenuComplex, error)
	GetMenuComplexByComplex(ctx context.Context, arg database.GetMenuComplexByComplexParams) (database.DailyMenuComplex, error)
	CreateMenuComplex(ctx context.Context, arg database.CreateMenuComplexParams) (database.DailyMenuComplex, error)
	UpdateMenuComplex(ctx context.Context, arg database.UpdateMenuComplexParams) (database.DailyMenuComplex, error)
	DeleteMenuComplex(ctx context.Context, arg database.DeleteMenuComplexParams) (int64, error)

	GetDish(ctx context.Context, id uuid.UUID) (database.Dish, error)
	GetComplex(ctx context.Context, id uuid.UUID) (database.Complex, error)
}

// MenuPreviewer renders a daily menu the way customers will see it.
// Satisfied by *service.LunchMenuService.
type MenuPreviewer interface {
	Preview(ctx context.Context, dailyMenuID uuid.UUID, lang string, images menu.ImageResolver) (menu.Preview, error)
}

// DailyMenuHandler handles daily menus, their dish and complex links,
// the staff preview and the spreadsheet export. Every change is announced
// through the publisher.
type DailyMenuHandler struct {
	store         DailyMenuStore
	previewer     MenuPreviewer
	publisher     events.Publisher
	publicBaseURL string
	logger        *zap.SugaredLogger
}

func NewDailyMenuHandler(store DailyMenuStore, previewer MenuPreviewer, publisher events.Publisher, publicBaseURL string, logger *zap.SugaredLogger) *DailyMenuHandler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &DailyMenuHandler{
		store:         store,
		previewer:     previewer,
		publisher:     publisher,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// RegisterRoutes is expected to be mounted at /daily-menus.
func (h *DailyMenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/export", h.Export)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Patch("/{id}/published", h.SetPublished)
	r.Get("/{id}/preview", h.Preview)

	r.Post("/{id}/dishes", h.AddDish)
	r.Put("/{id}/dishes/{linkId}", h.UpdateDish)
	r.Delete("/{id}/dishes/{linkId}", h.RemoveDish)

	r.Post("/{id}/complexes", h.AddComplex)
	r.Put("/{id}/complexes/{linkId}", h.UpdateComplex)
	r.Delete("/{id}/complexes/{linkId}", h.RemoveComplex)
}

// --- Request / Response types ---

type dailyMenuRequest struct {
	Date      string `json:"date"`
	Published bool   `json:"published"`
}

type publishedRequest struct {
	Published *bool `json:"published"`
}

type dailyMenuResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type dailyMenuDetailResponse struct {
	dailyMenuResponse
	Dishes    []menuDishResponse    `json:"dishes"`
	Complexes []menuComplexResponse `json:"complexes"`
}

func toDailyMenuResponse(dm database.DailyMenu) dailyMenuResponse {
	return dailyMenuResponse{
		ID:        dm.ID,
		Date:      dm.MenuDate.Time.Format(menu.DateLayout),
		Published: dm.IsPublished,
		CreatedAt: dm.CreatedAt,
		UpdatedAt: dm.UpdatedAt,
	}
}

// --- Helpers ---

func parseMenuDate(s string) (pgtype.Date, error) {
	t, err := time.Parse(menu.DateLayout, s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// menuFromURL loads the daily menu named by the {id} URL parameter.
func (h *DailyMenuHandler) menuFromURL(w http.ResponseWriter, r *http.Request) (database.DailyMenu, bool) {
	menuID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid daily menu ID")
		return database.DailyMenu{}, false
	}
	dm, err := h.store.GetDailyMenu(r.Context(), menuID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "daily menu not found")
			return database.DailyMenu{}, false
		}
		writeInternalError(w, h.logger, "get daily menu", err)
		return database.DailyMenu{}, false
	}
	return dm, true
}

// notify publishes a menu.updated event. Failures are logged only.
func (h *DailyMenuHandler) notify(ctx context.Context, dm database.DailyMenu, reason string) {
	err := h.publisher.PublishMenuUpdated(ctx, events.MenuUpdated{
		DailyMenuID: dm.ID,
		Date:        dm.MenuDate.Time.Format(menu.DateLayout),
		Reason:      reason,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		h.logger.Warnw("publish menu event", "daily_menu_id", dm.ID, "reason", reason, "error", err)
	}
}

// --- Handlers ---

// List returns all daily menus, newest date first.
func (h *DailyMenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.store.ListDailyMenus(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, "list daily menus", err)
		return
	}
	resp := make([]dailyMenuResponse, len(menus))
	for i, dm := range menus {
		resp[i] = toDailyMenuResponse(dm)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DailyMenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dailyMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, err := parseMenuDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	dm, err := h.store.CreateDailyMenu(r.Context(), database.CreateDailyMenuParams{
		MenuDate:    date,
		IsPublished: req.Published,
	})
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "a daily menu for this date already exists")
			return
		}
		writeInternalError(w, h.logger, "create daily menu", err)
		return
	}

	h.notify(r.Context(), dm, enum.ReasonMenuCreated)
	writeJSON(w, http.StatusCreated, toDailyMenuResponse(dm))
}

// Get returns a daily menu with all of its dish and complex links,
// including unavailable and sold-out ones.
func (h *DailyMenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}

	dishes, err := h.store.ListMenuDishes(r.Context(), database.ListMenuDishesParams{DailyMenuID: dm.ID})
	if err != nil {
		writeInternalError(w, h.logger, "list menu dishes", err)
		return
	}
	complexes, err := h.store.ListMenuComplexes(r.Context(), database.ListMenuComplexesParams{DailyMenuID: dm.ID})
	if err != nil {
		writeInternalError(w, h.logger, "list menu complexes", err)
		return
	}

	images := imageResolver(r, h.publicBaseURL)
	resp := dailyMenuDetailResponse{
		dailyMenuResponse: toDailyMenuResponse(dm),
		Dishes:            make([]menuDishResponse, len(dishes)),
		Complexes:         make([]menuComplexResponse, len(complexes)),
	}
	for i, d := range dishes {
		resp.Dishes[i] = toMenuDishRowResponse(d, images)
	}
	for i, c := range complexes {
		resp.Complexes[i] = toMenuComplexRowResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DailyMenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	menuID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid daily menu ID")
		return
	}

	var req dailyMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, err := parseMenuDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	dm, err := h.store.UpdateDailyMenu(r.Context(), database.UpdateDailyMenuParams{
		MenuDate:    date,
		IsPublished: req.Published,
		ID:          menuID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "daily menu not found")
			return
		}
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "a daily menu for this date already exists")
			return
		}
		writeInternalError(w, h.logger, "update daily menu", err)
		return
	}

	h.notify(r.Context(), dm, enum.ReasonMenuUpdated)
	writeJSON(w, http.StatusOK, toDailyMenuResponse(dm))
}

// Delete removes a daily menu together with its links.
func (h *DailyMenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}

	n, err := h.store.DeleteDailyMenu(r.Context(), dm.ID)
	if err != nil {
		writeInternalError(w, h.logger, "delete daily menu", err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "daily menu not found")
		return
	}

	h.notify(r.Context(), dm, enum.ReasonMenuDeleted)
	w.WriteHeader(http.StatusNoContent)
}

func (h *DailyMenuHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	menuID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid daily menu ID")
		return
	}

	var req publishedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Published == nil {
		writeError(w, http.StatusBadRequest, "published is required")
		return
	}

	dm, err := h.store.SetDailyMenuPublished(r.Context(), database.SetDailyMenuPublishedParams{
		IsPublished: *req.Published,
		ID:          menuID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "daily menu not found")
			return
		}
		writeInternalError(w, h.logger, "set daily menu published", err)
		return
	}

	h.notify(r.Context(), dm, enum.ReasonMenuPublished)
	writeJSON(w, http.StatusOK, toDailyMenuResponse(dm))
}

// Preview renders the menu in ?lang=en|lt regardless of its published flag.
func (h *DailyMenuHandler) Preview(w http.ResponseWriter, r *http.Request) {
	menuID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid daily menu ID")
		return
	}

	preview, err := h.previewer.Preview(r.Context(), menuID, requestLanguage(r), imageResolver(r, h.publicBaseURL))
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			writeError(w, http.StatusNotFound, "daily menu not found")
			return
		}
		writeInternalError(w, h.logger, "preview daily menu", err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// Export streams an XLSX workbook with one row per dish link for menus
// dated ?from= through ?to= inclusive.
func (h *DailyMenuHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseMenuDate(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := parseMenuDate(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
		return
	}
	if to.Time.Before(from.Time) {
		writeError(w, http.StatusBadRequest, "to must not be before from")
		return
	}
	if to.Time.Sub(from.Time) > maxExportDays*24*time.Hour {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("range must not exceed %d days", maxExportDays))
		return
	}

	menus, err := h.store.ListDailyMenusInRange(r.Context(), database.ListDailyMenusInRangeParams{
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		writeInternalError(w, h.logger, "list daily menus in range", err)
		return
	}

	var rows []export.Row
	for _, dm := range menus {
		dishes, err := h.store.ListMenuDishes(r.Context(), database.ListMenuDishesParams{DailyMenuID: dm.ID})
		if err != nil {
			writeInternalError(w, h.logger, "list menu dishes", err)
			return
		}
		for _, d := range dishes {
			row := export.Row{
				Date:             dm.MenuDate.Time.Format(menu.DateLayout),
				Published:        dm.IsPublished,
				CategoryLT:       d.CategoryNameLt,
				CategoryEN:       d.CategoryNameEn,
				DishLT:           d.NameLt,
				DishEN:           d.NameEn,
				Price:            numericToDecimal(d.Price),
				ProducedQuantity: d.ProducedQuantity,
				Available:        d.IsAvailable,
				SoldOut:          d.IsSoldOut,
			}
			if d.HalfPrice.Valid {
				row.HalfPrice.Decimal = numericToDecimal(d.HalfPrice)
				row.HalfPrice.Valid = true
			}
			if d.PlannedQuantity.Valid {
				planned := d.PlannedQuantity.Int32
				row.PlannedQuantity = &planned
			}
			rows = append(rows, row)
		}
	}

	filename := fmt.Sprintf("daily-menus_%s_%s.xlsx", from.Time.Format(menu.DateLayout), to.Time.Format(menu.DateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteMenus(w, rows); err != nil {
		h.logger.Errorw("write menu export", "error", err)
	}
}
