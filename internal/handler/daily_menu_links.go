package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/menu"
)

// --- Request / Response types ---

type addMenuDishRequest struct {
	DishID string `json:"dish_id"`
}

type addMenuComplexRequest struct {
	ComplexID string `json:"complex_id"`
}

// updateMenuDishRequest fields are merged onto the stored link; omitted
// fields keep their current value. planned_quantity may be sent as null
// only together with clear_planned.
type updateMenuDishRequest struct {
	PlannedQuantity  *int32 `json:"planned_quantity"`
	ClearPlanned     bool   `json:"clear_planned"`
	ProducedQuantity *int32 `json:"produced_quantity"`
	IsAvailable      *bool  `json:"is_available"`
	IsSoldOut        *bool  `json:"is_sold_out"`
}

type updateMenuComplexRequest struct {
	IsAvailable *bool `json:"is_available"`
	IsSoldOut   *bool `json:"is_sold_out"`
}

type menuDishResponse struct {
	ID               uuid.UUID `json:"id"`
	DailyMenuID      uuid.UUID `json:"daily_menu_id"`
	DishID           uuid.UUID `json:"dish_id"`
	NameLT           string    `json:"name_lt,omitempty"`
	NameEN           string    `json:"name_en,omitempty"`
	CategoryID       uuid.UUID `json:"category_id,omitempty"`
	CategoryNameLT   string    `json:"category_name_lt,omitempty"`
	CategoryNameEN   string    `json:"category_name_en,omitempty"`
	Price            string    `json:"price,omitempty"`
	HalfPrice        *string   `json:"half_price,omitempty"`
	ImageURL         *string   `json:"image_url,omitempty"`
	PlannedQuantity  *int32    `json:"planned_quantity"`
	ProducedQuantity int32     `json:"produced_quantity"`
	IsAvailable      bool      `json:"is_available"`
	IsSoldOut        bool      `json:"is_sold_out"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type menuComplexResponse struct {
	ID          uuid.UUID `json:"id"`
	DailyMenuID uuid.UUID `json:"daily_menu_id"`
	ComplexID   uuid.UUID `json:"complex_id"`
	NameLT      string    `json:"name_lt,omitempty"`
	NameEN      string    `json:"name_en,omitempty"`
	Price       string    `json:"price,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	IsAvailable bool      `json:"is_available"`
	IsSoldOut   bool      `json:"is_sold_out"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func int4Ptr(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}
	n := v.Int32
	return &n
}

func toMenuDishResponse(md database.DailyMenuDish) menuDishResponse {
	return menuDishResponse{
		ID:               md.ID,
		DailyMenuID:      md.DailyMenuID,
		DishID:           md.DishID,
		PlannedQuantity:  int4Ptr(md.PlannedQuantity),
		ProducedQuantity: md.ProducedQuantity,
		IsAvailable:      md.IsAvailable,
		IsSoldOut:        md.IsSoldOut,
		UpdatedAt:        md.UpdatedAt,
	}
}

func toMenuDishRowResponse(row database.ListMenuDishesRow, images menu.ImageResolver) menuDishResponse {
	return menuDishResponse{
		ID:               row.ID,
		DailyMenuID:      row.DailyMenuID,
		DishID:           row.DishID,
		NameLT:           row.NameLt,
		NameEN:           row.NameEn,
		CategoryID:       row.CategoryID,
		CategoryNameLT:   row.CategoryNameLt,
		CategoryNameEN:   row.CategoryNameEn,
		Price:            numericToString(row.Price),
		HalfPrice:        numericToStringPtr(row.HalfPrice),
		ImageURL:         images.Resolve(row.ImageUrl.String),
		PlannedQuantity:  int4Ptr(row.PlannedQuantity),
		ProducedQuantity: row.ProducedQuantity,
		IsAvailable:      row.IsAvailable,
		IsSoldOut:        row.IsSoldOut,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toMenuComplexResponse(mc database.DailyMenuComplex) menuComplexResponse {
	return menuComplexResponse{
		ID:          mc.ID,
		DailyMenuID: mc.DailyMenuID,
		ComplexID:   mc.ComplexID,
		IsAvailable: mc.IsAvailable,
		IsSoldOut:   mc.IsSoldOut,
		UpdatedAt:   mc.UpdatedAt,
	}
}

func toMenuComplexRowResponse(row database.ListMenuComplexesRow) menuComplexResponse {
	active := row.IsActive
	return menuComplexResponse{
		ID:          row.ID,
		DailyMenuID: row.DailyMenuID,
		ComplexID:   row.ComplexID,
		NameLT:      row.NameLt,
		NameEN:      row.NameEn,
		Price:       numericToString(row.Price),
		IsActive:    &active,
		IsAvailable: row.IsAvailable,
		IsSoldOut:   row.IsSoldOut,
		UpdatedAt:   row.UpdatedAt,
	}
}

// --- Helpers ---

func linkIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	linkID, err := uuid.Parse(chi.URLParam(r, "linkId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid link ID")
		return uuid.Nil, false
	}
	return linkID, true
}

// linkDish attaches an active dish to the menu. The insert does nothing on
// conflict, so an existing link surfaces as pgx.ErrNoRows and is loaded
// instead. created reports whether a new row was written.
func (h *DailyMenuHandler) linkDish(ctx context.Context, menuID, dishID uuid.UUID) (database.DailyMenuDish, bool, error) {
	md, err := h.store.CreateMenuDish(ctx, database.CreateMenuDishParams{DailyMenuID: menuID, DishID: dishID})
	if err == nil {
		return md, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return database.DailyMenuDish{}, false, err
	}
	md, err = h.store.GetMenuDishByDish(ctx, database.GetMenuDishByDishParams{DailyMenuID: menuID, DishID: dishID})
	return md, false, err
}

func (h *DailyMenuHandler) linkComplex(ctx context.Context, menuID, complexID uuid.UUID) (database.DailyMenuComplex, bool, error) {
	mc, err := h.store.CreateMenuComplex(ctx, database.CreateMenuComplexParams{DailyMenuID: menuID, ComplexID: complexID})
	if err == nil {
		return mc, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return database.DailyMenuComplex{}, false, err
	}
	mc, err = h.store.GetMenuComplexByComplex(ctx, database.GetMenuComplexByComplexParams{DailyMenuID: menuID, ComplexID: complexID})
	return mc, false, err
}

// --- Handlers ---

func (h *DailyMenuHandler) AddDish(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}

	var req addMenuDishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dishID, err := uuid.Parse(req.DishID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dish_id")
		return
	}

	dish, err := h.store.GetDish(r.Context(), dishID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "dish not found")
			return
		}
		writeInternalError(w, h.logger, "get dish", err)
		return
	}
	if !dish.IsActive {
		writeError(w, http.StatusNotFound, "dish not found")
		return
	}

	md, created, err := h.linkDish(r.Context(), dm.ID, dish.ID)
	if err != nil {
		writeInternalError(w, h.logger, "link dish", err)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, toMenuDishResponse(md))
		return
	}

	h.notify(r.Context(), dm, enum.ReasonDishLinked)
	writeJSON(w, http.StatusCreated, toMenuDishResponse(md))
}

// UpdateDish changes quantities and availability of one dish link.
func (h *DailyMenuHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}
	linkID, ok := linkIDFromURL(w, r)
	if !ok {
		return
	}

	var req updateMenuDishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if (req.PlannedQuantity != nil && *req.PlannedQuantity < 0) ||
		(req.ProducedQuantity != nil && *req.ProducedQuantity < 0) {
		writeError(w, http.StatusBadRequest, "quantities must not be negative")
		return
	}

	existing, err := h.store.GetMenuDish(r.Context(), database.GetMenuDishParams{ID: linkID, DailyMenuID: dm.ID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "menu dish not found")
			return
		}
		writeInternalError(w, h.logger, "get menu dish", err)
		return
	}

	params := database.UpdateMenuDishParams{
		PlannedQuantity:  existing.PlannedQuantity,
		ProducedQuantity: existing.ProducedQuantity,
		IsAvailable:      existing.IsAvailable,
		IsSoldOut:        existing.IsSoldOut,
		ID:               existing.ID,
		DailyMenuID:      dm.ID,
	}
	switch {
	case req.ClearPlanned:
		params.PlannedQuantity = pgtype.Int4{}
	case req.PlannedQuantity != nil:
		params.PlannedQuantity = pgtype.Int4{Int32: *req.PlannedQuantity, Valid: true}
	}
	if req.ProducedQuantity != nil {
		params.ProducedQuantity = *req.ProducedQuantity
	}
	if req.IsAvailable != nil {
		params.IsAvailable = *req.IsAvailable
	}
	if req.IsSoldOut != nil {
		params.IsSoldOut = *req.IsSoldOut
	}

	md, err := h.store.UpdateMenuDish(r.Context(), params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "menu dish not found")
			return
		}
		writeInternalError(w, h.logger, "update menu dish", err)
		return
	}

	h.notify(r.Context(), dm, enum.ReasonDishUpdated)
	writeJSON(w, http.StatusOK, toMenuDishResponse(md))
}

func (h *DailyMenuHandler) RemoveDish(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}
	linkID, ok := linkIDFromURL(w, r)
	if !ok {
		return
	}

	n, err := h.store.DeleteMenuDish(r.Context(), database.DeleteMenuDishParams{ID: linkID, DailyMenuID: dm.ID})
	if err != nil {
		writeInternalError(w, h.logger, "delete menu dish", err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "menu dish not found")
		return
	}

	h.notify(r.Context(), dm, enum.ReasonDishUnlinked)
	w.WriteHeader(http.StatusNoContent)
}

func (h *DailyMenuHandler) AddComplex(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}

	var req addMenuComplexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	complexID, err := uuid.Parse(req.ComplexID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complex_id")
		return
	}

	cx, err := h.store.GetComplex(r.Context(), complexID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "complex not found")
			return
		}
		writeInternalError(w, h.logger, "get complex", err)
		return
	}
	if !cx.IsActive {
		writeError(w, http.StatusNotFound, "complex not found")
		return
	}

	mc, created, err := h.linkComplex(r.Context(), dm.ID, cx.ID)
	if err != nil {
		writeInternalError(w, h.logger, "link complex", err)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, toMenuComplexResponse(mc))
		return
	}

	h.notify(r.Context(), dm, enum.ReasonComplexLinked)
	writeJSON(w, http.StatusCreated, toMenuComplexResponse(mc))
}

func (h *DailyMenuHandler) UpdateComplex(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}
	linkID, ok := linkIDFromURL(w, r)
	if !ok {
		return
	}

	var req updateMenuComplexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := h.store.GetMenuComplex(r.Context(), database.GetMenuComplexParams{ID: linkID, DailyMenuID: dm.ID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "menu complex not found")
			return
		}
		writeInternalError(w, h.logger, "get menu complex", err)
		return
	}

	params := database.UpdateMenuComplexParams{
		IsAvailable: existing.IsAvailable,
		IsSoldOut:   existing.IsSoldOut,
		ID:          existing.ID,
		DailyMenuID: dm.ID,
	}
	if req.IsAvailable != nil {
		params.IsAvailable = *req.IsAvailable
	}
	if req.IsSoldOut != nil {
		params.IsSoldOut = *req.IsSoldOut
	}

	mc, err := h.store.UpdateMenuComplex(r.Context(), params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "menu complex not found")
			return
		}
		writeInternalError(w, h.logger, "update menu complex", err)
		return
	}

	h.notify(r.Context(), dm, enum.ReasonComplexUpdated)
	writeJSON(w, http.StatusOK, toMenuComplexResponse(mc))
}

func (h *DailyMenuHandler) RemoveComplex(w http.ResponseWriter, r *http.Request) {
	dm, ok := h.menuFromURL(w, r)
	if !ok {
		return
	}
	linkID, ok := linkIDFromURL(w, r)
	if !ok {
		return
	}

	n, err := h.store.DeleteMenuComplex(r.Context(), database.DeleteMenuComplexParams{ID: linkID, DailyMenuID: dm.ID})
	if err != nil {
		writeInternalError(w, h.logger, "delete menu complex", err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "menu complex not found")
		return
	}

	h.notify(r.Context(), dm, enum.ReasonComplexUnlinked)
	w.WriteHeader(http.StatusNoContent)
}
