package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/menu"
)

// CategoryStore defines the database methods needed by category handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]database.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (database.Category, error)
	CreateCategory(ctx context.Context, arg database.CreateCategoryParams) (database.Category, error)
	UpdateCategory(ctx context.Context, arg database.UpdateCategoryParams) (database.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error)
	CountDishesByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	ListSubcategories(ctx context.Context) ([]database.Subcategory, error)
	ListSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]database.Subcategory, error)
	CreateSubcategory(ctx context.Context, arg database.CreateSubcategoryParams) (database.Subcategory, error)
}

// CategoryHandler handles category CRUD endpoints and the subcategories
// nested under a category.
type CategoryHandler struct {
	store  CategoryStore
	logger *zap.SugaredLogger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(store CategoryStore, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{store: store, logger: logger}
}

// RegisterRoutes registers category endpoints. Expected to be mounted at /categories.
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/subcategories", h.ListSubcategories)
	r.Post("/{id}/subcategories", h.CreateSubcategory)
}

// --- Request / Response types ---

type categoryRequest struct {
	NameLT string `json:"name_lt"`
	NameEN string `json:"name_en"`
	Order  int32  `json:"order"`
}

type subcategoryRequest struct {
	NameLT string `json:"name_lt"`
	NameEN string `json:"name_en"`
	Order  int32  `json:"order"`
}

type categoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	NameLT        string                `json:"name_lt"`
	NameEN        string                `json:"name_en"`
	Order         int32                 `json:"order"`
	Subcategories []subcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"created_at"`
}

type subcategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	NameLT     string    `json:"name_lt"`
	NameEN     string    `json:"name_en"`
	Order      int32     `json:"order"`
}

func toCategoryResponse(c database.Category, subs []database.Subcategory) categoryResponse {
	resp := categoryResponse{
		ID:            c.ID,
		NameLT:        c.NameLt,
		NameEN:        c.NameEn,
		Order:         c.SortOrder,
		Subcategories: make([]subcategoryResponse, 0, len(subs)),
		CreatedAt:     c.CreatedAt,
	}
	for _, s := range subs {
		resp.Subcategories = append(resp.Subcategories, toSubcategoryResponse(s))
	}
	return resp
}

func toSubcategoryResponse(s database.Subcategory) subcategoryResponse {
	return subcategoryResponse{
		ID:         s.ID,
		CategoryID: s.CategoryID,
		NameLT:     s.NameLt,
		NameEN:     s.NameEn,
		Order:      s.SortOrder,
	}
}

// --- Helpers ---

// validateNames trims both names in place and reports a missing one.
func validateNames(lt, en *string) string {
	*lt = strings.TrimSpace(*lt)
	*en = strings.TrimSpace(*en)
	if *lt == "" || *en == "" {
		return "name_lt and name_en are required"
	}
	return ""
}

// deleteBlockedMessage names the blocking dish count in the caller's language.
func deleteBlockedMessage(kind, nameLT, nameEN string, count int64, lang string) string {
	name := menu.ResolveLocalized(nameEN, nameLT, lang)
	if lang == enum.LanguageLT {
		noun := "kategorijos"
		if kind == "subcategory" {
			noun = "subkategorijos"
		}
		return fmt.Sprintf("Negalima ištrinti %s \"%s\", nes ji turi %d patiekalus. Pirmiausia pašalinkite arba perkelkite patiekalus.", noun, name, count)
	}
	return fmt.Sprintf("Cannot delete %s \"%s\" because it has %d dish(es). Please remove or reassign dishes first.", kind, name, count)
}

// --- Handlers ---

// List returns all categories ordered by (order, English name), each with
// its subcategories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, "list categories", err)
		return
	}

	subs, err := h.store.ListSubcategories(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, "list subcategories", err)
		return
	}
	byCategory := make(map[uuid.UUID][]database.Subcategory)
	for _, s := range subs {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toCategoryResponse(c, byCategory[c.ID])
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateNames(&req.NameLT, &req.NameEN); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.store.CreateCategory(r.Context(), database.CreateCategoryParams{
		NameLt:    req.NameLT,
		NameEn:    req.NameEN,
		SortOrder: req.Order,
	})
	if err != nil {
		writeInternalError(w, h.logger, "create category", err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category, nil))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateNames(&req.NameLT, &req.NameEN); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.store.UpdateCategory(r.Context(), database.UpdateCategoryParams{
		NameLt:    req.NameLT,
		NameEn:    req.NameEN,
		SortOrder: req.Order,
		ID:        catID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternalError(w, h.logger, "update category", err)
		return
	}

	subs, err := h.store.ListSubcategoriesByCategory(r.Context(), category.ID)
	if err != nil {
		writeInternalError(w, h.logger, "list subcategories", err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category, subs))
}

// Delete removes a category and its subcategories. Categories that still
// have dishes are protected and answer 409 with the dish count.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	category, err := h.store.GetCategory(r.Context(), catID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternalError(w, h.logger, "get category", err)
		return
	}

	count, err := h.store.CountDishesByCategory(r.Context(), catID)
	if err != nil {
		writeInternalError(w, h.logger, "count category dishes", err)
		return
	}
	lang := requestLanguage(r)
	if count > 0 {
		writeError(w, http.StatusConflict, deleteBlockedMessage("category", category.NameLt, category.NameEn, count, lang))
		return
	}

	n, err := h.store.DeleteCategory(r.Context(), catID)
	if err != nil {
		if isForeignKeyViolation(err) {
			// A dish was added between the count and the delete.
			writeError(w, http.StatusConflict, deleteBlockedMessage("category", category.NameLt, category.NameEn, 1, lang))
			return
		}
		writeInternalError(w, h.logger, "delete category", err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	if _, err := h.store.GetCategory(r.Context(), catID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternalError(w, h.logger, "get category", err)
		return
	}

	subs, err := h.store.ListSubcategoriesByCategory(r.Context(), catID)
	if err != nil {
		writeInternalError(w, h.logger, "list subcategories", err)
		return
	}

	resp := make([]subcategoryResponse, len(subs))
	for i, s := range subs {
		resp[i] = toSubcategoryResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	catID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var req subcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateNames(&req.NameLT, &req.NameEN); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	sub, err := h.store.CreateSubcategory(r.Context(), database.CreateSubcategoryParams{
		CategoryID: catID,
		NameLt:     req.NameLT,
		NameEn:     req.NameEN,
		SortOrder:  req.Order,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeInternalError(w, h.logger, "create subcategory", err)
		return
	}

	writeJSON(w, http.StatusCreated, toSubcategoryResponse(sub))
}
