package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/database"
)

// SubcategoryStore defines the database methods needed by subcategory handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type SubcategoryStore interface {
	ListSubcategories(ctx context.Context) ([]database.Subcategory, error)
	ListSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]database.Subcategory, error)
	GetSubcategory(ctx context.Context, id uuid.UUID) (database.Subcategory, error)
	UpdateSubcategory(ctx context.Context, arg database.UpdateSubcategoryParams) (database.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) (int64, error)
	CountDishesBySubcategory(ctx context.Context, subcategoryID pgtype.UUID) (int64, error)
}

// SubcategoryHandler handles subcategory endpoints not nested under a category.
type SubcategoryHandler struct {
	store  SubcategoryStore
	logger *zap.SugaredLogger
}

func NewSubcategoryHandler(store SubcategoryStore, logger *zap.SugaredLogger) *SubcategoryHandler {
	return &SubcategoryHandler{store: store, logger: logger}
}

// RegisterRoutes is expected to be mounted at /subcategories.
func (h *SubcategoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns all subcategories, or only those of ?category_id=.
func (h *SubcategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		subs []database.Subcategory
		err  error
	)
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		catID, perr := uuid.Parse(raw)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		subs, err = h.store.ListSubcategoriesByCategory(r.Context(), catID)
	} else {
		subs, err = h.store.ListSubcategories(r.Context())
	}
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

func (h *SubcategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	subID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subcategory ID")
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

	sub, err := h.store.UpdateSubcategory(r.Context(), database.UpdateSubcategoryParams{
		NameLt:    req.NameLT,
		NameEn:    req.NameEN,
		SortOrder: req.Order,
		ID:        subID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "subcategory not found")
			return
		}
		writeInternalError(w, h.logger, "update subcategory", err)
		return
	}

	writeJSON(w, http.StatusOK, toSubcategoryResponse(sub))
}

// Delete removes a subcategory unless dishes still reference it.
func (h *SubcategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	subID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subcategory ID")
		return
	}

	sub, err := h.store.GetSubcategory(r.Context(), subID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "subcategory not found")
			return
		}
		writeInternalError(w, h.logger, "get subcategory", err)
		return
	}

	count, err := h.store.CountDishesBySubcategory(r.Context(), pgtype.UUID{Bytes: subID, Valid: true})
	if err != nil {
		writeInternalError(w, h.logger, "count subcategory dishes", err)
		return
	}
	lang := requestLanguage(r)
	if count > 0 {
		writeError(w, http.StatusConflict, deleteBlockedMessage("subcategory", sub.NameLt, sub.NameEn, count, lang))
		return
	}

	n, err := h.store.DeleteSubcategory(r.Context(), subID)
	if err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusConflict, deleteBlockedMessage("subcategory", sub.NameLt, sub.NameEn, 1, lang))
			return
		}
		writeInternalError(w, h.logger, "delete subcategory", err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "subcategory not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
