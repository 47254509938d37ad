package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/storage"
)

const maxImageSize = 5 << 20

// DishStore defines the database methods needed by dish handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type DishStore interface {
	ListDishes(ctx context.Context, arg database.ListDishesParams) ([]database.Dish, error)
	GetDish(ctx context.Context, id uuid.UUID) (database.Dish, error)
	CreateDish(ctx context.Context, arg database.CreateDishParams) (database.Dish, error)
	UpdateDish(ctx context.Context, arg database.UpdateDishParams) (database.Dish, error)
	UpdateDishImage(ctx context.Context, arg database.UpdateDishImageParams) (database.Dish, error)
	DeactivateDish(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	GetSubcategory(ctx context.Context, id uuid.UUID) (database.Subcategory, error)
}

// ImageStore persists uploaded images. Satisfied by *storage.S3Store.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// DishHandler handles dish CRUD endpoints and image uploads.
type DishHandler struct {
	store         DishStore
	images        ImageStore
	publicBaseURL string
	logger        *zap.SugaredLogger
}

// NewDishHandler creates a DishHandler. images may be nil, in which case
// uploads answer 503.
func NewDishHandler(store DishStore, images ImageStore, publicBaseURL string, logger *zap.SugaredLogger) *DishHandler {
	return &DishHandler{store: store, images: images, publicBaseURL: publicBaseURL, logger: logger}
}

// RegisterRoutes is expected to be mounted at /dishes.
func (h *DishHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/image", h.UploadImage)
}

// --- Request / Response types ---

type dishRequest struct {
	CategoryID    string  `json:"category_id"`
	SubcategoryID string  `json:"subcategory_id"`
	NameLT        string  `json:"name_lt"`
	NameEN        string  `json:"name_en"`
	IngredientsLT string  `json:"ingredients_lt"`
	IngredientsEN string  `json:"ingredients_en"`
	Price         string  `json:"price"`
	HalfPrice     *string `json:"half_price"`
	IsActive      *bool   `json:"is_active"`
}

type dishResponse struct {
	ID            uuid.UUID  `json:"id"`
	CategoryID    uuid.UUID  `json:"category_id"`
	SubcategoryID *uuid.UUID `json:"subcategory_id"`
	NameLT        string     `json:"name_lt"`
	NameEN        string     `json:"name_en"`
	IngredientsLT string     `json:"ingredients_lt"`
	IngredientsEN string     `json:"ingredients_en"`
	Price         string     `json:"price"`
	HalfPrice     *string    `json:"half_price"`
	Image         *string    `json:"image"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (h *DishHandler) toDishResponse(r *http.Request, d database.Dish) dishResponse {
	resp := dishResponse{
		ID:            d.ID,
		CategoryID:    d.CategoryID,
		NameLT:        d.NameLt,
		NameEN:        d.NameEn,
		IngredientsLT: d.IngredientsLt,
		IngredientsEN: d.IngredientsEn,
		Price:         numericToString(d.Price),
		HalfPrice:     numericToStringPtr(d.HalfPrice),
		Image:         imageResolver(r, h.publicBaseURL).Resolve(d.ImageUrl.String),
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.SubcategoryID.Valid {
		id := uuid.UUID(d.SubcategoryID.Bytes)
		resp.SubcategoryID = &id
	}
	return resp
}

// validDish is a dishRequest after parsing.
type validDish struct {
	categoryID    uuid.UUID
	subcategoryID pgtype.UUID
	price         pgtype.Numeric
	halfPrice     pgtype.Numeric
	isActive      bool
}

// validate checks the request and the subcategory's category. It returns a
// status and message when the request must be rejected.
func (h *DishHandler) validate(ctx context.Context, req *dishRequest) (validDish, int, string) {
	var v validDish

	if msg := validateNames(&req.NameLT, &req.NameEN); msg != "" {
		return v, http.StatusBadRequest, msg
	}

	catID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return v, http.StatusBadRequest, "invalid category_id"
	}
	v.categoryID = catID

	v.price, err = parsePrice(req.Price)
	if err != nil {
		if errors.Is(err, errNegativePrice) {
			return v, http.StatusBadRequest, "price must not be negative"
		}
		return v, http.StatusBadRequest, "invalid price"
	}
	v.halfPrice, err = parseOptionalPrice(req.HalfPrice)
	if err != nil {
		if errors.Is(err, errNegativePrice) {
			return v, http.StatusBadRequest, "half_price must not be negative"
		}
		return v, http.StatusBadRequest, "invalid half_price"
	}

	if req.SubcategoryID != "" {
		subID, err := uuid.Parse(req.SubcategoryID)
		if err != nil {
			return v, http.StatusBadRequest, "invalid subcategory_id"
		}
		sub, err := h.store.GetSubcategory(ctx, subID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return v, http.StatusBadRequest, "subcategory not found"
			}
			h.logger.Errorw("get subcategory", "error", err)
			return v, http.StatusInternalServerError, "internal server error"
		}
		if sub.CategoryID != catID {
			return v, http.StatusBadRequest, "subcategory does not belong to category"
		}
		v.subcategoryID = pgtype.UUID{Bytes: subID, Valid: true}
	}

	v.isActive = true
	if req.IsActive != nil {
		v.isActive = *req.IsActive
	}
	return v, 0, ""
}

// --- Handlers ---

// List returns dishes filtered by ?category_id=, ?name= (either language,
// case-insensitive) and ?status=active|inactive|all (default all).
func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var params database.ListDishesParams

	if raw := q.Get("category_id"); raw != "" {
		catID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		params.CategoryID = pgtype.UUID{Bytes: catID, Valid: true}
	}
	if name := strings.TrimSpace(q.Get("name")); name != "" {
		params.Name = pgtype.Text{String: name, Valid: true}
	}
	switch q.Get("status") {
	case "", enum.DishStatusAll:
	case enum.DishStatusActive:
		params.IsActive = pgtype.Bool{Bool: true, Valid: true}
	case enum.DishStatusInactive:
		params.IsActive = pgtype.Bool{Bool: false, Valid: true}
	default:
		writeError(w, http.StatusBadRequest, "invalid status, expected active, inactive or all")
		return
	}

	dishes, err := h.store.ListDishes(r.Context(), params)
	if err != nil {
		writeInternalError(w, h.logger, "list dishes", err)
		return
	}

	resp := make([]dishResponse, len(dishes))
	for i, d := range dishes {
		resp[i] = h.toDishResponse(r, d)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	dishID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dish ID")
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

	writeJSON(w, http.StatusOK, h.toDishResponse(r, dish))
}

func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, status, msg := h.validate(r.Context(), &req)
	if status != 0 {
		writeError(w, status, msg)
		return
	}

	dish, err := h.store.CreateDish(r.Context(), database.CreateDishParams{
		CategoryID:    v.categoryID,
		SubcategoryID: v.subcategoryID,
		NameLt:        req.NameLT,
		NameEn:        req.NameEN,
		IngredientsLt: strings.TrimSpace(req.IngredientsLT),
		IngredientsEn: strings.TrimSpace(req.IngredientsEN),
		Price:         v.price,
		HalfPrice:     v.halfPrice,
		IsActive:      v.isActive,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "category not found")
			return
		}
		writeInternalError(w, h.logger, "create dish", err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toDishResponse(r, dish))
}

func (h *DishHandler) Update(w http.ResponseWriter, r *http.Request) {
	dishID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dish ID")
		return
	}

	var req dishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, status, msg := h.validate(r.Context(), &req)
	if status != 0 {
		writeError(w, status, msg)
		return
	}

	dish, err := h.store.UpdateDish(r.Context(), database.UpdateDishParams{
		CategoryID:    v.categoryID,
		SubcategoryID: v.subcategoryID,
		NameLt:        req.NameLT,
		NameEn:        req.NameEN,
		IngredientsLt: strings.TrimSpace(req.IngredientsLT),
		IngredientsEn: strings.TrimSpace(req.IngredientsEN),
		Price:         v.price,
		HalfPrice:     v.halfPrice,
		IsActive:      v.isActive,
		ID:            dishID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "dish not found")
			return
		}
		if isForeignKeyViolation(err) {
			writeError(w, http.StatusBadRequest, "category not found")
			return
		}
		writeInternalError(w, h.logger, "update dish", err)
		return
	}

	writeJSON(w, http.StatusOK, h.toDishResponse(r, dish))
}

// Delete deactivates a dish. Menu history keeps referencing it.
func (h *DishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dishID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dish ID")
		return
	}

	if _, err := h.store.DeactivateDish(r.Context(), dishID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "dish not found")
			return
		}
		writeInternalError(w, h.logger, "deactivate dish", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage stores the multipart "image" field and saves its URL on the dish.
func (h *DishHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		writeError(w, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}

	dishID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dish ID")
		return
	}

	if _, err := h.store.GetDish(r.Context(), dishID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "dish not found")
			return
		}
		writeInternalError(w, h.logger, "get dish", err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required (max 5MB)")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "file must be an image")
		return
	}

	url, err := h.images.Put(r.Context(), storage.DishImageKey(header.Filename), contentType, file)
	if err != nil {
		writeInternalError(w, h.logger, "upload dish image", err)
		return
	}

	dish, err := h.store.UpdateDishImage(r.Context(), database.UpdateDishImageParams{
		ImageUrl: pgtype.Text{String: url, Valid: true},
		ID:       dishID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "dish not found")
			return
		}
		writeInternalError(w, h.logger, "update dish image", err)
		return
	}

	writeJSON(w, http.StatusOK, h.toDishResponse(r, dish))
}
