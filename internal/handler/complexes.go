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
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/service"
)

// ComplexStore defines the database methods needed by complex handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type ComplexStore interface {
	ListComplexes(ctx context.Context) ([]database.Complex, error)
	GetComplex(ctx context.Context, id uuid.UUID) (database.Complex, error)
	CreateComplex(ctx context.Context, arg database.CreateComplexParams) (database.Complex, error)
	UpdateComplex(ctx context.Context, arg database.UpdateComplexParams) (database.Complex, error)
	DeactivateComplex(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	ListOptionsByComplex(ctx context.Context, complexID uuid.UUID) ([]database.ComplexDishOption, error)
	ListOptionsByComplexIDs(ctx context.Context, complexIds []uuid.UUID) ([]database.ComplexDishOption, error)
	CreateComplexOption(ctx context.Context, arg database.CreateComplexOptionParams) (database.ComplexDishOption, error)
	DeleteComplexOption(ctx context.Context, arg database.DeleteComplexOptionParams) (int64, error)
}

// OptionRegenerator rebuilds a complex's options in one transaction.
// Satisfied by *service.ComplexOptionService.
type OptionRegenerator interface {
	Regenerate(ctx context.Context, complexID uuid.UUID, req service.RegenerateOptionsRequest) ([]database.ComplexDishOption, error)
}

// ComplexHandler handles complex templates and their dish options.
type ComplexHandler struct {
	store       ComplexStore
	regenerator OptionRegenerator
	logger      *zap.SugaredLogger
}

func NewComplexHandler(store ComplexStore, regenerator OptionRegenerator, logger *zap.SugaredLogger) *ComplexHandler {
	return &ComplexHandler{store: store, regenerator: regenerator, logger: logger}
}

// RegisterRoutes is expected to be mounted at /complexes.
func (h *ComplexHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/options", h.ListOptions)
	r.Post("/{id}/options", h.CreateOption)
	r.Put("/{id}/options", h.RegenerateOptions)
	r.Delete("/{id}/options/{optionId}", h.DeleteOption)
}

// --- Request / Response types ---

type complexRequest struct {
	NameLT   string `json:"name_lt"`
	NameEN   string `json:"name_en"`
	Price    string `json:"price"`
	Order    int32  `json:"order"`
	IsActive *bool  `json:"is_active"`
}

type optionRequest struct {
	SoupSize     string `json:"soup_size"`
	MainDishType string `json:"main_dish_type"`
	IncludeDrink bool   `json:"include_drink"`
	Order        int32  `json:"order"`
}

type regenerateOptionsRequest struct {
	SoupSizes     []string `json:"soup_sizes"`
	DishTypes     []string `json:"dish_types"`
	IncludeDrinks []bool   `json:"include_drinks"`
}

type complexResponse struct {
	ID        uuid.UUID        `json:"id"`
	NameLT    string           `json:"name_lt"`
	NameEN    string           `json:"name_en"`
	Price     string           `json:"price"`
	Order     int32            `json:"order"`
	IsActive  bool             `json:"is_active"`
	Options   []optionResponse `json:"options"`
	CreatedAt time.Time        `json:"created_at"`
}

type optionResponse struct {
	ID           uuid.UUID `json:"id"`
	ComplexID    uuid.UUID `json:"complex_id"`
	SoupSize     string    `json:"soup_size"`
	MainDishType string    `json:"main_dish_type"`
	IncludeDrink bool      `json:"include_drink"`
	Order        int32     `json:"order"`
}

func toComplexResponse(c database.Complex, opts []database.ComplexDishOption) complexResponse {
	resp := complexResponse{
		ID:        c.ID,
		NameLT:    c.NameLt,
		NameEN:    c.NameEn,
		Price:     numericToString(c.Price),
		Order:     c.SortOrder,
		IsActive:  c.IsActive,
		Options:   make([]optionResponse, 0, len(opts)),
		CreatedAt: c.CreatedAt,
	}
	for _, o := range opts {
		resp.Options = append(resp.Options, toOptionResponse(o))
	}
	return resp
}

func toOptionResponse(o database.ComplexDishOption) optionResponse {
	return optionResponse{
		ID:           o.ID,
		ComplexID:    o.ComplexID,
		SoupSize:     string(o.SoupSize),
		MainDishType: string(o.MainDishType),
		IncludeDrink: o.IncludeDrink,
		Order:        o.SortOrder,
	}
}

func (h *ComplexHandler) parseComplex(w http.ResponseWriter, r *http.Request) (database.CreateComplexParams, bool) {
	var req complexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return database.CreateComplexParams{}, false
	}
	if msg := validateNames(&req.NameLT, &req.NameEN); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return database.CreateComplexParams{}, false
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		if errors.Is(err, errNegativePrice) {
			writeError(w, http.StatusBadRequest, "price must not be negative")
		} else {
			writeError(w, http.StatusBadRequest, "invalid price")
		}
		return database.CreateComplexParams{}, false
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return database.CreateComplexParams{
		NameLt:    req.NameLT,
		NameEn:    req.NameEN,
		Price:     price,
		SortOrder: req.Order,
		IsActive:  active,
	}, true
}

func (h *ComplexHandler) complexFromURL(w http.ResponseWriter, r *http.Request) (database.Complex, bool) {
	complexID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complex ID")
		return database.Complex{}, false
	}
	c, err := h.store.GetComplex(r.Context(), complexID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "complex not found")
			return database.Complex{}, false
		}
		writeInternalError(w, h.logger, "get complex", err)
		return database.Complex{}, false
	}
	return c, true
}

// --- Handlers ---

// List returns all complexes, active or not, with their options.
func (h *ComplexHandler) List(w http.ResponseWriter, r *http.Request) {
	complexes, err := h.store.ListComplexes(r.Context())
	if err != nil {
		writeInternalError(w, h.logger, "list complexes", err)
		return
	}

	ids := make([]uuid.UUID, len(complexes))
	for i, c := range complexes {
		ids[i] = c.ID
	}
	byComplex := make(map[uuid.UUID][]database.ComplexDishOption)
	if len(ids) > 0 {
		opts, err := h.store.ListOptionsByComplexIDs(r.Context(), ids)
		if err != nil {
			writeInternalError(w, h.logger, "list complex options", err)
			return
		}
		for _, o := range opts {
			byComplex[o.ComplexID] = append(byComplex[o.ComplexID], o)
		}
	}

	resp := make([]complexResponse, len(complexes))
	for i, c := range complexes {
		resp[i] = toComplexResponse(c, byComplex[c.ID])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ComplexHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.complexFromURL(w, r)
	if !ok {
		return
	}

	opts, err := h.store.ListOptionsByComplex(r.Context(), c.ID)
	if err != nil {
		writeInternalError(w, h.logger, "list complex options", err)
		return
	}
	writeJSON(w, http.StatusOK, toComplexResponse(c, opts))
}

func (h *ComplexHandler) Create(w http.ResponseWriter, r *http.Request) {
	params, ok := h.parseComplex(w, r)
	if !ok {
		return
	}

	c, err := h.store.CreateComplex(r.Context(), params)
	if err != nil {
		writeInternalError(w, h.logger, "create complex", err)
		return
	}
	writeJSON(w, http.StatusCreated, toComplexResponse(c, nil))
}

func (h *ComplexHandler) Update(w http.ResponseWriter, r *http.Request) {
	complexID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complex ID")
		return
	}

	params, ok := h.parseComplex(w, r)
	if !ok {
		return
	}

	c, err := h.store.UpdateComplex(r.Context(), database.UpdateComplexParams{
		NameLt:    params.NameLt,
		NameEn:    params.NameEn,
		Price:     params.Price,
		SortOrder: params.SortOrder,
		IsActive:  params.IsActive,
		ID:        complexID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "complex not found")
			return
		}
		writeInternalError(w, h.logger, "update complex", err)
		return
	}

	opts, err := h.store.ListOptionsByComplex(r.Context(), c.ID)
	if err != nil {
		writeInternalError(w, h.logger, "list complex options", err)
		return
	}
	writeJSON(w, http.StatusOK, toComplexResponse(c, opts))
}

// Delete deactivates a complex so it drops out of the public menu.
func (h *ComplexHandler) Delete(w http.ResponseWriter, r *http.Request) {
	complexID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complex ID")
		return
	}

	if _, err := h.store.DeactivateComplex(r.Context(), complexID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "complex not found")
			return
		}
		writeInternalError(w, h.logger, "deactivate complex", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ComplexHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	c, ok := h.complexFromURL(w, r)
	if !ok {
		return
	}

	opts, err := h.store.ListOptionsByComplex(r.Context(), c.ID)
	if err != nil {
		writeInternalError(w, h.logger, "list complex options", err)
		return
	}
	resp := make([]optionResponse, len(opts))
	for i, o := range opts {
		resp[i] = toOptionResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ComplexHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	c, ok := h.complexFromURL(w, r)
	if !ok {
		return
	}

	var req optionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !enum.IsValidSoupSize(req.SoupSize) {
		writeError(w, http.StatusBadRequest, "invalid soup_size, expected none, half or full")
		return
	}
	if !enum.IsValidMainDishType(req.MainDishType) {
		writeError(w, http.StatusBadRequest, "invalid main_dish_type, expected main, main_light or pizza")
		return
	}

	opt, err := h.store.CreateComplexOption(r.Context(), database.CreateComplexOptionParams{
		ComplexID:    c.ID,
		SoupSize:     database.SoupSize(req.SoupSize),
		MainDishType: database.MainDishType(req.MainDishType),
		IncludeDrink: req.IncludeDrink,
		SortOrder:    req.Order,
	})
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "this complex already has an option with the same soup size, dish type and drink")
			return
		}
		writeInternalError(w, h.logger, "create complex option", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOptionResponse(opt))
}

// RegenerateOptions replaces every option with the cross-product of the
// given soup sizes, dish types and drink flags.
func (h *ComplexHandler) RegenerateOptions(w http.ResponseWriter, r *http.Request) {
	complexID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complex ID")
		return
	}

	var req regenerateOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts, err := h.regenerator.Regenerate(r.Context(), complexID, service.RegenerateOptionsRequest{
		SoupSizes:     req.SoupSizes,
		DishTypes:     req.DishTypes,
		IncludeDrinks: req.IncludeDrinks,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComplexNotFound):
			writeError(w, http.StatusNotFound, "complex not found")
		case errors.Is(err, service.ErrEmptyCombination),
			errors.Is(err, service.ErrInvalidSoupSize),
			errors.Is(err, service.ErrInvalidMainDishType):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeInternalError(w, h.logger, "regenerate complex options", err)
		}
		return
	}

	resp := make([]optionResponse, len(opts))
	for i, o := range opts {
		resp[i] = toOptionResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ComplexHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	complexID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complex ID")
		return
	}
	optionID, err := uuid.Parse(chi.URLParam(r, "optionId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid option ID")
		return
	}

	n, err := h.store.DeleteComplexOption(r.Context(), database.DeleteComplexOptionParams{
		ID:        optionID,
		ComplexID: complexID,
	})
	if err != nil {
		writeInternalError(w, h.logger, "delete complex option", err)
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "option not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
