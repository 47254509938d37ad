package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/handler"
	"github.com/krapesto/menu-api/internal/service"
)

// --- Mock store ---

type mockComplexStore struct {
	complexes map[uuid.UUID]database.Complex
	options   map[uuid.UUID]database.ComplexDishOption
}

func newMockComplexStore() *mockComplexStore {
	return &mockComplexStore{
		complexes: make(map[uuid.UUID]database.Complex),
		options:   make(map[uuid.UUID]database.ComplexDishOption),
	}
}

func (m *mockComplexStore) ListComplexes(_ context.Context) ([]database.Complex, error) {
	result := []database.Complex{}
	for _, c := range m.complexes {
		result = append(result, c)
	}
	return result, nil
}

func (m *mockComplexStore) GetComplex(_ context.Context, id uuid.UUID) (database.Complex, error) {
	c, ok := m.complexes[id]
	if !ok {
		return database.Complex{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockComplexStore) CreateComplex(_ context.Context, arg database.CreateComplexParams) (database.Complex, error) {
	c := database.Complex{
		ID:        uuid.New(),
		NameLt:    arg.NameLt,
		NameEn:    arg.NameEn,
		Price:     arg.Price,
		SortOrder: arg.SortOrder,
		IsActive:  arg.IsActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.complexes[c.ID] = c
	return c, nil
}

func (m *mockComplexStore) UpdateComplex(_ context.Context, arg database.UpdateComplexParams) (database.Complex, error) {
	c, ok := m.complexes[arg.ID]
	if !ok {
		return database.Complex{}, pgx.ErrNoRows
	}
	c.NameLt = arg.NameLt
	c.NameEn = arg.NameEn
	c.Price = arg.Price
	c.SortOrder = arg.SortOrder
	c.IsActive = arg.IsActive
	m.complexes[c.ID] = c
	return c, nil
}

func (m *mockComplexStore) DeactivateComplex(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	c, ok := m.complexes[id]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	c.IsActive = false
	m.complexes[id] = c
	return id, nil
}

func (m *mockComplexStore) ListOptionsByComplex(_ context.Context, complexID uuid.UUID) ([]database.ComplexDishOption, error) {
	result := []database.ComplexDishOption{}
	for _, o := range m.options {
		if o.ComplexID == complexID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockComplexStore) ListOptionsByComplexIDs(_ context.Context, complexIds []uuid.UUID) ([]database.ComplexDishOption, error) {
	want := make(map[uuid.UUID]bool, len(complexIds))
	for _, id := range complexIds {
		want[id] = true
	}
	result := []database.ComplexDishOption{}
	for _, o := range m.options {
		if want[o.ComplexID] {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockComplexStore) CreateComplexOption(_ context.Context, arg database.CreateComplexOptionParams) (database.ComplexDishOption, error) {
	for _, o := range m.options {
		if o.ComplexID == arg.ComplexID && o.SoupSize == arg.SoupSize &&
			o.MainDishType == arg.MainDishType && o.IncludeDrink == arg.IncludeDrink {
			return database.ComplexDishOption{}, uniqueViolation()
		}
	}
	o := database.ComplexDishOption{
		ID:           uuid.New(),
		ComplexID:    arg.ComplexID,
		SoupSize:     arg.SoupSize,
		MainDishType: arg.MainDishType,
		IncludeDrink: arg.IncludeDrink,
		SortOrder:    arg.SortOrder,
	}
	m.options[o.ID] = o
	return o, nil
}

func (m *mockComplexStore) DeleteComplexOption(_ context.Context, arg database.DeleteComplexOptionParams) (int64, error) {
	o, ok := m.options[arg.ID]
	if !ok || o.ComplexID != arg.ComplexID {
		return 0, nil
	}
	delete(m.options, arg.ID)
	return 1, nil
}

type fakeRegenerator struct {
	got service.RegenerateOptionsRequest
	err error
}

func (f *fakeRegenerator) Regenerate(_ context.Context, complexID uuid.UUID, req service.RegenerateOptionsRequest) ([]database.ComplexDishOption, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	var out []database.ComplexDishOption
	for i, s := range req.SoupSizes {
		out = append(out, database.ComplexDishOption{
			ID:           uuid.New(),
			ComplexID:    complexID,
			SoupSize:     database.SoupSize(s),
			MainDishType: database.MainDishTypeMain,
			SortOrder:    int32(i),
		})
	}
	return out, nil
}

// --- Helpers ---

func setupComplexRouter(store *mockComplexStore, regen *fakeRegenerator) *chi.Mux {
	h := handler.NewComplexHandler(store, regen, testLogger)
	r := chi.NewRouter()
	r.Route("/complexes", h.RegisterRoutes)
	return r
}

func seedComplex(store *mockComplexStore, nameEN string) database.Complex {
	c, _ := store.CreateComplex(context.Background(), database.CreateComplexParams{
		NameLt:   nameEN + " LT",
		NameEn:   nameEN,
		Price:    testNumeric("6.90"),
		IsActive: true,
	})
	return c
}

// --- Tests ---

func TestComplexCreate(t *testing.T) {
	store := newMockComplexStore()
	router := setupComplexRouter(store, &fakeRegenerator{})

	rr := doRequest(t, router, "POST", "/complexes", map[string]interface{}{
		"name_lt": "Dienos pietūs",
		"name_en": "Lunch of the day",
		"price":   "6.9",
		"order":   1,
	})
	assertStatus(t, rr, http.StatusCreated)

	resp := decodeResponse(t, rr)
	if resp["price"] != "6.90" {
		t.Errorf("price: got %v, want 6.90", resp["price"])
	}
	if resp["is_active"] != true {
		t.Errorf("is_active: got %v, want true", resp["is_active"])
	}
	if opts, _ := resp["options"].([]interface{}); len(opts) != 0 {
		t.Errorf("expected no options, got %d", len(opts))
	}
}

func TestComplexCreate_InvalidPrice(t *testing.T) {
	router := setupComplexRouter(newMockComplexStore(), &fakeRegenerator{})

	rr := doRequest(t, router, "POST", "/complexes", map[string]interface{}{
		"name_lt": "Dienos pietūs",
		"name_en": "Lunch of the day",
		"price":   "cheap",
	})
	assertStatus(t, rr, http.StatusBadRequest)
}

func TestComplexList_IncludesOptions(t *testing.T) {
	store := newMockComplexStore()
	c := seedComplex(store, "Lunch")
	store.CreateComplexOption(context.Background(), database.CreateComplexOptionParams{ //nolint:errcheck
		ComplexID:    c.ID,
		SoupSize:     database.SoupSizeHalf,
		MainDishType: database.MainDishTypeMain,
	})
	router := setupComplexRouter(store, &fakeRegenerator{})

	rr := doRequest(t, router, "GET", "/complexes", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeListResponse(t, rr)
	if len(resp) != 1 {
		t.Fatalf("expected 1 complex, got %d", len(resp))
	}
	opts, _ := resp[0]["options"].([]interface{})
	if len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d", len(opts))
	}
	if opt := opts[0].(map[string]interface{}); opt["soup_size"] != "half" {
		t.Errorf("soup_size: got %v, want half", opt["soup_size"])
	}
}

func TestComplexUpdate_NotFound(t *testing.T) {
	router := setupComplexRouter(newMockComplexStore(), &fakeRegenerator{})

	rr := doRequest(t, router, "PUT", "/complexes/"+uuid.New().String(), map[string]interface{}{
		"name_lt": "Dienos pietūs",
		"name_en": "Lunch of the day",
		"price":   "6.90",
	})
	assertStatus(t, rr, http.StatusNotFound)
}

func TestComplexDelete_Deactivates(t *testing.T) {
	store := newMockComplexStore()
	c := seedComplex(store, "Lunch")
	router := setupComplexRouter(store, &fakeRegenerator{})

	rr := doRequest(t, router, "DELETE", "/complexes/"+c.ID.String(), nil)
	assertStatus(t, rr, http.StatusNoContent)

	if store.complexes[c.ID].IsActive {
		t.Error("complex should be inactive")
	}
}

func TestComplexCreateOption_Validation(t *testing.T) {
	store := newMockComplexStore()
	c := seedComplex(store, "Lunch")
	router := setupComplexRouter(store, &fakeRegenerator{})
	path := "/complexes/" + c.ID.String() + "/options"

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"valid", map[string]interface{}{"soup_size": "full", "main_dish_type": "pizza", "include_drink": true}, http.StatusCreated},
		{"duplicate", map[string]interface{}{"soup_size": "full", "main_dish_type": "pizza", "include_drink": true}, http.StatusConflict},
		{"bad soup size", map[string]interface{}{"soup_size": "double", "main_dish_type": "main"}, http.StatusBadRequest},
		{"bad dish type", map[string]interface{}{"soup_size": "none", "main_dish_type": "dessert"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, "POST", path, tt.body)
			assertStatus(t, rr, tt.want)
		})
	}
}

func TestComplexCreateOption_UnknownComplex(t *testing.T) {
	router := setupComplexRouter(newMockComplexStore(), &fakeRegenerator{})

	rr := doRequest(t, router, "POST", "/complexes/"+uuid.New().String()+"/options", map[string]interface{}{
		"soup_size":      "half",
		"main_dish_type": "main",
	})
	assertStatus(t, rr, http.StatusNotFound)
}

func TestComplexRegenerateOptions(t *testing.T) {
	regen := &fakeRegenerator{}
	router := setupComplexRouter(newMockComplexStore(), regen)

	rr := doRequest(t, router, "PUT", "/complexes/"+uuid.New().String()+"/options", map[string]interface{}{
		"soup_sizes":     []string{"half", "full"},
		"dish_types":     []string{"main"},
		"include_drinks": []bool{false},
	})
	assertStatus(t, rr, http.StatusOK)

	if len(regen.got.SoupSizes) != 2 || regen.got.DishTypes[0] != "main" || len(regen.got.IncludeDrinks) != 1 {
		t.Errorf("request not forwarded: %+v", regen.got)
	}
	if resp := decodeListResponse(t, rr); len(resp) != 2 {
		t.Errorf("expected 2 options, got %d", len(resp))
	}
}

func TestComplexRegenerateOptions_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrComplexNotFound, http.StatusNotFound},
		{service.ErrEmptyCombination, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", service.ErrInvalidSoupSize, "double"), http.StatusBadRequest},
		{fmt.Errorf("begin tx: connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router := setupComplexRouter(newMockComplexStore(), &fakeRegenerator{err: tt.err})
			rr := doRequest(t, router, "PUT", "/complexes/"+uuid.New().String()+"/options", map[string]interface{}{
				"soup_sizes":     []string{},
				"dish_types":     []string{"main"},
				"include_drinks": []bool{false},
			})
			assertStatus(t, rr, tt.want)
		})
	}
}

func TestComplexDeleteOption(t *testing.T) {
	store := newMockComplexStore()
	c := seedComplex(store, "Lunch")
	opt, _ := store.CreateComplexOption(context.Background(), database.CreateComplexOptionParams{
		ComplexID:    c.ID,
		SoupSize:     database.SoupSizeNone,
		MainDishType: database.MainDishTypePizza,
	})
	router := setupComplexRouter(store, &fakeRegenerator{})

	rr := doRequest(t, router, "DELETE", "/complexes/"+c.ID.String()+"/options/"+opt.ID.String(), nil)
	assertStatus(t, rr, http.StatusNoContent)

	rr = doRequest(t, router, "DELETE", "/complexes/"+c.ID.String()+"/options/"+opt.ID.String(), nil)
	assertStatus(t, rr, http.StatusNotFound)
}
