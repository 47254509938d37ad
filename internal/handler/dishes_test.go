package handler_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/handler"
)

// --- Mock store ---

type mockDishStore struct {
	dishes        map[uuid.UUID]database.Dish
	subcategories map[uuid.UUID]database.Subcategory
	lastList      database.ListDishesParams
}

func newMockDishStore() *mockDishStore {
	return &mockDishStore{
		dishes:        make(map[uuid.UUID]database.Dish),
		subcategories: make(map[uuid.UUID]database.Subcategory),
	}
}

func (m *mockDishStore) ListDishes(_ context.Context, arg database.ListDishesParams) ([]database.Dish, error) {
	m.lastList = arg
	result := []database.Dish{}
	for _, d := range m.dishes {
		if arg.IsActive.Valid && d.IsActive != arg.IsActive.Bool {
			continue
		}
		if arg.CategoryID.Valid && d.CategoryID != uuid.UUID(arg.CategoryID.Bytes) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDishStore) GetDish(_ context.Context, id uuid.UUID) (database.Dish, error) {
	d, ok := m.dishes[id]
	if !ok {
		return database.Dish{}, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockDishStore) CreateDish(_ context.Context, arg database.CreateDishParams) (database.Dish, error) {
	d := database.Dish{
		ID:            uuid.New(),
		CategoryID:    arg.CategoryID,
		SubcategoryID: arg.SubcategoryID,
		NameLt:        arg.NameLt,
		NameEn:        arg.NameEn,
		IngredientsLt: arg.IngredientsLt,
		IngredientsEn: arg.IngredientsEn,
		Price:         arg.Price,
		HalfPrice:     arg.HalfPrice,
		ImageUrl:      arg.ImageUrl,
		IsActive:      arg.IsActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	m.dishes[d.ID] = d
	return d, nil
}

func (m *mockDishStore) UpdateDish(_ context.Context, arg database.UpdateDishParams) (database.Dish, error) {
	d, ok := m.dishes[arg.ID]
	if !ok {
		return database.Dish{}, pgx.ErrNoRows
	}
	d.CategoryID = arg.CategoryID
	d.SubcategoryID = arg.SubcategoryID
	d.NameLt = arg.NameLt
	d.NameEn = arg.NameEn
	d.Price = arg.Price
	d.HalfPrice = arg.HalfPrice
	d.IsActive = arg.IsActive
	m.dishes[d.ID] = d
	return d, nil
}

func (m *mockDishStore) UpdateDishImage(_ context.Context, arg database.UpdateDishImageParams) (database.Dish, error) {
	d, ok := m.dishes[arg.ID]
	if !ok {
		return database.Dish{}, pgx.ErrNoRows
	}
	d.ImageUrl = arg.ImageUrl
	m.dishes[d.ID] = d
	return d, nil
}

func (m *mockDishStore) DeactivateDish(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	d, ok := m.dishes[id]
	if !ok {
		return uuid.Nil, pgx.ErrNoRows
	}
	d.IsActive = false
	m.dishes[id] = d
	return id, nil
}

func (m *mockDishStore) GetSubcategory(_ context.Context, id uuid.UUID) (database.Subcategory, error) {
	s, ok := m.subcategories[id]
	if !ok {
		return database.Subcategory{}, pgx.ErrNoRows
	}
	return s, nil
}

type fakeImageStore struct {
	keys        []string
	contentType string
	body        []byte
}

func (f *fakeImageStore) Put(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	f.contentType = contentType
	f.body = b
	return "https://cdn.example.com/menu/" + key, nil
}

// --- Helpers ---

func setupDishRouter(store *mockDishStore, images handler.ImageStore) *chi.Mux {
	h := handler.NewDishHandler(store, images, "", testLogger)
	r := chi.NewRouter()
	r.Route("/dishes", h.RegisterRoutes)
	return r
}

func seedDish(store *mockDishStore, categoryID uuid.UUID, nameEN string, active bool) database.Dish {
	d, _ := store.CreateDish(context.Background(), database.CreateDishParams{
		CategoryID: categoryID,
		NameLt:     nameEN + " LT",
		NameEn:     nameEN,
		Price:      testNumeric("5.00"),
		IsActive:   active,
	})
	return d
}

func uploadRequest(t *testing.T, path, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="cepelinai.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// --- Create tests ---

func TestDishCreate_Valid(t *testing.T) {
	store := newMockDishStore()
	router := setupDishRouter(store, nil)
	catID := uuid.New()

	rr := doRequest(t, router, "POST", "/dishes", map[string]interface{}{
		"category_id":    catID.String(),
		"name_lt":        "Cepelinai",
		"name_en":        "Zeppelins",
		"ingredients_lt": "bulvės, mėsa",
		"ingredients_en": "potatoes, meat",
		"price":          "6.5",
		"half_price":     "3.9",
	})
	assertStatus(t, rr, http.StatusCreated)

	resp := decodeResponse(t, rr)
	if resp["price"] != "6.50" {
		t.Errorf("price: got %v, want 6.50", resp["price"])
	}
	if resp["half_price"] != "3.90" {
		t.Errorf("half_price: got %v, want 3.90", resp["half_price"])
	}
	if resp["is_active"] != true {
		t.Errorf("is_active: got %v, want true", resp["is_active"])
	}
	if resp["image"] != nil {
		t.Errorf("image: got %v, want nil", resp["image"])
	}
}

func TestDishCreate_NegativePrice(t *testing.T) {
	router := setupDishRouter(newMockDishStore(), nil)

	rr := doRequest(t, router, "POST", "/dishes", map[string]interface{}{
		"category_id": uuid.New().String(),
		"name_lt":     "Cepelinai",
		"name_en":     "Zeppelins",
		"price":       "-1.00",
	})
	assertStatus(t, rr, http.StatusBadRequest)
}

func TestDishCreate_SubcategoryFromOtherCategory(t *testing.T) {
	store := newMockDishStore()
	sub := database.Subcategory{ID: uuid.New(), CategoryID: uuid.New(), NameLt: "Žuvis", NameEn: "Fish"}
	store.subcategories[sub.ID] = sub
	router := setupDishRouter(store, nil)

	rr := doRequest(t, router, "POST", "/dishes", map[string]interface{}{
		"category_id":    uuid.New().String(),
		"subcategory_id": sub.ID.String(),
		"name_lt":        "Lašiša",
		"name_en":        "Salmon",
		"price":          "9.00",
	})
	assertStatus(t, rr, http.StatusBadRequest)

	if len(store.dishes) != 0 {
		t.Errorf("expected no dish stored, got %d", len(store.dishes))
	}
}

func TestDishCreate_WithSubcategory(t *testing.T) {
	store := newMockDishStore()
	catID := uuid.New()
	sub := database.Subcategory{ID: uuid.New(), CategoryID: catID, NameLt: "Žuvis", NameEn: "Fish"}
	store.subcategories[sub.ID] = sub
	router := setupDishRouter(store, nil)

	rr := doRequest(t, router, "POST", "/dishes", map[string]interface{}{
		"category_id":    catID.String(),
		"subcategory_id": sub.ID.String(),
		"name_lt":        "Lašiša",
		"name_en":        "Salmon",
		"price":          "9.00",
	})
	assertStatus(t, rr, http.StatusCreated)

	if resp := decodeResponse(t, rr); resp["subcategory_id"] != sub.ID.String() {
		t.Errorf("subcategory_id: got %v, want %s", resp["subcategory_id"], sub.ID)
	}
}

// --- List tests ---

func TestDishList_StatusFilter(t *testing.T) {
	store := newMockDishStore()
	catID := uuid.New()
	seedDish(store, catID, "Zeppelins", true)
	seedDish(store, catID, "Old Stew", false)
	router := setupDishRouter(store, nil)

	rr := doRequest(t, router, "GET", "/dishes?status=active", nil)
	assertStatus(t, rr, http.StatusOK)
	resp := decodeListResponse(t, rr)
	if len(resp) != 1 || resp[0]["name_en"] != "Zeppelins" {
		t.Errorf("unexpected active dishes: %v", resp)
	}

	rr = doRequest(t, router, "GET", "/dishes", nil)
	assertStatus(t, rr, http.StatusOK)
	if all := decodeListResponse(t, rr); len(all) != 2 {
		t.Errorf("expected 2 dishes without filter, got %d", len(all))
	}
}

func TestDishList_NameFilterPassedThrough(t *testing.T) {
	store := newMockDishStore()
	router := setupDishRouter(store, nil)

	rr := doRequest(t, router, "GET", "/dishes?name=%20cep%20", nil)
	assertStatus(t, rr, http.StatusOK)

	if !store.lastList.Name.Valid || store.lastList.Name.String != "cep" {
		t.Errorf("name filter: got %+v", store.lastList.Name)
	}
}

func TestDishList_InvalidStatus(t *testing.T) {
	router := setupDishRouter(newMockDishStore(), nil)

	rr := doRequest(t, router, "GET", "/dishes?status=deleted", nil)
	assertStatus(t, rr, http.StatusBadRequest)
}

// --- Update / Delete tests ---

func TestDishUpdate_NotFound(t *testing.T) {
	router := setupDishRouter(newMockDishStore(), nil)

	rr := doRequest(t, router, "PUT", "/dishes/"+uuid.New().String(), map[string]interface{}{
		"category_id": uuid.New().String(),
		"name_lt":     "Cepelinai",
		"name_en":     "Zeppelins",
		"price":       "6.50",
	})
	assertStatus(t, rr, http.StatusNotFound)
}

func TestDishDelete_Deactivates(t *testing.T) {
	store := newMockDishStore()
	d := seedDish(store, uuid.New(), "Zeppelins", true)
	router := setupDishRouter(store, nil)

	rr := doRequest(t, router, "DELETE", "/dishes/"+d.ID.String(), nil)
	assertStatus(t, rr, http.StatusNoContent)

	got, ok := store.dishes[d.ID]
	if !ok {
		t.Fatal("dish should still exist")
	}
	if got.IsActive {
		t.Error("dish should be inactive")
	}
}

// --- Image upload tests ---

func TestDishUploadImage(t *testing.T) {
	store := newMockDishStore()
	d := seedDish(store, uuid.New(), "Zeppelins", true)
	images := &fakeImageStore{}
	router := setupDishRouter(store, images)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, uploadRequest(t, "/dishes/"+d.ID.String()+"/image", "image/png", []byte("png-bytes")))
	assertStatus(t, rr, http.StatusOK)

	if len(images.keys) != 1 || !strings.HasPrefix(images.keys[0], "dishes/") || !strings.HasSuffix(images.keys[0], ".png") {
		t.Fatalf("unexpected keys: %v", images.keys)
	}
	if images.contentType != "image/png" || string(images.body) != "png-bytes" {
		t.Errorf("stored %q with %q", images.body, images.contentType)
	}
	resp := decodeResponse(t, rr)
	if resp["image"] != "https://cdn.example.com/menu/"+images.keys[0] {
		t.Errorf("image: got %v", resp["image"])
	}
}

func TestDishUploadImage_RejectsNonImage(t *testing.T) {
	store := newMockDishStore()
	d := seedDish(store, uuid.New(), "Zeppelins", true)
	images := &fakeImageStore{}
	router := setupDishRouter(store, images)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, uploadRequest(t, "/dishes/"+d.ID.String()+"/image", "text/plain", []byte("hello")))
	assertStatus(t, rr, http.StatusBadRequest)

	if len(images.keys) != 0 {
		t.Errorf("nothing should be stored, got %v", images.keys)
	}
}

func TestDishUploadImage_StorageDisabled(t *testing.T) {
	store := newMockDishStore()
	d := seedDish(store, uuid.New(), "Zeppelins", true)
	router := setupDishRouter(store, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, uploadRequest(t, "/dishes/"+d.ID.String()+"/image", "image/png", []byte("png-bytes")))
	assertStatus(t, rr, http.StatusServiceUnavailable)
}
