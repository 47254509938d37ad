package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/krapesto/menu-api/internal/auth"
	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
	"github.com/krapesto/menu-api/internal/handler"
	mw "github.com/krapesto/menu-api/internal/middleware"
)

// --- Mock store ---

type mockUserStore struct {
	users map[uuid.UUID]database.User // keyed by user ID
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]database.User)}
}

func (m *mockUserStore) ListUsers(_ context.Context) ([]database.User, error) {
	result := []database.User{}
	for _, u := range m.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsActive != result[j].IsActive {
			return result[i].IsActive
		}
		return result[i].FullName < result[j].FullName
	})
	return result, nil
}

func (m *mockUserStore) CreateUser(_ context.Context, arg database.CreateUserParams) (database.User, error) {
	// Simulates the unique constraint on email.
	for _, existing := range m.users {
		if existing.Email == arg.Email {
			return database.User{}, uniqueViolation()
		}
	}
	u := database.User{
		ID:             uuid.New(),
		Email:          arg.Email,
		HashedPassword: arg.HashedPassword,
		FullName:       arg.FullName,
		Role:           arg.Role,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserStore) UpdateUser(_ context.Context, arg database.UpdateUserParams) (database.User, error) {
	u, ok := m.users[arg.ID]
	if !ok {
		return database.User{}, pgx.ErrNoRows
	}
	for _, existing := range m.users {
		if existing.Email == arg.Email && existing.ID != arg.ID {
			return database.User{}, uniqueViolation()
		}
	}
	u.Email = arg.Email
	u.FullName = arg.FullName
	u.Role = arg.Role
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserStore) UpdateUserPassword(_ context.Context, arg database.UpdateUserPasswordParams) error {
	u, ok := m.users[arg.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.HashedPassword = arg.HashedPassword
	m.users[u.ID] = u
	return nil
}

func (m *mockUserStore) DeactivateUser(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return uuid.Nil, pgx.ErrNoRows
	}
	u.IsActive = false
	m.users[id] = u
	return id, nil
}

func (m *mockUserStore) GetUserByID(_ context.Context, id uuid.UUID) (database.User, error) {
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return database.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *mockUserStore) seed(email, role string) database.User {
	u, _ := m.CreateUser(context.Background(), database.CreateUserParams{
		Email:          email,
		HashedPassword: "x",
		FullName:       "User " + email,
		Role:           role,
	})
	return u
}

// --- Helpers ---

// setupUserRouter mounts the handler behind real token authentication.
func setupUserRouter(store *mockUserStore) *chi.Mux {
	h := handler.NewUserHandler(store, testLogger)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(testSecret, store))
		r.Use(mw.RequireRole(enum.UserRoleAdmin))
		r.Route("/users", h.RegisterRoutes)
	})
	return r
}

func doAuthRequest(t *testing.T, router http.Handler, token, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("marshal request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func tokenFor(t *testing.T, u database.User) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, u.ID, u.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// --- Tests ---

func TestUserList_RequiresAdmin(t *testing.T) {
	store := newMockUserStore()
	staff := store.seed("cook@example.com", enum.UserRoleStaff)
	router := setupUserRouter(store)

	rr := doAuthRequest(t, router, tokenFor(t, staff), "GET", "/users", nil)
	assertStatus(t, rr, http.StatusForbidden)

	rr = doRequest(t, router, "GET", "/users", nil)
	assertStatus(t, rr, http.StatusUnauthorized)
}

func TestUserList(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	store.seed("cook@example.com", enum.UserRoleStaff)
	router := setupUserRouter(store)

	rr := doAuthRequest(t, router, tokenFor(t, admin), "GET", "/users", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeListResponse(t, rr)
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if _, leaked := resp[0]["hashed_password"]; leaked {
		t.Error("hashed_password must not be exposed")
	}
}

func TestUserCreate_HashesPassword(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	router := setupUserRouter(store)

	rr := doAuthRequest(t, router, tokenFor(t, admin), "POST", "/users", map[string]interface{}{
		"email":     " Cook@Example.com ",
		"password":  "plaintext-password",
		"full_name": "Ona Virėja",
		"role":      enum.UserRoleStaff,
	})
	assertStatus(t, rr, http.StatusCreated)

	resp := decodeResponse(t, rr)
	if resp["email"] != "cook@example.com" {
		t.Errorf("email: got %v, want normalized cook@example.com", resp["email"])
	}
	created := store.users[uuid.MustParse(resp["id"].(string))]
	if created.HashedPassword == "plaintext-password" {
		t.Fatal("password was stored in plaintext; expected bcrypt hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.HashedPassword), []byte("plaintext-password")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestUserCreate_Validation(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	router := setupUserRouter(store)
	token := tokenFor(t, admin)

	tests := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"missing name", map[string]interface{}{"email": "a@b.c", "password": "longenough", "role": "STAFF"}, http.StatusBadRequest},
		{"bad email", map[string]interface{}{"email": "nope", "password": "longenough", "full_name": "A", "role": "STAFF"}, http.StatusBadRequest},
		{"bad role", map[string]interface{}{"email": "a@b.c", "password": "longenough", "full_name": "A", "role": "OWNER"}, http.StatusBadRequest},
		{"short password", map[string]interface{}{"email": "a@b.c", "password": "short", "full_name": "A", "role": "STAFF"}, http.StatusBadRequest},
		{"duplicate email", map[string]interface{}{"email": "admin@example.com", "password": "longenough", "full_name": "A", "role": "STAFF"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doAuthRequest(t, router, token, "POST", "/users", tt.body)
			assertStatus(t, rr, tt.want)
		})
	}
}

func TestUserUpdate_ChangesPassword(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	staff := store.seed("cook@example.com", enum.UserRoleStaff)
	router := setupUserRouter(store)

	rr := doAuthRequest(t, router, tokenFor(t, admin), "PUT", "/users/"+staff.ID.String(), map[string]interface{}{
		"email":     "cook@example.com",
		"full_name": "Head Cook",
		"role":      enum.UserRoleAdmin,
		"password":  "new-password",
	})
	assertStatus(t, rr, http.StatusOK)

	got := store.users[staff.ID]
	if got.Role != enum.UserRoleAdmin || got.FullName != "Head Cook" {
		t.Errorf("user not updated: %+v", got)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.HashedPassword), []byte("new-password")); err != nil {
		t.Errorf("password not changed: %v", err)
	}
}

func TestUserUpdate_CannotDemoteSelf(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	router := setupUserRouter(store)

	rr := doAuthRequest(t, router, tokenFor(t, admin), "PUT", "/users/"+admin.ID.String(), map[string]interface{}{
		"email":     "admin@example.com",
		"full_name": "Admin",
		"role":      enum.UserRoleStaff,
	})
	assertStatus(t, rr, http.StatusBadRequest)

	if store.users[admin.ID].Role != enum.UserRoleAdmin {
		t.Error("role should be unchanged")
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	router := setupUserRouter(store)

	rr := doAuthRequest(t, router, tokenFor(t, admin), "PUT", "/users/"+uuid.New().String(), map[string]interface{}{
		"email":     "x@example.com",
		"full_name": "X",
		"role":      enum.UserRoleStaff,
	})
	assertStatus(t, rr, http.StatusNotFound)
}

func TestUserDelete(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	staff := store.seed("cook@example.com", enum.UserRoleStaff)
	router := setupUserRouter(store)
	token := tokenFor(t, admin)

	rr := doAuthRequest(t, router, token, "DELETE", "/users/"+staff.ID.String(), nil)
	assertStatus(t, rr, http.StatusNoContent)
	if store.users[staff.ID].IsActive {
		t.Error("user should be inactive")
	}

	rr = doAuthRequest(t, router, token, "DELETE", "/users/"+staff.ID.String(), nil)
	assertStatus(t, rr, http.StatusNotFound)

	rr = doAuthRequest(t, router, token, "DELETE", "/users/"+admin.ID.String(), nil)
	assertStatus(t, rr, http.StatusBadRequest)
}

func TestUserDelete_RevokesAccess(t *testing.T) {
	store := newMockUserStore()
	admin := store.seed("admin@example.com", enum.UserRoleAdmin)
	other := store.seed("second@example.com", enum.UserRoleAdmin)
	router := setupUserRouter(store)
	otherToken := tokenFor(t, other)

	rr := doAuthRequest(t, router, tokenFor(t, admin), "DELETE", "/users/"+other.ID.String(), nil)
	assertStatus(t, rr, http.StatusNoContent)

	rr = doAuthRequest(t, router, otherToken, "GET", "/users", nil)
	assertStatus(t, rr, http.StatusUnauthorized)
}
