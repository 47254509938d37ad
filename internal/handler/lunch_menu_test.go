package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/krapesto/menu-api/internal/handler"
	"github.com/krapesto/menu-api/internal/menu"
)

// --- Fake reader ---

type fakeLunchMenuReader struct {
	day       menu.DayMenu
	week      []menu.DayMenu
	err       error
	gotDate   time.Time
	gotImages menu.ImageResolver
}

func (f *fakeLunchMenuReader) Today(_ context.Context, images menu.ImageResolver) (menu.DayMenu, error) {
	f.gotImages = images
	return f.day, f.err
}

func (f *fakeLunchMenuReader) Week(_ context.Context, images menu.ImageResolver) ([]menu.DayMenu, error) {
	f.gotImages = images
	return f.week, f.err
}

func (f *fakeLunchMenuReader) ForDate(_ context.Context, date time.Time, images menu.ImageResolver) (menu.DayMenu, error) {
	f.gotDate = date
	f.gotImages = images
	if f.err != nil {
		return menu.DayMenu{}, f.err
	}
	if f.day.Date == "" {
		return menu.Empty(date, false, menu.MessageNoMenu), nil
	}
	return f.day, nil
}

// --- Helpers ---

func setupLunchMenuRouter(reader *fakeLunchMenuReader, publicBaseURL string) *chi.Mux {
	h := handler.NewLunchMenuHandler(reader, publicBaseURL, testLogger)
	r := chi.NewRouter()
	r.Route("/lunch-menu", h.RegisterRoutes)
	return r
}

func sampleDay() menu.DayMenu {
	half := "1.50"
	return menu.DayMenu{
		Date:      "2024-05-01",
		Published: true,
		Categories: []menu.CategoryView{{
			ID: uuid.New(), NameLT: "Sriubos", NameEN: "Soups", Order: 1,
			Dishes: []menu.DishView{{ID: uuid.New(), NameLT: "Pomidorų sriuba", NameEN: "Tomato Soup", Price: "3.00", HalfPrice: &half, Available: true}},
		}},
		Complexes: []menu.ComplexView{},
	}
}

// --- Tests ---

func TestLunchMenuToday(t *testing.T) {
	reader := &fakeLunchMenuReader{day: sampleDay()}
	router := setupLunchMenuRouter(reader, "")

	rr := doRequest(t, router, "GET", "/lunch-menu/today", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeResponse(t, rr)
	if resp["date"] != "2024-05-01" || resp["published"] != true {
		t.Errorf("header: got date=%v published=%v", resp["date"], resp["published"])
	}
	cats := resp["categories"].([]interface{})
	dish := cats[0].(map[string]interface{})["dishes"].([]interface{})[0].(map[string]interface{})
	if dish["price"] != "3.00" || dish["half_price"] != "1.50" {
		t.Errorf("prices should be decimal strings, got %v / %v", dish["price"], dish["half_price"])
	}
	if _, ok := resp["message"]; ok {
		t.Error("message should be omitted for a published menu")
	}
	if reader.gotImages.BaseURL != "http://example.com" {
		t.Errorf("image base: got %q, want request host", reader.gotImages.BaseURL)
	}
}

func TestLunchMenuToday_PublicBaseURLWins(t *testing.T) {
	reader := &fakeLunchMenuReader{day: sampleDay()}
	router := setupLunchMenuRouter(reader, "https://menu.krapesto.lt")

	rr := doRequest(t, router, "GET", "/lunch-menu/today", nil)
	assertStatus(t, rr, http.StatusOK)
	if reader.gotImages.BaseURL != "https://menu.krapesto.lt" {
		t.Errorf("image base: got %q", reader.gotImages.BaseURL)
	}
}

func TestLunchMenuToday_Error(t *testing.T) {
	reader := &fakeLunchMenuReader{err: errors.New("db down")}
	router := setupLunchMenuRouter(reader, "")

	rr := doRequest(t, router, "GET", "/lunch-menu/today", nil)
	assertStatus(t, rr, http.StatusInternalServerError)
}

func TestLunchMenuWeek(t *testing.T) {
	second := sampleDay()
	second.Date = "2024-05-03"
	reader := &fakeLunchMenuReader{week: []menu.DayMenu{sampleDay(), second}}
	router := setupLunchMenuRouter(reader, "")

	rr := doRequest(t, router, "GET", "/lunch-menu/week", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeListResponse(t, rr)
	if len(resp) != 2 || resp[1]["date"] != "2024-05-03" {
		t.Errorf("week: got %v", resp)
	}
}

func TestLunchMenuWeek_EmptyIsArray(t *testing.T) {
	reader := &fakeLunchMenuReader{week: []menu.DayMenu{}}
	router := setupLunchMenuRouter(reader, "")

	rr := doRequest(t, router, "GET", "/lunch-menu/week", nil)
	assertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "[]\n" {
		t.Errorf("body: got %q, want []", body)
	}
}

func TestLunchMenuForDate_Missing(t *testing.T) {
	reader := &fakeLunchMenuReader{}
	router := setupLunchMenuRouter(reader, "")

	rr := doRequest(t, router, "GET", "/lunch-menu/date/2024-06-01", nil)
	assertStatus(t, rr, http.StatusOK)

	if got := reader.gotDate.Format(menu.DateLayout); got != "2024-06-01" {
		t.Errorf("date passed to reader: got %s", got)
	}
	resp := decodeResponse(t, rr)
	if resp["published"] != false || resp["message"] != menu.MessageNoMenu {
		t.Errorf("got %v", resp)
	}
	if cats, ok := resp["categories"].([]interface{}); !ok || len(cats) != 0 {
		t.Errorf("categories should be an empty array, got %v", resp["categories"])
	}
}

func TestLunchMenuForDate_InvalidDate(t *testing.T) {
	router := setupLunchMenuRouter(&fakeLunchMenuReader{}, "")

	for _, d := range []string{"2024-13-01", "yesterday", "01-05-2024"} {
		rr := doRequest(t, router, "GET", "/lunch-menu/date/"+d, nil)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", d, rr.Code)
		}
	}
}
