package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/menu"
)

// LunchMenuReader serves assembled daily menus.
// Satisfied by *service.LunchMenuService.
type LunchMenuReader interface {
	Today(ctx context.Context, images menu.ImageResolver) (menu.DayMenu, error)
	Week(ctx context.Context, images menu.ImageResolver) ([]menu.DayMenu, error)
	ForDate(ctx context.Context, date time.Time, images menu.ImageResolver) (menu.DayMenu, error)
}

// LunchMenuHandler serves the public, read-only lunch menu.
type LunchMenuHandler struct {
	reader        LunchMenuReader
	publicBaseURL string
	logger        *zap.SugaredLogger
}

func NewLunchMenuHandler(reader LunchMenuReader, publicBaseURL string, logger *zap.SugaredLogger) *LunchMenuHandler {
	return &LunchMenuHandler{reader: reader, publicBaseURL: publicBaseURL, logger: logger}
}

// RegisterRoutes is expected to be mounted at /lunch-menu.
func (h *LunchMenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/today", h.Today)
	r.Get("/week", h.Week)
	r.Get("/date/{date}", h.ForDate)
}

// Today returns today's menu, or an empty day with a message when there is
// no published menu.
func (h *LunchMenuHandler) Today(w http.ResponseWriter, r *http.Request) {
	day, err := h.reader.Today(r.Context(), imageResolver(r, h.publicBaseURL))
	if err != nil {
		writeInternalError(w, h.logger, "lunch menu today", err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// Week returns the published menus of the current week.
func (h *LunchMenuHandler) Week(w http.ResponseWriter, r *http.Request) {
	days, err := h.reader.Week(r.Context(), imageResolver(r, h.publicBaseURL))
	if err != nil {
		writeInternalError(w, h.logger, "lunch menu week", err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *LunchMenuHandler) ForDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(menu.DateLayout, chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	day, err := h.reader.ForDate(r.Context(), date, imageResolver(r, h.publicBaseURL))
	if err != nil {
		writeInternalError(w, h.logger, "lunch menu for date", err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}
