package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/krapesto/menu-api/internal/menu"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeInternalError logs err under op and answers with a generic 500.
func writeInternalError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	logger.Errorw(op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var errNegativePrice = errors.New("negative price")

func parsePrice(s string) (pgtype.Numeric, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return pgtype.Numeric{}, err
	}
	if d.IsNegative() {
		return pgtype.Numeric{}, errNegativePrice
	}
	var n pgtype.Numeric
	if err := n.Scan(d.StringFixed(2)); err != nil {
		return pgtype.Numeric{}, err
	}
	return n, nil
}

// parseOptionalPrice treats nil and "" as no price.
func parseOptionalPrice(s *string) (pgtype.Numeric, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return pgtype.Numeric{}, nil
	}
	return parsePrice(*s)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func numericToString(n pgtype.Numeric) string {
	return numericToDecimal(n).StringFixed(2)
}

func numericToStringPtr(n pgtype.Numeric) *string {
	if !n.Valid {
		return nil
	}
	s := numericToString(n)
	return &s
}

// imageResolver prefers the configured public base URL and falls back to
// the scheme and host the request arrived on.
func imageResolver(r *http.Request, publicBaseURL string) menu.ImageResolver {
	if publicBaseURL != "" {
		return menu.ImageResolver{BaseURL: publicBaseURL}
	}
	if r.Host == "" {
		return menu.ImageResolver{}
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return menu.ImageResolver{BaseURL: scheme + "://" + r.Host}
}

func requestLanguage(r *http.Request) string {
	return menu.NormalizeLanguage(r.URL.Query().Get("lang"))
}
