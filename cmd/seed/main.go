package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/krapesto/menu-api/internal/config"
	"github.com/krapesto/menu-api/internal/enum"
)

// starterCategory names match the category classifier so a fresh install
// groups soups, mains, light mains and pizza without further setup.
type starterCategory struct {
	nameLT string
	nameEN string
	order  int32
}

var starterCategories = []starterCategory{
	{"Sriubos", "Soups", 1},
	{"Pagrindiniai patiekalai", "Main Courses", 2},
	{"Lengvi patiekalai", "Light Main Courses", 3},
	{"Picos", "Pizza", 4},
}

func main() {
	zl, _ := zap.NewDevelopment()
	defer zl.Sync() //nolint:errcheck
	logger := zl.Sugar()

	// CLI flags
	email := flag.String("email", "", "Admin email address")
	password := flag.String("password", "", "Admin password")
	name := flag.String("name", "", "Admin full name")
	withCategories := flag.Bool("categories", true, "Also seed the starter categories")
	flag.Parse()

	// Fall back to environment variables
	if *email == "" {
		*email = os.Getenv("SEED_EMAIL")
	}
	if *password == "" {
		*password = os.Getenv("SEED_PASSWORD")
	}
	if *name == "" {
		*name = os.Getenv("SEED_NAME")
	}

	// Fall back to defaults
	if *email == "" {
		*email = "admin@krapesto.lt"
	}
	if *password == "" {
		*password = "password123"
		logger.Warn("using default password 'password123', change it immediately in production")
	}
	if *name == "" {
		*name = "Administrator"
	}

	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("unable to connect to database", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatalw("unable to ping database", "error", err)
	}
	logger.Info("connected to database")

	// Admin and categories are committed together or not at all.
	tx, err := pool.Begin(ctx)
	if err != nil {
		logger.Fatalw("failed to begin transaction", "error", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	userID, err := seedAdmin(ctx, tx, logger, strings.ToLower(strings.TrimSpace(*email)), *password, *name)
	if err != nil {
		logger.Fatalw("failed to seed admin", "error", err)
	}

	if *withCategories {
		if err := seedCategories(ctx, tx, logger); err != nil {
			logger.Fatalw("failed to seed categories", "error", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Fatalw("failed to commit", "error", err)
	}

	logger.Infow("seed completed successfully", "admin_id", userID)
}

// seedAdmin creates the admin user if it doesn't exist.
func seedAdmin(ctx context.Context, tx pgx.Tx, logger *zap.SugaredLogger, email, password, fullName string) (uuid.UUID, error) {
	var existingID uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE email = $1 LIMIT 1`, email).Scan(&existingID)
	if err == nil {
		logger.Infow("user already exists, skipping", "email", email, "id", existingID)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("check user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	insertSQL := `
		INSERT INTO users (email, hashed_password, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id
	`
	var newID uuid.UUID
	err = tx.QueryRow(ctx, insertSQL, email, string(hashed), fullName, enum.UserRoleAdmin).Scan(&newID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	logger.Infow("created admin user", "email", email, "id", newID)
	return newID, nil
}

// seedCategories inserts each starter category whose English name is not taken.
func seedCategories(ctx context.Context, tx pgx.Tx, logger *zap.SugaredLogger) error {
	for _, c := range starterCategories {
		var existingID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM categories WHERE lower(name_en) = lower($1) LIMIT 1`, c.nameEN).Scan(&existingID)
		if err == nil {
			logger.Infow("category already exists, skipping", "name", c.nameEN, "id", existingID)
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check category %s: %w", c.nameEN, err)
		}

		var newID uuid.UUID
		err = tx.QueryRow(ctx,
			`INSERT INTO categories (name_lt, name_en, sort_order) VALUES ($1, $2, $3) RETURNING id`,
			c.nameLT, c.nameEN, c.order,
		).Scan(&newID)
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.nameEN, err)
		}
		logger.Infow("created category", "name", c.nameEN, "id", newID)
	}
	return nil
}
