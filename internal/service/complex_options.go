package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/krapesto/menu-api/internal/database"
	"github.com/krapesto/menu-api/internal/enum"
)

// Errors returned by the complex option service.
var (
	ErrComplexNotFound     = errors.New("complex not found")
	ErrInvalidSoupSize     = errors.New("invalid soup_size")
	ErrInvalidMainDishType = errors.New("invalid main_dish_type")
	ErrEmptyCombination    = errors.New("soup_sizes, dish_types and include_drinks must each have at least one value")
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ComplexOptionStore defines the DB methods needed to regenerate options.
// Satisfied by *database.Queries (and its WithTx variant).
type ComplexOptionStore interface {
	GetComplex(ctx context.Context, id uuid.UUID) (database.Complex, error)
	DeleteOptionsByComplex(ctx context.Context, complexID uuid.UUID) (int64, error)
	CreateComplexOption(ctx context.Context, arg database.CreateComplexOptionParams) (database.ComplexDishOption, error)
}

// NewComplexOptionStore creates a ComplexOptionStore from a DBTX (pool or tx).
type NewComplexOptionStore func(db database.DBTX) ComplexOptionStore

// RegenerateOptionsRequest lists the values whose cross-product becomes the
// complex's new option set.
type RegenerateOptionsRequest struct {
	SoupSizes     []string
	DishTypes     []string
	IncludeDrinks []bool
}

// ComplexOptionService replaces a complex's options in bulk.
type ComplexOptionService struct {
	pool     TxBeginner
	newStore NewComplexOptionStore
}

func NewComplexOptionService(pool TxBeginner, newStore NewComplexOptionStore) *ComplexOptionService {
	return &ComplexOptionService{pool: pool, newStore: newStore}
}

// Regenerate deletes every option of the complex and creates one per
// (soup size, dish type, include drink) combination, in input order.
// Repeated input values are collapsed. Nothing is written when validation
// fails.
func (s *ComplexOptionService) Regenerate(ctx context.Context, complexID uuid.UUID, req RegenerateOptionsRequest) ([]database.ComplexDishOption, error) {
	soupSizes := dedupe(req.SoupSizes)
	dishTypes := dedupe(req.DishTypes)
	drinks := dedupe(req.IncludeDrinks)
	if len(soupSizes) == 0 || len(dishTypes) == 0 || len(drinks) == 0 {
		return nil, ErrEmptyCombination
	}
	for _, ss := range soupSizes {
		if !enum.IsValidSoupSize(ss) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSoupSize, ss)
		}
	}
	for _, dt := range dishTypes {
		if !enum.IsValidMainDishType(dt) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMainDishType, dt)
		}
	}

	// --- Begin transaction ---
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	if _, err := store.GetComplex(ctx, complexID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrComplexNotFound
		}
		return nil, fmt.Errorf("get complex: %w", err)
	}

	if _, err := store.DeleteOptionsByComplex(ctx, complexID); err != nil {
		return nil, fmt.Errorf("delete options: %w", err)
	}

	options := make([]database.ComplexDishOption, 0, len(soupSizes)*len(dishTypes)*len(drinks))
	var order int32
	for _, ss := range soupSizes {
		for _, dt := range dishTypes {
			for _, drink := range drinks {
				opt, err := store.CreateComplexOption(ctx, database.CreateComplexOptionParams{
					ComplexID:    complexID,
					SoupSize:     database.SoupSize(ss),
					MainDishType: database.MainDishType(dt),
					IncludeDrink: drink,
					SortOrder:    order,
				})
				if err != nil {
					return nil, fmt.Errorf("create option %d: %w", order, err)
				}
				options = append(options, opt)
				order++
			}
		}
	}

	// --- Commit ---
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return options, nil
}

func dedupe[T comparable](in []T) []T {
	seen := make(map[T]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
