// Package export renders daily menus as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Menus"

// Row is one dish linked to one daily menu.
type Row struct {
	Date             string
	Published        bool
	CategoryLT       string
	CategoryEN       string
	DishLT           string
	DishEN           string
	Price            decimal.Decimal
	HalfPrice        decimal.NullDecimal
	PlannedQuantity  *int32
	ProducedQuantity int32
	Available        bool
	SoldOut          bool
}

var header = []any{
	"Date", "Published", "Category (LT)", "Category (EN)", "Dish (LT)", "Dish (EN)",
	"Price", "Half price", "Planned", "Produced", "Available", "Sold out",
}

// WriteMenus writes rows as a single-sheet XLSX workbook to w.
func WriteMenus(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			r.Date,
			yesNo(r.Published),
			r.CategoryLT,
			r.CategoryEN,
			r.DishLT,
			r.DishEN,
			r.Price.StringFixed(2),
			optionalPrice(r.HalfPrice),
			optionalQuantity(r.PlannedQuantity),
			r.ProducedQuantity,
			yesNo(r.Available),
			yesNo(r.SoldOut),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "C", "F", 28); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func optionalPrice(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}

func optionalQuantity(q *int32) any {
	if q == nil {
		return ""
	}
	return *q
}
