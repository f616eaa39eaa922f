// Package export renders a computed stock plan as a downloadable table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/xuri/excelize/v2"
)

var planHeader = []string{
	"Item", "Item Code", "Unit", "Suggested Par",
	"Stock In Hand", "Expected Delivery", "Final Stock Needed", "Supplier",
}

// WriteXLSX writes the plan as a single-sheet workbook.
func WriteXLSX(w io.Writer, plans []domain.FinalStockPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &planHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, p := range plans {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			p.Item, p.ItemCode, p.Unit, p.SuggestedPar,
			p.StockInHand, p.ExpectedDelivery, p.FinalStockNeeded, p.Supplier,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes the plan as comma-delimited text with the same columns as
// the workbook export.
func WriteCSV(w io.Writer, plans []domain.FinalStockPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(planHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, p := range plans {
		record := []string{
			p.Item,
			p.ItemCode,
			p.Unit,
			formatQty(p.SuggestedPar),
			formatQty(p.StockInHand),
			formatQty(p.ExpectedDelivery),
			formatQty(p.FinalStockNeeded),
			p.Supplier,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
