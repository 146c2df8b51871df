package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// WorkbookXLSX renders a snapshot as an XLSX workbook with one sheet per
// entity kind. Photo blobs are summarised as a count, not embedded.
func WorkbookXLSX(snap *Snapshot) (*excelize.File, error) {
	x := excelize.NewFile()

	if err := writeSheet(x, "Farms", []string{"ID", "Name", "GridRows", "GridCols", "Description", "CreatedAt"}, len(snap.Farms), func(i int) []any {
		f := snap.Farms[i]
		return []any{f.ID, f.Name, f.GridRows, f.GridCols, f.Description, f.CreatedAt.Format("2006-01-02 15:04:05")}
	}); err != nil {
		return nil, err
	}

	if err := writeSheet(x, "Trees", []string{"ID", "FarmID", "Position", "Species", "Variety", "PlantDate", "Health", "Notes", "Photos", "Synced", "Origin"}, len(snap.Trees), func(i int) []any {
		t := snap.Trees[i]
		return []any{t.ID, t.FarmID, t.Position, t.Species, t.Variety, t.PlantDate, t.Health, t.Notes, len(t.Photos), t.Synced, t.Origin}
	}); err != nil {
		return nil, err
	}

	if err := writeSheet(x, "Interventions", []string{"ID", "TreeID", "Type", "Notes", "Date"}, len(snap.Interventions), func(i int) []any {
		iv := snap.Interventions[i]
		return []any{iv.ID, iv.TreeID, iv.Type, iv.Notes, iv.Date}
	}); err != nil {
		return nil, err
	}

	// excelize creates "Sheet1" by default; drop it once real sheets exist
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return x, nil
}

func writeSheet(x *excelize.File, name string, header []string, rows int, row func(int) []any) error {
	if _, err := x.NewSheet(name); err != nil {
		return err
	}
	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := x.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	for i := 0; i < rows; i++ {
		addr := "A" + strconv.Itoa(i+2)
		vals := row(i)
		if err := x.SetSheetRow(name, addr, &vals); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+2, err)
		}
	}
	return nil
}
