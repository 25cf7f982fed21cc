// Package export writes the time ledger out as an XLSX workbook.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

// QuestNamer resolves quest ids to display names.
type QuestNamer interface {
	QuestName(id string) string
}

// TimeLedger writes entries to an XLSX file at path, one row per ledger
// entry with an earnings column at hourlyRate, plus a totals row.
func TimeLedger(path string, entries []models.TimeEntry, names QuestNamer, hourlyRate float64) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Time Ledger"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Date", "Quest", "Start", "End", "Minutes", "Earnings"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	totalMinutes := 0
	row := 2
	for _, e := range entries {
		end := ""
		if e.EndTime != nil {
			end = e.EndTime.Format("15:04")
		}
		earnings := float64(e.Duration) / 60 * hourlyRate
		values := []interface{}{
			e.StartTime.Format("2006-01-02"),
			names.QuestName(e.QuestID),
			e.StartTime.Format("15:04"),
			end,
			e.Duration,
			fmt.Sprintf("$%.2f", earnings),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		totalMinutes += e.Duration
		row++
	}

	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), totalMinutes)
	_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row),
		fmt.Sprintf("$%.2f", float64(totalMinutes)/60*hourlyRate))

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// DefaultFilename returns a dated workbook name for the export command.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("time-ledger-%s.xlsx", now.Format("2006-01-02"))
}
