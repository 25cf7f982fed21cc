package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

type stubNamer map[string]string

func (s stubNamer) QuestName(id string) string {
	if name, ok := s[id]; ok {
		return name
	}
	return "Unknown Quest"
}

func TestTimeLedger(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	entries := []models.TimeEntry{
		{ID: "t1", QuestID: "q1", StartTime: start, EndTime: &end, Duration: 90},
		{ID: "t2", QuestID: "q2", StartTime: start.Add(24 * time.Hour), Duration: 30},
	}
	names := stubNamer{"q1": "Panel Upgrade"}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	if err := TimeLedger(path, entries, names, 80); err != nil {
		t.Fatalf("TimeLedger: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Time Ledger"
	checks := map[string]string{
		"A1": "Date",
		"F1": "Earnings",
		"A2": "2025-03-10",
		"B2": "Panel Upgrade",
		"C2": "08:30",
		"D2": "10:00",
		"E2": "90",
		"F2": "$120.00",
		"B3": "Unknown Quest",
		"D3": "",
		"A4": "Total",
		"E4": "120",
		"F4": "$160.00",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s: got %q, want %q", cell, got, want)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "time-ledger-2025-03-10.xlsx" {
		t.Errorf("unexpected filename %q", got)
	}
}
