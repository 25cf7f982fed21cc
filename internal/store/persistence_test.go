package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Washedglad/electricians-spellbook/internal/models"
	"github.com/Washedglad/electricians-spellbook/internal/storage"
)

// TestSnapshotRoundTrip persists through a real SQLite backend and
// reopens the store, checking field-for-field equality across every
// collection and the settings.
func TestSnapshotRoundTrip(t *testing.T) {
	backend, err := storage.Open(filepath.Join(t.TempDir(), "spellbook.db"))
	if err != nil {
		t.Fatalf("failed to open backend: %v", err)
	}
	defer backend.Close()

	// UTC and Round(0) keep time fields JSON round-trip comparable.
	day := time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC)
	end := day.Add(2 * time.Hour)

	s := Open(backend, discardLogger())
	s.AddQuest(models.Quest{
		ID:              "q1",
		ClientName:      "Dumbledore",
		Location:        "Headmaster's Office",
		Address:         "Hogwarts",
		StartDate:       day,
		Status:          models.QuestBrewing,
		MaterialsNeeded: []string{"14/2 NM-B", "single gang boxes"},
		Notes:           "portrait lighting",
		ContactInfo:     &models.ContactInfo{Phone: "555-0101"},
		EstimatedHours:  6,
	})
	s.AddMaterial(models.Material{
		ID: "m1", Name: "EMT 3/4", Category: models.CategoryConduit,
		Quantity: 42.5, Unit: "ft", LowStockThreshold: 10,
	})
	s.AddTimeEntry(models.TimeEntry{
		ID: "t1", QuestID: "q1", StartTime: day, EndTime: &end, Duration: 120, Notes: "rough-in",
	})
	s.AddCodeReference(models.CodeReference{
		ID: "c9", Section: "240.4", Title: "Protection of Conductors",
		Content: "Conductors shall be protected against overcurrent.",
		Category: models.CodeGeneral,
	})
	s.AddLocation(models.JobLocation{
		ID: "l1", Name: "Hogwarts", Address: "Scotland",
		ContactPerson: "Filch", Phone: "555-0102",
		QuestHistory: []string{"q1"},
		Coordinates:  &models.Coordinates{Lat: 57.1, Lng: -4.7},
	})
	s.SetHourlyRate(95)

	reloaded := Open(backend, discardLogger())

	if !reflect.DeepEqual(reloaded.Quests(), s.Quests()) {
		t.Errorf("quests differ after reload:\n got  %+v\n want %+v", reloaded.Quests(), s.Quests())
	}
	if !reflect.DeepEqual(reloaded.Materials(), s.Materials()) {
		t.Errorf("materials differ after reload")
	}
	if !reflect.DeepEqual(reloaded.TimeEntries(), s.TimeEntries()) {
		t.Errorf("time entries differ after reload")
	}
	if !reflect.DeepEqual(reloaded.CodeReferences(), s.CodeReferences()) {
		t.Errorf("code references differ after reload")
	}
	if !reflect.DeepEqual(reloaded.Locations(), s.Locations()) {
		t.Errorf("locations differ after reload")
	}
	if reloaded.HourlyRate() != 95 {
		t.Errorf("hourly rate not persisted, got %v", reloaded.HourlyRate())
	}
}

// TestActiveTimerSurvivesReload checks the timer slot is part of the
// persisted document, not just the in-memory state.
func TestActiveTimerSurvivesReload(t *testing.T) {
	backend, err := storage.Open(filepath.Join(t.TempDir(), "spellbook.db"))
	if err != nil {
		t.Fatalf("failed to open backend: %v", err)
	}
	defer backend.Close()

	s := Open(backend, discardLogger())
	s.now = func() time.Time { return time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC) }
	s.StartTimer("q1")

	reloaded := Open(backend, discardLogger())
	timer := reloaded.ActiveTimer()
	if timer == nil || timer.QuestID != "q1" {
		t.Fatalf("active timer lost across reload: %+v", timer)
	}
	if timer.EndTime != nil {
		t.Error("active timer should have no end time")
	}
}
