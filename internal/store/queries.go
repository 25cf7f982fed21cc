package store

import (
	"strings"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

// UnknownQuestName is shown for ledger entries whose quest no longer
// exists. Dangling entries are tolerated, not pruned.
const UnknownQuestName = "Unknown Quest"

// QuestCountByStatus returns how many quests are in each status.
func (s *Store) QuestCountByStatus() map[models.QuestStatus]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[models.QuestStatus]int)
	for _, q := range s.st.Quests {
		counts[q.Status]++
	}
	return counts
}

// LowStockMaterials returns materials at or below their threshold.
func (s *Store) LowStockMaterials() []models.Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	var low []models.Material
	for _, m := range s.st.Materials {
		if m.LowStock() {
			low = append(low, m)
		}
	}
	return low
}

// QuestName resolves a quest id to its client name for display.
func (s *Store) QuestName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.st.Quests {
		if q.ID == id {
			return q.ClientName
		}
	}
	return UnknownQuestName
}

// WeeklyMinutes sums ledger durations for entries started within the
// trailing 7 days.
func (s *Store) WeeklyMinutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	weekAgo := s.now().AddDate(0, 0, -7)
	total := 0
	for _, e := range s.st.TimeEntries {
		if e.StartTime.After(weekAgo) {
			total += e.Duration
		}
	}
	return total
}

// WeeklyEarnings estimates billings for the trailing 7 days at the
// configured hourly rate.
func (s *Store) WeeklyEarnings() float64 {
	minutes := s.WeeklyMinutes()
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(minutes) / 60 * s.st.HourlyRate
}

// SearchResults groups matches from a global free-text search.
type SearchResults struct {
	Quests         []models.Quest
	Materials      []models.Material
	CodeReferences []models.CodeReference
	Locations      []models.JobLocation
}

// Empty reports whether the search matched nothing.
func (r SearchResults) Empty() bool {
	return len(r.Quests) == 0 && len(r.Materials) == 0 &&
		len(r.CodeReferences) == 0 && len(r.Locations) == 0
}

// Search performs a case-insensitive substring match over a fixed field
// set per entity type: quest client/location/notes, material
// name/category, code section/title/content, location name/address.
func (s *Store) Search(query string) SearchResults {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var res SearchResults
	if q == "" {
		return res
	}

	contains := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	for _, quest := range s.st.Quests {
		if contains(quest.ClientName, quest.Location, quest.Notes) {
			res.Quests = append(res.Quests, quest)
		}
	}
	for _, m := range s.st.Materials {
		if contains(m.Name, string(m.Category)) {
			res.Materials = append(res.Materials, m)
		}
	}
	for _, c := range s.st.CodeReferences {
		if contains(c.Section, c.Title, c.Content) {
			res.CodeReferences = append(res.CodeReferences, c)
		}
	}
	for _, l := range s.st.Locations {
		if contains(l.Name, l.Address) {
			res.Locations = append(res.Locations, l)
		}
	}
	return res
}
