package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

const (
	// StateKey is the fixed namespaced key the whole-state snapshot is
	// stored under.
	StateKey = "electricians-spellbook/state"

	// SchemaVersion is stamped into every snapshot. Older documents are
	// migrated on load; newer ones fall back to defaults.
	SchemaVersion = 1

	// DefaultHourlyRate is used when no snapshot exists.
	DefaultHourlyRate = 75
)

// Backend is the durable snapshot storage the store persists through.
type Backend interface {
	Save(key string, version int, data []byte) error
	Load(key string) (data []byte, version int, err error)
}

// state is the persisted document. Its JSON shape is the wire format.
type state struct {
	Version        int                    `json:"version"`
	Quests         []models.Quest         `json:"quests"`
	Materials      []models.Material      `json:"materials"`
	TimeEntries    []models.TimeEntry     `json:"time_entries"`
	CodeReferences []models.CodeReference `json:"code_references"`
	Locations      []models.JobLocation   `json:"locations"`
	ActiveTimer    *models.TimeEntry      `json:"active_timer,omitempty"`
	HourlyRate     float64                `json:"hourly_rate"`
}

func defaultState() state {
	return state{
		Version:        SchemaVersion,
		CodeReferences: models.DefaultCodeReferences(),
		HourlyRate:     DefaultHourlyRate,
	}
}

// Store is the single source of truth for all application state. Every
// mutation persists the full state through the backend.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     *slog.Logger
	now     func() time.Time
	st      state
}

// Open loads the persisted snapshot through backend, falling back to the
// seeded default state on absence, parse failure, or an unknown newer
// schema version.
func Open(backend Backend, log *slog.Logger) *Store {
	s := &Store{
		backend: backend,
		log:     log,
		now:     time.Now,
		st:      defaultState(),
	}

	data, version, err := backend.Load(StateKey)
	if err != nil {
		log.Error("failed to load snapshot, starting fresh", "err", err)
		return s
	}
	if data == nil {
		return s
	}
	if version > SchemaVersion {
		log.Warn("snapshot written by a newer version, starting fresh",
			"snapshot_version", version, "supported", SchemaVersion)
		return s
	}

	var loaded state
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Warn("malformed snapshot, starting fresh", "err", err)
		return s
	}
	migrate(&loaded, version)
	s.st = loaded
	return s
}

// migrate upgrades a document from an older schema in place. Version 0
// predates the version field and is shaped identically to version 1.
func migrate(st *state, version int) {
	if version < 1 {
		st.Version = 1
	}
	st.Version = SchemaVersion
}

// persist writes the whole state snapshot. Called with the lock held
// after every mutation. Failures are logged, never surfaced.
func (s *Store) persist() {
	data, err := json.Marshal(s.st)
	if err != nil {
		s.log.Error("failed to serialize state", "err", err)
		return
	}
	if err := s.backend.Save(StateKey, SchemaVersion, data); err != nil {
		s.log.Error("failed to persist state", "err", err)
	}
}

// --- Quests ---

// QuestPatch holds optional replacement fields for UpdateQuest. Nil
// fields are left unchanged.
type QuestPatch struct {
	ClientName      *string
	Location        *string
	Address         *string
	StartDate       *time.Time
	CompletionDate  *time.Time
	Status          *models.QuestStatus
	MaterialsNeeded []string
	Notes           *string
	Photos          []string
	ContactInfo     *models.ContactInfo
	EstimatedHours  *float64
}

// AddQuest appends a quest. The caller supplies a generated id.
func (s *Store) AddQuest(q models.Quest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Quests = append(s.st.Quests, q)
	s.persist()
}

// UpdateQuest merges patch into the matching quest. Transitioning to
// Completed stamps the completion date if it was never set. Unknown ids
// are a no-op.
func (s *Store) UpdateQuest(id string, patch QuestPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.st.Quests {
		if q.ID != id {
			continue
		}
		if patch.ClientName != nil {
			q.ClientName = *patch.ClientName
		}
		if patch.Location != nil {
			q.Location = *patch.Location
		}
		if patch.Address != nil {
			q.Address = *patch.Address
		}
		if patch.StartDate != nil {
			q.StartDate = *patch.StartDate
		}
		if patch.CompletionDate != nil {
			q.CompletionDate = patch.CompletionDate
		}
		if patch.Status != nil {
			q.Status = *patch.Status
			if q.Status == models.QuestCompleted && q.CompletionDate == nil {
				now := s.now()
				q.CompletionDate = &now
			}
		}
		if patch.MaterialsNeeded != nil {
			q.MaterialsNeeded = patch.MaterialsNeeded
		}
		if patch.Notes != nil {
			q.Notes = *patch.Notes
		}
		if patch.Photos != nil {
			q.Photos = patch.Photos
		}
		if patch.ContactInfo != nil {
			q.ContactInfo = patch.ContactInfo
		}
		if patch.EstimatedHours != nil {
			q.EstimatedHours = *patch.EstimatedHours
		}
		s.st.Quests[i] = q
		s.persist()
		return
	}
}

// DeleteQuest removes the quest and cascades: a timer running against it
// is finalized into the ledger and cleared, and the quest id is pruned
// from every location's history.
func (s *Store) DeleteQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.st.Quests[:0]
	found := false
	for _, q := range s.st.Quests {
		if q.ID == id {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return
	}
	s.st.Quests = kept

	if s.st.ActiveTimer != nil && s.st.ActiveTimer.QuestID == id {
		s.finalizeTimer()
	}
	for i, loc := range s.st.Locations {
		history := loc.QuestHistory[:0]
		for _, qid := range loc.QuestHistory {
			if qid != id {
				history = append(history, qid)
			}
		}
		loc.QuestHistory = history
		s.st.Locations[i] = loc
	}
	s.persist()
}

// QuestByID returns the quest and whether it exists.
func (s *Store) QuestByID(id string) (models.Quest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.st.Quests {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quest{}, false
}

// Quests returns all quests in insertion order.
func (s *Store) Quests() []models.Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Quest, len(s.st.Quests))
	copy(out, s.st.Quests)
	return out
}

// --- Materials ---

// MaterialPatch holds optional replacement fields for UpdateMaterial.
type MaterialPatch struct {
	Name              *string
	Category          *models.MaterialCategory
	Quantity          *float64
	Unit              *string
	LowStockThreshold *float64
	Notes             *string
}

// AddMaterial appends a material.
func (s *Store) AddMaterial(m models.Material) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Materials = append(s.st.Materials, m)
	s.persist()
}

// UpdateMaterial merges patch into the matching material.
func (s *Store) UpdateMaterial(id string, patch MaterialPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.st.Materials {
		if m.ID != id {
			continue
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Category != nil {
			m.Category = *patch.Category
		}
		if patch.Quantity != nil {
			m.Quantity = *patch.Quantity
		}
		if patch.Unit != nil {
			m.Unit = *patch.Unit
		}
		if patch.LowStockThreshold != nil {
			m.LowStockThreshold = *patch.LowStockThreshold
		}
		if patch.Notes != nil {
			m.Notes = *patch.Notes
		}
		s.st.Materials[i] = m
		s.persist()
		return
	}
}

// DeleteMaterial removes the matching material.
func (s *Store) DeleteMaterial(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.st.Materials[:0]
	found := false
	for _, m := range s.st.Materials {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return
	}
	s.st.Materials = kept
	s.persist()
}

// AdjustQuantity applies a signed delta to a material's quantity,
// clamping at a zero floor.
func (s *Store) AdjustQuantity(id string, delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.st.Materials {
		if m.ID != id {
			continue
		}
		m.Quantity += delta
		if m.Quantity < 0 {
			m.Quantity = 0
		}
		s.st.Materials[i] = m
		s.persist()
		return
	}
}

// Materials returns all materials in insertion order.
func (s *Store) Materials() []models.Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Material, len(s.st.Materials))
	copy(out, s.st.Materials)
	return out
}

// --- Time tracking ---

// StartTimer begins tracking time against a quest. A timer already
// running is finalized into the ledger first, so no worked time is
// silently discarded.
func (s *Store) StartTimer(questID string) models.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.ActiveTimer != nil {
		s.finalizeTimer()
	}
	entry := models.TimeEntry{
		ID:        models.NewID(),
		QuestID:   questID,
		StartTime: s.now(),
	}
	s.st.ActiveTimer = &entry
	s.persist()
	return entry
}

// StopTimer finalizes the active timer into the ledger. Reports false if
// no timer was running.
func (s *Store) StopTimer() (models.TimeEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.ActiveTimer == nil {
		return models.TimeEntry{}, false
	}
	entry := s.finalizeTimer()
	s.persist()
	return entry, true
}

// finalizeTimer stamps the end time and whole-minute duration on the
// active timer, appends it to the ledger, and clears the slot. Caller
// holds the lock and persists.
func (s *Store) finalizeTimer() models.TimeEntry {
	entry := *s.st.ActiveTimer
	end := s.now()
	entry.EndTime = &end
	entry.Duration = int(end.Sub(entry.StartTime).Minutes())
	s.st.TimeEntries = append(s.st.TimeEntries, entry)
	s.st.ActiveTimer = nil
	return entry
}

// ActiveTimer returns a copy of the running timer, or nil.
func (s *Store) ActiveTimer() *models.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.ActiveTimer == nil {
		return nil
	}
	entry := *s.st.ActiveTimer
	return &entry
}

// AddTimeEntry appends a manually logged entry to the ledger.
func (s *Store) AddTimeEntry(e models.TimeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.TimeEntries = append(s.st.TimeEntries, e)
	s.persist()
}

// DeleteTimeEntry removes the matching ledger entry.
func (s *Store) DeleteTimeEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.st.TimeEntries[:0]
	found := false
	for _, e := range s.st.TimeEntries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return
	}
	s.st.TimeEntries = kept
	s.persist()
}

// TimeEntries returns the ledger in insertion order.
func (s *Store) TimeEntries() []models.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TimeEntry, len(s.st.TimeEntries))
	copy(out, s.st.TimeEntries)
	return out
}

// --- Code references ---

// AddCodeReference appends a code reference.
func (s *Store) AddCodeReference(c models.CodeReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.CodeReferences = append(s.st.CodeReferences, c)
	s.persist()
}

// ToggleBookmark flips the bookmark flag on the matching reference.
func (s *Store) ToggleBookmark(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.st.CodeReferences {
		if c.ID != id {
			continue
		}
		c.Bookmarked = !c.Bookmarked
		s.st.CodeReferences[i] = c
		s.persist()
		return
	}
}

// CodeReferences returns all references in insertion order.
func (s *Store) CodeReferences() []models.CodeReference {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CodeReference, len(s.st.CodeReferences))
	copy(out, s.st.CodeReferences)
	return out
}

// --- Job locations ---

// LocationPatch holds optional replacement fields for UpdateLocation.
type LocationPatch struct {
	Name          *string
	Address       *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Notes         *string
	QuestHistory  []string
	Coordinates   *models.Coordinates
}

// AddLocation appends a job location.
func (s *Store) AddLocation(l models.JobLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Locations = append(s.st.Locations, l)
	s.persist()
}

// UpdateLocation merges patch into the matching location.
func (s *Store) UpdateLocation(id string, patch LocationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.st.Locations {
		if l.ID != id {
			continue
		}
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Address != nil {
			l.Address = *patch.Address
		}
		if patch.ContactPerson != nil {
			l.ContactPerson = *patch.ContactPerson
		}
		if patch.Phone != nil {
			l.Phone = *patch.Phone
		}
		if patch.Email != nil {
			l.Email = *patch.Email
		}
		if patch.Notes != nil {
			l.Notes = *patch.Notes
		}
		if patch.QuestHistory != nil {
			l.QuestHistory = patch.QuestHistory
		}
		if patch.Coordinates != nil {
			l.Coordinates = patch.Coordinates
		}
		s.st.Locations[i] = l
		s.persist()
		return
	}
}

// DeleteLocation removes the matching location.
func (s *Store) DeleteLocation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.st.Locations[:0]
	found := false
	for _, l := range s.st.Locations {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return
	}
	s.st.Locations = kept
	s.persist()
}

// Locations returns all job locations in insertion order.
func (s *Store) Locations() []models.JobLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JobLocation, len(s.st.Locations))
	copy(out, s.st.Locations)
	return out
}

// --- Settings ---

// HourlyRate returns the configured billing rate.
func (s *Store) HourlyRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.HourlyRate
}

// SetHourlyRate replaces the billing rate.
func (s *Store) SetHourlyRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.HourlyRate = rate
	s.persist()
}
