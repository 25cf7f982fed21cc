package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestStatus is the lifecycle state of a quest.
type QuestStatus string

const (
	QuestActive    QuestStatus = "Active"
	QuestBrewing   QuestStatus = "Brewing"
	QuestCompleted QuestStatus = "Completed"
)

// ContactInfo holds optional client contact details.
type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Quest represents a unit of electrical work for a client.
type Quest struct {
	ID              string       `json:"id"`
	ClientName      string       `json:"client_name"`
	Location        string       `json:"location"`
	Address         string       `json:"address"`
	StartDate       time.Time    `json:"start_date"`
	CompletionDate  *time.Time   `json:"completion_date,omitempty"`
	Status          QuestStatus  `json:"status"`
	MaterialsNeeded []string     `json:"materials_needed"`
	Notes           string       `json:"notes"`
	Photos          []string     `json:"photos"`
	ContactInfo     *ContactInfo `json:"contact_info,omitempty"`
	EstimatedHours  float64      `json:"estimated_hours,omitempty"`
	HourlyRate      float64      `json:"hourly_rate,omitempty"`
}

// MaterialCategory is a closed enumeration of inventory categories.
type MaterialCategory string

const (
	CategoryWireCable   MaterialCategory = "Wire/Cable"
	CategoryBreakers    MaterialCategory = "Breakers"
	CategoryBoxes       MaterialCategory = "Boxes"
	CategoryConduit     MaterialCategory = "Conduit"
	CategoryFixtures    MaterialCategory = "Fixtures"
	CategoryTools       MaterialCategory = "Tools"
	CategoryFasteners   MaterialCategory = "Fasteners"
	CategoryLowVoltage  MaterialCategory = "Low Voltage"
	CategoryDataNetwork MaterialCategory = "Data/Network"
	CategoryHVAC        MaterialCategory = "HVAC Controls"
	CategoryPLC         MaterialCategory = "Automation/PLC"
	CategorySecurity    MaterialCategory = "Security/Access"
	CategoryOther       MaterialCategory = "Other"
)

// MaterialCategories lists every valid category, in display order.
var MaterialCategories = []MaterialCategory{
	CategoryWireCable, CategoryBreakers, CategoryBoxes, CategoryConduit,
	CategoryFixtures, CategoryTools, CategoryFasteners, CategoryLowVoltage,
	CategoryDataNetwork, CategoryHVAC, CategoryPLC, CategorySecurity,
	CategoryOther,
}

// Material is a stocked inventory item.
type Material struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Category          MaterialCategory `json:"category"`
	Quantity          float64          `json:"quantity"`
	Unit              string           `json:"unit"`
	LowStockThreshold float64          `json:"low_stock_threshold"`
	Notes             string           `json:"notes,omitempty"`
}

// LowStock reports whether the material is at or below its threshold.
func (m Material) LowStock() bool {
	return m.Quantity <= m.LowStockThreshold
}

// TimeEntry is a billable span of work against a quest. An entry with a
// nil EndTime is a running timer and lives outside the ledger.
type TimeEntry struct {
	ID        string     `json:"id"`
	QuestID   string     `json:"quest_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int        `json:"duration_minutes"`
	Notes     string     `json:"notes,omitempty"`
}

// CodeCategory is a closed enumeration of code-reference categories.
type CodeCategory string

const (
	CodeWireAmpacity CodeCategory = "Wire Ampacity"
	CodeGFCIAFCI     CodeCategory = "GFCI/AFCI"
	CodeGrounding    CodeCategory = "Grounding"
	CodeBoxFill      CodeCategory = "Box Fill"
	CodeConduitFill  CodeCategory = "Conduit Fill"
	CodeGeneral      CodeCategory = "General"
)

// CodeReference is a bookmarkable NEC section summary.
type CodeReference struct {
	ID         string       `json:"id"`
	Section    string       `json:"section"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Category   CodeCategory `json:"category"`
	Bookmarked bool         `json:"bookmarked"`
}

// Coordinates is an optional lat/lng pair for a job site.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// JobLocation is a job site with contact details and quest history.
type JobLocation struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Address       string       `json:"address"`
	ContactPerson string       `json:"contact_person"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	QuestHistory  []string     `json:"quest_history"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

// NewID generates an opaque unique identifier for any entity.
func NewID() string {
	return uuid.NewString()
}
