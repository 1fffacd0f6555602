// Package export serializes the logical dataset to a portable backup
// document and merges such documents back into a store. Reading and
// writing actual files is the CLI's job; this package only speaks
// documents.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// ErrInvalidDocument is returned when a backup document fails validation.
// No mutation happens before validation passes.
var ErrInvalidDocument = errors.New("invalid backup document")

// BackupDocument is the portable snapshot exchanged with the outside
// world. Routine ids inside a document are informational only: name is
// the sole durable identity across stores.
type BackupDocument struct {
	ExportVersion string                          `json:"exportVersion"`
	ExportDate    time.Time                       `json:"exportDate"`
	AppVersion    string                          `json:"appVersion"`
	InstallID     string                          `json:"installId,omitempty"`
	User          BackupUser                      `json:"user"`
	Routines      []RoutineSnapshot               `json:"routines"`
	Completions   map[string][]CompletionSnapshot `json:"completions"`
	Statistics    Statistics                      `json:"statistics"`
}

type BackupUser struct {
	Name string `json:"name"`
}

// RoutineSnapshot is a routine as written to the wire. is_enabled keeps
// the store's 0/1 encoding so documents stay exchangeable with earlier
// app versions.
type RoutineSnapshot struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	IsEnabled     int    `json:"is_enabled"`
	OrderIndex    int    `json:"order_index"`
}

// CompletionSnapshot carries the owning routine's name and category so it
// can be re-linked on import regardless of numeric ids.
type CompletionSnapshot struct {
	ID        int64  `json:"id"`
	RoutineID int64  `json:"routine_id"`
	Date      string `json:"date"`
	TimeSpent int    `json:"time_spent"`
	Name      string `json:"name"`
	Category  string `json:"category"`
}

// Statistics is the informational summary block; it is never re-imported.
type Statistics struct {
	TotalRoutines      int        `json:"totalRoutines"`
	EnabledRoutines    int        `json:"enabledRoutines"`
	TotalCompletedDays int        `json:"totalCompletedDays"`
	DateRange          *DateRange `json:"dateRange"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate checks that the document carries a recognized version tag and
// a routines list.
func (d *BackupDocument) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	if d.ExportVersion == "" || d.Routines == nil {
		return fmt.Errorf("%w: missing exportVersion or routines", ErrInvalidDocument)
	}
	if d.ExportVersion != constants.ExportVersion {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalidDocument, d.ExportVersion)
	}
	return nil
}

// ParseDocument decodes and validates a backup document.
func ParseDocument(data []byte) (*BackupDocument, error) {
	var doc BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal renders the document as indented UTF-8 JSON, the format written
// to backup files.
func (d *BackupDocument) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// FileName returns the conventional backup file name for an export taken
// at the given instant.
func FileName(now time.Time) string {
	return constants.ExportFilePrefix + now.Format(constants.DateFormat) + constants.ExportFileSuffix
}
