package domain

import (
	"fmt"
	"time"
)

// ReportType identifies one of the canned topic reports.
type ReportType int

const (
	ReportNoProducers     ReportType = 1
	ReportNoConsumers     ReportType = 2
	ReportStale30Days     ReportType = 3
	ReportStale60Days     ReportType = 4
	ReportStale90Days     ReportType = 5
	ReportMultiProducers  ReportType = 6
	ReportNoInterface     ReportType = 7
	ReportUndocumented    ReportType = 8
	ReportRecentlyUpdated ReportType = 9
	ReportBadEnvironment  ReportType = 10
)

func (t ReportType) IsValid() bool {
	return t >= ReportNoProducers && t <= ReportBadEnvironment
}

// Name is the stored report name.
func (t ReportType) Name() string {
	return fmt.Sprintf("WOSA Report %d", int(t))
}

// Description is a short human-readable label for the report.
func (t ReportType) Description() string {
	switch t {
	case ReportNoProducers:
		return "Topics without producers"
	case ReportNoConsumers:
		return "Topics without consumers"
	case ReportStale30Days:
		return "Topics without messages in the last 30 days"
	case ReportStale60Days:
		return "Topics without messages in the last 60 days"
	case ReportStale90Days:
		return "Topics without messages in the last 90 days"
	case ReportMultiProducers:
		return "Topics with multiple producers"
	case ReportNoInterface:
		return "Topics without a registered application component"
	case ReportUndocumented:
		return "Undocumented topics"
	case ReportRecentlyUpdated:
		return "Topics updated in the last 30 days"
	case ReportBadEnvironment:
		return "Topics with an unexpected environment"
	}
	return ""
}

// Report is a persisted run of one report type.
type Report struct {
	ID           int64
	Type         ReportType
	Name         string
	GeneratedAt  time.Time
	GeneratedBy  *string
	Parameters   map[string]any
	ResultsCount int
	FilePath     *string
}

// ReportItem is one persisted result row of a report.
type ReportItem struct {
	ID        int64
	ReportID  int64
	TopicID   *int64
	Data      map[string]any
	CreatedAt time.Time
}

// ReportRow is a flat result row: the topic plus one report-specific field.
type ReportRow struct {
	TopicID   int64
	TopicName string
	Field     string
	Value     any
}

// Payload returns the row as the opaque item payload stored with the report.
func (r ReportRow) Payload() map[string]any {
	return map[string]any{
		"topic_id":   r.TopicID,
		"topic_name": r.TopicName,
		r.Field:      r.Value,
	}
}

// ReportDetail is a report together with its items.
type ReportDetail struct {
	Report
	Items []ReportItem
}
