package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

type wireDocument struct {
	CreatedAt *time.Time  `json:"created_at"`
	Topics    []wireTopic `json:"topics"`
}

type wireTopic struct {
	Name             string     `json:"name"`
	BridgedTopic     *string    `json:"bridged_topic"`
	Producers        []string   `json:"producers"`
	Consumers        []string   `json:"consumers"`
	MissingProducers []string   `json:"missing_producers"`
	MissingConsumers []string   `json:"missing_consumers"`
	Stats            *wireStats `json:"stats"`
}

type wireStats struct {
	AverageMessageSize    float64    `json:"average_message_size"`
	CleanupPolicy         *string    `json:"cleanup_policy"`
	EstimatedSize         float64    `json:"estimated_size"`
	LastMessageDate       *time.Time `json:"last_message_date"`
	LastStatRetrievalDate *time.Time `json:"last_stat_retrieval_date"`
	MaximumMessageSize    float64    `json:"maximum_message_size"`
	MinimumMessageSize    float64    `json:"minimum_message_size"`
	MessagesLast30d       int64      `json:"messages_last_30d"`
	PartitionNumber       int        `json:"partition_number"`
	ReplicationFactor     int        `json:"replication_factor"`
	Retention             *string    `json:"retention"`
	TotalMessages         int64      `json:"total_messages"`
}

// UnmarshalJSON fills fields absent from the payload with the document defaults.
func (s *wireStats) UnmarshalJSON(data []byte) error {
	type plain wireStats
	d := domain.DefaultTopicStats()
	p := plain{PartitionNumber: d.PartitionNumber, ReplicationFactor: d.ReplicationFactor}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = wireStats(p)
	return nil
}

// ParseDocument decodes and validates a WOSA document. Every failure is a
// *domain.ValidationError.
func ParseDocument(raw []byte) (*domain.Document, error) {
	if !utf8.Valid(raw) {
		return nil, domain.NewValidationError("file", "must be valid UTF-8")
	}

	var wd wireDocument
	if err := json.Unmarshal(raw, &wd); err != nil {
		return nil, domain.NewValidationError("file", "invalid JSON format: "+describeJSONError(err))
	}

	var errs []domain.FieldError
	if wd.CreatedAt == nil {
		errs = append(errs, domain.FieldError{Field: "created_at", Message: "required"})
	}
	if len(wd.Topics) == 0 {
		errs = append(errs, domain.FieldError{Field: "topics", Message: "topics list cannot be empty"})
	}
	for i, wt := range wd.Topics {
		if strings.TrimSpace(wt.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("topics[%d].name", i), Message: "required"})
		}
		if wt.Stats == nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("topics[%d].stats", i), Message: "required"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	doc := &domain.Document{
		CreatedAt: normalizeTime(*wd.CreatedAt),
		Topics:    make([]domain.TopicRecord, 0, len(wd.Topics)),
	}
	for _, wt := range wd.Topics {
		doc.Topics = append(doc.Topics, wt.toRecord())
	}
	return doc, nil
}

func (wt wireTopic) toRecord() domain.TopicRecord {
	s := wt.Stats
	return domain.TopicRecord{
		Name:         wt.Name,
		BridgedTopic: wt.BridgedTopic,
		Stats: domain.TopicStats{
			AverageMessageSize:    s.AverageMessageSize,
			CleanupPolicy:         s.CleanupPolicy,
			EstimatedSize:         s.EstimatedSize,
			LastMessageDate:       normalizeTimePtr(s.LastMessageDate),
			LastStatRetrievalDate: normalizeTimePtr(s.LastStatRetrievalDate),
			MaximumMessageSize:    s.MaximumMessageSize,
			MinimumMessageSize:    s.MinimumMessageSize,
			MessagesLast30d:       s.MessagesLast30d,
			PartitionNumber:       s.PartitionNumber,
			ReplicationFactor:     s.ReplicationFactor,
			Retention:             s.Retention,
			TotalMessages:         s.TotalMessages,
		},
		Members: domain.TopicMembers{
			Producers:        orEmpty(wt.Producers),
			Consumers:        orEmpty(wt.Consumers),
			MissingProducers: orEmpty(wt.MissingProducers),
			MissingConsumers: orEmpty(wt.MissingConsumers),
		},
	}
}

// normalizeTime brings a timestamp to the precision PostgreSQL stores.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func normalizeTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := normalizeTime(*t)
	return &n
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("field %s: expected %s", typeErr.Field, typeErr.Type)
	}
	return err.Error()
}
