package rest

import (
	"time"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/idalloc"
)

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

type fileResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	OriginalName   string     `json:"original_name"`
	UploadDate     time.Time  `json:"upload_date"`
	ProcessingDate *time.Time `json:"processing_date"`
	UserID         *string    `json:"user_id"`
	FileSize       int64      `json:"file_size"`
	Status         string     `json:"status"`
}

func toFileResponse(f *domain.UploadedFile) fileResponse {
	return fileResponse{
		ID:             f.ID,
		Name:           f.Name,
		OriginalName:   f.OriginalName,
		UploadDate:     f.UploadDate,
		ProcessingDate: f.ProcessingDate,
		UserID:         f.UserID,
		FileSize:       f.FileSize,
		Status:         f.Status.String(),
	}
}

type processingResponse struct {
	FileID          int64    `json:"file_id"`
	Status          string   `json:"status"`
	TopicsProcessed int      `json:"topics_processed"`
	TopicsCreated   int      `json:"topics_created"`
	TopicsUpdated   int      `json:"topics_updated"`
	TopicsUnchanged int      `json:"topics_unchanged"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
}

func toProcessingResponse(r *domain.ProcessingResult) processingResponse {
	return processingResponse{
		FileID:          r.FileID,
		Status:          r.Status.String(),
		TopicsProcessed: r.TopicsProcessed,
		TopicsCreated:   r.TopicsCreated,
		TopicsUpdated:   r.TopicsUpdated,
		TopicsUnchanged: r.TopicsUnchanged,
		Errors:          nonNil(r.Errors),
		Warnings:        nonNil(r.Warnings),
	}
}

// uploadResponse is returned by upload when process=true.
type uploadResponse struct {
	File       fileResponse        `json:"file"`
	Processing *processingResponse `json:"processing,omitempty"`
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

type componentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toComponentResponse(c domain.ApplicationComponent) componentResponse {
	return componentResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type interfaceTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toInterfaceTypeResponse(t domain.InterfaceType) interfaceTypeResponse {
	return interfaceTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description, CreatedAt: t.CreatedAt}
}

type interfaceResponse struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	Description            *string   `json:"description"`
	ApplicationComponentID int64     `json:"application_component_id"`
	InterfaceTypeID        int64     `json:"interface_type_id"`
	IsActive               bool      `json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func toInterfaceResponse(i domain.Interface) interfaceResponse {
	return interfaceResponse{
		ID:                     i.ID,
		Name:                   i.Name,
		Description:            i.Description,
		ApplicationComponentID: i.ApplicationComponentID,
		InterfaceTypeID:        i.InterfaceTypeID,
		IsActive:               i.IsActive,
		CreatedAt:              i.CreatedAt,
		UpdatedAt:              i.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Topics
// ---------------------------------------------------------------------------

type topicResponse struct {
	ID                    int64      `json:"id"`
	Name                  string     `json:"name"`
	FileID                int64      `json:"file_id"`
	InterfaceID           *int64     `json:"interface_id"`
	Environment           *string    `json:"environment"`
	BridgedTopic          *string    `json:"bridged_topic"`
	AverageMessageSize    float64    `json:"average_message_size"`
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
	CleanupPolicy         *string    `json:"cleanup_policy"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	FirstSeen             time.Time  `json:"first_seen"`
	LastSeen              time.Time  `json:"last_seen"`
	IsDeprecated          bool       `json:"is_deprecated"`
	DeprecatedAt          *time.Time `json:"deprecated_at"`

	*membersResponse
}

type membersResponse struct {
	Producers        []string `json:"producers"`
	Consumers        []string `json:"consumers"`
	MissingProducers []string `json:"missing_producers"`
	MissingConsumers []string `json:"missing_consumers"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	var env *string
	if t.Environment != nil {
		s := t.Environment.String()
		env = &s
	}
	return topicResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		FileID:                t.FileID,
		InterfaceID:           t.InterfaceID,
		Environment:           env,
		BridgedTopic:          t.BridgedTopic,
		AverageMessageSize:    t.Stats.AverageMessageSize,
		EstimatedSize:         t.Stats.EstimatedSize,
		LastMessageDate:       t.Stats.LastMessageDate,
		LastStatRetrievalDate: t.Stats.LastStatRetrievalDate,
		MaximumMessageSize:    t.Stats.MaximumMessageSize,
		MinimumMessageSize:    t.Stats.MinimumMessageSize,
		MessagesLast30d:       t.Stats.MessagesLast30d,
		PartitionNumber:       t.Stats.PartitionNumber,
		ReplicationFactor:     t.Stats.ReplicationFactor,
		Retention:             t.Stats.Retention,
		TotalMessages:         t.Stats.TotalMessages,
		CleanupPolicy:         t.Stats.CleanupPolicy,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
		FirstSeen:             t.FirstSeen,
		LastSeen:              t.LastSeen,
		IsDeprecated:          t.IsDeprecated,
		DeprecatedAt:          t.DeprecatedAt,
	}
}

func toMembersResponse(m domain.TopicMembers) *membersResponse {
	return &membersResponse{
		Producers:        nonNil(m.Producers),
		Consumers:        nonNil(m.Consumers),
		MissingProducers: nonNil(m.MissingProducers),
		MissingConsumers: nonNil(m.MissingConsumers),
	}
}

type historyResponse struct {
	ID        int64          `json:"id"`
	TopicID   int64          `json:"topic_id"`
	FileID    int64          `json:"file_id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}

func toHistoryResponse(h domain.TopicHistory) historyResponse {
	changes := h.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	return historyResponse{
		ID:        h.ID,
		TopicID:   h.TopicID,
		FileID:    h.FileID,
		Action:    h.Action.String(),
		Changes:   changes,
		CreatedAt: h.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

type reportResponse struct {
	ID           int64          `json:"id"`
	ReportType   int            `json:"report_type"`
	ReportName   string         `json:"report_name"`
	Description  string         `json:"description"`
	GeneratedAt  time.Time      `json:"generated_at"`
	GeneratedBy  *string        `json:"generated_by"`
	Parameters   map[string]any `json:"parameters"`
	ResultsCount int            `json:"results_count"`
	FilePath     *string        `json:"file_path"`
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:           r.ID,
		ReportType:   int(r.Type),
		ReportName:   r.Name,
		Description:  r.Type.Description(),
		GeneratedAt:  r.GeneratedAt,
		GeneratedBy:  r.GeneratedBy,
		Parameters:   r.Parameters,
		ResultsCount: r.ResultsCount,
		FilePath:     r.FilePath,
	}
}

type reportItemResponse struct {
	ID        int64          `json:"id"`
	ReportID  int64          `json:"report_id"`
	TopicID   *int64         `json:"topic_id"`
	ItemData  map[string]any `json:"item_data"`
	CreatedAt time.Time      `json:"created_at"`
}

func toReportItemResponse(i domain.ReportItem) reportItemResponse {
	return reportItemResponse{
		ID:        i.ID,
		ReportID:  i.ReportID,
		TopicID:   i.TopicID,
		ItemData:  i.Data,
		CreatedAt: i.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// ID allocation
// ---------------------------------------------------------------------------

type idResponse struct {
	Entity      string `json:"entity"`
	RequestedID int64  `json:"requested_id"`
	AvailableID int64  `json:"available_id"`
	IsAvailable bool   `json:"is_available"`
}

func toIDResponse(r *idalloc.Result) idResponse {
	return idResponse{
		Entity:      r.Entity,
		RequestedID: r.RequestedID,
		AvailableID: r.AvailableID,
		IsAvailable: r.IsAvailable,
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type userListResponse struct {
	Users []userResponse `json:"users"`
	Total int            `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
