package domain

import "time"

// TopicStats holds the usage statistics reported for a topic.
type TopicStats struct {
	AverageMessageSize    float64
	CleanupPolicy         *string
	EstimatedSize         float64
	LastMessageDate       *time.Time
	LastStatRetrievalDate *time.Time
	MaximumMessageSize    float64
	MinimumMessageSize    float64
	MessagesLast30d       int64
	PartitionNumber       int
	ReplicationFactor     int
	Retention             *string
	TotalMessages         int64
}

// Topic is a messaging channel tracked with statistics and membership.
type Topic struct {
	ID           int64
	Name         string
	FileID       int64
	InterfaceID  *int64
	Environment  *Environment
	BridgedTopic *string
	Stats        TopicStats
	CreatedAt    time.Time
	UpdatedAt    time.Time
	FirstSeen    time.Time
	LastSeen     time.Time
	IsDeprecated bool
	DeprecatedAt *time.Time
}

// TopicMembers holds the producer/consumer name sets of a topic.
// Each name is stored as its own child row; duplicates are kept.
type TopicMembers struct {
	Producers        []string
	Consumers        []string
	MissingProducers []string
	MissingConsumers []string
}

// NewTopicMembers returns TopicMembers with non-nil empty slices.
func NewTopicMembers() TopicMembers {
	return TopicMembers{
		Producers:        []string{},
		Consumers:        []string{},
		MissingProducers: []string{},
		MissingConsumers: []string{},
	}
}

// TopicDetail is a topic together with its member name sets.
type TopicDetail struct {
	Topic
	Members TopicMembers
}

// TopicHistory is an immutable log row describing one create or update.
type TopicHistory struct {
	ID        int64
	TopicID   int64
	FileID    int64
	Action    HistoryAction
	Changes   map[string]any
	CreatedAt time.Time
}

// ApplyUpdate compares bridgedTopic and every statistics field against the
// topic's current values, overwrites the ones that differ and returns them
// keyed by column name. An empty map means nothing changed.
func (t *Topic) ApplyUpdate(bridgedTopic *string, next TopicStats) map[string]any {
	changes := make(map[string]any)
	cur := &t.Stats

	if !equalStringPtr(t.BridgedTopic, bridgedTopic) {
		t.BridgedTopic = bridgedTopic
		changes["bridged_topic"] = bridgedTopic
	}
	if cur.AverageMessageSize != next.AverageMessageSize {
		cur.AverageMessageSize = next.AverageMessageSize
		changes["average_message_size"] = next.AverageMessageSize
	}
	if !equalStringPtr(cur.CleanupPolicy, next.CleanupPolicy) {
		cur.CleanupPolicy = next.CleanupPolicy
		changes["cleanup_policy"] = next.CleanupPolicy
	}
	if cur.EstimatedSize != next.EstimatedSize {
		cur.EstimatedSize = next.EstimatedSize
		changes["estimated_size"] = next.EstimatedSize
	}
	if !equalTimePtr(cur.LastMessageDate, next.LastMessageDate) {
		cur.LastMessageDate = next.LastMessageDate
		changes["last_message_date"] = next.LastMessageDate
	}
	if !equalTimePtr(cur.LastStatRetrievalDate, next.LastStatRetrievalDate) {
		cur.LastStatRetrievalDate = next.LastStatRetrievalDate
		changes["last_stat_retrieval_date"] = next.LastStatRetrievalDate
	}
	if cur.MaximumMessageSize != next.MaximumMessageSize {
		cur.MaximumMessageSize = next.MaximumMessageSize
		changes["maximum_message_size"] = next.MaximumMessageSize
	}
	if cur.MinimumMessageSize != next.MinimumMessageSize {
		cur.MinimumMessageSize = next.MinimumMessageSize
		changes["minimum_message_size"] = next.MinimumMessageSize
	}
	if cur.MessagesLast30d != next.MessagesLast30d {
		cur.MessagesLast30d = next.MessagesLast30d
		changes["messages_last_30d"] = next.MessagesLast30d
	}
	if cur.PartitionNumber != next.PartitionNumber {
		cur.PartitionNumber = next.PartitionNumber
		changes["partition_number"] = next.PartitionNumber
	}
	if cur.ReplicationFactor != next.ReplicationFactor {
		cur.ReplicationFactor = next.ReplicationFactor
		changes["replication_factor"] = next.ReplicationFactor
	}
	if !equalStringPtr(cur.Retention, next.Retention) {
		cur.Retention = next.Retention
		changes["retention"] = next.Retention
	}
	if cur.TotalMessages != next.TotalMessages {
		cur.TotalMessages = next.TotalMessages
		changes["total_messages"] = next.TotalMessages
	}

	return changes
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// equalTimePtr compares at microsecond precision, the resolution PostgreSQL
// stores timestamps with.
func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Truncate(time.Microsecond).Equal(b.Truncate(time.Microsecond))
}
