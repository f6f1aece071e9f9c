package domain

import "time"

// Document is a parsed WOSA upload: a batch of topic records.
type Document struct {
	CreatedAt time.Time
	Topics    []TopicRecord
}

// TopicRecord is one topic entry of a Document.
type TopicRecord struct {
	Name         string
	BridgedTopic *string
	Stats        TopicStats
	Members      TopicMembers
}

// DefaultTopicStats returns the statistics used for fields absent from a
// document: zero numerics with one partition and one replica.
func DefaultTopicStats() TopicStats {
	return TopicStats{
		PartitionNumber:   1,
		ReplicationFactor: 1,
	}
}
