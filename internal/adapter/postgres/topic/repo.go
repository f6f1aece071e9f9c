// Package topic implements the topic repository: topic rows, their member
// name sets and the change history.
package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

var columns = []string{
	"id", "name", "file_id", "interface_id", "environment", "bridged_topic",
	"average_message_size", "cleanup_policy", "estimated_size", "last_message_date",
	"last_stat_retrieval_date", "maximum_message_size", "minimum_message_size",
	"messages_last_30d", "partition_number", "replication_factor", "retention",
	"total_messages", "created_at", "updated_at", "first_seen", "last_seen",
	"is_deprecated", "deprecated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// memberTable binds a member set to its child table and name column.
type memberTable struct {
	table  string
	column string
}

var (
	producersTable        = memberTable{"topic_producers", "producer_name"}
	consumersTable        = memberTable{"topic_consumers", "consumer_name"}
	missingProducersTable = memberTable{"missing_producers", "producer_name"}
	missingConsumersTable = memberTable{"missing_consumers", "consumer_name"}
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From("topics").Where(squirrel.Eq{"id": id})
	t, err := scanTopic(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return t, nil
}

// GetByName returns the lowest-id topic with the given name.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From("topics").
		Where(squirrel.Eq{"name": name}).
		OrderBy("id").
		Limit(1)

	t, err := scanTopic(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "topic", name)
	}
	return t, nil
}

// List returns topics ordered by id, optionally filtered by environment.
func (r *Repo) List(ctx context.Context, filter domain.TopicFilter) ([]domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select(columns...).From("topics").
		OrderBy("id").
		Offset(uint64(filter.Page.Offset)).
		Limit(uint64(filter.Page.Limit))
	if filter.Environment != nil {
		b = b.Where(squirrel.Eq{"environment": string(*filter.Environment)})
	}

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("list topics: %w", err)
		}
		topics = append(topics, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// GetMembers returns the four member name sets of one topic, in insertion order.
func (r *Repo) GetMembers(ctx context.Context, topicID int64) (domain.TopicMembers, error) {
	byTopic, err := r.GetMembersByTopicIDs(ctx, []int64{topicID})
	if err != nil {
		return domain.TopicMembers{}, err
	}
	return byTopic[topicID], nil
}

// GetMembersByTopicIDs loads member sets for many topics with one query per
// child table. Every requested id is present in the result.
func (r *Repo) GetMembersByTopicIDs(ctx context.Context, topicIDs []int64) (map[int64]domain.TopicMembers, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	result := make(map[int64]domain.TopicMembers, len(topicIDs))
	for _, id := range topicIDs {
		result[id] = domain.NewTopicMembers()
	}
	if len(topicIDs) == 0 {
		return result, nil
	}

	load := func(mt memberTable, assign func(m *domain.TopicMembers, name string)) error {
		b := postgres.Builder().Select("topic_id", mt.column).From(mt.table).
			Where(squirrel.Eq{"topic_id": topicIDs}).
			OrderBy("topic_id", "id")

		rows, err := postgres.QueryBuilt(ctx, q, b)
		if err != nil {
			return fmt.Errorf("load %s: %w", mt.table, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				topicID int64
				name    string
			)
			if err := rows.Scan(&topicID, &name); err != nil {
				return fmt.Errorf("load %s: %w", mt.table, err)
			}
			m := result[topicID]
			assign(&m, name)
			result[topicID] = m
		}
		return rows.Err()
	}

	if err := load(producersTable, func(m *domain.TopicMembers, n string) { m.Producers = append(m.Producers, n) }); err != nil {
		return nil, err
	}
	if err := load(consumersTable, func(m *domain.TopicMembers, n string) { m.Consumers = append(m.Consumers, n) }); err != nil {
		return nil, err
	}
	if err := load(missingProducersTable, func(m *domain.TopicMembers, n string) {
		m.MissingProducers = append(m.MissingProducers, n)
	}); err != nil {
		return nil, err
	}
	if err := load(missingConsumersTable, func(m *domain.TopicMembers, n string) {
		m.MissingConsumers = append(m.MissingConsumers, n)
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListHistory returns the history of a topic, newest first.
func (r *Repo) ListHistory(ctx context.Context, topicID int64, limit int) ([]domain.TopicHistory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select("id", "topic_id", "file_id", "action", "changes", "created_at").
		From("topic_history").
		Where(squirrel.Eq{"topic_id": topicID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list topic history: %w", err)
	}
	defer rows.Close()

	history := []domain.TopicHistory{}
	for rows.Next() {
		var (
			h       domain.TopicHistory
			action  string
			changes []byte
		)
		if err := rows.Scan(&h.ID, &h.TopicID, &h.FileID, &action, &changes, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("list topic history: %w", err)
		}
		h.Action = domain.HistoryAction(action)
		if err := json.Unmarshal(changes, &h.Changes); err != nil {
			return nil, fmt.Errorf("list topic history: decode changes: %w", err)
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topic history: %w", err)
	}
	return history, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a topic. CreatedAt, UpdatedAt, FirstSeen and LastSeen are
// all set to now.
func (r *Repo) Create(ctx context.Context, t *domain.Topic, now time.Time) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	s := t.Stats

	b := postgres.Builder().Insert("topics").
		Columns(
			"name", "file_id", "interface_id", "environment", "bridged_topic",
			"average_message_size", "cleanup_policy", "estimated_size", "last_message_date",
			"last_stat_retrieval_date", "maximum_message_size", "minimum_message_size",
			"messages_last_30d", "partition_number", "replication_factor", "retention",
			"total_messages", "created_at", "updated_at", "first_seen", "last_seen",
		).
		Values(
			t.Name, t.FileID, t.InterfaceID, envValue(t.Environment), t.BridgedTopic,
			s.AverageMessageSize, s.CleanupPolicy, s.EstimatedSize, s.LastMessageDate,
			s.LastStatRetrievalDate, s.MaximumMessageSize, s.MinimumMessageSize,
			s.MessagesLast30d, s.PartitionNumber, s.ReplicationFactor, s.Retention,
			s.TotalMessages, now, now, now, now,
		).
		Suffix(returning)

	created, err := scanTopic(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.Name)
	}
	return created, nil
}

// Update writes the statistics, bridged topic and owning file of t.
// last_seen is always set to now; updated_at only when touched is true.
func (r *Repo) Update(ctx context.Context, t *domain.Topic, now time.Time, touched bool) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	s := t.Stats

	b := postgres.Builder().Update("topics").
		Set("file_id", t.FileID).
		Set("bridged_topic", t.BridgedTopic).
		Set("average_message_size", s.AverageMessageSize).
		Set("cleanup_policy", s.CleanupPolicy).
		Set("estimated_size", s.EstimatedSize).
		Set("last_message_date", s.LastMessageDate).
		Set("last_stat_retrieval_date", s.LastStatRetrievalDate).
		Set("maximum_message_size", s.MaximumMessageSize).
		Set("minimum_message_size", s.MinimumMessageSize).
		Set("messages_last_30d", s.MessagesLast30d).
		Set("partition_number", s.PartitionNumber).
		Set("replication_factor", s.ReplicationFactor).
		Set("retention", s.Retention).
		Set("total_messages", s.TotalMessages).
		Set("last_seen", now).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix(returning)
	if touched {
		b = b.Set("updated_at", now)
	}

	updated, err := scanTopic(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return updated, nil
}

// AddMembers inserts one child row per name in each member set.
func (r *Repo) AddMembers(ctx context.Context, topicID int64, m domain.TopicMembers) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	queue := func(mt memberTable, names []string) {
		stmt := fmt.Sprintf("INSERT INTO %s (topic_id, %s) VALUES ($1, $2)", mt.table, mt.column)
		for _, n := range names {
			batch.Queue(stmt, topicID, n)
		}
	}
	queue(producersTable, m.Producers)
	queue(consumersTable, m.Consumers)
	queue(missingProducersTable, m.MissingProducers)
	queue(missingConsumersTable, m.MissingConsumers)

	if batch.Len() == 0 {
		return nil
	}

	br := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			// The first failed statement is the error reported.
			_ = br.Close()
			return postgres.MapError(err, "topic members", topicID)
		}
	}
	if err := br.Close(); err != nil {
		return postgres.MapError(err, "topic members", topicID)
	}
	return nil
}

// InsertHistory appends a history row.
func (r *Repo) InsertHistory(ctx context.Context, h domain.TopicHistory) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes := h.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	payload, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("insert topic history: encode changes: %w", err)
	}

	b := postgres.Builder().Insert("topic_history").
		Columns("topic_id", "file_id", "action", "changes", "created_at").
		Values(h.TopicID, h.FileID, string(h.Action), payload, h.CreatedAt)

	if _, err := postgres.ExecBuilt(ctx, q, b); err != nil {
		return postgres.MapError(err, "topic history", h.TopicID)
	}
	return nil
}

// SetInterface sets or clears the interface a topic belongs to.
func (r *Repo) SetInterface(ctx context.Context, topicID int64, interfaceID *int64, now time.Time) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("topics").
		Set("interface_id", interfaceID).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": topicID}).
		Suffix(returning)

	t, err := scanTopic(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	return t, nil
}

// Deprecate flags a topic as deprecated. A topic that is already deprecated
// keeps its original deprecated_at.
func (r *Repo) Deprecate(ctx context.Context, topicID int64, now time.Time) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("topics").
		Set("is_deprecated", true).
		Set("deprecated_at", squirrel.Expr("COALESCE(deprecated_at, ?)", now)).
		Where(squirrel.Eq{"id": topicID}).
		Suffix(returning)

	t, err := scanTopic(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func envValue(e *domain.Environment) *string {
	if e == nil {
		return nil
	}
	s := string(*e)
	return &s
}

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t   domain.Topic
		env *string
	)
	s := &t.Stats
	if err := row.Scan(
		&t.ID, &t.Name, &t.FileID, &t.InterfaceID, &env, &t.BridgedTopic,
		&s.AverageMessageSize, &s.CleanupPolicy, &s.EstimatedSize, &s.LastMessageDate,
		&s.LastStatRetrievalDate, &s.MaximumMessageSize, &s.MinimumMessageSize,
		&s.MessagesLast30d, &s.PartitionNumber, &s.ReplicationFactor, &s.Retention,
		&s.TotalMessages, &t.CreatedAt, &t.UpdatedAt, &t.FirstSeen, &t.LastSeen,
		&t.IsDeprecated, &t.DeprecatedAt,
	); err != nil {
		return nil, err
	}
	if env != nil {
		e := domain.Environment(*env)
		t.Environment = &e
	}
	return &t, nil
}
