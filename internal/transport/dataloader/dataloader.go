// Package dataloader provides per-request DataLoaders that batch child-row
// lookups made while rendering topic listings into one query per table.
// Loaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

const (
	maxBatch = 1000
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type memberRepo interface {
	GetMembersByTopicIDs(ctx context.Context, ids []int64) (map[int64]domain.TopicMembers, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Members memberRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders is created per request via NewLoaders; results are cached for the
// lifetime of that request only.
type Loaders struct {
	MembersByTopicID *dataloader.Loader[int64, domain.TopicMembers]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		MembersByTopicID: newLoader(newMembersBatchFn(repos.Members)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// LoadMembers resolves members for every id through one batched call. The
// result is in the order of ids.
func (l *Loaders) LoadMembers(ctx context.Context, ids []int64) ([]domain.TopicMembers, error) {
	members, errs := l.MembersByTopicID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return members, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the middleware
// did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
