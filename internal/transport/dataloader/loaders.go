package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Members by TopicID
// ---------------------------------------------------------------------------

func newMembersBatchFn(repo memberRepo) dataloader.BatchFunc[int64, domain.TopicMembers] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.TopicMembers] {
		grouped, err := repo.GetMembersByTopicIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.TopicMembers](len(keys), err)
		}
		return mapResults(keys, grouped, domain.NewTopicMembers)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}
