package domain

import "context"

// ThreadCache caches assembled thread detail views. A miss is reported as
// ErrCacheMiss and always falls back to the full aggregation.
type ThreadCache interface {
	GetDetail(ctx context.Context, threadID string) (DetailThread, error)
	SetDetail(ctx context.Context, detail DetailThread) error
	DeleteDetail(ctx context.Context, threadID string) error
}
