package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type invalidateCacheWorker struct {
	cache domain.ThreadCache
	ch    chan string
}

var _ domain.CacheInvalidator = (*invalidateCacheWorker)(nil)

func NewInvalidateCacheWorker(cache domain.ThreadCache) *invalidateCacheWorker {
	return &invalidateCacheWorker{
		cache: cache,
		ch:    make(chan string, 1024),
	}
}

// Send schedules the thread's cached detail view for deletion.
func (w invalidateCacheWorker) Send(threadID string) {
	select {
	case w.ch <- threadID:
	default:
		logrus.Info("InvalidateCacheWorker's channel is full, task dropped")
	}
}

func (w invalidateCacheWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]string, 0, batchSize)
	for {
		select {
		case threadID := <-w.ch:
			batch = append(batch, threadID)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]string, 0, batchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]string, 0)
		case <-ctx.Done():
			logrus.Info("shutting down InvalidateCacheWorker, flushing remaining tasks...")
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w invalidateCacheWorker) flush(ctx context.Context, batch []string) {
	seen := make(map[string]bool, len(batch))
	for _, threadID := range batch {
		if seen[threadID] {
			continue
		}
		seen[threadID] = true
		if err := w.cache.DeleteDetail(ctx, threadID); err != nil {
			logrus.Errorf("failed to invalidate thread detail cache for %s: %v", threadID, err)
		}
	}
}
