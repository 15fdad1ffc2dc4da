package thread

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/sanitize"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
	cache       domain.ThreadCache
	bloomRepo   domain.BloomRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(
	t domain.ThreadRepository,
	c domain.CommentRepository,
	r domain.ReplyRepository,
	l domain.LikeRepository,
	cache domain.ThreadCache,
	bloom domain.BloomRepository,
) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
		cache:       cache,
		bloomRepo:   bloom,
	}
}

func (s *Service) mustExists(ctx context.Context, threadID string) error {
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.ErrNotFound
	}

	return nil
}

func (s *Service) AddThread(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	t, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	t.Title = sanitize.Clean(t.Title)
	t.Body = sanitize.Clean(t.Body)

	added, err := s.threadRepo.AddThread(ctx, t)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if err := s.bloomRepo.Add(ctx, added.ID); err != nil {
		logrus.Warnf("failed to add thread %s to bloom filter: %v", added.ID, err)
	}

	return added, nil
}

// GetThreadDetail assembles the denormalized detail view: thread metadata,
// comments with like counts and nested replies, soft-deleted content
// redacted. The availability guard runs before any fetch so callers get
// ErrNotFound without paying for the aggregation; the four fetches themselves
// are order-independent and run concurrently, the first failure failing the
// whole view.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.DetailThread, error) {
	detail, err := s.cache.GetDetail(ctx, threadID)
	if err == nil {
		return detail, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("thread detail cache get error: %v", err)
	}

	if err := s.mustExists(ctx, threadID); err != nil {
		return domain.DetailThread{}, err
	}
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.DetailThread{}, err
	}

	var (
		thread   domain.DetailThread
		comments []domain.Comment
		replies  []domain.Reply
		counts   []domain.LikeCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thread, err = s.threadRepo.GetThreadByID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		comments, err = s.commentRepo.GetCommentsByThreadID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		replies, err = s.replyRepo.GetRepliesByThreadID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		counts, err = s.likeRepo.GetLikesByThreadID(gctx, threadID)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.DetailThread{}, err
	}

	detailComments := redactComments(comments)
	detailComments = attachLikeCounts(detailComments, counts)
	detailComments = attachReplies(detailComments, redactReplies(replies))
	thread.Comments = detailComments

	go func(d domain.DetailThread) {
		if err := s.cache.SetDetail(context.Background(), d); err != nil {
			logrus.Warnf("failed to set thread detail cache: %v", err)
		}
	}(thread)

	return thread, nil
}

func (s *Service) InitBloomFilter(ctx context.Context) error {
	ids, err := s.threadRepo.GetThreadIDs(ctx)
	if err != nil {
		return err
	}
	return s.bloomRepo.BulkAdd(ctx, ids)
}
