package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/sanitize"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	likeRepo    domain.LikeRepository
	bloomRepo   domain.BloomRepository
	invalidator domain.CacheInvalidator
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	threadRepo domain.ThreadRepository,
	likeRepo domain.LikeRepository,
	bloomRepo domain.BloomRepository,
	invalidator domain.CacheInvalidator,
) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		likeRepo:    likeRepo,
		bloomRepo:   bloomRepo,
		invalidator: invalidator,
	}
}

func (s *service) mustExists(ctx context.Context, threadID string) error {
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.ErrNotFound
	}

	return nil
}

func (s *service) AddComment(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	c, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	c.Content = sanitize.Clean(c.Content)

	if err := s.mustExists(ctx, c.ThreadID); err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threadRepo.VerifyThreadAvailability(ctx, c.ThreadID); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := s.commentRepo.AddComment(ctx, c)
	if err != nil {
		return domain.AddedComment{}, err
	}

	s.invalidator.Send(c.ThreadID)
	return added, nil
}

// DeleteComment soft-deletes a comment. Availability is checked before
// ownership so a missing comment reports ErrNotFound, not ErrForbidden.
func (s *service) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, commentID, owner); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	s.invalidator.Send(threadID)
	return nil
}

// LikeUnlikeComment toggles the owner's like: the effect is determined by the
// current state, not by the request. Two concurrent toggles for the same
// (owner, comment) may both read the same state; the likes table's unique key
// is the only serialization.
func (s *service) LikeUnlikeComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return err
	}

	like := domain.Like{CommentID: commentID, Owner: owner}
	liked, err := s.likeRepo.IsLiked(ctx, like)
	if err != nil {
		return err
	}

	if liked {
		err = s.likeRepo.DeleteLike(ctx, like)
	} else {
		err = s.likeRepo.AddLike(ctx, like)
	}
	if err != nil {
		return err
	}

	s.invalidator.Send(threadID)
	return nil
}
