package reply

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/sanitize"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	invalidator domain.CacheInvalidator
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(
	replyRepo domain.ReplyRepository,
	commentRepo domain.CommentRepository,
	threadRepo domain.ThreadRepository,
	invalidator domain.CacheInvalidator,
) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
		invalidator: invalidator,
	}
}

func (s *service) AddReply(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	r, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	r.Content = sanitize.Clean(r.Content)

	if err := s.threadRepo.VerifyThreadAvailability(ctx, r.ThreadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, r.CommentID); err != nil {
		return domain.AddedReply{}, err
	}

	added, err := s.replyRepo.AddReply(ctx, r)
	if err != nil {
		return domain.AddedReply{}, err
	}

	s.invalidator.Send(r.ThreadID)
	return added, nil
}

// DeleteReply soft-deletes a reply after walking the whole ancestry:
// thread, comment, then the reply itself, then ownership.
func (s *service) DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error {
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyAvailability(ctx, replyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyOwner(ctx, replyID, owner); err != nil {
		return err
	}
	if err := s.replyRepo.DeleteReply(ctx, replyID); err != nil {
		return err
	}

	s.invalidator.Send(threadID)
	return nil
}
