package domain

import "context"

// NewReply is the validated payload for replying to a comment.
type NewReply struct {
	Content   string
	Owner     string
	ThreadID  string
	CommentID string
}

// ParseNewReply verifies the raw payload and builds a NewReply.
func ParseNewReply(p Payload) (NewReply, error) {
	const entity = "NEW_REPLY"

	for _, key := range []string{"content", "owner", "threadId", "commentId"} {
		if !p.has(key) {
			return NewReply{}, errMissingProperty(entity)
		}
	}

	content, okContent := p.str("content")
	owner, okOwner := p.str("owner")
	threadID, okThread := p.str("threadId")
	commentID, okComment := p.str("commentId")
	if !okContent || !okOwner || !okThread || !okComment {
		return NewReply{}, errWrongDataType(entity)
	}

	return NewReply{
		Content:   content,
		Owner:     owner,
		ThreadID:  threadID,
		CommentID: commentID,
	}, nil
}

// AddedReply is the persisted result of a reply creation.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return AddedReply{}, errMissingProperty("ADDED_REPLY")
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// Reply is a raw reply row as stored. CommentID is kept for partitioning the
// flat reply list under its comment and stripped from the final view.
type Reply struct {
	ID        string
	CommentID string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

// DetailReply is the view projection of a reply inside a thread detail.
type DetailReply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	// AddReply persists a new reply and returns its stored projection.
	AddReply(ctx context.Context, r NewReply) (AddedReply, error)

	// GetRepliesByThreadID lists every reply under any comment of the thread,
	// deleted ones included, ordered by date ascending.
	GetRepliesByThreadID(ctx context.Context, threadID string) ([]Reply, error)

	// VerifyReplyAvailability returns ErrNotFound if the reply doesn't exist.
	VerifyReplyAvailability(ctx context.Context, id string) error

	// VerifyReplyOwner returns ErrForbidden if owner didn't write the reply.
	VerifyReplyOwner(ctx context.Context, id, owner string) error

	// DeleteReply flips the soft-delete flag.
	DeleteReply(ctx context.Context, id string) error
}

// ReplyUsecase defines the business logic contract for replies.
type ReplyUsecase interface {
	AddReply(ctx context.Context, payload Payload) (AddedReply, error)
	DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error
}
