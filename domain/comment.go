package domain

import "context"

// NewComment is the validated payload for commenting on a thread.
type NewComment struct {
	Content  string
	Owner    string
	ThreadID string
}

// ParseNewComment verifies the raw payload and builds a NewComment.
func ParseNewComment(p Payload) (NewComment, error) {
	const entity = "NEW_COMMENT"

	for _, key := range []string{"content", "owner", "threadId"} {
		if !p.has(key) {
			return NewComment{}, errMissingProperty(entity)
		}
	}

	content, okContent := p.str("content")
	owner, okOwner := p.str("owner")
	threadID, okThread := p.str("threadId")
	if !okContent || !okOwner || !okThread {
		return NewComment{}, errWrongDataType(entity)
	}

	return NewComment{Content: content, Owner: owner, ThreadID: threadID}, nil
}

// AddedComment is the persisted result of a comment creation.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return AddedComment{}, errMissingProperty("ADDED_COMMENT")
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// Comment is a raw comment row as stored. Content keeps the original text even
// when the comment is soft-deleted; redaction happens at view assembly.
type Comment struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

// DetailComment is the view projection of a comment inside a thread detail:
// redacted content, derived like count and nested replies.
type DetailComment struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []DetailReply `json:"replies"`
}

func NewDetailComment(id, username, date, content string, likeCount int, replies []DetailReply) (DetailComment, error) {
	if id == "" || username == "" || date == "" || content == "" {
		return DetailComment{}, errMissingProperty("DETAIL_COMMENT")
	}
	if replies == nil {
		replies = []DetailReply{}
	}
	return DetailComment{
		ID:        id,
		Username:  username,
		Date:      date,
		Content:   content,
		LikeCount: likeCount,
		Replies:   replies,
	}, nil
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	// AddComment persists a new comment and returns its stored projection.
	AddComment(ctx context.Context, c NewComment) (AddedComment, error)

	// GetCommentsByThreadID lists every comment of a thread, deleted ones
	// included, ordered by date ascending.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]Comment, error)

	// VerifyCommentAvailability returns ErrNotFound if the comment doesn't
	// exist or is soft-deleted.
	VerifyCommentAvailability(ctx context.Context, id string) error

	// VerifyCommentOwner returns ErrForbidden if owner didn't write the comment.
	VerifyCommentOwner(ctx context.Context, id, owner string) error

	// DeleteComment flips the soft-delete flag. The flag never reverts.
	DeleteComment(ctx context.Context, id string) error
}

// CommentUsecase defines the business logic contract for comments, including
// the like toggle which is keyed on the comment.
type CommentUsecase interface {
	AddComment(ctx context.Context, payload Payload) (AddedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, owner string) error

	// LikeUnlikeComment toggles the requester's like on a comment: liked
	// comments get unliked, everything else gets liked.
	LikeUnlikeComment(ctx context.Context, threadID, commentID, owner string) error
}
