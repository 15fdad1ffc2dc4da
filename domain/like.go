package domain

import "context"

// Like is an existence-only record: the owner likes the comment. There is no
// stored count; counts are derived by aggregation.
type Like struct {
	CommentID string
	Owner     string
}

// LikeCount is one row of the grouped like aggregation for a thread. Likes is
// numeric-as-string, the way the aggregation query reports it; the view
// assembly coerces it with a zero default.
type LikeCount struct {
	CommentID string
	Likes     string
}

// LikeRepository defines the contract for like persistence.
type LikeRepository interface {
	// AddLike records that the owner likes the comment.
	AddLike(ctx context.Context, l Like) error

	// DeleteLike removes the owner's like on the comment.
	DeleteLike(ctx context.Context, l Like) error

	// IsLiked reports whether the owner currently likes the comment.
	IsLiked(ctx context.Context, l Like) (bool, error)

	// GetLikesByThreadID returns like counts grouped by comment id for every
	// commented-on-and-liked comment of the thread. Comments without likes
	// are absent from the result.
	GetLikesByThreadID(ctx context.Context, threadID string) ([]LikeCount, error)
}
