package thread

import (
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const (
	deletedCommentPlaceholder = "**komentar telah dihapus**"
	deletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// redactComments projects raw comment rows into view comments, replacing the
// content of soft-deleted ones with the comment placeholder. The stored
// content is never touched.
func redactComments(comments []domain.Comment) []domain.DetailComment {
	res := make([]domain.DetailComment, len(comments))
	for i, c := range comments {
		content := c.Content
		if c.IsDeleted {
			content = deletedCommentPlaceholder
		}
		res[i] = domain.DetailComment{
			ID:       c.ID,
			Username: c.Username,
			Date:     c.Date,
			Content:  content,
			Replies:  []domain.DetailReply{},
		}
	}
	return res
}

// redactedReply carries the comment id through partitioning; the id is
// stripped from the final view.
type redactedReply struct {
	commentID string
	reply     domain.DetailReply
}

func redactReplies(replies []domain.Reply) []redactedReply {
	res := make([]redactedReply, len(replies))
	for i, r := range replies {
		content := r.Content
		if r.IsDeleted {
			content = deletedReplyPlaceholder
		}
		res[i] = redactedReply{
			commentID: r.CommentID,
			reply: domain.DetailReply{
				ID:       r.ID,
				Content:  content,
				Date:     r.Date,
				Username: r.Username,
			},
		}
	}
	return res
}

// attachLikeCounts joins the grouped like counts onto the comments by comment
// id. The aggregation query omits comments without likes, so a missing entry
// means zero, and the numeric-as-string count is coerced with a zero default.
func attachLikeCounts(comments []domain.DetailComment, counts []domain.LikeCount) []domain.DetailComment {
	byComment := make(map[string]string, len(counts))
	for _, c := range counts {
		byComment[c.CommentID] = c.Likes
	}

	res := make([]domain.DetailComment, len(comments))
	for i, c := range comments {
		c.LikeCount = 0
		if raw, ok := byComment[c.ID]; ok {
			if n, err := strconv.Atoi(raw); err == nil {
				c.LikeCount = n
			}
		}
		res[i] = c
	}
	return res
}

// attachReplies partitions the flat reply list by comment id, preserving the
// incoming order, and hangs each partition under its comment. Comments
// without replies keep an empty, non-nil slice.
func attachReplies(comments []domain.DetailComment, replies []redactedReply) []domain.DetailComment {
	byComment := make(map[string][]domain.DetailReply, len(comments))
	for _, r := range replies {
		byComment[r.commentID] = append(byComment[r.commentID], r.reply)
	}

	res := make([]domain.DetailComment, len(comments))
	for i, c := range comments {
		if list, ok := byComment[c.ID]; ok {
			c.Replies = list
		} else {
			c.Replies = []domain.DetailReply{}
		}
		res[i] = c
	}
	return res
}
