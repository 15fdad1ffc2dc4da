package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

const queryRepliesByThread = `SELECT replies.id, replies.comment_id, replies.content, replies.created_at, replies.is_deleted, users.username FROM replies JOIN users ON users.id = replies.owner JOIN comments ON comments.id = replies.comment_id WHERE comments.thread_id = ? ORDER BY replies.created_at ASC`

type replyRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, idGen IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	record := model.Reply{
		ID:        "reply-" + r.idGen(),
		CommentID: reply.CommentID,
		Owner:     reply.Owner,
		Content:   reply.Content,
		CreatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return domain.NewAddedReply(record.ID, record.Content, record.Owner)
}

type replyRow struct {
	ID        string
	CommentID string
	Content   string
	CreatedAt time.Time
	IsDeleted bool
	Username  string
}

func (r *replyRepository) GetRepliesByThreadID(ctx context.Context, threadID string) ([]domain.Reply, error) {
	var rows []replyRow
	err := r.DB.WithContext(ctx).Raw(queryRepliesByThread, threadID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reply, len(rows))
	for i, row := range rows {
		res[i] = domain.Reply{
			ID:        row.ID,
			CommentID: row.CommentID,
			Username:  row.Username,
			Date:      row.CreatedAt.Format(time.RFC3339),
			Content:   row.Content,
			IsDeleted: row.IsDeleted,
		}
	}
	return res, nil
}

func (r *replyRepository) VerifyReplyAvailability(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, id, owner string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ? AND owner = ?", id, owner).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrForbidden
	}
	return nil
}

func (r *replyRepository) DeleteReply(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", id).Update("is_deleted", true).Error
}
