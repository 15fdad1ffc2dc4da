package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

// Deleted comments stay in the result set; the view layer redacts them
// instead of dropping them.
const queryCommentsByThread = `SELECT comments.id, comments.content, comments.created_at, comments.is_deleted, users.username FROM comments JOIN users ON users.id = comments.owner WHERE comments.thread_id = ? ORDER BY comments.created_at ASC`

type commentRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, idGen IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *commentRepository) AddComment(ctx context.Context, c domain.NewComment) (domain.AddedComment, error) {
	record := model.Comment{
		ID:        "comment-" + r.idGen(),
		ThreadID:  c.ThreadID,
		Owner:     c.Owner,
		Content:   c.Content,
		CreatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return domain.NewAddedComment(record.ID, record.Content, record.Owner)
}

type commentRow struct {
	ID        string
	Content   string
	CreatedAt time.Time
	IsDeleted bool
	Username  string
}

func (r *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []commentRow
	err := r.DB.WithContext(ctx).Raw(queryCommentsByThread, threadID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(rows))
	for i, row := range rows {
		res[i] = domain.Comment{
			ID:        row.ID,
			Username:  row.Username,
			Date:      row.CreatedAt.Format(time.RFC3339),
			Content:   row.Content,
			IsDeleted: row.IsDeleted,
		}
	}
	return res, nil
}

// VerifyCommentAvailability treats soft-deleted comments as gone.
func (r *commentRepository) VerifyCommentAvailability(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ? AND is_deleted = ?", id, false).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *commentRepository) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ? AND owner = ?", id, owner).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrForbidden
	}
	return nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("is_deleted", true).Error
}
