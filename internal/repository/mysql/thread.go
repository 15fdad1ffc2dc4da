package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

const queryThreadByID = `SELECT threads.id, threads.title, threads.body, threads.created_at, users.username FROM threads JOIN users ON users.id = threads.owner WHERE threads.id = ?`

type threadRepository struct {
	DB    *gorm.DB
	idGen IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, idGen IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, t domain.NewThread) (domain.AddedThread, error) {
	record := model.Thread{
		ID:        "thread-" + r.idGen(),
		Title:     t.Title,
		Body:      t.Body,
		Owner:     t.Owner,
		CreatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return domain.NewAddedThread(record.ID, record.Title, record.Owner)
}

type threadRow struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	Username  string
}

func (r *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.DetailThread, error) {
	var row threadRow
	result := r.DB.WithContext(ctx).Raw(queryThreadByID, id).Scan(&row)
	if result.Error != nil {
		return domain.DetailThread{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.DetailThread{}, domain.ErrNotFound
	}
	return domain.NewDetailThread(row.ID, row.Title, row.Body, row.Username, row.CreatedAt.Format(time.RFC3339), nil)
}

func (r *threadRepository) VerifyThreadAvailability(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *threadRepository) GetThreadIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).Pluck("id", &ids).Error
	return ids, err
}
