package repo

import (
	"context"

	"gorm.io/gorm"

	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/utils"
)

// HistoryRepo 导出历史，只追加
type HistoryRepo struct{ db *gorm.DB }

func NewHistoryRepo(db *gorm.DB) *HistoryRepo { return &HistoryRepo{db: db} }

func (r *HistoryRepo) Append(ctx context.Context, rec *domain.GeneratedResume) error {
	if rec.ID == "" {
		rec.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListByUser 新的在前
func (r *HistoryRepo) ListByUser(ctx context.Context, userID string) ([]domain.GeneratedResume, error) {
	var items []domain.GeneratedResume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ListAll 管理端分页查看全量历史
func (r *HistoryRepo) ListAll(ctx context.Context, offset, limit int) ([]domain.GeneratedResume, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.GeneratedResume{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.GeneratedResume
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
