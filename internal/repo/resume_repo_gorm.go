package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/utils"
)

type ResumeRepo struct{ db *gorm.DB }

func NewResumeRepo(db *gorm.DB) *ResumeRepo { return &ResumeRepo{db: db} }

// AggregateByUser 取主档 + 全部六类子集合。
// 没存过主档返回 domain.ErrNoResume；存过但子集合为空时返回空 slice（不是 nil 断档）。
func (r *ResumeRepo) AggregateByUser(ctx context.Context, userID string) (*domain.Resume, error) {
	var res domain.Resume
	err := r.db.WithContext(ctx).
		Preload("Experiences").
		Preload("Educations").
		Preload("Skills").
		Preload("Certificates").
		Preload("Languages").
		Preload("References").
		First(&res, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNoResume
	}
	if err != nil {
		return nil, err
	}
	ensureChildren(&res)
	return &res, nil
}

// InfoByUser 只取主档标量字段（子表单页用不到集合时省几次 preload）
func (r *ResumeRepo) InfoByUser(ctx context.Context, userID string) (*domain.Resume, error) {
	var res domain.Resume
	err := r.db.WithContext(ctx).First(&res, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNoResume
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SaveInfo upsert 语义：该用户没有主档就建一份，有就原地更新标量字段。
// 同一用户永远只有一份主档（user_id 唯一索引兜底并发）。
func (r *ResumeRepo) SaveInfo(ctx context.Context, userID string, in *domain.Resume) (*domain.Resume, error) {
	var existing domain.Resume
	err := r.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		in.ID = utils.NewID()
		in.UserID = userID
		if e := r.db.WithContext(ctx).Create(in).Error; e != nil {
			return nil, e
		}
		return in, nil

	case err != nil:
		return nil, err

	default:
		// 显式字段映射：关系集合和 id 不随 PUT 走
		updates := map[string]any{
			"full_name":      in.FullName,
			"position":       in.Position,
			"address":        in.Address,
			"phone":          in.Phone,
			"email":          in.Email,
			"linkedin":       in.Linkedin,
			"github":         in.Github,
			"profile_image":  in.ProfileImage,
			"career_summary": in.CareerSummary,
		}
		if e := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; e != nil {
			return nil, e
		}
		return r.InfoByUser(ctx, userID)
	}
}

// UpdateProfileImage 只改头像字段（multipart 上传路径用）
func (r *ResumeRepo) UpdateProfileImage(ctx context.Context, userID, dataURI string) error {
	tx := r.db.WithContext(ctx).Model(&domain.Resume{}).
		Where("user_id = ?", userID).
		Update("profile_image", dataURI)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNoResume
	}
	return nil
}

// Delete 删除主档，子表靠外键级联
func (r *ResumeRepo) Delete(ctx context.Context, userID string) error {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Resume{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNoResume
	}
	return nil
}

func ensureChildren(res *domain.Resume) {
	if res.Experiences == nil {
		res.Experiences = []domain.Experience{}
	}
	if res.Educations == nil {
		res.Educations = []domain.Education{}
	}
	if res.Skills == nil {
		res.Skills = []domain.Skill{}
	}
	if res.Certificates == nil {
		res.Certificates = []domain.Certificate{}
	}
	if res.Languages == nil {
		res.Languages = []domain.LanguageSkill{}
	}
	if res.References == nil {
		res.References = []domain.Reference{}
	}
}
