package router

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"go-resume-builder/internal/domain"
	httpez "go-resume-builder/internal/transport/http/ez"
)

// ---------- 六类子集合 CRUD ----------
// 统一挂在鉴权分组下，owner 按 userId 圈定；创建前校验主档已存在并补 ResumeID。

func mountChildCruds(authUser *gin.RouterGroup, db *gorm.DB) {
	// resumeIDOf 取当前用户主档 ID，没存过主档返回 404
	resumeIDOf := func(c *gin.Context) (string, error) {
		var res domain.Resume
		err := db.WithContext(c).Select("id").First(&res, "user_id = ?", c.GetString("userId")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", httpez.NotFound("save resume info first")
		}
		if err != nil {
			return "", httpez.Internal("load resume failed", err)
		}
		return res.ID, nil
	}

	httpez.Crud(httpez.CrudConfig[domain.Experience]{
		DB: db, Group: authUser, Path: "/experience",
		New:     func() *domain.Experience { return &domain.Experience{} },
		OrderBy: "created_at ASC",
		Hooks: httpez.CrudHooks[domain.Experience]{
			BeforeCreate: func(c *gin.Context, m *domain.Experience) error {
				rid, err := resumeIDOf(c)
				if err != nil {
					return err
				}
				m.ResumeID = rid
				return nil
			},
		},
	})

	httpez.Crud(httpez.CrudConfig[domain.Education]{
		DB: db, Group: authUser, Path: "/education",
		New:     func() *domain.Education { return &domain.Education{} },
		OrderBy: "created_at ASC",
		Hooks: httpez.CrudHooks[domain.Education]{
			BeforeCreate: func(c *gin.Context, m *domain.Education) error {
				rid, err := resumeIDOf(c)
				if err != nil {
					return err
				}
				m.ResumeID = rid
				return nil
			},
		},
	})

	httpez.Crud(httpez.CrudConfig[domain.Skill]{
		DB: db, Group: authUser, Path: "/skill",
		New:     func() *domain.Skill { return &domain.Skill{} },
		OrderBy: "created_at ASC",
		Hooks: httpez.CrudHooks[domain.Skill]{
			BeforeCreate: func(c *gin.Context, m *domain.Skill) error {
				rid, err := resumeIDOf(c)
				if err != nil {
					return err
				}
				m.ResumeID = rid
				return validSkill(m)
			},
			BeforeUpdate: func(c *gin.Context, m *domain.Skill) error {
				return validSkill(m)
			},
		},
	})

	httpez.Crud(httpez.CrudConfig[domain.Certificate]{
		DB: db, Group: authUser, Path: "/certificate",
		New:     func() *domain.Certificate { return &domain.Certificate{} },
		OrderBy: "created_at ASC",
		Hooks: httpez.CrudHooks[domain.Certificate]{
			BeforeCreate: func(c *gin.Context, m *domain.Certificate) error {
				rid, err := resumeIDOf(c)
				if err != nil {
					return err
				}
				m.ResumeID = rid
				return nil
			},
		},
	})

	httpez.Crud(httpez.CrudConfig[domain.LanguageSkill]{
		DB: db, Group: authUser, Path: "/language",
		New:     func() *domain.LanguageSkill { return &domain.LanguageSkill{} },
		OrderBy: "created_at ASC",
		Hooks: httpez.CrudHooks[domain.LanguageSkill]{
			BeforeCreate: func(c *gin.Context, m *domain.LanguageSkill) error {
				rid, err := resumeIDOf(c)
				if err != nil {
					return err
				}
				m.ResumeID = rid
				return validLanguage(m)
			},
			BeforeUpdate: func(c *gin.Context, m *domain.LanguageSkill) error {
				return validLanguage(m)
			},
		},
	})

	httpez.Crud(httpez.CrudConfig[domain.Reference]{
		DB: db, Group: authUser, Path: "/reference",
		New:     func() *domain.Reference { return &domain.Reference{} },
		OrderBy: "created_at ASC",
		Hooks: httpez.CrudHooks[domain.Reference]{
			BeforeCreate: func(c *gin.Context, m *domain.Reference) error {
				rid, err := resumeIDOf(c)
				if err != nil {
					return err
				}
				m.ResumeID = rid
				return nil
			},
		},
	})
}

func validSkill(m *domain.Skill) error {
	if len(m.Tokens()) == 0 {
		return httpez.BadRequest("skillName must contain at least one skill")
	}
	return nil
}

func validLanguage(m *domain.LanguageSkill) error {
	if !domain.ValidProficiency(m.Proficiency) {
		return httpez.BadRequest("proficiency must be one of Native/Fluent/Intermediate/Basic")
	}
	return nil
}
