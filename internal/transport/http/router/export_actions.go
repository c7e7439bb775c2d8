package router

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/export"
	"go-resume-builder/internal/jsonresume"
	"go-resume-builder/internal/render"
	"go-resume-builder/internal/repo"
	httpez "go-resume-builder/internal/transport/http/ez"
)

// ---------- 导出：/resume/generate + /resume/export ----------

func mountExportActions(authUser *gin.RouterGroup, db *gorm.DB, deps Deps) {
	resumes := repo.NewResumeRepo(db)
	history := repo.NewHistoryRepo(db)
	ezAuth := httpez.New(authUser)

	// POST /resume/generate：渲染 + 导出 PDF（body 直接是文件）
	type generateIn struct {
		Theme    string `json:"theme"`
		Strategy string `json:"strategy"`
	}
	httpez.POSTRAW(ezAuth, "/resume/generate", "application/pdf", func(c *gin.Context, in generateIn) ([]byte, error) {
		theme, err := render.ParseTheme(in.Theme)
		if err != nil {
			return nil, httpez.BadRequest(err.Error())
		}
		strategy, err := export.ParseStrategy(in.Strategy)
		if err != nil {
			return nil, httpez.BadRequest(err.Error())
		}

		agg, err := resumes.AggregateByUser(c, c.GetString("userId"))
		if errors.Is(err, domain.ErrNoResume) {
			return nil, httpez.NotFound("resume not found")
		}
		if err != nil {
			return nil, httpez.Internal("load resume failed", err)
		}

		html, err := render.HTML(render.Build(agg), theme)
		if err != nil {
			return nil, httpez.Internal("render failed", err)
		}
		pdf, err := deps.Exporter.Export(c.Request.Context(), html, strategy)
		if err != nil {
			return nil, httpez.Unavailable("pdf export failed", err)
		}

		// 历史只记声明式导出，失败不影响下载
		if strategy == export.StrategyDeclarative {
			snapshot, _ := json.Marshal(jsonresume.Map(agg))
			rec := &domain.GeneratedResume{
				UserID:      agg.UserID,
				ResumeID:    agg.ID,
				Theme:       string(theme),
				JSONContent: string(snapshot),
			}
			if e := history.Append(c, rec); e != nil && deps.Log != nil {
				deps.Log.Warn("append generation history failed", zap.Error(e))
			}
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resume-%s.pdf"`, theme))
		return pdf, nil
	})

	// GET /resume/generate：导出历史（新的在前）
	ezAuth.GET("/resume/generate", func(c *gin.Context) (any, error) {
		items, err := history.ListByUser(c, c.GetString("userId"))
		if err != nil {
			return nil, httpez.Internal("list history failed", err)
		}
		return gin.H{"list": items, "total": len(items)}, nil
	})

	// GET /resume/export：JSON Resume 文档
	ezAuth.GET("/resume/export", func(c *gin.Context) (any, error) {
		agg, err := resumes.AggregateByUser(c, c.GetString("userId"))
		if errors.Is(err, domain.ErrNoResume) {
			return nil, httpez.NotFound("resume not found")
		}
		if err != nil {
			return nil, httpez.Internal("load resume failed", err)
		}
		return jsonresume.Map(agg), nil
	})
}
