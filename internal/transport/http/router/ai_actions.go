package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpez "go-resume-builder/internal/transport/http/ez"
)

// ---------- AI 文案优化：/ai/optimize ----------

func mountAIActions(authUser *gin.RouterGroup, db *gorm.DB, deps Deps) {
	ezAuth := httpez.New(authUser)

	type optimizeIn struct {
		Type     string `json:"type"     binding:"required,oneof=summary experience"`
		Position string `json:"position" binding:"omitempty,max=128"`
		Content  string `json:"content"  binding:"required"`
	}
	type optimizeOut struct {
		Original  string `json:"original"`
		Optimized string `json:"optimized"`
	}
	httpez.RegisterAction[optimizeIn, optimizeOut](ezAuth, db, httpez.Action[optimizeIn, optimizeOut]{
		Method: http.MethodPost,
		Path:   "/ai/optimize",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *optimizeIn) (optimizeOut, error) {
			if deps.Optimizer == nil {
				return optimizeOut{}, httpez.Unavailable("ai optimization is not configured", nil)
			}
			out, err := deps.Optimizer.Optimize(c.Request.Context(), in.Type, in.Position, in.Content)
			if err != nil {
				return optimizeOut{}, httpez.Unavailable("ai optimization failed", err)
			}
			return optimizeOut{Original: in.Content, Optimized: out}, nil
		},
	})
}
