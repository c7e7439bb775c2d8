package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-resume-builder/internal/ai"
	"go-resume-builder/internal/core/auth"
	"go-resume-builder/internal/export"
	mdw "go-resume-builder/internal/transport/http/middleware"
)

// Deps 业务侧依赖（渲染引擎 / AI 优化器），由 main 组装后注入
type Deps struct {
	Exporter  *export.Engine
	Optimizer *ai.Optimizer // 可为 nil（未配置 API key 时 /ai/optimize 返回 502）
	Log       *zap.Logger
}

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, deps Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(90*time.Second), // 导出要等 Chrome，放宽
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)
	r.Use(cors.Default())

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	// 前缀
	api := r.Group("/api/v1")

	// 统一注册器
	MountAllAPI(api)

	// 鉴权分组
	authUser := api.Group("")
	authUser.Use(mdw.AuthJWT(jwter, ""))

	mountAuthActions(api, authUser, db, jwter)
	mountResumeActions(authUser, db)
	mountChildCruds(authUser, db)
	mountExportActions(authUser, db, deps)
	mountAIActions(authUser, db, deps)

	return r
}
