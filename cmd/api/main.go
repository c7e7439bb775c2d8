package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-resume-builder/internal/ai"
	"go-resume-builder/internal/core/auth"
	"go-resume-builder/internal/core/cache"
	"go-resume-builder/internal/core/config"
	"go-resume-builder/internal/core/database"
	"go-resume-builder/internal/core/logger"
	"go-resume-builder/internal/core/server"
	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/export"
	"go-resume-builder/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(cfg.DB.DSN)))

	// 自动迁移
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Resume{},
			&domain.Experience{},
			&domain.Education{},
			&domain.Skill{},
			&domain.Certificate{},
			&domain.LanguageSkill{},
			&domain.Reference{},
			&domain.GeneratedResume{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// PDF 导出引擎
	chrome := export.NewChromeRenderer(cfg.PDF.ChromePath,
		time.Duration(cfg.PDF.RenderTimeoutSec)*time.Second)
	exporter := export.NewEngine(chrome, cfg.PDF.RasterScale, log)

	// AI 优化器（没配 key 就不挂，接口返回 502）
	var optimizer *ai.Optimizer
	if cfg.AI.APIKey != "" {
		rdb := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		opt, err := ai.New(context.Background(), cfg.AI.APIKey, cfg.AI.Model, rdb,
			time.Duration(cfg.AI.SuggestionCacheMin)*time.Minute, log)
		if err != nil {
			log.Fatal("ai optimizer init failed", zap.Error(err))
		}
		defer opt.Close()
		optimizer = opt
		log.Info("ai optimizer ready", zap.String("model", cfg.AI.Model))
	} else {
		log.Warn("ai api key not set, /ai/optimize disabled")
	}

	// 路由（用户端）
	r := router.NewAPIEngine(log, db, jwter, router.Deps{
		Exporter:  exporter,
		Optimizer: optimizer,
		Log:       log,
	})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("resume api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("resume api start FAILED", zap.Error(err))
		}
	}()
	log.Info("resume api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("resume api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
