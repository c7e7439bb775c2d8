package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// PDF 导出（headless Chrome）
type PDF struct {
	ChromePath       string `mapstructure:"chrome_path"` // 为空时走 chromedp 默认查找
	RenderTimeoutSec int    `mapstructure:"render_timeout_sec"`
	RasterScale      int    `mapstructure:"raster_scale"` // 截图倍率
}

// AI 文案优化（Gemini）
type AI struct {
	APIKey             string `mapstructure:"api_key"`
	Model              string `mapstructure:"model"`
	SuggestionCacheMin int    `mapstructure:"suggestion_cache_min"`
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	PDF   PDF   `mapstructure:"pdf"`
	AI    AI    `mapstructure:"ai"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}

	// 渲染/AI 默认值
	if c.PDF.RenderTimeoutSec <= 0 {
		c.PDF.RenderTimeoutSec = 60
	}
	if c.PDF.RasterScale <= 0 {
		c.PDF.RasterScale = 2
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.0-flash"
	}
	if c.AI.SuggestionCacheMin <= 0 {
		c.AI.SuggestionCacheMin = 30
	}
	return &c
}
