package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"go.uber.org/zap"
)

// Strategy 分页策略：declarative 交给 Chrome 断页，raster 截图后按 A4 比例切片。
type Strategy string

const (
	StrategyDeclarative Strategy = "declarative"
	StrategyRaster      Strategy = "raster"
)

// ParseStrategy 空串默认声明式
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyDeclarative:
		return StrategyDeclarative, nil
	case StrategyRaster:
		return StrategyRaster, nil
	default:
		return "", fmt.Errorf("unknown pagination strategy: %q", s)
	}
}

// Engine 把渲染好的简历 HTML 导出为 PDF 字节
type Engine struct {
	chrome *ChromeRenderer
	scale  int
	log    *zap.Logger
}

func NewEngine(chrome *ChromeRenderer, scale int, log *zap.Logger) *Engine {
	if scale <= 0 {
		scale = 2
	}
	return &Engine{chrome: chrome, scale: scale, log: log}
}

func (e *Engine) Export(ctx context.Context, html string, s Strategy) ([]byte, error) {
	switch s {
	case StrategyRaster:
		return e.exportRaster(ctx, html)
	default:
		return e.chrome.PrintPDF(ctx, html)
	}
}

// exportRaster：整页截图 -> 纵向切片 -> 每页一张图的 HTML -> PrintToPDF。
// 末页不足整页时按实际高度保留，PDF 里顶部对齐。
func (e *Engine) exportRaster(ctx context.Context, html string) ([]byte, error) {
	shot, err := e.chrome.Screenshot(ctx, html, e.scale)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	pages := Tile(img)
	if e.log != nil {
		b := img.Bounds()
		e.log.Info("raster export tiled",
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()),
			zap.Int("pages", len(pages)))
	}

	pageHTML, err := rasterPagesHTML(pages)
	if err != nil {
		return nil, err
	}
	return e.chrome.PrintPDF(ctx, pageHTML)
}

// rasterPagesHTML 把每页位图内联成 data URI，组装成逐页 HTML
func rasterPagesHTML(pages []image.Image) (string, error) {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>
@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; }
.page { width: 210mm; height: 297mm; overflow: hidden; page-break-after: always; }
.page:last-child { page-break-after: auto; }
.page img { display: block; width: 210mm; }
</style></head><body>`)

	for _, p := range pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, p); err != nil {
			return "", fmt.Errorf("encode page: %w", err)
		}
		sb.WriteString(`<div class="page"><img src="data:image/png;base64,`)
		sb.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
		sb.WriteString(`"></div>`)
	}
	sb.WriteString(`</body></html>`)
	return sb.String(), nil
}
