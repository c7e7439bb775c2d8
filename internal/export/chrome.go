package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeRenderer 用 headless Chrome 渲染自包含 HTML。
// 两条导出路径共用：PrintToPDF（声明式分页）和整页截图（栅格平铺）。
type ChromeRenderer struct {
	ExecPath string // 为空用 chromedp 默认查找
	Timeout  time.Duration
}

func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeRenderer{ExecPath: execPath, Timeout: timeout}
}

func (r *ChromeRenderer) allocOpts() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}
	return opts
}

// run 把 HTML 落到临时目录，file:// 打开后执行 actions
func (r *ChromeRenderer) run(ctx context.Context, html string, actions ...chromedp.Action) error {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, r.allocOpts()...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, r.Timeout)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}

	all := append([]chromedp.Action{
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}, actions...)

	return chromedp.Run(ctx2, all...)
}

// PrintPDF 声明式分页：Chrome 自己断页，A4 固定纸张。
func (r *ChromeRenderer) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	var pdfBuf []byte
	err := r.run(ctx, html,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

// A4 宽 210mm 在 96dpi 下约 794px，预览视口按这个宽度跑
const viewportWidthPx = 794

// Screenshot 整页截图（PNG），scale 为设备倍率（清晰度用 2x）。
func (r *ChromeRenderer) Screenshot(ctx context.Context, html string, scale int) ([]byte, error) {
	if scale <= 0 {
		scale = 2
	}
	var buf []byte
	err := r.run(ctx, html,
		chromedp.EmulateViewport(viewportWidthPx, 1123, chromedp.EmulateScale(float64(scale))),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
