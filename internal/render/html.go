package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var themes = template.Must(template.New("themes").
	Funcs(template.FuncMap{
		"join": strings.Join,
	}).
	ParseFS(templateFS, "templates/*.html"))

// HTML 把文档块按主题渲染成自包含 HTML（样式内联，供 Chrome 打印）。
// 三套主题渲染同样的八个逻辑章节，只在样式和排布上有差异。
func HTML(doc Document, theme Theme) (string, error) {
	name := string(theme) + ".html"
	var buf bytes.Buffer
	if err := themes.ExecuteTemplate(&buf, name, doc); err != nil {
		return "", fmt.Errorf("render theme %s: %w", theme, err)
	}
	return buf.String(), nil
}
