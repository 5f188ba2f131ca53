package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 用 glamour 渲染 Markdown 文本并写入 w
// width<=0 时使用终端宽度，结果限制在 [60, 120]；theme 为空时使用 dracula，
// theme 为 notty 时输出不带转义序列的纯文本排版
func RenderMarkdown(w io.Writer, input string, width int, theme string) error {
	if theme == "" {
		theme = "dracula"
	}
	if width <= 0 {
		width = TerminalWidth(w, 80)
	}
	width = max(60, min(width, 120))

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
		glamour.WithInlineTableLinks(true),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
