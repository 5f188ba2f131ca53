// Package render 将 FileSummary 输出为终端文本或结构化数据
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/models"
	"github.com/yeisme/fsummary/pkg/style"
)

// ErrUnsupportedFormat 不支持的输出格式
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Options 渲染选项
type Options struct {
	Format       configs.OutputFormat
	Color        bool
	Width        int    // 表格与 markdown 的宽度，<=0 自动探测
	Theme        string // glamour 主题
	InsightWidth int    // 单条 insight 的最大显示宽度，<=0 不截断
}

// OptionsFromConfig 从输出配置构造渲染选项
func OptionsFromConfig(c configs.OutputConfig) (Options, error) {
	format, err := configs.ParseOutputFormat(c.Format)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Format:       format,
		Color:        c.Color,
		Width:        c.Width,
		Theme:        c.Theme,
		InsightWidth: c.InsightWidth,
	}, nil
}

// Render 按 opts.Format 将 s 写入 w
func Render(w io.Writer, s models.FileSummary, opts Options) error {
	switch opts.Format {
	case configs.FormatText, "":
		return renderText(style.NewPrinter(w, opts.Color), s, opts)
	case configs.FormatPlain:
		return renderPlain(w, s)
	case configs.FormatJSON:
		return style.NewPrinter(w, opts.Color).JSON(s)
	case configs.FormatYAML:
		return style.NewPrinter(w, opts.Color).YAML(s)
	case configs.FormatTOML:
		return style.NewPrinter(w, opts.Color).TOML(s)
	case configs.FormatMarkdown:
		theme := opts.Theme
		if !opts.Color {
			theme = "notty"
		}
		return style.RenderMarkdown(w, MarkdownReport(s), opts.Width, theme)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.Format)
	}
}

// HumanizeKey 将统计项的键转换为展示用标签，例如 avg_word_length -> Average word length
func HumanizeKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "avg" {
			words[i] = "average"
		}
	}
	label := strings.Join(words, " ")
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label
	}
	return string(unicode.ToUpper(r)) + label[size:]
}

// TypeLabel 返回格式的展示名称，源代码附带语言
func TypeLabel(s models.FileSummary) string {
	if s.Format == models.SourceCode && s.Language != "" {
		return fmt.Sprintf("%s (%s)", s.Format.DisplayName(), s.Language)
	}
	return s.Format.DisplayName()
}

// truncate 按显示宽度截断，width<=0 时原样返回
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// noteGroup 一条 insight 及其缩进的明细行（例如错误样例）
type noteGroup struct {
	Head     string
	Children []string
}

// groupNotes 将以两个空格开头的行归到前一条 insight 之下
func groupNotes(notes []string) []noteGroup {
	var groups []noteGroup
	for _, n := range notes {
		if child, ok := strings.CutPrefix(n, "  "); ok && len(groups) > 0 {
			last := &groups[len(groups)-1]
			last.Children = append(last.Children, strings.TrimSpace(child))
			continue
		}
		groups = append(groups, noteGroup{Head: strings.TrimSpace(n)})
	}
	return groups
}
