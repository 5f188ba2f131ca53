// Package style 提供多种样式化输出功能
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色，用于标题背景和列表符号
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 强调背景上的文本色
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 主要文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 次要文本颜色，用于标签和说明
	ColorMuted = lipgloss.Color("#9CA3AF")

	// 边框颜色
	ColorBorder = lipgloss.Color("#444444")

	// 错误强调色
	ColorDanger = lipgloss.Color("#FF5555")

	// 警告强调色
	ColorWarning = lipgloss.Color("#F59E0B")

	// 成功色
	ColorSuccess = lipgloss.Color("#22C55E")

	// 结构化数据高亮颜色
	ColorKey    = lipgloss.Color("#55bcf4ff") // 键名
	ColorString = ColorAccentText             // 字符串值
	ColorNumber = lipgloss.Color("#d4ec19ff") // 数字
	ColorBool   = lipgloss.Color("#dfab49ff") // 布尔
	ColorNull   = lipgloss.Color("#6272A4")   // null
	ColorPunct  = lipgloss.Color("#6B7280")   // 标点
)

// Printer 绑定输出目标和 lipgloss 渲染器
// color 为 false 时强制使用 ASCII 配色，输出不含转义序列
type Printer struct {
	w  io.Writer
	re *lipgloss.Renderer
}

// NewPrinter 创建一个写入 w 的 Printer
func NewPrinter(w io.Writer, color bool) *Printer {
	re := lipgloss.NewRenderer(w)
	if !color {
		re.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, re: re}
}

// Writer 返回输出目标
func (p *Printer) Writer() io.Writer { return p.w }

// NewStyle 基于当前渲染器创建样式
func (p *Printer) NewStyle() lipgloss.Style { return p.re.NewStyle() }
