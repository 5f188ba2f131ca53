package style

import (
	"fmt"
	"strings"
)

// Heading 打印一个区块标题
func (p *Printer) Heading(title string) error {
	s := p.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(p.w, s.Render(strings.ToUpper(title)))
	return err
}

// Field 打印一行 “标签: 值”，标签按 labelWidth 左对齐
func (p *Printer) Field(label, value string, labelWidth int) error {
	labelStyle := p.NewStyle().Foreground(ColorMuted).Width(labelWidth)
	valueStyle := p.NewStyle().Foreground(ColorText).Bold(true)
	_, err := fmt.Fprintf(p.w, "  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
	return err
}

// Blank 输出一个空行
func (p *Printer) Blank() error {
	_, err := fmt.Fprintln(p.w)
	return err
}
