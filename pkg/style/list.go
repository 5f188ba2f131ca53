package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/list"
)

// List 渲染一个圆点列表，items 可以嵌套 list.New() 作为子列表
func (p *Printer) List(items ...any) error {
	if len(items) == 0 {
		return nil
	}
	enumeratorStyle := p.NewStyle().
		Foreground(ColorAccentPrimary).
		MarginRight(1)
	itemStyle := p.NewStyle().Foreground(ColorText)

	l := list.New(items...).
		Enumerator(list.Bullet).
		EnumeratorStyle(enumeratorStyle).
		ItemStyle(itemStyle)

	_, err := fmt.Fprintln(p.w, l)
	return err
}
