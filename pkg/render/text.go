package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/list"
	"github.com/dustin/go-humanize"
	"github.com/yeisme/fsummary/pkg/models"
	"github.com/yeisme/fsummary/pkg/style"
)

const labelWidth = 8

func renderText(p *style.Printer, s models.FileSummary, opts Options) error {
	if err := p.Heading("File Summary"); err != nil {
		return err
	}
	fields := [][2]string{
		{"File", s.Path},
		{"Type", TypeLabel(s)},
		{"Size", humanize.Bytes(uint64(max(s.Size, 0)))},
	}
	for _, f := range fields {
		if err := p.Field(f[0], f[1], labelWidth); err != nil {
			return err
		}
	}
	if err := p.Blank(); err != nil {
		return err
	}

	if err := p.Heading("Basic Statistics"); err != nil {
		return err
	}
	basic := [][]string{
		{"Lines", humanize.Comma(int64(s.Basic.Lines))},
		{"Words", humanize.Comma(int64(s.Basic.Words))},
		{"Characters", humanize.Comma(int64(s.Basic.Chars))},
	}
	if err := p.Table([]string{"metric", "value"}, basic, opts.Width); err != nil {
		return err
	}

	if len(s.DetailedStats) > 0 {
		if err := p.Heading("Detailed Statistics"); err != nil {
			return err
		}
		rows := make([][]string, 0, len(s.DetailedStats))
		for _, st := range s.DetailedStats {
			rows = append(rows, []string{HumanizeKey(st.Key), st.Value})
		}
		if err := p.Table([]string{"stat", "value"}, rows, opts.Width); err != nil {
			return err
		}
	}

	if len(s.KeyInsights) > 0 {
		if err := p.Heading("Key Insights"); err != nil {
			return err
		}
		var items []any
		for _, g := range groupNotes(s.KeyInsights) {
			items = append(items, truncate(g.Head, opts.InsightWidth))
			if len(g.Children) == 0 {
				continue
			}
			children := make([]any, len(g.Children))
			for i, c := range g.Children {
				children[i] = truncate(c, opts.InsightWidth)
			}
			items = append(items, list.New(children...).Enumerator(list.Dash))
		}
		if err := p.List(items...); err != nil {
			return err
		}
	}
	return nil
}

// renderPlain 无样式的纯文本，每行一个字段
func renderPlain(w io.Writer, s models.FileSummary) error {
	bw := &errWriter{w: w}
	bw.printf("File Summary: %s\n", s.Path)
	bw.printf("Type: %s\n", TypeLabel(s))

	bw.printf("\nBasic Statistics:\n")
	bw.printf("Lines: %s\n", strconv.FormatUint(s.Basic.Lines, 10))
	bw.printf("Words: %s\n", strconv.FormatUint(s.Basic.Words, 10))
	bw.printf("Characters: %s\n", strconv.FormatUint(s.Basic.Chars, 10))

	if len(s.DetailedStats) > 0 {
		bw.printf("\nDetailed Statistics:\n")
		for _, st := range s.DetailedStats {
			bw.printf("%s: %s\n", HumanizeKey(st.Key), st.Value)
		}
	}
	if len(s.KeyInsights) > 0 {
		bw.printf("\nKey Insights:\n")
		for _, n := range s.KeyInsights {
			bw.printf("   • %s\n", n)
		}
	}
	return bw.err
}

// errWriter 记录第一次写入错误，之后的写入直接跳过
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
