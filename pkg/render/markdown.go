package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yeisme/fsummary/pkg/models"
)

// MarkdownReport 生成 Markdown 格式的报告文本
func MarkdownReport(s models.FileSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# File Summary: `%s`\n\n", s.Path)
	fmt.Fprintf(&b, "**Type:** %s  \n**Size:** %s\n\n", TypeLabel(s), humanize.Bytes(uint64(max(s.Size, 0))))

	b.WriteString("## Basic Statistics\n\n| Metric | Value |\n| --- | ---: |\n")
	fmt.Fprintf(&b, "| Lines | %d |\n| Words | %d |\n| Characters | %d |\n", s.Basic.Lines, s.Basic.Words, s.Basic.Chars)

	if len(s.DetailedStats) > 0 {
		b.WriteString("\n## Detailed Statistics\n\n| Stat | Value |\n| --- | ---: |\n")
		for _, st := range s.DetailedStats {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(HumanizeKey(st.Key)), escapeCell(st.Value))
		}
	}

	if len(s.KeyInsights) > 0 {
		b.WriteString("\n## Key Insights\n\n")
		for _, g := range groupNotes(s.KeyInsights) {
			fmt.Fprintf(&b, "- %s\n", g.Head)
			for _, c := range g.Children {
				fmt.Fprintf(&b, "  - `%s`\n", strings.ReplaceAll(c, "`", "'"))
			}
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
