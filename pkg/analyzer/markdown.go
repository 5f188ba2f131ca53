package analyzer

import (
	"fmt"
	"strings"

	"github.com/yeisme/fsummary/pkg/models"
)

// Header Markdown 标题
type Header struct {
	Level int
	Text  string
}

// MarkdownReport Markdown 结构统计
type MarkdownReport struct {
	Headers    []Header
	Links      int
	Images     int
	CodeBlocks int
	// Unclosed 文档结束时仍处于代码块内
	Unclosed bool
}

// AnalyzeMarkdown 逐行扫描标题、链接、图片与围栏代码块
// 代码块内的行（以及围栏行本身）不参与标题/链接/图片统计
func AnalyzeMarkdown(text string) MarkdownReport {
	var r MarkdownReport
	inCode := false
	for line := range eachLine(text) {
		if isFence(line) {
			if !inCode {
				r.CodeBlocks++
			}
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}
		if h, ok := parseHeader(line); ok {
			r.Headers = append(r.Headers, h)
		}
		// 两种扫描相互独立，图片紧跟链接样式时可能重叠
		r.Links += strings.Count(line, "](")
		r.Images += strings.Count(line, "![")
	}
	r.Unclosed = inCode
	return r
}

// Insights 转换为展示用的统计项
func (r MarkdownReport) Insights() models.Insights {
	var in models.Insights
	in.AddCount("headers", len(r.Headers))
	in.AddCount("links", r.Links)
	in.AddCount("images", r.Images)
	in.AddCount("code_blocks", r.CodeBlocks)

	if len(r.Headers) > 0 {
		n := min(len(r.Headers), TopK)
		parts := make([]string, n)
		for i, h := range r.Headers[:n] {
			parts[i] = fmt.Sprintf("H%d: %s", h.Level, h.Text)
		}
		in.AddNote("Document structure: %s", strings.Join(parts, ", "))
	}
	if r.Unclosed {
		in.AddNote("Unclosed code block")
	}
	return in
}

// parseHeader 行首（忽略空白）1-6 个 # 且后跟空格或制表符
func parseHeader(line string) (Header, bool) {
	s := strings.TrimLeft(line, " \t")
	level := 0
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(s) {
		return Header{}, false
	}
	if s[level] != ' ' && s[level] != '\t' {
		return Header{}, false
	}
	return Header{Level: level, Text: strings.TrimSpace(s[level:])}, true
}

// isFence 整行仅为 ``` 围栏，可选跟随一个语言标记
func isFence(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "```") {
		return false
	}
	tag := strings.TrimSpace(strings.TrimLeft(s, "`"))
	return !strings.ContainsAny(tag, "` \t")
}
