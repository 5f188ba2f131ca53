package analyzer

import (
	"strings"

	"github.com/yeisme/fsummary/pkg/models"
)

// SourceReport 源代码结构统计
type SourceReport struct {
	Language     string
	Functions    []string
	Structs      []string
	Enums        []string
	Imports      int
	CommentLines int
	NonBlank     int
	// CommentRatio = 注释行 / 非空行，无非空行时为 0
	CommentRatio float64
	Todos        int
	TodoSamples  []string
}

// AnalyzeSource 按语言规则逐行识别函数、结构体、枚举、导入与注释
// lang 为 nil 时按 Rust 规则处理
func AnalyzeSource(text string, lang *Language) SourceReport {
	if lang == nil {
		lang = rust
	}
	r := SourceReport{Language: lang.Name}
	for line := range eachLine(text) {
		if isBlank(line) {
			continue
		}
		r.NonBlank++

		trimmed := strings.TrimSpace(line)
		if hasSingleLineCommentPrefix(trimmed, lang.Comment) {
			r.CommentLines++
			if strings.Contains(trimmed, "TODO") || strings.Contains(trimmed, "FIXME") {
				r.Todos++
				if len(r.TodoSamples) < TopK {
					r.TodoSamples = append(r.TodoSamples, trimmed)
				}
			}
			continue
		}

		if name := captureName(lang.Func, line); name != "" {
			r.Functions = append(r.Functions, name)
		}
		if name := captureName(lang.Struct, line); name != "" {
			r.Structs = append(r.Structs, name)
		}
		if name := captureName(lang.Enum, line); name != "" {
			r.Enums = append(r.Enums, name)
		}
		if lang.Import != nil && lang.Import.MatchString(line) {
			r.Imports++
		}
	}
	if r.NonBlank > 0 {
		r.CommentRatio = float64(r.CommentLines) / float64(r.NonBlank)
	}
	return r
}

// Insights 转换为展示用的统计项
func (r SourceReport) Insights() models.Insights {
	var in models.Insights
	in.AddStat("language", r.Language)
	in.AddCount("functions", len(r.Functions))
	in.AddCount("structs", len(r.Structs))
	in.AddCount("enums", len(r.Enums))
	in.AddCount("imports", r.Imports)
	in.AddCount("comment_lines", r.CommentLines)
	in.AddPercent("comment_ratio", r.CommentRatio)
	in.AddCount("todos", r.Todos)

	addNames(&in, "Functions", r.Functions)
	addNames(&in, "Structs", r.Structs)
	addNames(&in, "Enums", r.Enums)
	if r.Todos > 0 {
		in.AddNote("TODOs/FIXMEs found: %d", r.Todos)
		for _, s := range r.TodoSamples {
			in.AddNote("  %s", s)
		}
	}
	return in
}

// addNames 追加 "Label (N): a, b"，名称最多列出 TopK 个
func addNames(in *models.Insights, label string, names []string) {
	if len(names) == 0 {
		return
	}
	n := min(len(names), TopK)
	in.AddNote("%s (%d): %s", label, len(names), strings.Join(names[:n], ", "))
}
