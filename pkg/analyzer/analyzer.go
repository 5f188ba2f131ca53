package analyzer

import (
	"slices"

	"github.com/yeisme/fsummary/pkg/models"
)

// Analyze 执行完整的分析流程：识别格式 -> 基础统计 -> 对应分析器 -> 汇总
// 同一输入多次执行得到完全相同的结果
func Analyze(doc models.RawDocument) models.FileSummary {
	kind := Classify(doc.Path)
	stats := ComputeBasicStats(doc.Content)

	var in models.Insights
	switch kind {
	case models.Markdown:
		in = AnalyzeMarkdown(doc.Content).Insights()
	case models.Log:
		in = AnalyzeLog(doc.Content).Insights()
	case models.SourceCode:
		in = AnalyzeSource(doc.Content, LanguageFor(doc.Path)).Insights()
		if m, ok := ComputeCodeMetrics(doc.Path, doc.Content); ok {
			in = merge(in, m.Insights())
		}
	default:
		in = AnalyzePlainText(doc.Content).Insights()
	}

	return Aggregate(doc, kind, stats, in)
}

// Aggregate 合并格式、基础统计与分析器输出，生成不可变的 FileSummary
// 纯文本与未知格式额外给出平均词长与平均行长
func Aggregate(doc models.RawDocument, kind models.FormatKind, stats models.BasicStats, in models.Insights) models.FileSummary {
	var detailed models.Insights
	if kind == models.PlainText || kind == models.Unknown {
		detailed.AddFloat("avg_word_length", stats.AvgWordLen)
		detailed.AddFloat("avg_line_length", stats.AvgLineLen)
	}
	detailed = merge(detailed, in)
	if kind == models.Unknown {
		detailed.AddNote("Unknown file type, analyzed as plain text")
	}

	s := models.FileSummary{
		Path:          doc.Path,
		Format:        kind,
		Size:          doc.Size,
		Basic:         stats,
		DetailedStats: slices.Clone(detailed.Stats),
		KeyInsights:   slices.Clone(detailed.Notes),
	}
	if s.DetailedStats == nil {
		s.DetailedStats = []models.DetailedStat{}
	}
	if s.KeyInsights == nil {
		s.KeyInsights = []string{}
	}
	if v, ok := s.Stat("language"); ok {
		s.Language = v
	}
	return s
}

func merge(a, b models.Insights) models.Insights {
	out := models.Insights{
		Stats: slices.Clone(a.Stats),
		Notes: slices.Clone(a.Notes),
	}
	for _, st := range b.Stats {
		out.AddStat(st.Key, st.Value)
	}
	out.Notes = append(out.Notes, b.Notes...)
	return out
}
