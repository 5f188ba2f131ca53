package analyzer

import (
	"path/filepath"
	"sync"

	"github.com/boyter/scc/v3/processor"
	"github.com/yeisme/fsummary/pkg/models"
)

var sccOnce sync.Once

// CodeMetrics scc 计算的代码行、空行与圈复杂度
type CodeMetrics struct {
	Language   string
	Code       int64
	Blank      int64
	Comment    int64
	Complexity int64
}

// ComputeCodeMetrics 使用 scc 的 processor 统计源代码；无法识别语言或为二进制时返回 false
func ComputeCodeMetrics(filename, content string) (CodeMetrics, bool) {
	sccOnce.Do(func() {
		processor.ProcessConstants()
	})

	name := filepath.Base(filename)
	possible, _ := processor.DetectLanguage(name)
	if len(possible) == 0 {
		return CodeMetrics{}, false
	}

	job := &processor.FileJob{
		Filename:          name,
		Content:           []byte(content),
		Bytes:             int64(len(content)),
		PossibleLanguages: possible,
	}
	job.Language = processor.DetermineLanguage(job.Filename, job.Language, job.PossibleLanguages, job.Content)
	if job.Language == "" {
		return CodeMetrics{}, false
	}

	processor.CountStats(job)
	if job.Binary {
		return CodeMetrics{}, false
	}

	return CodeMetrics{
		Language:   job.Language,
		Code:       job.Code,
		Blank:      job.Blank,
		Comment:    job.Comment,
		Complexity: job.Complexity,
	}, true
}

// Insights 转换为展示用的统计项
func (m CodeMetrics) Insights() models.Insights {
	var in models.Insights
	in.AddCount("code_lines", int(m.Code))
	in.AddCount("blank_lines", int(m.Blank))
	in.AddCount("complexity", int(m.Complexity))
	return in
}
