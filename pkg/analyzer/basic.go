package analyzer

import (
	"iter"
	"strings"
	"unicode"

	"github.com/yeisme/fsummary/pkg/models"
)

// ComputeBasicStats 单次遍历文本，统计行数、单词数、字符数（按 Unicode 码点）
// 末尾的换行不产生额外的空行；空文本返回全零
func ComputeBasicStats(text string) models.BasicStats {
	var st models.BasicStats
	if text == "" {
		return st
	}

	var wordChars uint64
	inWord := false
	for _, r := range text {
		st.Chars++
		if r == '\n' {
			st.Lines++
		}
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			st.Words++
			inWord = true
		}
		wordChars++
	}
	if !strings.HasSuffix(text, "\n") {
		st.Lines++
	}

	if st.Words > 0 {
		st.AvgWordLen = float64(wordChars) / float64(st.Words)
	}
	if st.Lines > 0 {
		st.AvgLineLen = float64(st.Chars) / float64(st.Lines)
	}
	return st
}

// eachLine 逐行迭代，去掉行尾的 \n 与 \r，末尾换行不产生空行
func eachLine(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
