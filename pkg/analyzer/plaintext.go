package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yeisme/fsummary/pkg/models"
)

const (
	// TopK 各类截断列表的默认长度
	TopK = 5
	// minWordLen 归一化后短于该长度的单词不计入词频
	minWordLen = 3
)

// WordCount 单词及其出现次数
type WordCount struct {
	Word  string
	Count int
}

// PlainTextReport 纯文本分析结果
type PlainTextReport struct {
	// Frequencies 按首次出现顺序排列的词频
	Frequencies []WordCount
	index       map[string]int
}

// AnalyzePlainText 统计归一化单词（小写、去掉首尾标点）的词频
func AnalyzePlainText(text string) PlainTextReport {
	r := PlainTextReport{index: make(map[string]int)}
	for field := range strings.FieldsSeq(text) {
		w := normalizeWord(field)
		if utf8.RuneCountInString(w) < minWordLen {
			continue
		}
		if i, ok := r.index[w]; ok {
			r.Frequencies[i].Count++
			continue
		}
		r.index[w] = len(r.Frequencies)
		r.Frequencies = append(r.Frequencies, WordCount{Word: w, Count: 1})
	}
	return r
}

// Count 返回单词的出现次数（参数需为归一化形式）
func (r PlainTextReport) Count(word string) int {
	if i, ok := r.index[word]; ok {
		return r.Frequencies[i].Count
	}
	return 0
}

// TopWords 取出现次数最多的 k 个单词，次数相同时先出现者优先
// 使用有界插入选择，不对全部词频排序
func (r PlainTextReport) TopWords(k int) []WordCount {
	if k <= 0 {
		return nil
	}
	top := make([]WordCount, 0, k)
	for _, wc := range r.Frequencies {
		if len(top) == k && wc.Count <= top[k-1].Count {
			continue
		}
		// 插入到所有次数 >= 当前值的元素之后
		pos := len(top)
		for pos > 0 && top[pos-1].Count < wc.Count {
			pos--
		}
		if len(top) < k {
			top = append(top, WordCount{})
		}
		copy(top[pos+1:], top[pos:len(top)-1])
		top[pos] = wc
	}
	return top
}

// Insights 转换为展示用的统计项
func (r PlainTextReport) Insights() models.Insights {
	var in models.Insights
	in.AddCount("unique_words", len(r.Frequencies))
	if top := r.TopWords(TopK); len(top) > 0 {
		parts := make([]string, len(top))
		for i, wc := range top {
			parts[i] = fmt.Sprintf("%s (%d)", wc.Word, wc.Count)
		}
		in.AddNote("Most frequent words: %s", strings.Join(parts, ", "))
	}
	return in
}

// normalizeWord 小写并去掉首尾的标点与符号（$、+、` 等）
func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimFunc(s, isEdgeRune))
}

func isEdgeRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
