// Package models 定义文件分析过程中使用的数据结构
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKind 文件内容类别，仅由扩展名决定
type FormatKind int

const (
	// Unknown 无法识别的扩展名，按纯文本方式分析
	Unknown FormatKind = iota
	// PlainText 纯文本文件（.txt）
	PlainText
	// Markdown 文档（.md）
	Markdown
	// Log 日志文件（.log）
	Log
	// SourceCode 源代码文件
	SourceCode
)

var formatNames = map[FormatKind]string{
	Unknown:    "unknown",
	PlainText:  "plain_text",
	Markdown:   "markdown",
	Log:        "log",
	SourceCode: "source_code",
}

var formatDisplayNames = map[FormatKind]string{
	Unknown:    "Unknown",
	PlainText:  "Plain Text",
	Markdown:   "Markdown",
	Log:        "Log File",
	SourceCode: "Source Code",
}

// String 返回机器可读的名称，例如 plain_text
func (k FormatKind) String() string {
	if s, ok := formatNames[k]; ok {
		return s
	}
	return formatNames[Unknown]
}

// DisplayName 返回用于终端展示的名称
func (k FormatKind) DisplayName() string {
	if s, ok := formatDisplayNames[k]; ok {
		return s
	}
	return formatDisplayNames[Unknown]
}

// MarshalText 使 json/yaml/toml 编码时输出名称而不是数字
func (k FormatKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText 解析 MarshalText 的输出
func (k *FormatKind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for kind, name := range formatNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown format kind %q", s)
}

// RawDocument 已加载到内存的文件内容，加载后不再修改
type RawDocument struct {
	Path    string // 原始路径
	Content string // 解码后的完整文本
	Size    int64  // 原始大小（字节）
}

// BasicStats 所有格式共享的基础统计
type BasicStats struct {
	Lines      uint64  `json:"lines" yaml:"lines" toml:"lines"`
	Words      uint64  `json:"words" yaml:"words" toml:"words"`
	Chars      uint64  `json:"chars" yaml:"chars" toml:"chars"`
	AvgWordLen float64 `json:"avg_word_length" yaml:"avg_word_length" toml:"avg_word_length"`
	AvgLineLen float64 `json:"avg_line_length" yaml:"avg_line_length" toml:"avg_line_length"`
}

// DetailedStat 一个带标签的统计值
type DetailedStat struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Insights 分析器的输出：有序的统计项和文字描述
// 插入顺序即展示顺序
type Insights struct {
	Stats []DetailedStat
	Notes []string
}

// AddStat 追加一个统计项；key 已存在时原地替换，保证 key 唯一
func (in *Insights) AddStat(key, value string) {
	for i := range in.Stats {
		if in.Stats[i].Key == key {
			in.Stats[i].Value = value
			return
		}
	}
	in.Stats = append(in.Stats, DetailedStat{Key: key, Value: value})
}

// AddCount 追加整数统计项
func (in *Insights) AddCount(key string, n int) {
	in.AddStat(key, strconv.Itoa(n))
}

// AddFloat 追加保留一位小数的统计项
func (in *Insights) AddFloat(key string, f float64) {
	in.AddStat(key, strconv.FormatFloat(f, 'f', 1, 64))
}

// AddPercent 以百分比形式追加比例（0.25 -> 25.0%）
func (in *Insights) AddPercent(key string, ratio float64) {
	in.AddStat(key, strconv.FormatFloat(ratio*100, 'f', 1, 64)+"%")
}

// AddNote 追加一条文字描述
func (in *Insights) AddNote(format string, args ...any) {
	if len(args) == 0 {
		in.Notes = append(in.Notes, format)
		return
	}
	in.Notes = append(in.Notes, fmt.Sprintf(format, args...))
}

// FileSummary 一次分析的最终结果，创建后不再修改
type FileSummary struct {
	Path          string         `json:"path" yaml:"path" toml:"path"`
	Format        FormatKind     `json:"format" yaml:"format" toml:"format"`
	Language      string         `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
	Size          int64          `json:"size" yaml:"size" toml:"size"`
	Basic         BasicStats     `json:"basic" yaml:"basic" toml:"basic"`
	DetailedStats []DetailedStat `json:"detailed_stats" yaml:"detailed_stats" toml:"detailed_stats"`
	KeyInsights   []string       `json:"key_insights" yaml:"key_insights" toml:"key_insights"`
}

// Stat 按 key 查找统计项
func (s FileSummary) Stat(key string) (string, bool) {
	for _, st := range s.DetailedStats {
		if st.Key == key {
			return st.Value, true
		}
	}
	return "", false
}
