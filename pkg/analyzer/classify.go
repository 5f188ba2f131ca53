// Package analyzer 实现单文件分析引擎：格式识别、基础统计、
// 各格式的专用分析器以及汇总
package analyzer

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/yeisme/fsummary/pkg/models"
)

// extToFormat 非源代码类扩展名
var extToFormat = map[string]models.FormatKind{
	"txt":      models.PlainText,
	"md":       models.Markdown,
	"markdown": models.Markdown,
	"log":      models.Log,
}

// Classify 根据文件名的扩展名（最后一个点之后的部分，忽略大小写）判断格式
// 无扩展名或未知扩展名返回 Unknown
func Classify(filename string) models.FormatKind {
	ext := extension(filename)
	if ext == "" {
		return models.Unknown
	}
	if kind, ok := extToFormat[ext]; ok {
		return kind
	}
	if _, ok := ExtToLanguage[ext]; ok {
		return models.SourceCode
	}
	return models.Unknown
}

// LanguageFor 返回源代码文件对应的语言规则，非源代码返回 nil
func LanguageFor(filename string) *Language {
	return ExtToLanguage[extension(filename)]
}

// SupportedExtensions 返回所有可识别的扩展名（已排序）
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extToFormat)+len(ExtToLanguage))
	for ext := range extToFormat {
		exts = append(exts, ext)
	}
	for ext := range ExtToLanguage {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func extension(filename string) string {
	base := filepath.Base(filename)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}
