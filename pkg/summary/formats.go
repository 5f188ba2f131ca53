package summary

import (
	"fmt"
	"io"

	"github.com/yeisme/fsummary/pkg/analyzer"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/style"
)

// FormatEntry 一个可识别的扩展名
type FormatEntry struct {
	Extension string `json:"extension" yaml:"extension" toml:"extension"`
	Format    string `json:"format" yaml:"format" toml:"format"`
	Language  string `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
}

// Formats 按扩展名排序返回所有可识别的格式
func Formats() []FormatEntry {
	exts := analyzer.SupportedExtensions()
	out := make([]FormatEntry, 0, len(exts))
	for _, ext := range exts {
		name := "file." + ext
		e := FormatEntry{Extension: ext, Format: analyzer.Classify(name).DisplayName()}
		if lang := analyzer.LanguageFor(name); lang != nil {
			e.Language = lang.Name
		}
		out = append(out, e)
	}
	return out
}

// ExecuteFormatsCommand 输出支持的扩展名列表
func ExecuteFormatsCommand(format configs.OutputFormat, color bool, w io.Writer) error {
	entries := Formats()
	switch format {
	case configs.FormatJSON, configs.FormatYAML, configs.FormatTOML:
		// toml 顶层必须是表
		return configs.OutputData(map[string][]FormatEntry{"formats": entries}, format, w, color)
	case configs.FormatPlain:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, ".%s\t%s\t%s\n", e.Extension, e.Format, e.Language); err != nil {
				return err
			}
		}
		return nil
	default:
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{"." + e.Extension, e.Format, e.Language})
		}
		return style.NewPrinter(w, color).Table([]string{"extension", "format", "language"}, rows, 0)
	}
}
