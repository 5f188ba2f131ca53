package style

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// PrintYAML 以高亮的方式输出 YAML
// v 为 string / []byte 时先解析再重新序列化，以规范化缩进
func PrintYAML(w io.Writer, v any) error {
	return NewPrinter(w, true).YAML(v)
}

// YAML 参见 PrintYAML
func (p *Printer) YAML(v any) error {
	pretty, err := FormatYAML(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.w, p.colorizeYAML(pretty))
	return err
}

// FormatYAML 返回两空格缩进的 YAML 文本
func FormatYAML(v any) (string, error) {
	var raw []byte
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		raw = []byte(x)
	case []byte:
		raw = x
	}
	if raw != nil {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return "null\n", nil
		}
		var obj any
		if err := yaml.Unmarshal(raw, &obj); err != nil {
			return "", err
		}
		v = obj
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// colorizeYAML 按行着色：缩进与列表符号，第一个不在引号内的冒号之前为键
func (p *Printer) colorizeYAML(s string) string {
	pl := p.palette()
	var out strings.Builder
	for line := range strings.Lines(s) {
		body := strings.TrimRight(line, "\n")
		trimmed := strings.TrimLeft(body, " \t")
		out.WriteString(body[:len(body)-len(trimmed)])

		for strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			out.WriteString(pl.punct.Render("-"))
			if trimmed == "-" {
				trimmed = ""
				break
			}
			out.WriteByte(' ')
			trimmed = trimmed[2:]
		}

		if idx := indexUnquoted(trimmed, ':'); idx > 0 && (idx == len(trimmed)-1 || trimmed[idx+1] == ' ') {
			out.WriteString(pl.key.Render(trimmed[:idx]))
			out.WriteString(pl.punct.Render(":"))
			trimmed = trimmed[idx+1:]
		}
		p.yamlValue(&out, pl, trimmed)

		if len(body) < len(line) {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (p *Printer) yamlValue(out *strings.Builder, pl palette, s string) {
	for i := 0; i < len(s); {
		if next, ok := pl.scalar(out, s, i, "null", "~"); ok {
			i = next
			continue
		}
		out.WriteByte(s[i])
		i++
	}
}
