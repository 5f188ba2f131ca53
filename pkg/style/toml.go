package style

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// PrintTOML 以高亮的方式输出 TOML
// v 为 string / []byte 时先解析再重新序列化
func PrintTOML(w io.Writer, v any) error {
	return NewPrinter(w, true).TOML(v)
}

// TOML 参见 PrintTOML
func (p *Printer) TOML(v any) error {
	pretty, err := FormatTOML(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.w, p.colorizeTOML(pretty))
	return err
}

// FormatTOML 返回规范化的 TOML 文本
func FormatTOML(v any) (string, error) {
	var raw []byte
	switch x := v.(type) {
	case nil:
		return "\n", nil
	case string:
		raw = []byte(x)
	case []byte:
		raw = x
	}
	if raw != nil {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return "\n", nil
		}
		var obj map[string]any
		if err := toml.Unmarshal(raw, &obj); err != nil {
			return "", err
		}
		v = obj
	}

	b, err := toml.Marshal(v)
	if err != nil {
		return "", err
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return string(b), nil
}

// colorizeTOML 按行着色：注释、表头 [..]、键 = 值
func (p *Printer) colorizeTOML(s string) string {
	pl := p.palette()
	var out strings.Builder
	for line := range strings.Lines(s) {
		body := strings.TrimRight(line, "\n")
		trimmed := strings.TrimLeft(body, " \t")
		out.WriteString(body[:len(body)-len(trimmed)])

		switch {
		case strings.HasPrefix(trimmed, "#"):
			out.WriteString(pl.punct.Render(trimmed))
		case strings.HasPrefix(trimmed, "["):
			out.WriteString(pl.punct.Render(trimmed))
		default:
			if eq := indexUnquoted(trimmed, '='); eq > 0 {
				out.WriteString(pl.key.Render(strings.TrimSpace(trimmed[:eq])))
				out.WriteString(" " + pl.punct.Render("=") + " ")
				p.tomlValue(&out, pl, strings.TrimSpace(trimmed[eq+1:]))
			} else {
				out.WriteString(trimmed)
			}
		}

		if len(body) < len(line) {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (p *Printer) tomlValue(out *strings.Builder, pl palette, s string) {
	for i := 0; i < len(s); {
		if strings.IndexByte("[]{},", s[i]) >= 0 {
			out.WriteString(pl.punct.Render(string(s[i])))
			i++
			continue
		}
		if next, ok := pl.scalar(out, s, i); ok {
			i = next
			continue
		}
		out.WriteByte(s[i])
		i++
	}
}
