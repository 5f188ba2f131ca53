package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// PrintJSON 以缩进并高亮的方式输出 JSON
// v 为 string / []byte 时视为原始 JSON 文本，其他值先用 encoding/json 编码
func PrintJSON(w io.Writer, v any) error {
	return NewPrinter(w, true).JSON(v)
}

// JSON 参见 PrintJSON
func (p *Printer) JSON(v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(p.w, p.colorizeJSON(pretty))
	return err
}

// FormatJSON 返回以换行结尾的缩进 JSON 文本
func FormatJSON(v any) (string, error) {
	var src []byte
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		src = []byte(x)
	case []byte:
		src = x
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	}

	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// colorizeJSON 对缩进好的 JSON 着色，空白原样保留
// 后面紧跟冒号的字符串视为键名
func (p *Printer) colorizeJSON(s string) string {
	pl := p.palette()
	var out strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch == '"' {
			j := readQuoted(s, i)
			rest := strings.TrimLeft(s[j:], " \t\r\n")
			if strings.HasPrefix(rest, ":") {
				out.WriteString(pl.key.Render(s[i:j]))
			} else {
				out.WriteString(pl.str.Render(s[i:j]))
			}
			i = j
			continue
		}
		if strings.IndexByte("{}[]:,", ch) >= 0 {
			out.WriteString(pl.punct.Render(string(ch)))
			i++
			continue
		}
		if next, ok := pl.scalar(&out, s, i, "null"); ok {
			i = next
			continue
		}
		out.WriteByte(ch)
		i++
	}
	return out.String()
}
