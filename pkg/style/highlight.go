package style

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// palette 结构化数据高亮使用的一组样式
type palette struct {
	key, str, num, boolean, null, punct lipgloss.Style
}

func (p *Printer) palette() palette {
	return palette{
		key:     p.NewStyle().Foreground(ColorKey).Bold(true),
		str:     p.NewStyle().Foreground(ColorString),
		num:     p.NewStyle().Foreground(ColorNumber),
		boolean: p.NewStyle().Foreground(ColorBool),
		null:    p.NewStyle().Foreground(ColorNull),
		punct:   p.NewStyle().Foreground(ColorPunct),
	}
}

// scalar 尝试在 s[i:] 识别一个字面量（字符串、数字、布尔、null），
// 识别成功时写入着色后的 token 并返回下一个位置
func (pl palette) scalar(out *strings.Builder, s string, i int, nulls ...string) (int, bool) {
	ch := s[i]
	switch {
	case ch == '"' || ch == '\'':
		j := readQuoted(s, i)
		out.WriteString(pl.str.Render(s[i:j]))
		return j, true
	case ch == '-' || isDigit(ch):
		j := readNumber(s, i)
		if j == i || (j == i+1 && ch == '-') {
			return i, false
		}
		out.WriteString(pl.num.Render(s[i:j]))
		return j, true
	}
	for _, word := range []string{"true", "false"} {
		if hasWordAt(s, i, word) {
			out.WriteString(pl.boolean.Render(word))
			return i + len(word), true
		}
	}
	for _, word := range nulls {
		if hasWordAt(s, i, word) {
			out.WriteString(pl.null.Render(word))
			return i + len(word), true
		}
	}
	return i, false
}

// readQuoted 返回从 i 处引号开始的字符串 token 的结束位置（半开区间）
// 双引号支持反斜杠转义，单引号以连续两个单引号表示转义
func readQuoted(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch {
		case q == '"' && s[j] == '\\':
			j++
		case s[j] == q:
			if q == '\'' && j+1 < len(s) && s[j+1] == '\'' {
				j++
				continue
			}
			return j + 1
		}
	}
	return len(s)
}

// readNumber 返回从 i 开始的数字 token 的结束位置（半开区间）
func readNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	return j
}

// hasWordAt 判断 s[i:] 是否以完整单词 word 开头
func hasWordAt(s string, i int, word string) bool {
	if !strings.HasPrefix(s[i:], word) {
		return false
	}
	if i > 0 && isIdent(rune(s[i-1])) {
		return false
	}
	end := i + len(word)
	return end >= len(s) || !isIdent(rune(s[end]))
}

// indexUnquoted 返回 line 中第一个不在引号内的 target 位置，找不到返回 -1
func indexUnquoted(line string, target byte) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"', '\'':
			i = readQuoted(line, i) - 1
		case target:
			return i
		}
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdent(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
