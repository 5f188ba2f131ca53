package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/yeisme/fsummary/pkg/models"
)

// LogLevels 按优先级从高到低排列
var LogLevels = []string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}

// errorTokens 出现任意一个即视为错误行（区分大小写）
var errorTokens = []string{"ERROR", "EXCEPTION", "FAIL"}

// timestampRe 行首时间戳：日期[时间[小数][时区]] 或 纯时间，可被 [] 包裹
// 之后必须是行尾或分隔符
var timestampRe = regexp.MustCompile(
	`^\[?(?:(\d{4}[-/]\d{2}[-/]\d{2})(?:[T ](\d{2}:\d{2}:\d{2})(?:[.,](\d{1,9}))?(Z|[+-]\d{2}:?\d{2})?)?|(\d{2}:\d{2}:\d{2})(?:[.,](\d{1,9}))?)\]?(?:$|[\s\]|,;])`)

// Timestamp 解析出的时间戳；Raw 为归一化后的文本
type Timestamp struct {
	Raw  string
	Time time.Time

	// Dated 带日期；纯时间没有日期，与带日期的时间戳不可比较
	Dated bool
}

// tsRange 一类时间戳的最早与最晚值
type tsRange struct {
	earliest, latest *Timestamp
}

func (r *tsRange) add(ts Timestamp) {
	if r.earliest == nil || ts.Time.Before(r.earliest.Time) {
		t := ts
		r.earliest = &t
	}
	if r.latest == nil || ts.Time.After(r.latest.Time) {
		t := ts
		r.latest = &t
	}
}

// LogReport 日志分析结果
type LogReport struct {
	// LevelCounts 每行至多计入一个级别（优先级最高者）
	LevelCounts map[string]int
	// ErrorLines 包含 ERROR/EXCEPTION/FAIL 的行数，与 ERROR 级别独立统计
	ErrorLines   int
	ErrorSamples []string
	Timestamps   int
	Unique       int

	// Earliest/Latest 只在带日期的时间戳中取；没有带日期的时间戳时才使用纯时间
	Earliest *Timestamp
	Latest   *Timestamp
}

// AnalyzeLog 统计日志级别、错误行与时间戳范围
func AnalyzeLog(text string) LogReport {
	r := LogReport{LevelCounts: make(map[string]int)}
	seen := make(map[string]struct{})
	var dated, bare tsRange
	for line := range eachLine(text) {
		if lvl := lineLevel(line); lvl != "" {
			r.LevelCounts[lvl]++
		}
		if isErrorLine(line) {
			r.ErrorLines++
			if len(r.ErrorSamples) < TopK {
				r.ErrorSamples = append(r.ErrorSamples, line)
			}
		}

		ts, ok := parseTimestamp(line)
		if !ok {
			continue
		}
		r.Timestamps++
		seen[ts.Raw] = struct{}{}
		if ts.Dated {
			dated.add(ts)
		} else {
			bare.add(ts)
		}
	}
	r.Unique = len(seen)
	if dated.earliest != nil {
		r.Earliest, r.Latest = dated.earliest, dated.latest
	} else {
		r.Earliest, r.Latest = bare.earliest, bare.latest
	}
	return r
}

// Insights 转换为展示用的统计项
func (r LogReport) Insights() models.Insights {
	var in models.Insights
	var levels []string
	for _, lvl := range LogLevels {
		n := r.LevelCounts[lvl]
		if n == 0 {
			continue
		}
		in.AddCount("level_"+strings.ToLower(lvl), n)
		levels = append(levels, fmt.Sprintf("%s: %d", lvl, n))
	}
	in.AddCount("error_lines", r.ErrorLines)
	in.AddCount("timestamps", r.Timestamps)
	in.AddCount("unique_timestamps", r.Unique)

	if len(levels) > 0 {
		in.AddNote("Log levels: %s", strings.Join(levels, ", "))
	}
	if r.Earliest != nil && r.Latest != nil {
		in.AddNote("Time range: %s to %s", r.Earliest.Raw, r.Latest.Raw)
	}
	if r.ErrorLines > 0 {
		in.AddNote("Sample errors found: %d total", r.ErrorLines)
		for i, line := range r.ErrorSamples {
			in.AddNote("  %d: %s", i+1, line)
		}
	}
	return in
}

func lineLevel(line string) string {
	for _, lvl := range LogLevels {
		if containsWord(line, lvl) {
			return lvl
		}
	}
	return ""
}

func isErrorLine(line string) bool {
	for _, tok := range errorTokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}

// containsWord 判断 word 是否作为完整单词出现（前后不是字母、数字或下划线）
func containsWord(s, word string) bool {
	for off := 0; off < len(s); {
		i := strings.Index(s[off:], word)
		if i < 0 {
			return false
		}
		start := off + i
		end := start + len(word)
		if !isWordRuneBefore(s, start) && !isWordRuneAfter(s, end) {
			return true
		}
		off = start + 1
	}
	return false
}

func isWordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func isWordRuneAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parseTimestamp 识别行首时间戳，归一化（/ -> -，T -> 空格，, -> .）后解析
func parseTimestamp(line string) (Timestamp, bool) {
	m := timestampRe.FindStringSubmatch(line)
	if m == nil {
		return Timestamp{}, false
	}
	date, clock, frac, zone := m[1], m[2], m[3], m[4]
	if date == "" {
		clock, frac = m[5], m[6]
	}

	var raw, layout strings.Builder
	if date != "" {
		raw.WriteString(strings.ReplaceAll(date, "/", "-"))
		layout.WriteString("2006-01-02")
		if clock != "" {
			raw.WriteString(" ")
			layout.WriteString(" ")
		}
	}
	if clock != "" {
		raw.WriteString(clock)
		layout.WriteString("15:04:05")
		if frac != "" {
			raw.WriteString("." + frac)
			layout.WriteString("." + strings.Repeat("0", len(frac)))
		}
		if zone != "" {
			raw.WriteString(zone)
			switch {
			case zone == "Z":
				layout.WriteString("Z07:00")
			case strings.Contains(zone, ":"):
				layout.WriteString("-07:00")
			default:
				layout.WriteString("-0700")
			}
		}
	}

	t, err := time.Parse(layout.String(), raw.String())
	if err != nil {
		return Timestamp{}, false
	}
	return Timestamp{Raw: raw.String(), Time: t, Dated: date != ""}, true
}
