package analyzer

import (
	"regexp"
	"strings"
)

// Language 描述一种源代码语言的声明与注释规则
// 所有正则的第一个捕获组为标识符名称；为 nil 表示该语言没有对应结构
type Language struct {
	Name    string
	Func    *regexp.Regexp // 函数定义：关键字 + 标识符 + 参数列表起始
	Struct  *regexp.Regexp // 结构体 / 类定义
	Enum    *regexp.Regexp // 枚举定义
	Import  *regexp.Regexp // 模块导入（行首）
	Comment []string       // 单行注释前缀
}

var (
	rust = &Language{
		Name:    "Rust",
		Func:    regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?(?:(?:const|async|unsafe|extern(?:\s+"[^"]*")?)\s+)*fn\s+([A-Za-z_][A-Za-z0-9_]*)\s*[(<]`),
		Struct:  regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?struct\s+([A-Za-z_][A-Za-z0-9_]*)`),
		Enum:    regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?enum\s+([A-Za-z_][A-Za-z0-9_]*)`),
		Import:  regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?use\s`),
		Comment: []string{"//"},
	}

	golang = &Language{
		Name:    "Go",
		Func:    regexp.MustCompile(`^func\s+(?:\([^)]*\)\s*)?([A-Za-z_][A-Za-z0-9_]*)\s*[\[(]`),
		Struct:  regexp.MustCompile(`^\s*type\s+([A-Za-z_][A-Za-z0-9_]*)(?:\[[^\]]*\])?\s+struct\b`),
		Import:  regexp.MustCompile(`^\s*import\b`),
		Comment: []string{"//"},
	}

	python = &Language{
		Name:    "Python",
		Func:    regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		Struct:  regexp.MustCompile(`^\s*class\s+([A-Za-z_][A-Za-z0-9_]*)`),
		Import:  regexp.MustCompile(`^\s*(?:import|from)\s`),
		Comment: []string{"#"},
	}

	javascript = &Language{
		Name:    "JavaScript",
		Func:    regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\*?\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`),
		Struct:  regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?class\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
		Import:  regexp.MustCompile(`^\s*import\b`),
		Comment: []string{"//"},
	}

	typescript = &Language{
		Name:    "TypeScript",
		Func:    regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\*?\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*[(<]`),
		Struct:  regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
		Enum:    regexp.MustCompile(`^\s*(?:export\s+)?(?:declare\s+)?(?:const\s+)?enum\s+([A-Za-z_$][A-Za-z0-9_$]*)`),
		Import:  regexp.MustCompile(`^\s*import\b`),
		Comment: []string{"//"},
	}
)

// ExtToLanguage 源代码扩展名（小写，不含点）到语言规则的映射
var ExtToLanguage = map[string]*Language{
	"rs":  rust,
	"go":  golang,
	"py":  python,
	"js":  javascript,
	"mjs": javascript,
	"cjs": javascript,
	"jsx": javascript,
	"ts":  typescript,
	"tsx": typescript,
}

// 捕获第一个分组，未匹配返回空串
func captureName(re *regexp.Regexp, line string) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(line)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func hasSingleLineCommentPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
