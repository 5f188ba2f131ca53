package configs

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

// OutputConfig 报告输出配置
type OutputConfig struct {
	Format       string `mapstructure:"format"`        // text, plain, json, yaml, toml, markdown
	Color        bool   `mapstructure:"color"`         // 是否输出颜色
	Width        int    `mapstructure:"width"`         // 表格宽度，<=0 时自动探测终端宽度
	Theme        string `mapstructure:"theme"`         // markdown 渲染主题（glamour 风格名）
	InsightWidth int    `mapstructure:"insight_width"` // 单条 insight 的最大显示宽度，<=0 表示不截断
}

// LoadingConfig 文件加载配置
type LoadingConfig struct {
	MaxFileSize string `mapstructure:"max_file_size"` // 例如 10MB、512KiB；空或 0 表示不限制
	StripBOM    bool   `mapstructure:"strip_bom"`     // 去掉 UTF-8 BOM
}

// MaxFileSizeBytes 解析 MaxFileSize，返回字节数（0 表示不限制）
func (c LoadingConfig) MaxFileSizeBytes() (int64, error) {
	s := strings.TrimSpace(c.MaxFileSize)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return int64(n), nil
}

func setOutputConfigDefaults(v *viper.Viper) {
	v.SetDefault("output.format", string(FormatText))
	v.SetDefault("output.color", true)
	v.SetDefault("output.width", 0)
	v.SetDefault("output.theme", "dracula")
	v.SetDefault("output.insight_width", 120)
}

func setLoadConfigDefaults(v *viper.Viper) {
	v.SetDefault("load.max_file_size", "64MB")
	v.SetDefault("load.strip_bom", true)
}
