package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yeisme/fsummary/pkg/style"
	"gopkg.in/yaml.v3"
)

// OutputFormat 输出格式类型
type OutputFormat string

const (
	// FormatYAML represents the YAML output format.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON represents the JSON output format.
	FormatJSON OutputFormat = "json"
	// FormatTOML represents the TOML output format.
	FormatTOML OutputFormat = "toml"
	// FormatText represents the styled terminal output format.
	FormatText OutputFormat = "text"
	// FormatPlain represents the uncolored plain text output format.
	FormatPlain OutputFormat = "plain"
	// FormatMarkdown represents the markdown report output format.
	FormatMarkdown OutputFormat = "markdown"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{
		string(FormatText), string(FormatPlain), string(FormatJSON),
		string(FormatYAML), string(FormatTOML), string(FormatMarkdown),
	}
}

// ParseOutputFormat 解析输出格式字符串
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "text", "txt", "":
		return FormatText, nil
	case "plain":
		return FormatPlain, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// GetOutputFormatFromFlags 从命令行标志获取输出格式，未指定时返回 fallback
func GetOutputFormatFromFlags(cmd *cobra.Command, fallback OutputFormat) (OutputFormat, error) {
	// 首先检查 --format 标志
	if formatFlag, _ := cmd.Flags().GetString("format"); formatFlag != "" {
		return ParseOutputFormat(formatFlag)
	}

	// 检查具体的格式标志
	shorthands := []OutputFormat{FormatYAML, FormatJSON, FormatTOML, FormatText, FormatPlain, FormatMarkdown}
	for _, f := range shorthands {
		if set, _ := cmd.Flags().GetBool(string(f)); set {
			return f, nil
		}
	}

	return fallback, nil
}

// OutputData 根据指定格式输出数据（用于配置展示）
func OutputData(data any, format OutputFormat, out io.Writer, color bool) error {
	switch format {
	case FormatYAML:
		b, err := encodeYAML(data)
		if err != nil {
			return err
		}
		if color {
			return style.PrintYAML(out, b)
		}
		_, err = out.Write(b)
		return err

	case FormatJSON:
		jsonData, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		if color {
			return style.PrintJSON(out, jsonData)
		}
		_, err = fmt.Fprintln(out, string(jsonData))
		return err

	case FormatTOML:
		tomlData, err := toml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal to TOML: %w", err)
		}
		_, err = out.Write(tomlData)
		return err

	case FormatText, FormatPlain, FormatMarkdown:
		// 简单的文本格式输出
		_, err := fmt.Fprintf(out, "%+v\n", data)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func encodeYAML(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close YAML encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// GetConfigSection 从 viper 实例获取指定配置段
func GetConfigSection(v *viper.Viper, section string, showAll bool) (any, error) {
	if showAll {
		// 返回完整的配置结构体（包含默认值）
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}

		if section == "" {
			return config, nil
		}

		// 使用反射动态查找配置段
		val := reflect.ValueOf(config)
		typ := val.Type()
		lowerSection := strings.ToLower(section)

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("mapstructure")
			if strings.ToLower(tag) == lowerSection {
				return val.Field(i).Interface(), nil
			}
		}

		return nil, fmt.Errorf("unknown configuration section: %s", section)
	}

	// 返回 viper 的原始数据
	lowerSection := strings.ToLower(section)

	if lowerSection == "" {
		// 显示所有配置
		return v.AllSettings(), nil
	}

	// 检查 section 是否是 viper 中的一个顶级键或已设置的键
	if v.IsSet(lowerSection) {
		return v.Get(lowerSection), nil
	}

	return nil, fmt.Errorf("unknown or unset configuration section %s", section)
}

// CreateDefaultConfig 将默认配置写入 path；文件已存在且 force 为 false 时返回错误
func CreateDefaultConfig(path string, format OutputFormat, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}

	v := viper.New()
	setDefaults(v)
	settings := v.AllSettings()

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = encodeYAML(settings)
	case FormatJSON:
		data, err = json.MarshalIndent(settings, "", "  ")
	case FormatTOML:
		data, err = toml.Marshal(settings)
	default:
		return fmt.Errorf("format %s is not supported for config files", format)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}
