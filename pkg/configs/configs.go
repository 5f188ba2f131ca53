// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version"`
	Log     LogConfig     `mapstructure:"log"`
	App     AppConfig     `mapstructure:"app"`
	Output  OutputConfig  `mapstructure:"output"`
	Load    LoadingConfig `mapstructure:"load"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setOutputConfigDefaults(v)
	setLoadConfigDefaults(v)
	setWatchConfigDefaults(v)
}

var (
	globalConfig *Config
	globalViper  *viper.Viper
)

// findConfigFile 按搜索路径查找不同格式的配置文件，找不到返回空串
func findConfigFile() string {
	// 配置文件搜索路径
	searchPaths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/fsummary",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/fsummary",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/fsummary")
	}

	// 配置文件名和扩展名的组合
	configNames := []string{".fsummary", "fsummary"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if st, err := os.Stat(configFile); err == nil && !st.IsDir() {
					return configFile
				}
			}
		}
	}

	return ""
}

// Load 使用给定的 viper 实例加载配置；configPath 为空时按搜索路径查找
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	// 设置环境变量前缀，例如 FSUMMARY_OUTPUT_FORMAT
	v.SetEnvPrefix("FSUMMARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return &config, nil
}

// LoadConfig 加载配置文件并记录为全局配置
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	config, err := Load(v, configPath)
	if err != nil {
		return nil, err
	}
	globalConfig = config
	globalViper = v
	return config, nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if _, err := ParseOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := c.Load.MaxFileSizeBytes(); err != nil {
		return fmt.Errorf("load.max_file_size: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative: %d", c.Watch.Debounce)
	}
	return nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("无法加载配置: %v", err))
		}
		return config
	}
	return globalConfig
}

// GetViper 返回加载全局配置时使用的 viper 实例
func GetViper() *viper.Viper {
	if globalViper == nil {
		_ = GetConfig()
	}
	return globalViper
}
