// Package context 保存一次命令执行所需的配置、viper 实例和日志记录器
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/utils/log"
)

// GlobalFlags 根命令的全局标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	CPUProfile    string
	Trace         string
	VersionEnable bool
}

// AppContext 命令执行上下文
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 加载配置使用的 viper 实例
	Logger log.Logger      // 日志记录器
}

// InitAppContext 加载配置并初始化日志；命令行标志覆盖配置文件中的 app 段
func InitAppContext(ctx context.Context, configPath string, debug, verbose, quiet bool) (*AppContext, error) {
	v := viper.New()
	config, err := configs.Load(v, configPath)
	if err != nil {
		return nil, err
	}

	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}
