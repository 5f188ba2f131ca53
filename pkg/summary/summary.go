// Package summary 串联加载、分析和渲染，供 analyze 命令调用
package summary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yeisme/fsummary/pkg/analyzer"
	gctx "github.com/yeisme/fsummary/pkg/context"
	"github.com/yeisme/fsummary/pkg/loader"
	"github.com/yeisme/fsummary/pkg/models"
	"github.com/yeisme/fsummary/pkg/render"
	"github.com/yeisme/fsummary/pkg/utils/hotload"
	"github.com/yeisme/fsummary/pkg/utils/log"
	"github.com/yeisme/fsummary/pkg/utils/picker"
)

// AnalyzeOptions analyze 命令的选项
type AnalyzeOptions struct {
	Render   render.Options
	Load     loader.Options
	Watch    bool          // 文件变化后重新分析
	Debounce time.Duration // 监听模式的防抖时长
	Query    string        // 未给出文件时用于过滤候选
	Root     string        // 未给出文件时的搜索目录，默认为当前目录
}

// OptionsFromConfig 根据配置构造默认选项，命令行标志在此基础上覆盖
func OptionsFromConfig(appCtx *gctx.AppContext) (AnalyzeOptions, error) {
	cfg := appCtx.Config
	ro, err := render.OptionsFromConfig(cfg.Output)
	if err != nil {
		return AnalyzeOptions{}, err
	}
	maxSize, err := cfg.Load.MaxFileSizeBytes()
	if err != nil {
		return AnalyzeOptions{}, err
	}
	return AnalyzeOptions{
		Render:   ro,
		Load:     loader.Options{MaxSize: maxSize, StripBOM: cfg.Load.StripBOM},
		Debounce: time.Duration(cfg.Watch.Debounce) * time.Millisecond,
		Root:     ".",
	}, nil
}

// ExecuteAnalyzeCommand 执行 analyze 命令
//
//	args: 至多一个文件路径；为空时在 opts.Root 下交互式选择
//	w: 报告输出目标（通常为 cmd.OutOrStdout()）
func ExecuteAnalyzeCommand(appCtx *gctx.AppContext, opts AnalyzeOptions, args []string, w io.Writer) error {
	path, err := resolvePath(opts, args)
	if err != nil {
		return err
	}

	if err := Run(appCtx, path, opts, w); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(appCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return hotload.WatchFile(ctx, path, opts.Debounce, func(ctx context.Context) error {
		if _, err := fmt.Fprintf(w, "\n--- %s changed at %s ---\n\n", path, time.Now().Format(time.TimeOnly)); err != nil {
			return err
		}
		return Run(ctx, path, opts, w)
	})
}

// Run 对单个文件执行一次完整流程并渲染结果
func Run(ctx context.Context, path string, opts AnalyzeOptions, w io.Writer) error {
	s, err := Summarize(ctx, path, opts.Load)
	if err != nil {
		return err
	}
	if err := render.Render(w, s, opts.Render); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

// Summarize 加载并分析 path
func Summarize(ctx context.Context, path string, opts loader.Options) (models.FileSummary, error) {
	logger := log.GetLogger()
	start := time.Now()

	doc, err := loader.Load(ctx, path, opts)
	if err != nil {
		return models.FileSummary{}, err
	}
	logger.Debug().Str("path", path).Int64("bytes", doc.Size).Dur("elapsed", time.Since(start)).Msg("file loaded")

	s := analyzer.Analyze(doc)
	logger.Debug().
		Str("path", path).
		Str("format", s.Format.String()).
		Int("stats", len(s.DetailedStats)).
		Int("insights", len(s.KeyInsights)).
		Dur("elapsed", time.Since(start)).
		Msg("file analyzed")
	return s, nil
}

// resolvePath 取命令行给出的文件，否则交互式选择
func resolvePath(opts AnalyzeOptions, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	candidates, err := picker.Candidates(root, opts.Query)
	if err != nil {
		return "", err
	}
	path, err := picker.Select(candidates)
	if err != nil {
		if errors.Is(err, picker.ErrNoCandidates) {
			return "", fmt.Errorf("%w under %s (query %q)", err, root, opts.Query)
		}
		return "", err
	}
	return path, nil
}
