// Package picker 在目录中列出可分析的文件，并提供交互式选择
package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/lithammer/fuzzysearch/fuzzy"
	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/yeisme/fsummary/pkg/analyzer"
	"github.com/yeisme/fsummary/pkg/models"
	"github.com/yeisme/fsummary/pkg/utils/log"
)

var (
	// ErrNoCandidates 没有可选择的文件
	ErrNoCandidates = errors.New("no supported files found")
	// ErrAborted 用户取消了选择
	ErrAborted = errors.New("selection aborted")
)

// Candidates 遍历 root，返回扩展名可识别的文件（相对 root 拼接后的路径，按字典序）
// 跳过隐藏文件和目录，以及 root/.gitignore 匹配的路径；query 非空时做模糊过滤
func Candidates(root, query string) ([]string, error) {
	logger := log.GetLogger()

	var ignore gitignore.IgnoreMatcher
	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err == nil {
		m, err := gitignore.NewGitIgnore(gitIgnorePath)
		if err != nil {
			logger.Warn().Err(err).Str("path", gitIgnorePath).Msg("could not parse .gitignore")
		} else {
			ignore = m
		}
	}

	query = strings.TrimSpace(query)
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("skip unreadable path")
			return nil
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()
		if strings.HasPrefix(d.Name(), ".") {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if ignore != nil && ignore.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir || !d.Type().IsRegular() {
			return nil
		}
		if analyzer.Classify(d.Name()) == models.Unknown {
			return nil
		}
		if query != "" && !fuzzy.MatchFold(query, filepath.ToSlash(rel)) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	slices.Sort(out)
	return out, nil
}

// Select 在候选中选择一个文件；只有一个候选时直接返回
func Select(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPromptString("fsummary> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, h int) string {
			if i < 0 {
				return "Select a file to summarize."
			}
			return Preview(candidates[i], max(h-4, 1))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}
	return candidates[idx], nil
}

// Preview 返回预览窗口的内容：类型、大小和文件开头的若干行
func Preview(path string, lines int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Path: %s\nType: %s\n", path, analyzer.Classify(path).DisplayName())

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(&b, "Error: %v\n", err)
		return b.String()
	}
	defer func() {
		_ = f.Close()
	}()
	if info, err := f.Stat(); err == nil {
		fmt.Fprintf(&b, "Size: %s\n", humanize.Bytes(uint64(info.Size())))
	}
	b.WriteString("\n")

	sc := bufio.NewScanner(f)
	for n := 0; n < lines && sc.Scan(); n++ {
		b.WriteString(sc.Text())
		b.WriteByte('\n')
	}
	return b.String()
}
