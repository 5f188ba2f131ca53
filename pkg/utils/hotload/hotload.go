// Package hotload 监听单个文件的变更，并在内容真正改变后触发回调
package hotload

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/fsummary/pkg/utils/log"
)

// DefaultDebounce debounce<=0 时使用的防抖时长
const DefaultDebounce = 300 * time.Millisecond

// Func 文件内容变更后执行的回调；返回的错误只记录日志，不会停止监听
type Func func(ctx context.Context) error

// fileState 文件的大小与内容哈希，用于过滤没有实际修改的保存
type fileState struct {
	exists bool
	size   int64
	hash   string
}

// FileWatcher 监听一个文件
// 监听的是文件所在目录，这样编辑器以“写临时文件再重命名”的方式保存时也能收到事件
type FileWatcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	last     fileState
	events   map[fsnotify.Op]int
}

// NewFileWatcher 创建监听器并注册目录，返回后即可接收事件
func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("创建 watcher 失败: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("将目录 '%s' 添加到 watcher 失败: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		watcher:  watcher,
		last:     readState(abs),
		events:   make(map[fsnotify.Op]int),
	}, nil
}

// WatchFile 监听 path 直到 ctx 被取消
func WatchFile(ctx context.Context, path string, debounce time.Duration, hook Func) error {
	w, err := NewFileWatcher(path, debounce)
	if err != nil {
		return err
	}
	return w.Run(ctx, hook)
}

// Run 运行事件循环，ctx 取消后关闭 watcher 并返回 nil
// 回调在本 goroutine 中串行执行
func (w *FileWatcher) Run(ctx context.Context, hook Func) error {
	logger := log.GetLogger()
	defer func() {
		if cerr := w.watcher.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("关闭 watcher 失败")
		}
	}()

	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching file")
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.countEvent(event.Op)
			timer = armOrResetDebounce(timer, w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")

		case <-fire:
			if !w.changed() {
				logger.Debug().Str("path", w.path).Msg("no content change, skip")
				continue
			}
			if err := hook(ctx); err != nil {
				logger.Error().Err(err).Str("path", w.path).Msg("hook failed")
			}
		}
	}
}

// relevant 只关心目标文件的写入、创建和重命名
func (w *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// countEvent 记录事件次数，前几次和之后每 10 次输出一条 trace 日志
func (w *FileWatcher) countEvent(op fsnotify.Op) {
	n := w.events[op]
	w.events[op] = n + 1
	if n < 3 || n%10 == 0 {
		log.GetLogger().Trace().Str("op", op.String()).Int("count", n+1).Str("path", w.path).Msg("event")
	}
}

// changed 重新读取文件状态并与上一次比较
// 文件暂时不存在（重命名保存的中间态）不算变更
func (w *FileWatcher) changed() bool {
	cur := readState(w.path)
	if !cur.exists {
		return false
	}
	if cur == w.last {
		return false
	}
	w.last = cur
	return true
}

// armOrResetDebounce 启动或重置防抖定时器
func armOrResetDebounce(timer *time.Timer, d time.Duration, fire func()) *time.Timer {
	if timer != nil {
		timer.Reset(d)
		return timer
	}
	return time.AfterFunc(d, fire)
}

// readState 计算文件的 md5，读取失败时 exists 为 false
func readState(path string) fileState {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.GetLogger().Debug().Err(err).Str("path", path).Msg("open for hashing")
		}
		return fileState{}
	}
	defer func() {
		_ = f.Close()
	}()

	h := md5.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: n, hash: hex.EncodeToString(h.Sum(nil))}
}
