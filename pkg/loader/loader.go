// Package loader 将文件完整读入内存并解码为 UTF-8 文本
// 文件句柄只在读取期间持有，分析阶段不依赖文件仍然打开
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/yeisme/fsummary/pkg/models"
)

var (
	// ErrNotFound 文件不存在
	ErrNotFound = errors.New("file does not exist")
	// ErrIsDirectory 路径是目录
	ErrIsDirectory = errors.New("path is a directory")
	// ErrTooLarge 文件超过大小限制
	ErrTooLarge = errors.New("file exceeds size limit")
	// ErrInvalidUTF8 内容不是合法的 UTF-8
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options 加载选项
type Options struct {
	MaxSize  int64 // 字节数，<=0 表示不限制
	StripBOM bool  // 去掉开头的 UTF-8 BOM
}

// Load 读取 path 并返回 RawDocument
// 返回的错误可用 errors.Is 与本包的哨兵错误比较
func Load(ctx context.Context, path string, opts Options) (models.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return models.RawDocument{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.RawDocument{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return models.RawDocument{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return models.RawDocument{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return models.RawDocument{}, fmt.Errorf("%w: %s is %s, limit %s", ErrTooLarge, path,
			humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(opts.MaxSize)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.RawDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(path, data, opts)
}

// Decode 校验并解码已经读入内存的内容
func Decode(path string, data []byte, opts Options) (models.RawDocument, error) {
	size := int64(len(data))
	if opts.MaxSize > 0 && size > opts.MaxSize {
		return models.RawDocument{}, fmt.Errorf("%w: %s is %s, limit %s", ErrTooLarge, path,
			humanize.Bytes(uint64(size)), humanize.Bytes(uint64(opts.MaxSize)))
	}
	if opts.StripBOM {
		data = bytes.TrimPrefix(data, utf8BOM)
	}
	if !utf8.Valid(data) {
		return models.RawDocument{}, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return models.RawDocument{
		Path:    path,
		Content: string(data),
		Size:    size,
	}, nil
}
