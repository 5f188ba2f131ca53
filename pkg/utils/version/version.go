// Package version 提供构建时注入的版本信息
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ReleaseURL 发布页地址前缀
const ReleaseURL = "https://github.com/yeisme/fsummary/releases/tag/"

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built (RFC3339)
	BuildDate = "unknown"
	// GoVersion is the Go version used to build the binary
	GoVersion = runtime.Version()
	// Platform is the target platform
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	// Modified indicates if the source tree was modified ("true" or "false")
	Modified = "false"
)

// Dep 一个依赖模块
type Dep struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
}

// Info contains version information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Modified  string `json:"modified" yaml:"modified"`
	Deps      []Dep  `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// GetVersion returns the version information
// 未通过 ldflags 注入版本时，尝试使用 go install 记录的模块版本
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  Platform,
		Modified:  Modified,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = strings.TrimPrefix(bi.Main.Version, "v")
		}
		for _, d := range bi.Deps {
			info.Deps = append(info.Deps, Dep{Path: d.Path, Version: d.Version})
		}
	}
	return info
}

// IsRelease 判断版本号是否为合法的语义化版本
func IsRelease(v string) bool {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.IsValid(v)
}

// GetVersionString returns a one-line detailed version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("fsummary has version %s built with %s from %s (%s, modified: %s) on %s",
		info.Version,
		info.GoVersion,
		info.GitCommit,
		info.Platform,
		info.Modified,
		info.BuildDate,
	)
}

// GetShortVersionString returns a short version string
// 只有合法的发布版本才附带发布页链接
func GetShortVersionString() string {
	info := GetVersion()
	return shortVersion(info.Version, info.BuildDate)
}

func shortVersion(v, buildDate string) string {
	dateStr := buildDate
	if t, err := time.Parse(time.RFC3339, buildDate); err == nil {
		dateStr = t.Format(time.DateOnly)
	}

	s := fmt.Sprintf("fsummary version %s (%s)", v, dateStr)
	if IsRelease(v) {
		s += "\n" + ReleaseURL + semver.Canonical("v"+strings.TrimPrefix(v, "v"))
	}
	return s
}
