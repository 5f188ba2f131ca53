package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/fsummary/pkg/configs"
	"github.com/yeisme/fsummary/pkg/loader"
	"github.com/yeisme/fsummary/pkg/models"
	"github.com/yeisme/fsummary/pkg/render"
	"github.com/yeisme/fsummary/pkg/utils/picker"
)

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(p, []byte("// TODO: docs\nfn main() {}\nstruct Point {}\n"), 0644))

	s, err := Summarize(context.Background(), p, loader.Options{})
	require.NoError(t, err)
	assert.Equal(t, models.SourceCode, s.Format)
	assert.Equal(t, "Rust", s.Language)
	v, ok := s.Stat("functions")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestSummarizeMissing(t *testing.T) {
	_, err := Summarize(context.Background(), filepath.Join(t.TempDir(), "nope.md"), loader.Options{})
	assert.True(t, errors.Is(err, loader.ErrNotFound))
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(p, []byte("# Title\n[a](b)\n"), 0644))

	var buf bytes.Buffer
	opts := AnalyzeOptions{Render: render.Options{Format: configs.FormatJSON}}
	require.NoError(t, Run(context.Background(), p, opts, &buf))

	var got models.FileSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, models.Markdown, got.Format)
	links, _ := got.Stat("links")
	assert.Equal(t, "1", links)
}

func TestResolvePath(t *testing.T) {
	got, err := resolvePath(AnalyzeOptions{}, []string{"given.txt"})
	require.NoError(t, err)
	assert.Equal(t, "given.txt", got)

	dir := t.TempDir()
	_, err = resolvePath(AnalyzeOptions{Root: dir}, nil)
	assert.ErrorIs(t, err, picker.ErrNoCandidates)

	p := filepath.Join(dir, "only.log")
	require.NoError(t, os.WriteFile(p, []byte("INFO ok\n"), 0644))
	got, err = resolvePath(AnalyzeOptions{Root: dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestFormats(t *testing.T) {
	entries := Formats()
	require.NotEmpty(t, entries)

	byExt := map[string]FormatEntry{}
	for _, e := range entries {
		byExt[e.Extension] = e
	}
	assert.Equal(t, "Markdown", byExt["md"].Format)
	assert.Equal(t, "Source Code", byExt["tsx"].Format)
	assert.Equal(t, "TypeScript", byExt["tsx"].Language)
	assert.Empty(t, byExt["log"].Language)

	var buf bytes.Buffer
	require.NoError(t, ExecuteFormatsCommand(configs.FormatPlain, false, &buf))
	assert.Contains(t, buf.String(), ".rs\tSource Code\tRust\n")
}
