package fileutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/upmtools/upmpack/pkg/domain/types"
	"github.com/upmtools/upmpack/pkg/infra/fileutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	return string(data)
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "bravo")
	writeFile(t, filepath.Join(src, "sub", "deeper", "c.txt"), "charlie")
	gt.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))

	dst := filepath.Join(t.TempDir(), "out")
	stats, err := fileutil.CopyTree(context.Background(), src, dst, "")
	gt.NoError(t, err)

	gt.Equal(t, stats.Files, 3)
	gt.Equal(t, stats.Dirs, 3)
	gt.Equal(t, stats.Bytes, int64(len("alpha")+len("bravo")+len("charlie")))

	gt.Equal(t, readFile(t, filepath.Join(dst, "a.txt")), "alpha")
	gt.Equal(t, readFile(t, filepath.Join(dst, "sub", "b.txt")), "bravo")
	gt.Equal(t, readFile(t, filepath.Join(dst, "sub", "deeper", "c.txt")), "charlie")

	info, err := os.Stat(filepath.Join(dst, "empty"))
	gt.NoError(t, err)
	gt.True(t, info.IsDir())
}

func TestCopyTree_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}

	src := t.TempDir()
	script := filepath.Join(src, "run.sh")
	gt.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0755))

	dst := filepath.Join(t.TempDir(), "out")
	_, err := fileutil.CopyTree(context.Background(), src, dst, "")
	gt.NoError(t, err)

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	gt.NoError(t, err)
	gt.Equal(t, info.Mode().Perm(), os.FileMode(0755))
}

func TestCopyTree_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	src := t.TempDir()
	writeFile(t, filepath.Join(src, "target.txt"), "t")
	gt.NoError(t, os.Symlink("target.txt", filepath.Join(src, "link.txt")))

	dst := filepath.Join(t.TempDir(), "out")
	stats, err := fileutil.CopyTree(context.Background(), src, dst, "")
	gt.NoError(t, err)
	gt.Equal(t, stats.Links, 1)

	target, err := os.Readlink(filepath.Join(dst, "link.txt"))
	gt.NoError(t, err)
	gt.Equal(t, target, "target.txt")
}

func TestCopyTree_SourceMissing(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out")
	_, err := fileutil.CopyTree(context.Background(), filepath.Join(t.TempDir(), "missing"), dst, "")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagSourceMissing))

	_, statErr := os.Stat(dst)
	gt.True(t, os.IsNotExist(statErr))
}

func TestCopyTree_SourceIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, file, "x")

	_, err := fileutil.CopyTree(context.Background(), file, filepath.Join(t.TempDir(), "out"), "")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagSourceMissing))
}

func TestCopyTree_SkipsOutputInsideSource(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")
	dst := filepath.Join(src, "com.acme.widget")
	gt.NoError(t, os.Mkdir(dst, 0755))

	stats, err := fileutil.CopyTree(context.Background(), src, dst, dst)
	gt.NoError(t, err)
	gt.Equal(t, stats.Files, 1)
	gt.Equal(t, readFile(t, filepath.Join(dst, "a.txt")), "alpha")

	_, statErr := os.Stat(filepath.Join(dst, "com.acme.widget"))
	gt.True(t, os.IsNotExist(statErr))
}

func TestCopyTree_DoesNotOverwrite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "new")

	dst := t.TempDir()
	writeFile(t, filepath.Join(dst, "a.txt"), "old")

	_, err := fileutil.CopyTree(context.Background(), src, dst, "")
	gt.Error(t, err)
	gt.Equal(t, readFile(t, filepath.Join(dst, "a.txt")), "old")
}
