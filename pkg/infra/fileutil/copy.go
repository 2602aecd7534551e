package fileutil

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/upmtools/upmpack/pkg/domain/model"
	"github.com/upmtools/upmpack/pkg/domain/types"
	"github.com/upmtools/upmpack/pkg/utils/logging"
)

// Copier copies directory trees on the local filesystem
type Copier struct{}

// CopyTree implements interfaces.TreeCopier
func (Copier) CopyTree(ctx context.Context, src, dst, skip string) (*model.CopyStats, error) {
	return CopyTree(ctx, src, dst, skip)
}

// CopyTree copies every file and subdirectory of src into dst, preserving
// the relative structure. dst is created if needed. Within a directory,
// files are copied before subdirectories, which are then visited depth
// first in name order. Existing files in dst are never overwritten.
//
// A directory equal to skip is not descended into; this keeps an output
// directory placed inside src from being copied into itself.
func CopyTree(ctx context.Context, src, dst, skip string) (*model.CopyStats, error) {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "source directory does not exist",
				goerr.V("source", src), goerr.T(types.ErrTagSourceMissing))
		}
		return nil, goerr.Wrap(err, "failed to stat source directory", goerr.V("source", src))
	}
	if !info.IsDir() {
		return nil, goerr.New("source is not a directory",
			goerr.V("source", src), goerr.T(types.ErrTagSourceMissing))
	}

	if skip != "" {
		if abs, err := filepath.Abs(skip); err == nil {
			skip = abs
		}
	}

	stats := &model.CopyStats{}
	if err := copyDir(ctx, src, dst, skip, stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func copyDir(ctx context.Context, src, dst, skip string, stats *model.CopyStats) error {
	logger := logging.From(ctx)

	entries, err := os.ReadDir(src)
	if err != nil {
		return goerr.Wrap(err, "failed to read directory", goerr.V("dir", src))
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dst))
	}

	var subdirs []os.DirEntry
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entry)

		case entry.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(srcPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read symlink", goerr.V("path", srcPath))
			}
			if err := os.Symlink(target, dstPath); err != nil {
				return goerr.Wrap(err, "failed to create symlink", goerr.V("path", dstPath))
			}
			stats.Links++

		case entry.Type().IsRegular():
			n, err := copyFile(srcPath, dstPath)
			if err != nil {
				return err
			}
			stats.Files++
			stats.Bytes += n
			logger.Debug("Copied file", "src", srcPath, "dst", dstPath, "size", n)

		default:
			logger.Warn("Skipping irregular file", "path", srcPath, "mode", entry.Type().String())
		}
	}

	for _, entry := range subdirs {
		srcPath := filepath.Join(src, entry.Name())
		if skip != "" {
			if abs, err := filepath.Abs(srcPath); err == nil && abs == skip {
				logger.Debug("Skipping output directory inside source", "path", srcPath)
				continue
			}
		}

		stats.Dirs++
		if err := copyDir(ctx, srcPath, filepath.Join(dst, entry.Name()), skip, stats); err != nil {
			return err
		}
	}

	return nil
}

// copyFile copies a single regular file keeping its permission bits. It
// fails if dst already exists.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open source file", goerr.V("path", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to stat source file", goerr.V("path", src))
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create destination file", goerr.V("path", dst))
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, goerr.Wrap(err, "failed to copy file content", goerr.V("src", src), goerr.V("dst", dst))
	}
	if err := out.Close(); err != nil {
		return n, goerr.Wrap(err, "failed to close destination file", goerr.V("path", dst))
	}

	return n, nil
}
