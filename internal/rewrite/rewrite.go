package rewrite

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/evo-tools/fieldstrip/internal/platform"
	"github.com/evo-tools/fieldstrip/internal/strip"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNotRegular is wrapped when a directory entry is a device, pipe or socket.
var ErrNotRegular = errors.New("not a regular file")

// Rewriter rewrites files on a filesystem.
type Rewriter struct {
	fs     afero.Fs
	logger *zap.Logger
}

// New returns a Rewriter on fsys. A nil logger discards all output.
func New(fsys afero.Fs, logger *zap.Logger) *Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rewriter{fs: fsys, logger: logger}
}

// Dir rewrites every direct child of dir. The directory is listed once up
// front; a subdirectory entry is an error, not a recursion.
func (r *Rewriter) Dir(dir string) (Summary, error) {
	var sum Summary

	info, err := r.fs.Stat(dir)
	if err != nil {
		return sum, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return sum, fmt.Errorf("reading directory %s: %w", dir,
			&fs.PathError{Op: "readdir", Path: dir, Err: syscall.ENOTDIR})
	}

	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return sum, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		stats, err := r.File(path)
		if err != nil {
			return sum, err
		}
		sum.Files++
		sum.Add(stats)
	}

	r.logger.Info("rewrite complete", zap.String("dir", dir), zap.Stringer("summary", sum))
	return sum, nil
}

// File rewrites a single file in place. The new content is written to a
// temporary file next to path, given path's permission bits, and renamed over
// it. The temporary file is removed if anything fails before the rename.
func (r *Rewriter) File(path string) (strip.Stats, error) {
	var stats strip.Stats

	info, err := r.fs.Stat(path)
	if err != nil {
		return stats, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return stats, fmt.Errorf("opening %s: %w", path,
			&fs.PathError{Op: "open", Path: path, Err: syscall.EISDIR})
	}
	if !info.Mode().IsRegular() {
		return stats, fmt.Errorf("opening %s: %w", path,
			&fs.PathError{Op: "open", Path: path, Err: ErrNotRegular})
	}

	in, err := r.fs.Open(path)
	if err != nil {
		return stats, fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	tmp, err := afero.TempFile(r.fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return stats, fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	stats, err = strip.Lines(in, tmp)
	if err != nil {
		tmp.Close()
		r.fs.Remove(tmpPath)
		return stats, fmt.Errorf("rewriting %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		r.fs.Remove(tmpPath)
		return stats, fmt.Errorf("writing %s: %w", path, err)
	}
	in.Close()

	// Temp files are created 0600; give the replacement the original's bits.
	if err := platform.Chmod(r.fs, tmpPath, info.Mode().Perm()); err != nil {
		r.fs.Remove(tmpPath)
		return stats, fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	if err := r.fs.Rename(tmpPath, path); err != nil {
		r.fs.Remove(tmpPath)
		return stats, fmt.Errorf("replacing %s: %w", path, err)
	}

	r.logger.Debug("rewrote file",
		zap.String("path", path),
		zap.Int("lines", stats.Lines),
		zap.Int("changed", stats.Changed),
		zap.Int("fragments", stats.Fragments),
	)
	return stats, nil
}
