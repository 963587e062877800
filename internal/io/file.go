// Package ioutils provides file system utilities for the organizer.
package ioutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotRegular is returned when a copy source is a directory or device.
var ErrNotRegular = errors.New("not a regular file")

// CopyFile copies a file from source to destination.
//
// The destination is created or truncated. Like a shell "cp -p", the
// source's permission bits and modification time are carried over. A
// partially written destination is removed on failure.
//
// Example:
//
//	err := CopyFile(ctx, "/path/to/source.mp3", "/path/to/dest.mp3")
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, ErrNotRegular)
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := destFile.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	// The file may have existed with other permissions before O_TRUNC.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListAudioFiles returns the files in dir whose name ends in ext.
//
// Symlinks are followed; only directories are left out. The match is
// case sensitive and not recursive. Results are sorted by name. A
// missing directory is reported as an error wrapping os.ErrNotExist.
func ListAudioFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ext) || entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.Type()&fs.ModeSymlink != 0 {
			// A dangling link is kept; copying it reports the error.
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				continue
			}
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}
