package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// IsDir returns nil when path exists and is a directory.
func IsDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "cannot access directory %q", path)
	}
	if !info.IsDir() {
		return errors.Errorf("%q is not a directory", path)
	}
	return nil
}

// Glob returns files matching pattern in lexical order.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// CopyFile copies src to dst keeping the permission bits and modification time of src.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "cannot open %q", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "cannot stat %q", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", dst)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "cannot close %q", dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "cannot copy %q to %q", src, dst)
	}

	if err = os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return errors.Wrapf(err, "cannot set times of %q", dst)
	}
	return nil
}
