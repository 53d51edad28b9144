package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/internal/hashutil"
	"github.com/arthur-debert/sweep/pkg/types"
)

// Copy duplicates the regular file src at dst, keeping its permission bits.
// An existing dst is never overwritten. The copy is read back and compared
// with the source; a copy that differs is removed.
func Copy(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot stat %s", src)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is a directory", src).
			WithDetail("path", src)
	}

	if _, err := fsys.Stat(dst); err == nil {
		return errors.Wrapf(fs.ErrExist, errors.ErrFileCopy, "destination %s", dst).
			WithDetail("path", dst)
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot read %s", src)
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot write %s", dst)
	}

	written, err := hashutil.FileChecksum(fsys, dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot read back %s", dst)
	}
	if expected := hashutil.Sum(data); written != expected {
		_ = fsys.Remove(dst)
		return errors.Newf(errors.ErrFileCopy, "copy %s does not match %s", dst, src).
			WithDetail("expected", expected).
			WithDetail("written", written)
	}
	return nil
}
