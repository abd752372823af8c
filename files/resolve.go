package files

import (
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
)

// ResolvePath makes the path absolute and resolves symlinks in its existing part.
// Missing trailing elements (e.g. deleted files) are kept as they are.
func ResolvePath(fa FileAccess, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return resolveAbs(fa, abs)
}

func resolveAbs(fa FileAccess, abs string) (string, error) {
	resolved, err := fa.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR) {
		return "", err
	}

	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}

	resolvedParent, err := resolveAbs(fa, parent)
	if err != nil {
		return "", err
	}

	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}
