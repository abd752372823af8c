package files

import (
	"io"
	"os"
	"path/filepath"
)

type stdOS struct{}

func (f stdOS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (f stdOS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (f stdOS) Open(name string) (io.ReadSeekCloser, error) {
	return os.Open(name)
}

func (f stdOS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

var StdOS FileAccess = stdOS{}

type FileAccess interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Open(name string) (io.ReadSeekCloser, error)
	Stat(name string) (os.FileInfo, error)
	EvalSymlinks(path string) (string, error)
}
