package files

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/service/glacier"
	"github.com/mrdunski/addon-changes/model"
)

type Loader struct {
	os       FileAccess
	basePath string
	excludes []string
}

func NewLoader(basePath string, excludes ...string) Loader {
	return Loader{os: StdOS, basePath: basePath, excludes: excludes}
}

func (l Loader) WithFileAccess(fa FileAccess) Loader {
	l.os = fa
	return l
}

func (l Loader) isExcluded(path string) bool {
	for _, exclude := range l.excludes {
		if strings.Contains(path, exclude) {
			return true
		}
	}

	return false
}

// ChildDirs lists resolved paths of directories placed directly in the base path.
// Symlinks pointing to directories are followed.
func (l Loader) ChildDirs() (model.PathSet, error) {
	entries, err := l.os.ReadDir(l.basePath)
	if err != nil {
		return nil, err
	}

	result := model.PathSet{}
	for _, entry := range entries {
		if l.isExcluded(entry.Name()) {
			continue
		}
		entryPath := filepath.Join(l.basePath, entry.Name())

		if entry.Type()&fs.ModeSymlink != 0 {
			stat, err := l.os.Stat(entryPath)
			if err != nil || !stat.IsDir() {
				continue
			}
			resolved, err := l.os.EvalSymlinks(entryPath)
			if err != nil {
				return nil, err
			}
			result.Add(resolved)
			continue
		}

		if entry.IsDir() {
			result.Add(entryPath)
		}
	}

	return result, nil
}

func (l Loader) LoadFile(subPath string) (_ TreeHashedFile, err error) {
	file, err := l.os.Open(path.Join(l.basePath, subPath))
	if err != nil {
		return
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	hash := glacier.ComputeHashes(file)

	return TreeHashedFile{
		path:     subPath,
		treeHash: fmt.Sprintf("%x", hash.TreeHash),
	}, nil
}

func (l Loader) loadEntry(entrySubPath string, entry os.DirEntry) ([]TreeHashedFile, error) {
	if l.isExcluded(entrySubPath) {
		return nil, nil
	}

	if entry.IsDir() {
		return l.loadSubPath(entrySubPath)
	}

	if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
		return nil, nil
	}

	fileHandle, err := l.LoadFile(entrySubPath)
	if err != nil {
		return nil, err
	}
	return []TreeHashedFile{fileHandle}, nil
}

func (l Loader) loadSubPath(subPath string) ([]TreeHashedFile, error) {
	entries, err := l.os.ReadDir(path.Join(l.basePath, subPath))
	if err != nil {
		return nil, err
	}

	var result []TreeHashedFile
	for _, entry := range entries {
		entryFiles, err := l.loadEntry(path.Join(subPath, entry.Name()), entry)
		if err != nil {
			return nil, err
		}
		result = append(result, entryFiles...)
	}

	return result, nil
}

func (l Loader) LoadTree() ([]TreeHashedFile, error) {
	return l.loadSubPath("")
}

// Digest is a tree hash of the sorted (path, tree hash) listing of all files.
// It changes whenever any file of the tree is added, removed, renamed or modified.
func (l Loader) Digest() (string, error) {
	tree, err := l.LoadTree()
	if err != nil {
		return "", fmt.Errorf("failed to load tree {%s}: %w", l.basePath, err)
	}

	sort.Slice(tree, func(i, j int) bool {
		return tree[i].path < tree[j].path
	})

	listing := &strings.Builder{}
	for _, file := range tree {
		_, _ = fmt.Fprintf(listing, "%s\x00%s\n", file.path, file.treeHash)
	}

	hash := glacier.ComputeHashes(strings.NewReader(listing.String()))

	return fmt.Sprintf("%x", hash.TreeHash), nil
}
