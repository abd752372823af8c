package files

import (
	"fmt"
)

type TreeHashedFile struct {
	path     string
	treeHash string
}

func (fh TreeHashedFile) Path() string {
	return fh.path
}

func (fh TreeHashedFile) Hash() string {
	return fh.treeHash
}

func (fh TreeHashedFile) Equal(other TreeHashedFile) bool {
	return fh.path == other.path && fh.treeHash == other.treeHash
}

func (fh TreeHashedFile) String() string {
	return fmt.Sprintf("{path: %s, treeHash: %s}", fh.path, fh.treeHash)
}
