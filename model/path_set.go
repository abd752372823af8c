package model

import (
	"path/filepath"
	"sort"
)

type PathSet map[string]struct{}

func NewPathSet(paths ...string) PathSet {
	set := make(PathSet, len(paths))
	for _, p := range paths {
		set.Add(p)
	}

	return set
}

func (s PathSet) Add(path string) {
	s[filepath.Clean(path)] = struct{}{}
}

func (s PathSet) Has(path string) bool {
	_, ok := s[filepath.Clean(path)]
	return ok
}

func (s PathSet) Len() int {
	return len(s)
}

func (s PathSet) Union(other PathSet) PathSet {
	result := make(PathSet, len(s)+len(other))
	for p := range s {
		result[p] = struct{}{}
	}
	for p := range other {
		result[p] = struct{}{}
	}

	return result
}

// Intersect keeps the iteration on the smaller set.
func (s PathSet) Intersect(other PathSet) PathSet {
	small, big := s, other
	if len(small) > len(big) {
		small, big = big, small
	}

	result := PathSet{}
	for p := range small {
		if _, ok := big[p]; ok {
			result[p] = struct{}{}
		}
	}

	return result
}

func (s PathSet) Sorted() []string {
	result := make([]string, 0, len(s))
	for p := range s {
		result = append(result, p)
	}
	sort.Strings(result)

	return result
}

// Ancestors returns the path itself and every parent directory up to the root.
func Ancestors(path string) PathSet {
	result := PathSet{}
	current := filepath.Clean(path)
	for {
		result[current] = struct{}{}
		parent := filepath.Dir(current)
		if parent == current {
			return result
		}
		current = parent
	}
}
