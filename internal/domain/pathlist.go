package domain

import (
	"os"
	"path/filepath"
)

// PathListContains reports whether dir is an element of a PATH-style list.
func PathListContains(pathList string, dir string) bool {
	for _, entry := range filepath.SplitList(pathList) {
		if entry == dir {
			return true
		}
	}
	return false
}

// PathListAppend returns pathList with dir added at the end, unless already present.
func PathListAppend(pathList string, dir string) string {
	if PathListContains(pathList, dir) {
		return pathList
	}
	if pathList == "" {
		return dir
	}
	return pathList + string(os.PathListSeparator) + dir
}
