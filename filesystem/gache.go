package filesystem

import (
	"io"
	"os"
)

// GacheFs satisfies gache.FileSystem on top of the swappable backend, so
// cached data follows the same OS/memory switch as everything else.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
