package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skylift/azstore"
	"github.com/skylift/azstore/utils"
)

// FileDescriptor describes a file by name and size in bytes.  It represents either a local
// file or a remote blob; the two are structurally identical, which is what makes the upload
// decision a pure comparison.
type FileDescriptor struct {
	Name string
	Size int64
}

// Stat returns a FileDescriptor for the local file at the given path, expanding a leading
// "~".  A missing file fails with azstore.ErrLocalNotFound so callers abort before any
// upload decision is made.
func Stat(localPath string) (FileDescriptor, error) {
	path, err := utils.ExpandLocalPath(localPath)
	if err != nil {
		return FileDescriptor{}, utils.WrapStatError(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileDescriptor{}, fmt.Errorf("%w: %s", azstore.ErrLocalNotFound, localPath)
		}
		return FileDescriptor{}, utils.WrapStatError(err)
	}
	if fi.IsDir() {
		return FileDescriptor{}, utils.WrapStatError(fmt.Errorf("%s is a directory", localPath))
	}

	return FileDescriptor{Name: filepath.Base(path), Size: fi.Size()}, nil
}
