package storage

import (
	"context"
	"io/fs"
	"os"
)

// FileSystem is the local-filesystem Engine.
type FileSystem struct{}

var _ Engine = (*FileSystem)(nil)

func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

func (f *FileSystem) Get(_ context.Context, u *URI) (Reader, error) {
	r, err := os.Open(u.Filepath())
	if err != nil {
		return nil, fileErr(err)
	}
	return &fileSizer{r, u}, nil
}

func (f *FileSystem) Size(_ context.Context, u *URI) (int64, error) {
	info, err := os.Stat(u.Filepath())
	if err != nil {
		return 0, fileErr(err)
	}
	return info.Size(), nil
}

func (f *FileSystem) Exists(_ context.Context, u *URI) (bool, error) {
	_, err := os.Stat(u.Filepath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fileErr(err)
	}
	return true, nil
}

func fileErr(err error) error {
	if os.IsNotExist(err) {
		return fs.ErrNotExist
	}
	return err
}

type fileSizer struct {
	*os.File
	uri *URI
}

var _ Sizer = (*fileSizer)(nil)

func (f *fileSizer) Size() (int64, error) {
	info, err := os.Stat(f.uri.Filepath())
	if err != nil {
		return 0, fileErr(err)
	}
	return info.Size(), nil
}
