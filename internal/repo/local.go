package repo

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type LocalSnapshot struct {
	root string
}

func NewLocalSnapshot(root string) *LocalSnapshot {
	return &LocalSnapshot{root: root}
}

func (s *LocalSnapshot) Locate(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.root, name)
}

func (s *LocalSnapshot) Stat(ctx context.Context, name string) (*FileInfo, error) {
	p := s.Locate(name)
	fi, err := os.Stat(p)
	if err != nil {
		return nil, wrapLocal(err, p)
	}
	if fi.IsDir() {
		return nil, errors.Wrapf(ErrNotExist, "%s is a directory", p)
	}
	return &FileInfo{
		Name:    name,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}, nil
}

func (s *LocalSnapshot) Read(ctx context.Context, name string) ([]byte, error) {
	p := s.Locate(name)
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, wrapLocal(err, p)
	}
	return b, nil
}

func wrapLocal(err error, p string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(ErrNotExist, p)
	}
	return err
}
