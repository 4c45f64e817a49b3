package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrNotExist is wrapped by every Snapshot error caused by an absent file or object.
var ErrNotExist = errors.New("snapshot does not exist")

type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Snapshot reads the flat files written by the external batch. Implementations never
// cache: every call goes to the backing store.
type Snapshot interface {
	Stat(ctx context.Context, name string) (*FileInfo, error)
	Read(ctx context.Context, name string) ([]byte, error)
	// Locate returns where name is resolved to, for logs and health reports.
	Locate(name string) string
}
