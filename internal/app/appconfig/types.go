package appconfig

import (
	"fmt"
	"strings"
)

type StorageBackend string

const (
	StorageBackendLocal StorageBackend = "local"
	StorageBackendS3    StorageBackend = "s3"
)

func (b *StorageBackend) Decode(value string) error {
	switch v := StorageBackend(strings.ToLower(strings.TrimSpace(value))); v {
	case StorageBackendLocal, StorageBackendS3:
		*b = v
		return nil
	default:
		return fmt.Errorf("invalid storage backend: expect one of `local` or `s3`, but got: %s", value)
	}
}
