package repo

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
)

func Module() fx.Option {
	return fx.Module("repo", fx.Provide(
		NewSnapshot,
	))
}

// NewSnapshot selects the snapshot backend configured by MSBDASH_STORAGE_BACKEND.
func NewSnapshot(conf *appconfig.Config, client *s3.Client) Snapshot {
	if conf.StorageBackend == appconfig.StorageBackendS3 {
		return NewS3Snapshot(client, conf.S3Bucket, conf.S3Prefix)
	}
	return NewLocalSnapshot(conf.DataRoot)
}
