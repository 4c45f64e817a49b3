package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
)

// S3 builds the client for the s3 snapshot backend. It returns a nil client when
// snapshots are read from the local filesystem.
func S3(conf *appconfig.Config) (*s3.Client, error) {
	if conf.StorageBackend != appconfig.StorageBackendS3 {
		return nil, nil
	}
	if conf.S3Bucket == "" {
		return nil, errors.New("MSBDASH_S3_BUCKET is required for the s3 storage backend")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.S3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().
		Str("evt.name", "infra.s3.init").
		Str("bucket", conf.S3Bucket).
		Str("prefix", conf.S3Prefix).
		Msg("snapshot files are read from s3")

	return client, nil
}
