package repo

import (
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// S3API is the subset of *s3.Client used to read snapshots.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Snapshot struct {
	client S3API
	bucket string
	prefix string
}

func NewS3Snapshot(client S3API, bucket, prefix string) *S3Snapshot {
	return &S3Snapshot{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *S3Snapshot) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *S3Snapshot) Locate(name string) string {
	return "s3://" + path.Join(s.bucket, s.key(name))
}

func (s *S3Snapshot) Stat(ctx context.Context, name string) (*FileInfo, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, s.wrap(err, name)
	}

	fi := &FileInfo{Name: name}
	if out.ContentLength != nil {
		fi.Size = *out.ContentLength
	}
	if out.LastModified != nil {
		fi.ModTime = *out.LastModified
	}
	return fi, nil
}

func (s *S3Snapshot) Read(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, s.wrap(err, name)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", s.Locate(name))
	}
	return b, nil
}

func (s *S3Snapshot) wrap(err error, name string) error {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return errors.Wrap(ErrNotExist, s.Locate(name))
		}
	}
	return errors.Wrapf(err, "failed to access %s", s.Locate(name))
}
