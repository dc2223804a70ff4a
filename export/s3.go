package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Sink writes export payloads to an S3 bucket via the upload manager,
// adapted from the filesystem/S3 backend split of the audit sink this
// module grew out of.
type S3Sink struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// NewS3Sink parses a bucket[/prefix] reference (the portion of an s3://
// URI after the scheme) and builds an S3Sink using the default AWS SDK
// credential chain, falling back to static environment credentials for
// local testing against MinIO/LocalStack.
func NewS3Sink(ref string) (*S3Sink, error) {
	bucket, prefix, _ := strings.Cut(ref, "/")
	if bucket == "" {
		return nil, fmt.Errorf("export: s3 destination requires a bucket name")
	}

	ctx := context.Background()
	configOpts := []func(*config.LoadOptions) error{}
	if accessKey := os.Getenv("AWS_ACCESS_KEY_ID"); accessKey != "" {
		if secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY"); secretKey != "" {
			configOpts = append(configOpts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("export: load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Sink{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   prefix,
	}, nil
}

func (s *S3Sink) Name() string { return "s3" }

func (s *S3Sink) Put(key string, payload []byte) error {
	objectKey := key
	if s.prefix != "" {
		objectKey = s.prefix + "/" + key
	}

	_, err := s.uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(payload),
	})
	if err != nil {
		return fmt.Errorf("export: s3 upload %s: %w", objectKey, err)
	}
	return nil
}
