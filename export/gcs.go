package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSSink writes export payloads to Google Cloud Storage.
type GCSSink struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// NewGCSSink parses a bucket[/prefix] reference (the portion of a gs://
// URI after the scheme) and connects using application default
// credentials, or GOOGLE_APPLICATION_CREDENTIALS if set.
func NewGCSSink(ref string) (*GCSSink, error) {
	bucket, prefix, _ := strings.Cut(ref, "/")
	if bucket == "" {
		return nil, fmt.Errorf("export: gs destination requires a bucket name")
	}

	ctx := context.Background()
	var opts []option.ClientOption
	if cred := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); cred != "" {
		opts = append(opts, option.WithCredentialsFile(cred))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("export: gcs client: %w", err)
	}

	return &GCSSink{
		client: client,
		bucket: client.Bucket(bucket),
		prefix: prefix,
	}, nil
}

func (s *GCSSink) Name() string { return "gcs" }

func (s *GCSSink) Put(key string, payload []byte) error {
	objectKey := key
	if s.prefix != "" {
		objectKey = s.prefix + "/" + key
	}

	ctx := context.Background()
	w := s.bucket.Object(objectKey).NewWriter(ctx)
	if _, err := io.Copy(w, bytes.NewReader(payload)); err != nil {
		_ = w.Close()
		return fmt.Errorf("export: gcs write %s: %w", objectKey, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export: gcs finalize %s: %w", objectKey, err)
	}
	return nil
}
