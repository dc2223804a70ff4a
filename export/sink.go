// Package export writes analysis results to local disk or remote object
// storage, in several formats.
package export

import (
	"fmt"
	"strings"
)

// Sink is a destination for a rendered export payload. Implementations
// adapt a single underlying object/blob store client; they do not know
// about record formats.
type Sink interface {
	// Put writes payload to the destination named by key, replacing any
	// existing object.
	Put(key string, payload []byte) error

	// Name returns the sink's backend name, for logging.
	Name() string
}

// NewSink selects a Sink implementation from a destination URI. Local
// paths (no recognized scheme) use LocalSink; s3://, azblob://, and gs://
// prefixes select the matching remote sink.
func NewSink(uri string) (Sink, error) {
	switch {
	case strings.HasPrefix(uri, "s3://"):
		return NewS3Sink(strings.TrimPrefix(uri, "s3://"))
	case strings.HasPrefix(uri, "azblob://"):
		return NewAzureSink(strings.TrimPrefix(uri, "azblob://"))
	case strings.HasPrefix(uri, "gs://"):
		return NewGCSSink(strings.TrimPrefix(uri, "gs://"))
	case uri == "":
		return nil, fmt.Errorf("export: destination URI must not be empty")
	default:
		return NewLocalSink(uri), nil
	}
}
