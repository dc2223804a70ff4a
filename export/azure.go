package export

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/Azure/azure-storage-blob-go/azblob"
)

// AzureSink writes export payloads to Azure Blob Storage.
type AzureSink struct {
	containerURL azblob.ContainerURL
	prefix       string
}

// NewAzureSink parses a container[/prefix] reference (the portion of an
// azblob:// URI after the scheme) and connects using the
// AZURE_STORAGE_ACCOUNT / AZURE_STORAGE_KEY environment pair.
func NewAzureSink(ref string) (*AzureSink, error) {
	container, prefix, _ := strings.Cut(ref, "/")
	if container == "" {
		return nil, fmt.Errorf("export: azblob destination requires a container name")
	}

	accountName := os.Getenv("AZURE_STORAGE_ACCOUNT")
	accountKey := os.Getenv("AZURE_STORAGE_KEY")
	if accountName == "" || accountKey == "" {
		return nil, fmt.Errorf("export: AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_KEY must be set")
	}

	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("export: azure credential: %w", err)
	}

	pipeline := azblob.NewPipeline(credential, azblob.PipelineOptions{})
	u, err := url.Parse(fmt.Sprintf("https://%s.blob.core.windows.net/%s", accountName, container))
	if err != nil {
		return nil, fmt.Errorf("export: azure container URL: %w", err)
	}

	return &AzureSink{
		containerURL: azblob.NewContainerURL(*u, pipeline),
		prefix:       prefix,
	}, nil
}

func (s *AzureSink) Name() string { return "azure" }

func (s *AzureSink) Put(key string, payload []byte) error {
	blobKey := key
	if s.prefix != "" {
		blobKey = s.prefix + "/" + key
	}

	blobURL := s.containerURL.NewBlockBlobURL(blobKey)
	_, err := azblob.UploadBufferToBlockBlob(context.Background(), payload, blobURL, azblob.UploadToBlockBlobOptions{})
	if err != nil {
		return fmt.Errorf("export: azure upload %s: %w", blobKey, err)
	}
	return nil
}
