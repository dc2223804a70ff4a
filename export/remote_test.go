package export

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These mirror the teacher's backend config-validation tests: construction
// is exercised with mock credentials so no network call is made, but the
// client/uploader themselves are never used against a live service.

func TestNewS3Sink_RequiresBucket(t *testing.T) {
	_, err := NewS3Sink("")
	assert.Error(t, err)
}

func TestNewS3Sink_WithMockCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "mock-access-key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "mock-secret-key")

	sink, err := NewS3Sink("test-bucket/audit")
	require.NoError(t, err)
	assert.Equal(t, "s3", sink.Name())
}

func TestNewAzureSink_RequiresContainer(t *testing.T) {
	t.Setenv("AZURE_STORAGE_ACCOUNT", "mockaccount")
	t.Setenv("AZURE_STORAGE_KEY", "bW9ja2tleQ==")

	_, err := NewAzureSink("")
	assert.Error(t, err)
}

func TestNewGCSSink_RequiresBucket(t *testing.T) {
	old := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	defer os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", old)
	os.Unsetenv("GOOGLE_APPLICATION_CREDENTIALS")

	_, err := NewGCSSink("")
	assert.Error(t, err)
}
