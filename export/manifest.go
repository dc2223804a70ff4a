package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Manifest is the sidecar written alongside an export payload: a record
// count and a SHA-256 digest of the payload, so a downstream consumer can
// detect truncation or tampering without re-running the pipeline.
type Manifest struct {
	Format      string `json:"format"`
	RecordCount int    `json:"record_count"`
	Sha256      string `json:"sha256"`
	Bytes       int    `json:"bytes"`
}

// BuildManifest computes a Manifest for a rendered payload.
func BuildManifest(format string, recordCount int, payload []byte) *Manifest {
	sum := sha256.Sum256(payload)
	return &Manifest{
		Format:      format,
		RecordCount: recordCount,
		Sha256:      hex.EncodeToString(sum[:]),
		Bytes:       len(payload),
	}
}

// MarshalManifest renders a Manifest as indented JSON, the form written to
// the "<output>.manifest.json" sidecar.
func MarshalManifest(m *Manifest) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
