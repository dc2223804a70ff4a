package btrieve

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHandleWithData(data []byte) *FileHandle {
	buf := make([]byte, FCRPages*PageSize+len(data))
	copy(buf[FCRPages*PageSize:], data)
	return &FileHandle{Buffer: buf, TotalBytes: int64(len(buf))}
}

func TestClassifyContent_EmptyDataRegion(t *testing.T) {
	fh := &FileHandle{Buffer: make([]byte, FCRPages*PageSize)}
	summary := ClassifyContent(fh)
	assert.Equal(t, ContentMixedData, summary.ContentType)
	assert.Zero(t, summary.AsciiPercentage)
}

func TestClassifyContent_BinaryData(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x01, 0xFF, 0xFE}, 100)
	fh := fileHandleWithData(data)
	summary := ClassifyContent(fh)
	assert.Equal(t, ContentBinaryData, summary.ContentType)
}

func TestClassifyContent_TextData(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 50)
	fh := fileHandleWithData(data)
	summary := ClassifyContent(fh)
	assert.Equal(t, ContentTextData, summary.ContentType)
	assert.Greater(t, summary.AsciiPercentage, 50.0)
}

func TestClassifyContent_InsuranceProviders(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 15; i++ {
		buf.WriteString("ABC 123 Main St PO Box 456 90210 80055501234 ")
	}
	fh := fileHandleWithData(buf.Bytes())
	summary := ClassifyContent(fh)
	assert.Equal(t, ContentInsuranceProviders, summary.ContentType)
}

func TestClassifyContent_ClinicalData(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 10; i++ {
		buf.WriteString("D1234 99.50 ")
	}
	fh := fileHandleWithData(buf.Bytes())
	summary := ClassifyContent(fh)
	assert.Equal(t, ContentClinicalData, summary.ContentType)
}

func TestAsciiPercentage(t *testing.T) {
	assert.Equal(t, 0.0, asciiPercentage(nil))
	assert.Equal(t, 100.0, asciiPercentage([]byte("hello")))
	assert.Equal(t, 0.0, asciiPercentage([]byte{0x00, 0x01, 0x02}))
}

func TestDecodeLatin1_PreservesEveryByte(t *testing.T) {
	data := []byte{0x00, 0x41, 0xFF, 0x7F}
	text := decodeLatin1(data)
	runes := []rune(text)
	want := []rune{0x00, 0x41, 0xFF, 0x7F}
	assert.Equal(t, want, runes)
}
