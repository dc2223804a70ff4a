package btrieve

import (
	"regexp"
)

// ContentType is the closed set of classification labels the Content
// Classifier can produce.
type ContentType string

const (
	ContentInsuranceProviders ContentType = "insurance_providers"
	ContentClinicalData       ContentType = "clinical_data"
	ContentIndexSequence      ContentType = "index_sequence"
	ContentCharacterSet       ContentType = "character_set"
	ContentBinaryData         ContentType = "binary_data"
	ContentTextData           ContentType = "text_data"
	ContentMixedData          ContentType = "mixed_data"
	ContentAnalysisFailed     ContentType = "analysis_failed"
)

// FileSummary is the output of the Content Classifier, optionally enriched
// by the Size Detector with DetectedRecordSize/EstimatedRecords.
type FileSummary struct {
	Path                string
	Filename            string
	FileSize            int64
	PageSize            int
	HeaderSize          int
	FCRPages            int
	ContentType         ContentType
	AsciiPercentage     float64
	DigitSequences      int
	DatePatterns        int
	QualityScore        float64
	DetectedRecordSize  int
	EstimatedRecords    int64
	detectedSizeIsKnown bool
}

// HasDetectedRecordSize reports whether the Size Detector has populated
// DetectedRecordSize/EstimatedRecords on this summary.
func (s *FileSummary) HasDetectedRecordSize() bool { return s.detectedSizeIsKnown }

// SetDetectedRecordSize records the Size Detector's outcome on this
// summary. Callers outside the package use this instead of assigning
// DetectedRecordSize/EstimatedRecords directly, so detectedSizeIsKnown
// stays consistent.
func (s *FileSummary) SetDetectedRecordSize(size int, estimatedRecords int64) {
	s.DetectedRecordSize = size
	s.EstimatedRecords = estimatedRecords
	s.detectedSizeIsKnown = true
}

var (
	digitRunPattern = regexp.MustCompile(`\d{3,}`)

	dateMDYPattern = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	dateYMDPattern = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`)
	dateDMYPattern = regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`)

	providerCodeCandidate = regexp.MustCompile(`[A-Z]{3,4}`)
	poBoxPattern          = regexp.MustCompile(`(?i)P\.?O\.?\s*Box\s+\d+`)
	zipCandidatePattern   = regexp.MustCompile(`\d{5}(-\d{4})?`)
	tollFreeCandidate     = regexp.MustCompile(`800\d{7,10}`)

	procedureCodeCandidate = regexp.MustCompile(`D\d{4}`)
	moneyAmountCandidate   = regexp.MustCompile(`\d+\.\d{2}`)

	sequentialPattern = regexp.MustCompile(`(6,7,8,9,10|11,12,13,14,15)`)
	charsetPattern     = regexp.MustCompile(`ABCDEFGHIJKLMNOPQRSTUVWXYZ`)
)

// ClassifyContent runs the Content Classifier over the data region of an
// opened file. It never returns an error: any internal failure degrades to
// ContentAnalysisFailed on a partially populated summary, per spec section
// 4.2's "analysis-degradation" error kind.
func ClassifyContent(fh *FileHandle) *FileSummary {
	summary := &FileSummary{
		Path:       fh.Path,
		Filename:   fh.Filename,
		FileSize:   fh.TotalBytes,
		PageSize:   PageSize,
		HeaderSize: HeaderSize,
		FCRPages:   FCRPages,
	}

	data := fh.DataRegion()
	if len(data) == 0 {
		summary.ContentType = ContentMixedData
		return summary
	}

	summary.AsciiPercentage = asciiPercentage(data)

	func() {
		defer func() {
			if recover() != nil {
				summary.ContentType = ContentAnalysisFailed
			}
		}()

		text := decodeLatin1(data)
		summary.DigitSequences = len(digitRunPattern.FindAllString(text, -1))
		summary.DatePatterns = len(dateMDYPattern.FindAllString(text, -1)) +
			len(dateYMDPattern.FindAllString(text, -1)) +
			len(dateDMYPattern.FindAllString(text, -1))

		summary.ContentType = classifyContentType(text, summary.AsciiPercentage)
	}()

	return summary
}

// asciiPercentage is the percentage of bytes in [32,126] over the whole
// slice. Equal to 0 for an empty slice.
func asciiPercentage(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	count := 0
	for _, b := range data {
		if b >= 32 && b <= 126 {
			count++
		}
	}
	return 100 * float64(count) / float64(len(data))
}

// decodeLatin1 is the byte-preserving 8-bit codec required by spec section
// 4.2: one rune per input byte, never failing regardless of byte value.
func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

func classifyContentType(text string, asciiPct float64) ContentType {
	insuranceScore := len(providerCodeCandidate.FindAllString(text, -1)) +
		len(poBoxPattern.FindAllString(text, -1)) +
		len(zipCandidatePattern.FindAllString(text, -1)) +
		len(tollFreeCandidate.FindAllString(text, -1))

	clinicalScore := len(procedureCodeCandidate.FindAllString(text, -1)) +
		len(moneyAmountCandidate.FindAllString(text, -1))

	sequentialScore := len(sequentialPattern.FindAllString(text, -1))
	charsetScore := len(charsetPattern.FindAllString(text, -1))

	switch {
	case insuranceScore > 10:
		return ContentInsuranceProviders
	case clinicalScore > 5:
		return ContentClinicalData
	case sequentialScore > 3:
		return ContentIndexSequence
	case charsetScore > 2:
		return ContentCharacterSet
	case asciiPct < 1.0:
		return ContentBinaryData
	case asciiPct > 50.0:
		return ContentTextData
	default:
		return ContentMixedData
	}
}
