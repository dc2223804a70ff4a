package btrieve

import "github.com/cespare/xxhash/v2"

// uniformPageSampleLimit bounds how many data pages get fingerprinted so a
// huge file doesn't turn an integrity check into a full-file hash.
const uniformPageSampleLimit = 64

// uniformPageThreshold is the fraction of sampled pages that must share a
// fingerprint before the file is flagged as suspiciously uniform (entirely
// zeroed, or a sparse/truncated copy).
const uniformPageThreshold = 0.9

// appendFingerprintSignal adds one additional, non-blocking corruption
// signal to an IntegrityReport: if almost every sampled data page hashes
// identically, the file is probably zeroed or sparse rather than a
// truncated-but-real Btrieve file. This never changes CorruptionDetected on
// its own - the size/page predicates remain the sole stop condition - it
// only adds a detail string a reviewer can act on.
func appendFingerprintSignal(fh *FileHandle, r *IntegrityReport) {
	data := fh.DataRegion()
	if len(data) < PageSize {
		return
	}

	counts := make(map[uint64]int)
	pages := len(data) / PageSize
	if pages > uniformPageSampleLimit {
		pages = uniformPageSampleLimit
	}

	for i := 0; i < pages; i++ {
		page := data[i*PageSize : (i+1)*PageSize]
		counts[xxhash.Sum64(page)]++
	}
	if pages == 0 {
		return
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	if float64(maxCount)/float64(pages) >= uniformPageThreshold {
		r.CorruptionDetails = append(r.CorruptionDetails,
			"uniform page content, file may be zeroed or sparse")
	}
}
