package btrieve

import "fmt"

// CandidateRecordSizes is the fixed, ordered set of record sizes the Size
// Detector tries. Btrieve v5 record sizes in the target domain were
// effectively constrained to small powers of two in practice; a fixed list
// bounds worst-case cost and keeps scores comparable across runs.
var CandidateRecordSizes = []int{32, 64, 128, 256, 512, 1024}

// DefaultMaxRecordsForDetection is the record cap passed to the Extractor
// while scoring each candidate size.
const DefaultMaxRecordsForDetection = 100

// DetectRecordSize tries each candidate size in CandidateRecordSizes, in
// order, scoring the records it extracts with Score. The first strictly
// greater score wins; an exact tie keeps the earliest (smallest) candidate,
// so the fixed iteration order is part of the contract. It fails with a
// data error if no candidate yields any record.
func DetectRecordSize(fh *FileHandle, maxRecords int) (int, float64, error) {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecordsForDetection
	}

	bestSize := 0
	bestScore := 0.0
	sawAnyRecords := false

	for _, size := range CandidateRecordSizes {
		records, err := ExtractRecords(fh, size, maxRecords)
		if err != nil || len(records) == 0 {
			continue
		}

		score := Score(records)
		if !sawAnyRecords || score > bestScore {
			bestScore = score
			bestSize = size
		}
		sawAnyRecords = true
	}

	if !sawAnyRecords {
		return 0, 0, dataErr("DetectRecordSize",
			fmt.Errorf("could not detect record size - file may be corrupted or not a Btrieve file"))
	}

	return bestSize, bestScore / 100.0, nil
}
