package btrieve

import (
	"fmt"
	"os"
)

// Layout constants for the Btrieve v5 file format this package understands.
// No B-tree index, variable-length record, or File Control Record field is
// ever interpreted beyond these offsets.
const (
	// PageSize is the fixed Btrieve v5 page size in bytes.
	PageSize = 4096
	// HeaderSize is the per-page header carried by data pages.
	HeaderSize = 16
	// FCRPages is the number of File Control Record pages skipped
	// unconditionally at the start of every file.
	FCRPages = 2
)

// FileHandle is a memory-resident, read-only view of an opened file. Its
// lifetime is bounded by a single command invocation: nothing in this
// package mutates Buffer or retains a handle across calls.
type FileHandle struct {
	Path       string
	Filename   string
	TotalBytes int64
	Buffer     []byte
}

// Open reads the entire file at path into memory. Any readable path is
// accepted regardless of size; no magic-number check is performed. Size
// adequacy is a soft concern reported by CheckIntegrity, not a hard error
// here.
func Open(path string) (*FileHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fileErr("Open", fmt.Errorf("file not found: %s", path))
		}
		return nil, fileErr("Open", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fileErr("Open", fmt.Errorf("permission denied: %s", path))
		}
		return nil, fileErr("Open", err)
	}

	return &FileHandle{
		Path:       path,
		Filename:   filenameOf(path),
		TotalBytes: info.Size(),
		Buffer:     data,
	}, nil
}

func filenameOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}

// DataRegion returns the byte range after the two FCR pages. Callers must
// not mutate the returned slice; it aliases FileHandle.Buffer.
func (fh *FileHandle) DataRegion() []byte {
	start := FCRPages * PageSize
	if start >= len(fh.Buffer) {
		return nil
	}
	return fh.Buffer[start:]
}

// IntegrityReport captures the file-level predicates that gate any deeper
// walk of the data region.
type IntegrityReport struct {
	FileExists         bool
	Readable           bool
	ValidSize          bool
	HasFCRPages        bool
	DataPages          int64
	CorruptionDetected bool
	CorruptionDetails  []string
}

// CheckIntegrity evaluates the predicates of spec section 4.1 against an
// already-opened file. The first failing predicate is the sole stop
// condition recorded in CorruptionDetails; deeper checks still run so the
// report stays complete, but CorruptionDetected is set as soon as any one
// fails.
func CheckIntegrity(fh *FileHandle) *IntegrityReport {
	r := &IntegrityReport{
		FileExists: true,
		Readable:   true,
	}

	minSize := int64((FCRPages + 1) * PageSize)
	if fh.TotalBytes >= minSize {
		r.ValidSize = true
	} else {
		r.CorruptionDetails = append(r.CorruptionDetails,
			fmt.Sprintf("File too small: %d < %d", fh.TotalBytes, minSize))
		r.CorruptionDetected = true
	}

	if fh.TotalBytes >= int64(FCRPages*PageSize) {
		r.HasFCRPages = true
		dataBytes := fh.TotalBytes - int64(FCRPages*PageSize)
		r.DataPages = dataBytes / int64(PageSize-HeaderSize)
	} else {
		r.CorruptionDetected = true
	}

	appendFingerprintSignal(fh, r)

	return r
}

// CheckIntegrityAtPath opens path and reports on it, producing the
// file-not-found / unreadable legs of the report without requiring the
// caller to have opened the file first.
func CheckIntegrityAtPath(path string) *IntegrityReport {
	fh, err := Open(path)
	if err != nil {
		r := &IntegrityReport{}
		var coreErr *Error
		if asError(err, &coreErr) && coreErr.Kind == KindFile {
			if os.IsNotExist(coreErr.Err) {
				r.CorruptionDetails = append(r.CorruptionDetails, "File does not exist")
			} else {
				r.CorruptionDetails = append(r.CorruptionDetails, coreErr.Err.Error())
			}
		}
		r.CorruptionDetected = true
		return r
	}
	return CheckIntegrity(fh)
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}
	return ok
}
