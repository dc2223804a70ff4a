package btrieve

import "fmt"

// posClass is the per-codepoint bucket used while accumulating PositionStats.
type posClass int

const (
	classNull posClass = iota
	classDigit
	classAlpha
	classSpace
	classPrintable
	classOther
)

func classify(r rune) posClass {
	switch {
	case r == 0:
		return classNull
	case r >= '0' && r <= '9':
		return classDigit
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return classAlpha
	case r == ' ':
		return classSpace
	case r >= 32 && r <= 126:
		return classPrintable
	default:
		return classOther
	}
}

// PositionStats accumulates per-byte-offset statistics across a record set.
// It is transient: it lives only for the duration of a single
// DetectFieldBoundaries call.
type PositionStats struct {
	Offset       int
	Null         int
	Digit        int
	Alpha        int
	Space        int
	Printable    int
	TotalRecords int
	UniqueChars  map[rune]struct{}
}

// positionType is the per-offset classification of spec section 4.6 step 2.
type positionType int

const (
	posNullPadding positionType = iota
	posDigits
	posAlpha
	posText
	posMixed
)

func (s *PositionStats) positionType() positionType {
	if s.TotalRecords == 0 {
		return posMixed
	}
	total := float64(s.TotalRecords)
	nullPct := 100 * float64(s.Null) / total
	digitPct := 100 * float64(s.Digit) / total
	alphaPct := 100 * float64(s.Alpha) / total
	asciiPct := 100 * float64(s.Digit+s.Alpha+s.Space+s.Printable) / total

	switch {
	case nullPct > 80:
		return posNullPadding
	case digitPct > 70:
		return posDigits
	case alphaPct > 50:
		return posAlpha
	case asciiPct > 50:
		return posText
	default:
		return posMixed
	}
}

// FieldDescriptor is an inferred (name, type, position, length) tuple
// describing a contiguous column within a record.
type FieldDescriptor struct {
	Name          string
	TypeTag       string
	Position      int
	Length        int
	AsciiPercent  float64
	DigitPercent  float64
	AlphaPercent  float64
}

// Type tags, a closed set assigned by step 4 of the Field Boundary
// Detector.
const (
	TypeZipCode       = "ZIP_CODE"
	TypePhone         = "PHONE"
	TypeProcedureCode = "PROCEDURE_CODE"
	TypeDigits        = "DIGITS"
	TypeState         = "STATE"
	TypeProviderCode  = "PROVIDER_CODE"
	TypeAlpha         = "ALPHA"
	TypeText          = "TEXT"
	TypeAddress       = "ADDRESS"
	TypeMixed         = "MIXED"
)

// DetectFieldBoundaries runs the positional Field Boundary Detector of spec
// section 4.6 over a uniform-size record set. An empty record set yields an
// empty field list, never an error.
func DetectFieldBoundaries(records []*Record, recordSize int) []*FieldDescriptor {
	if len(records) == 0 || recordSize <= 0 {
		return nil
	}

	stats := perPositionStats(records, recordSize)
	runs := segment(stats, recordSize)

	descriptors := make([]*FieldDescriptor, 0, len(runs))
	for _, run := range runs {
		descriptors = append(descriptors, describeRun(stats, run.start, run.end))
	}
	return descriptors
}

// perPositionStats implements step 1: scan every record's decoded text,
// right-padded with spaces to recordSize codepoints, accumulating counts
// and the unique codepoint set at each offset.
func perPositionStats(records []*Record, recordSize int) []*PositionStats {
	stats := make([]*PositionStats, recordSize)
	for i := range stats {
		stats[i] = &PositionStats{Offset: i, UniqueChars: make(map[rune]struct{})}
	}

	for _, rec := range records {
		padded := padRunes(rec.DecodedText, recordSize)
		for i := 0; i < recordSize; i++ {
			r := padded[i]
			st := stats[i]
			st.TotalRecords++
			st.UniqueChars[r] = struct{}{}

			switch classify(r) {
			case classNull:
				st.Null++
			case classDigit:
				st.Digit++
			case classAlpha:
				st.Alpha++
			case classSpace:
				st.Space++
			case classPrintable:
				st.Printable++
			}
		}
	}

	return stats
}

func padRunes(text string, length int) []rune {
	runes := []rune(text)
	if len(runes) >= length {
		return runes[:length]
	}
	out := make([]rune, length)
	copy(out, runes)
	for i := len(runes); i < length; i++ {
		out[i] = ' '
	}
	return out
}

type fieldRun struct {
	start, end int // [start, end)
}

// segment implements step 3: walk offsets maintaining a current run, closing
// it on a null-padding position or a type change, and dropping any
// zero-length candidate.
func segment(stats []*PositionStats, recordSize int) []fieldRun {
	var runs []fieldRun
	haveRun := false
	currentStart := 0
	var currentType positionType

	for p := 0; p < recordSize; p++ {
		pt := stats[p].positionType()

		switch {
		case !haveRun && pt != posNullPadding:
			currentStart = p
			currentType = pt
			haveRun = true
		case haveRun && (pt == posNullPadding || pt != currentType):
			if p > currentStart {
				runs = append(runs, fieldRun{start: currentStart, end: p})
			}
			if pt != posNullPadding {
				currentStart = p
				currentType = pt
				haveRun = true
			} else {
				haveRun = false
			}
		}
	}

	if haveRun && recordSize > currentStart {
		runs = append(runs, fieldRun{start: currentStart, end: recordSize})
	}

	return runs
}

// describeRun implements step 4: re-sum offset stats across the span and
// name/type the result deterministically.
func describeRun(stats []*PositionStats, start, end int) *FieldDescriptor {
	length := end - start

	var totalRecords, digitSum, alphaSum, asciiSum int
	uniqueChars := make(map[rune]struct{})
	for p := start; p < end; p++ {
		st := stats[p]
		if st.TotalRecords == 0 {
			continue
		}
		totalRecords += st.TotalRecords
		digitSum += st.Digit
		alphaSum += st.Alpha
		asciiSum += st.Digit + st.Alpha + st.Space + st.Printable
		for c := range st.UniqueChars {
			uniqueChars[c] = struct{}{}
		}
	}

	desc := &FieldDescriptor{Position: start, Length: length}
	if totalRecords > 0 {
		desc.DigitPercent = 100 * float64(digitSum) / float64(totalRecords)
		desc.AlphaPercent = 100 * float64(alphaSum) / float64(totalRecords)
		desc.AsciiPercent = 100 * float64(asciiSum) / float64(totalRecords)
	}

	runType := dominantRunType(stats, start, end)
	avgDigitFraction := desc.DigitPercent / 100

	name, typeTag := nameAndType(runType, length, uniqueChars, avgDigitFraction)
	desc.Name = name
	desc.TypeTag = typeTag
	return desc
}

// dominantRunType re-derives the positionType that caused this run to be
// opened, using the first in-range offset with records.
func dominantRunType(stats []*PositionStats, start, end int) positionType {
	for p := start; p < end; p++ {
		if stats[p].TotalRecords > 0 {
			return stats[p].positionType()
		}
	}
	return posMixed
}

func nameAndType(runType positionType, length int, uniqueChars map[rune]struct{}, avgDigitFraction float64) (string, string) {
	switch runType {
	case posDigits:
		switch {
		case length == 5 && avgDigitFraction > 0.8:
			return FieldZipCode, TypeZipCode
		case length >= 10 && avgDigitFraction > 0.9:
			return "phone_number", TypePhone
		case length == 4 && charsSubsetOf(uniqueChars, "0123456789D"):
			return FieldProcedureCode, TypeProcedureCode
		default:
			return fmt.Sprintf("digit_field_%d", length), TypeDigits
		}
	case posAlpha:
		switch {
		case length == 2 && allSingleLetters(uniqueChars):
			return "state_code", TypeState
		case length <= 4 && allUppercaseLetters(uniqueChars):
			return FieldProviderCode, TypeProviderCode
		default:
			return fmt.Sprintf("alpha_field_%d", length), TypeAlpha
		}
	case posText:
		switch {
		case length > 50:
			return "description", TypeText
		case length > 20:
			return FieldAddress, TypeAddress
		default:
			return fmt.Sprintf("text_field_%d", length), TypeText
		}
	default:
		return fmt.Sprintf("field_%d", length), TypeMixed
	}
}

func charsSubsetOf(chars map[rune]struct{}, allowed string) bool {
	allowedSet := make(map[rune]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	for c := range chars {
		if _, ok := allowedSet[c]; !ok {
			return false
		}
	}
	return true
}

func allSingleLetters(chars map[rune]struct{}) bool {
	for c := range chars {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

func allUppercaseLetters(chars map[rune]struct{}) bool {
	for c := range chars {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
