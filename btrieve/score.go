package btrieve

import "strings"

// Score computes the Quality Scorer of spec section 4.4: a weighted blend
// of text/digit/alpha prevalence and printable density, in [0, 100]. An
// empty record set scores 0.
func Score(records []*Record) float64 {
	total := len(records)
	if total == 0 {
		return 0
	}

	var textCount, digitCount, alphaCount, printableSum int
	for _, r := range records {
		if strings.TrimSpace(r.DecodedText) != "" {
			textCount++
		}
		if r.HasDigits {
			digitCount++
		}
		if r.HasAlpha {
			alphaCount++
		}
		printableSum += r.PrintableChars
	}

	textFrac := float64(textCount) / float64(total)
	digitFrac := float64(digitCount) / float64(total)
	alphaFrac := float64(alphaCount) / float64(total)
	avgPrintable := float64(printableSum) / float64(total)

	printableComponent := avgPrintable / 50
	if printableComponent > 1 {
		printableComponent = 1
	}

	return 30*textFrac + 20*digitFrac + 20*alphaFrac + 30*printableComponent
}
