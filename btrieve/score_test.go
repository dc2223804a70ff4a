package btrieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptySet(t *testing.T) {
	assert.Equal(t, 0.0, Score(nil))
}

func TestScore_AllTextDigitsAlpha(t *testing.T) {
	records := []*Record{
		{DecodedText: "ABC123", HasDigits: true, HasAlpha: true, PrintableChars: 50},
		{DecodedText: "XYZ456", HasDigits: true, HasAlpha: true, PrintableChars: 50},
	}
	score := Score(records)
	assert.InDelta(t, 100.0, score, 0.001)
}

func TestScore_AllBlank(t *testing.T) {
	records := []*Record{
		{DecodedText: "", HasDigits: false, HasAlpha: false, PrintableChars: 0},
	}
	assert.Equal(t, 0.0, Score(records))
}
