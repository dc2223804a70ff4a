package btrieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFields(t *testing.T) {
	text := "ABC 123 Main St PO Box 99 CA 90210 procedure D1234 amount 42.50"
	fields := extractFields(text)

	assert.Equal(t, "ABC", fields[FieldProviderCode])
	assert.Equal(t, "PO Box 99", fields[FieldAddress])
	assert.Equal(t, "CA", fields[FieldState])
	assert.Equal(t, "90210", fields[FieldZipCode])
	assert.Equal(t, "D1234", fields[FieldProcedureCode])
	assert.Equal(t, "42.50", fields[FieldAmount])
}

func TestExtractFields_NoMatches(t *testing.T) {
	fields := extractFields("   ")
	for _, name := range FieldNames {
		assert.Empty(t, fields[name])
	}
}

func TestExtractFields_Phone(t *testing.T) {
	fields := extractFields("call 8005551234 now")
	assert.Equal(t, "8005551234", fields[FieldPhone])
}
