package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("5551234567"))
	assert.Equal(t, "(555) 123-4567", FormatPhone("555-123-4567"))
	assert.Equal(t, "(555) 123-4567", FormatPhone("(555) 123 4567"))
	assert.Equal(t, "", FormatPhone(""))
	assert.Equal(t, "12345", FormatPhone("12345"))
	assert.Equal(t, "+7 727 000 0000", FormatPhone("+7 727 000 0000"))
}
