package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone_TenDigits(t *testing.T) {
	assert.Equal(t, "(123) 456-7890", FormatPhone("1234567890"))
}

func TestFormatPhone_AlreadyFormatted(t *testing.T) {
	assert.Equal(t, "(123) 456-7890", FormatPhone("(123) 456-7890"))
}

func TestFormatPhone_DashesAndDots(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("555.123.4567"))
	assert.Equal(t, "(555) 123-4567", FormatPhone("555-123-4567"))
}

func TestFormatPhone_LeadingCountryCode(t *testing.T) {
	assert.Equal(t, "(415) 555-2671", FormatPhone("+1 415 555 2671"))
	assert.Equal(t, "(415) 555-2671", FormatPhone("14155552671"))
}

func TestFormatPhone_TooShort(t *testing.T) {
	assert.Equal(t, "555-12", FormatPhone("555-12"))
}

func TestFormatPhone_International(t *testing.T) {
	// Non-NANP numbers pass through unchanged.
	assert.Equal(t, "+44 20 7946 0958", FormatPhone("+44 20 7946 0958"))
}

func TestFormatPhone_Empty(t *testing.T) {
	assert.Equal(t, "", FormatPhone(""))
}
