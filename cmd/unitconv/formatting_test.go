package unitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFormatting(t *testing.T) {
	assert.Equal(t, "COMMANDS:", formatUpper("commands:"))
	assert.Contains(t, formatBoldUpper("misc:"), "MISC:")
	assert.Contains(t, formatBold("USAGE:"), "USAGE:")
}
