package fees

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceiptNumberFormat(t *testing.T) {
	no := GenerateReceiptNumber()

	require.Len(t, no, 3+14+12)
	assert.Regexp(t, regexp.MustCompile(`^RCP\d{14}[0-9a-f]{12}$`), no)
}

func TestGenerateReceiptNumberUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		no := GenerateReceiptNumber()
		_, dup := seen[no]
		require.False(t, dup, "duplicate receipt number %s after %d generations", no, i)
		seen[no] = struct{}{}
	}
}
