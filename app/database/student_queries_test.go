package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRollNumberSequence(t *testing.T) {
	for i := 1; i <= 5; i++ {
		assert.Equal(t, fmt.Sprintf("TIONS%d", i), GenerateRollNumber("TIONS", i))
	}
	assert.Equal(t, "BCA2024-12", GenerateRollNumber("BCA2024-", 12))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1", placeholders(1))
	assert.Equal(t, "$1, $2, $3", placeholders(3))
}
