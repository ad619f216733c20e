package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoundID(t *testing.T) {
	// When: two IDs are generated
	first := GenerateRoundID()
	second := GenerateRoundID()

	// Then: both are valid UUIDs and differ
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
