package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	first := NewHTTPClient()
	second := NewHTTPClient()

	require.NotNil(t, first.Client)
	require.NotNil(t, second.Client)
	assert.NotSame(t, first.Client, second.Client)
	assert.NotNil(t, first.R())
}
