package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCCDLintMCPServer(t *testing.T) {
	s := NewCCDLintMCPServer()
	require.NotNil(t, s)
}
