package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWellFormed_Valid(t *testing.T) {
	p := NewMarkupParser()
	assert.Nil(t, p.CheckWellFormed(strings.NewReader("<doc><child>text</child></doc>")))
}

func TestCheckWellFormed_UnclosedTag(t *testing.T) {
	p := NewMarkupParser()
	me := p.CheckWellFormed(strings.NewReader("<doc><child>text</doc>"))
	require.NotNil(t, me)
	assert.NotEmpty(t, me.Message)
}

func TestCheckWellFormed_SyntaxErrorCarriesLine(t *testing.T) {
	p := NewMarkupParser()
	me := p.CheckWellFormed(strings.NewReader("<doc>\n<broken\n</doc>"))
	require.NotNil(t, me)
	assert.Greater(t, me.Line, 0)
}

func TestCheckWellFormed_Empty(t *testing.T) {
	p := NewMarkupParser()
	me := p.CheckWellFormed(strings.NewReader(""))
	require.NotNil(t, me)
}

func TestCheckWellFormed_NotMarkup(t *testing.T) {
	p := NewMarkupParser()
	me := p.CheckWellFormed(strings.NewReader("just some prose, no elements"))
	require.NotNil(t, me)
}
