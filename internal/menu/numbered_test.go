package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigup-dev/rigup/internal/component"
)

func TestChoiceIterPicksByNumber(t *testing.T) {
	var out bytes.Buffer
	iter := NewChoiceIter(strings.NewReader("1\nq\n"), &out)

	id, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, component.All()[0].ID, id)

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestChoiceIterQuitWord(t *testing.T) {
	var out bytes.Buffer
	iter := NewChoiceIter(strings.NewReader("quit\n"), &out)
	_, ok := iter.Next()
	assert.False(t, ok)
}

func TestChoiceIterEOF(t *testing.T) {
	var out bytes.Buffer
	iter := NewChoiceIter(strings.NewReader(""), &out)
	_, ok := iter.Next()
	assert.False(t, ok)
	// The menu still printed once before input ended.
	assert.Contains(t, out.String(), component.All()[0].Label)
}

func TestChoiceIterInvalidInputReprompts(t *testing.T) {
	var out bytes.Buffer
	iter := NewChoiceIter(strings.NewReader("0\nabc\n99\n2\n"), &out)

	id, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, component.All()[1].ID, id)
	assert.Contains(t, out.String(), `"0"`)
	assert.Contains(t, out.String(), `"abc"`)
	assert.Contains(t, out.String(), `"99"`)
}

func TestChoiceIterSequentialChoices(t *testing.T) {
	var out bytes.Buffer
	iter := NewChoiceIter(strings.NewReader("3\n1\nq\n"), &out)

	first, ok := iter.Next()
	require.True(t, ok)
	second, ok := iter.Next()
	require.True(t, ok)

	assert.Equal(t, component.All()[2].ID, first)
	assert.Equal(t, component.All()[0].ID, second)
}
