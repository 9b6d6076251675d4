package rekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_OrderIndependent(t *testing.T) {
	text := "AAA BBB CCC"
	edits := []Edit{
		{Start: 8, End: 11, Text: "cc"},
		{Start: 0, End: 3, Text: "aaaa"},
		{Start: 4, End: 7, Text: ""},
	}
	got, err := Apply(text, edits)
	require.NoError(t, err)
	assert.Equal(t, "aaaa  cc", got)
	assert.Equal(t, 8, edits[0].Start, "input slice must not be reordered")
}

func TestApply_Empty(t *testing.T) {
	got, err := Apply("same", nil)
	require.NoError(t, err)
	assert.Equal(t, "same", got)
}

func TestApply_Rejects(t *testing.T) {
	_, err := Apply("short", []Edit{{Start: 0, End: 100}})
	assert.Error(t, err)

	_, err = Apply("short", []Edit{{Start: 3, End: 1}})
	assert.Error(t, err)

	got, err := Apply("abcdef", []Edit{{Start: 0, End: 3, Text: "x"}, {Start: 2, End: 4, Text: "y"}})
	assert.Error(t, err)
	assert.Equal(t, "abcdef", got)
}
