package keygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffix(t *testing.T) {
	for _, n := range []int{1, 13, 64} {
		s := Suffix(n)
		assert.Len(t, s, n)
		for _, c := range s {
			assert.Contains(t, alphabet, string(c))
		}
	}
	assert.Empty(t, Suffix(0))
	assert.Empty(t, Suffix(-3))
}

func TestNew(t *testing.T) {
	k := New(FieldPrefix)
	assert.True(t, Valid(k, FieldPrefix), k)
	assert.False(t, Valid(k, GroupPrefix))

	g := New(GroupPrefix)
	assert.True(t, Valid(g, GroupPrefix), g)
	assert.NotEqual(t, g, New(GroupPrefix))
}

func TestValid(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"field_abcdefghij123", true},
		{"field_abcdefghij12", false},
		{"field_ABCDEFGHIJ123", false},
		{"group_abcdefghij123", false},
		{"fieldabcdefghij1234", false},
		{"field_abcdefghij12-", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.key, FieldPrefix), tt.key)
	}
}
