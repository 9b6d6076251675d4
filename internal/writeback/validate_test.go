package writeback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidJSON(t *testing.T) {
	assert.NoError(t, Validate([]byte(`{"key": "group_x", "fields": [{"key": "field_y"}]}`), "a.json"))
}

func TestValidate_BrokenJSON(t *testing.T) {
	err := Validate([]byte("{\n  \"key\": \n}"), "acf-json/a.json")
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "acf-json/a.json", ve.FilePath)
	assert.NotEmpty(t, ve.Message)
	assert.Contains(t, ve.Error(), "acf-json/a.json:")
}
