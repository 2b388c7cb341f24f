package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestStateSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("state.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestStateSchema_CompilesAsJSONSchema(t *testing.T) {
	data, err := os.ReadFile("state.schema.json")
	require.NoError(t, err)

	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "schema should compile as a JSON Schema")
}

func TestStateSchema_AcceptsEmptyState(t *testing.T) {
	schema, err := os.ReadFile("state.schema.json")
	require.NoError(t, err)

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewStringLoader("{}"),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "empty state should validate")
}

func TestStateSchema_RejectsUnknownTopLevelField(t *testing.T) {
	schema, err := os.ReadFile("state.schema.json")
	require.NoError(t, err)

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewStringLoader(`{"unexpected": true}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid(), "unknown top-level fields should be rejected")
}
