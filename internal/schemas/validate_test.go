package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateBytes_Valid(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "jobflow", "count": 3}`))
	assert.NoError(t, err)
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"count": 3}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateBytes_MultipleViolations(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "", "count": -1}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateBytes_BrokenSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{not json`), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	assert.NoError(t, ValidateFile(schemaPath, []byte(`{"name": "ok"}`)))
	assert.Error(t, ValidateFile(schemaPath, []byte(`{}`)))

	var loadErr *SchemaLoadError
	err := ValidateFile(filepath.Join(dir, "missing.schema.json"), []byte(`{}`))
	require.Error(t, err)
	assert.True(t, errors.As(err, &loadErr))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath("does/not/exist.schema.json"))

	// The repository schema is two levels up from this package.
	resolved := ResolvePath("schemas/state.schema.json")
	require.NotEmpty(t, resolved)
	assert.FileExists(t, resolved)
}
