package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["sku"],
	"properties": {
		"sku": { "type": "string", "minLength": 1 }
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString("test", testSchema, `{"sku": "CAB-001"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString("test", testSchema, `{}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Error(), "sku")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString("test", testSchema, `{"sku": 42}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString("broken", `{not json`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.Name)
}
