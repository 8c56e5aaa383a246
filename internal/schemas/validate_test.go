package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const budgetSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Budget",
	"type": "object",
	"required": ["lumber", "crop"],
	"properties": {
		"lumber": {"type": "integer", "minimum": 0},
		"crop": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateJSON_Valid(t *testing.T) {
	err := ValidateJSON(budgetSchema, []byte(`{"lumber": 10, "crop": 0}`))
	assert.NoError(t, err)
}

func TestValidateJSON_MissingField(t *testing.T) {
	err := ValidateJSON(budgetSchema, []byte(`{"lumber": 10}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "crop")
}

func TestValidateJSON_WrongTypeAndRange(t *testing.T) {
	err := ValidateJSON(budgetSchema, []byte(`{"lumber": "ten", "crop": -3}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Len(t, validationErr.Errors, 2)

	fields := []string{validationErr.Errors[0].Field, validationErr.Errors[1].Field}
	assert.ElementsMatch(t, []string{"lumber", "crop"}, fields)
	assert.Contains(t, err.Error(), "validation failed:")
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	err := ValidateJSON(budgetSchema, []byte(`{ not json`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "Budget", loadErr.Path)
	assert.NotNil(t, loadErr.Unwrap())
}

func TestValidateJSON_BrokenSchema(t *testing.T) {
	err := ValidateJSON(`{"type": 12}`, []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "(string schema)", loadErr.Path)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestValidateValue(t *testing.T) {
	type budget struct {
		Lumber int64 `json:"lumber"`
		Crop   int64 `json:"crop"`
	}

	assert.NoError(t, ValidateValue(budgetSchema, budget{Lumber: 5, Crop: 6}))

	err := ValidateValue(budgetSchema, budget{Lumber: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lumber")

	err = ValidateValue(budgetSchema, func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal")
}

func TestSchemaLoadError(t *testing.T) {
	withCause := &SchemaLoadError{Path: "x", Message: "bad", Cause: errors.New("boom")}
	assert.Equal(t, "failed to load schema x: bad: boom", withCause.Error())

	withoutCause := &SchemaLoadError{Path: "x", Message: "bad"}
	assert.Equal(t, "failed to load schema x: bad", withoutCause.Error())
	assert.Nil(t, withoutCause.Unwrap())
}
