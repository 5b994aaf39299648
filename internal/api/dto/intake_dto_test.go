package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilovegag/procesos-de-negocio/internal/validation"
)

func TestParseDraftRequestKeepsRawShapes(t *testing.T) {
	req, err := ParseDraftRequest([]byte(`{
		"customerName": 42,
		"customerType": null,
		"escalationNecessary": "yes",
		"title": "ignored"
	}`))
	require.NoError(t, err)

	assert.Equal(t, json.Number("42"), req.Draft.CustomerName.Raw())
	assert.True(t, req.Draft.CustomerType.IsPresent())
	assert.Nil(t, req.Draft.CustomerType.Raw())
	assert.False(t, req.Draft.CriticalityLevel.IsPresent())
	assert.Equal(t, "yes", req.Draft.EscalationNecessary.Raw())
	assert.False(t, req.Draft.AdditionalComments.IsPresent())
	assert.Nil(t, req.Touched)
	assert.True(t, req.IsTouched(validation.FieldAdditionalComments))
}

func TestParseDraftRequestTouched(t *testing.T) {
	req, err := ParseDraftRequest([]byte(`{"customerName":"A","touched":["customerName"]}`))
	require.NoError(t, err)
	assert.True(t, req.IsTouched(validation.FieldCustomerName))
	assert.False(t, req.IsTouched(validation.FieldCustomerType))

	_, err = ParseDraftRequest([]byte(`{"touched":["title"]}`))
	assert.Error(t, err)

	_, err = ParseDraftRequest([]byte(`{"touched":"customerName"}`))
	assert.Error(t, err)
}

func TestParseDraftRequestOutOfRangeNumber(t *testing.T) {
	req, err := ParseDraftRequest([]byte(`{"customerName":1e400,"escalationNecessary":-1e400}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1e400"), req.Draft.CustomerName.Raw())

	res := validation.Validate(req.Draft)
	name := res.Field(validation.FieldCustomerName)
	assert.Equal(t, validation.KindWrongType, name.Kind)
	assert.Equal(t, "Expected string, received number", name.Message)
	assert.Equal(t, "Expected boolean, received number", res.Field(validation.FieldEscalationNecessary).Message)
}

func TestParseDraftRequestNullTouchedMeansAll(t *testing.T) {
	req, err := ParseDraftRequest([]byte(`{"customerName":"A","touched":null}`))
	require.NoError(t, err)
	assert.Nil(t, req.Touched)
	assert.True(t, req.IsTouched(validation.FieldCustomerName))

	resp := NewValidationResponse(req, validation.Validate(req.Draft))
	assert.Equal(t, validation.StateInvalid, resp.Fields[validation.FieldCustomerName].State)
}

func TestParseDraftRequestRejectsNonObjects(t *testing.T) {
	for _, body := range []string{"", "   ", "[]", "null", `"text"`, "{"} {
		_, err := ParseDraftRequest([]byte(body))
		assert.Error(t, err, "body %q", body)
	}

	_, err := ParseDraftRequest(nil)
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestNewValidationResponse(t *testing.T) {
	req, err := ParseDraftRequest([]byte(`{"customerName":"A","touched":["customerName"]}`))
	require.NoError(t, err)

	resp := NewValidationResponse(req, validation.Validate(req.Draft))
	assert.False(t, resp.Submittable)

	name := resp.Fields[validation.FieldCustomerName]
	assert.Equal(t, validation.StateInvalid, name.State)
	assert.Equal(t, validation.KindTooShort, name.Kind)
	assert.Equal(t, "El nombre debe tener al menos 2 caracteres.", name.Message)

	ct := resp.Fields[validation.FieldCustomerType]
	assert.Equal(t, validation.StateUntouched, ct.State)
	assert.False(t, ct.Valid)
	assert.Equal(t, "Selecciona un tipo de cliente válido.", ct.Message)
}
