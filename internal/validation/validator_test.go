package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camilovegag/procesos-de-negocio/internal/domain"
)

func TestValidateScenarioA(t *testing.T) {
	draft := DraftFromMap(map[string]any{
		"customerName":        "Acme Corp",
		"customerType":        "estrella",
		"criticalityLevel":    "alto",
		"escalationNecessary": true,
	})

	res := Validate(draft)
	assert.True(t, res.Submittable)
	assert.Empty(t, res.Errors())
	assert.Len(t, res.Fields, len(Fields))
}

func TestValidateScenarioB(t *testing.T) {
	draft := DraftFromMap(map[string]any{
		"customerName":        "A",
		"customerType":        "vaca",
		"criticalityLevel":    "bajo",
		"escalationNecessary": false,
	})

	res := Validate(draft)
	assert.False(t, res.Submittable)
	assert.Equal(t, map[Field]string{
		FieldCustomerName: "El nombre debe tener al menos 2 caracteres.",
	}, res.Errors())
	assert.Equal(t, KindTooShort, res.Field(FieldCustomerName).Kind)
}

func TestValidateScenarioC(t *testing.T) {
	draft := DraftFromMap(map[string]any{
		"customerName":        "Acme Corp",
		"customerType":        "invalid-value",
		"criticalityLevel":    "alto",
		"escalationNecessary": true,
	})

	res := Validate(draft)
	assert.False(t, res.Submittable)
	assert.Equal(t, map[Field]string{
		FieldCustomerType: "Tipo de cliente inválido.",
	}, res.Errors())
}

func TestValidateEmptyDraft(t *testing.T) {
	res := Validate(PartialTicketDraft{})

	assert.False(t, res.Submittable)
	assert.Equal(t, map[Field]string{
		FieldCustomerName:        "Required",
		FieldCustomerType:        "Selecciona un tipo de cliente válido.",
		FieldCriticalityLevel:    "Selecciona un nivel de criticidad válido.",
		FieldEscalationNecessary: "Required",
	}, res.Errors())
	assert.True(t, res.Field(FieldAdditionalComments).Valid)
}

func TestValidateIsIdempotent(t *testing.T) {
	draft := DraftFromMap(map[string]any{"customerName": "x", "extra": 1})
	assert.Equal(t, Validate(draft), Validate(draft))
}

func TestResultState(t *testing.T) {
	res := Validate(DraftFromMap(map[string]any{"customerName": "Acme"}))

	assert.Equal(t, StateUntouched, res.State(FieldCustomerType, false))
	assert.Equal(t, StateInvalid, res.State(FieldCustomerType, true))
	assert.Equal(t, StateValid, res.State(FieldCustomerName, true))
	assert.Equal(t, StateUntouched, res.State(FieldCustomerName, false))
}

func TestSubmitReturnsTypedDraft(t *testing.T) {
	draft := DraftFromMap(map[string]any{
		"customerName":        "Universidad Autónoma de Mazatlán",
		"customerType":        "interrogante",
		"criticalityLevel":    "muy bajo",
		"escalationNecessary": false,
		"additionalComments":  "Llamar por la tarde",
	})

	ticket, err := Submit(draft)
	require.NoError(t, err)
	assert.Equal(t, "Universidad Autónoma de Mazatlán", ticket.CustomerName)
	assert.Equal(t, domain.CustomerTypeQuestionMark, ticket.CustomerType)
	assert.Equal(t, domain.CriticalityVeryLow, ticket.CriticalityLevel)
	assert.False(t, ticket.EscalationNecessary)
	require.NotNil(t, ticket.AdditionalComments)
	assert.Equal(t, "Llamar por la tarde", *ticket.AdditionalComments)
}

func TestSubmitWithoutComments(t *testing.T) {
	ticket, err := Submit(DraftFromMap(map[string]any{
		"customerName":        "Acme Corp",
		"customerType":        "estrella",
		"criticalityLevel":    "alto",
		"escalationNecessary": true,
	}))
	require.NoError(t, err)
	assert.Nil(t, ticket.AdditionalComments)
	assert.True(t, ticket.EscalationNecessary)
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	_, err := Submit(DraftFromMap(map[string]any{
		"customerName":        "A",
		"customerType":        "perro",
		"criticalityLevel":    "urgente",
		"escalationNecessary": true,
	}))
	require.Error(t, err)

	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, map[Field]string{
		FieldCustomerName:     "El nombre debe tener al menos 2 caracteres.",
		FieldCriticalityLevel: "Nivel de criticidad inválido.",
	}, subErr.Result.Errors())
	assert.Equal(t,
		"ticket draft is invalid: customerName: El nombre debe tener al menos 2 caracteres.; criticalityLevel: Nivel de criticidad inválido.",
		err.Error())
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("escalationNecessary")
	assert.True(t, ok)
	assert.Equal(t, FieldEscalationNecessary, f)

	_, ok = ParseField("title")
	assert.False(t, ok)
}
