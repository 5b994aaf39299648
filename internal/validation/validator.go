// Package validation holds the ticket intake rules. Everything here is a pure
// function of its input; callers decide when to re-run it.
package validation

import (
	"strings"

	"github.com/camilovegag/procesos-de-negocio/internal/domain"
)

// FieldState is the derived display state of a single field.
type FieldState string

const (
	StateUntouched FieldState = "untouched"
	StateValid     FieldState = "valid"
	StateInvalid   FieldState = "invalid"
)

// Result maps every draft field to its outcome.
type Result struct {
	Fields      map[Field]FieldResult
	Submittable bool
}

var fieldValidators = map[Field]func(Value) FieldResult{
	FieldCustomerName:        ValidateCustomerName,
	FieldCustomerType:        ValidateCustomerType,
	FieldCriticalityLevel:    ValidateCriticalityLevel,
	FieldEscalationNecessary: ValidateEscalationNecessary,
	FieldAdditionalComments:  ValidateAdditionalComments,
}

// Validate checks every field of the draft.
func Validate(draft PartialTicketDraft) Result {
	res := Result{
		Fields:      make(map[Field]FieldResult, len(Fields)),
		Submittable: true,
	}
	for _, field := range Fields {
		fr := fieldValidators[field](draft.Get(field))
		res.Fields[field] = fr
		if !fr.Valid {
			res.Submittable = false
		}
	}
	return res
}

// Field returns the outcome for one field.
func (r Result) Field(field Field) FieldResult {
	return r.Fields[field]
}

// Errors returns the message of every invalid field.
func (r Result) Errors() map[Field]string {
	errs := make(map[Field]string)
	for field, fr := range r.Fields {
		if !fr.Valid {
			errs[field] = fr.Message
		}
	}
	return errs
}

// State classifies a field for display. Untouched fields stay untouched
// whatever their validity.
func (r Result) State(field Field, touched bool) FieldState {
	if !touched {
		return StateUntouched
	}
	if r.Fields[field].Valid {
		return StateValid
	}
	return StateInvalid
}

// SubmissionError is returned by Submit when the draft is not submittable.
type SubmissionError struct {
	Result Result
}

func (e *SubmissionError) Error() string {
	parts := make([]string, 0, len(Fields))
	for _, field := range Fields {
		if fr := e.Result.Fields[field]; !fr.Valid {
			parts = append(parts, string(field)+": "+fr.Message)
		}
	}
	return "ticket draft is invalid: " + strings.Join(parts, "; ")
}

// Submit validates the draft and returns the typed record when every field
// passes.
func Submit(draft PartialTicketDraft) (domain.TicketDraft, error) {
	res := Validate(draft)
	if !res.Submittable {
		return domain.TicketDraft{}, &SubmissionError{Result: res}
	}

	ticket := domain.TicketDraft{
		CustomerName:        draft.CustomerName.Raw().(string),
		CustomerType:        domain.CustomerType(draft.CustomerType.Raw().(string)),
		CriticalityLevel:    domain.CriticalityLevel(draft.CriticalityLevel.Raw().(string)),
		EscalationNecessary: draft.EscalationNecessary.Raw().(bool),
	}
	if draft.AdditionalComments.IsPresent() {
		comments := draft.AdditionalComments.Raw().(string)
		ticket.AdditionalComments = &comments
	}
	return ticket, nil
}
