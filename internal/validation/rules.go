package validation

import (
	"fmt"

	"github.com/camilovegag/procesos-de-negocio/internal/domain"
)

// ErrorKind classifies a field-level failure.
type ErrorKind string

const (
	KindTooShort    ErrorKind = "TooShort"
	KindTooLong     ErrorKind = "TooLong"
	KindInvalidEnum ErrorKind = "InvalidEnum"
	KindWrongType   ErrorKind = "WrongType"
)

const (
	customerNameMin = 2
	customerNameMax = 50
	commentsMin     = 2
	commentsMax     = 500
)

const (
	msgRequired = "Required"

	msgNameTooShort = "El nombre debe tener al menos 2 caracteres."
	msgNameTooLong  = "El nombre debe tener menos de 50 caracteres."

	msgCustomerTypeMissing = "Selecciona un tipo de cliente válido."
	msgCustomerTypeInvalid = "Tipo de cliente inválido."

	msgCriticalityMissing = "Selecciona un nivel de criticidad válido."
	msgCriticalityInvalid = "Nivel de criticidad inválido."

	msgCommentsTooShort = "Los comentarios deben tener al menos 2 caracteres."
	msgCommentsTooLong  = "Los comentarios deben tener menos de 500 caracteres."
)

// FieldResult is the outcome of validating one field.
type FieldResult struct {
	Valid   bool
	Kind    ErrorKind
	Message string
}

func valid() FieldResult {
	return FieldResult{Valid: true}
}

func invalid(kind ErrorKind, message string) FieldResult {
	return FieldResult{Kind: kind, Message: message}
}

type textRule struct {
	min      int
	max      int
	tooShort string
	tooLong  string
}

var (
	customerNameRule = textRule{min: customerNameMin, max: customerNameMax, tooShort: msgNameTooShort, tooLong: msgNameTooLong}
	commentsRule     = textRule{min: commentsMin, max: commentsMax, tooShort: msgCommentsTooShort, tooLong: msgCommentsTooLong}
)

// ValidateCustomerName requires a string of 2 to 50 characters.
func ValidateCustomerName(v Value) FieldResult {
	return validateText(v, customerNameRule)
}

// ValidateCustomerType requires one of the four customer segments.
func ValidateCustomerType(v Value) FieldResult {
	return validateEnum(v, func(s string) bool {
		return domain.CustomerType(s).IsValid()
	}, msgCustomerTypeMissing, msgCustomerTypeInvalid)
}

// ValidateCriticalityLevel requires one of the five criticality levels.
func ValidateCriticalityLevel(v Value) FieldResult {
	return validateEnum(v, func(s string) bool {
		return domain.CriticalityLevel(s).IsValid()
	}, msgCriticalityMissing, msgCriticalityInvalid)
}

// ValidateEscalationNecessary requires a boolean. Both true and false pass.
func ValidateEscalationNecessary(v Value) FieldResult {
	if !v.IsPresent() {
		return invalid(KindWrongType, msgRequired)
	}
	if _, ok := v.Raw().(bool); !ok {
		return invalid(KindWrongType, expected("boolean", v.Raw()))
	}
	return valid()
}

// ValidateAdditionalComments accepts an absent value; a present one must be
// a string of 2 to 500 characters.
func ValidateAdditionalComments(v Value) FieldResult {
	if !v.IsPresent() {
		return valid()
	}
	return validateText(v, commentsRule)
}

func validateText(v Value, rule textRule) FieldResult {
	if !v.IsPresent() {
		return invalid(KindWrongType, msgRequired)
	}
	s, ok := v.Raw().(string)
	if !ok {
		return invalid(KindWrongType, expected("string", v.Raw()))
	}
	n := textLength(s)
	if n < rule.min {
		return invalid(KindTooShort, rule.tooShort)
	}
	if n > rule.max {
		return invalid(KindTooLong, rule.tooLong)
	}
	return valid()
}

// validateEnum reports missingMsg when no string was supplied and invalidMsg
// when a string outside the set was.
func validateEnum(v Value, member func(string) bool, missingMsg, invalidMsg string) FieldResult {
	if !v.IsPresent() {
		return invalid(KindInvalidEnum, missingMsg)
	}
	s, ok := v.Raw().(string)
	if !ok {
		return invalid(KindInvalidEnum, missingMsg)
	}
	if !member(s) {
		return invalid(KindInvalidEnum, invalidMsg)
	}
	return valid()
}

func expected(want string, raw any) string {
	return fmt.Sprintf("Expected %s, received %s", want, typeName(raw))
}

// textLength counts UTF-16 code units, matching how browser form input
// lengths are measured.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
			continue
		}
		n++
	}
	return n
}
