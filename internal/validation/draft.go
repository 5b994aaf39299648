package validation

import "encoding/json"

// Field names a ticket draft input as the form surface knows it.
type Field string

const (
	FieldCustomerName        Field = "customerName"
	FieldCustomerType        Field = "customerType"
	FieldCriticalityLevel    Field = "criticalityLevel"
	FieldEscalationNecessary Field = "escalationNecessary"
	FieldAdditionalComments  Field = "additionalComments"
)

// Fields lists every draft field in form order.
var Fields = []Field{
	FieldCustomerName,
	FieldCustomerType,
	FieldCriticalityLevel,
	FieldEscalationNecessary,
	FieldAdditionalComments,
}

// ParseField resolves a field name, reporting false for unknown names.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Value is one raw form input. The zero Value is absent.
type Value struct {
	raw     any
	present bool
}

// Present wraps a raw input; nil is a present null, not an absent value.
func Present(raw any) Value {
	return Value{raw: raw, present: true}
}

// Absent returns a value the surface never supplied.
func Absent() Value {
	return Value{}
}

// IsPresent reports whether the surface supplied the value.
func (v Value) IsPresent() bool {
	return v.present
}

// Raw returns the wrapped input.
func (v Value) Raw() any {
	return v.raw
}

// PartialTicketDraft is the mid-editing state of the form. Any field may be
// absent or carry a value of the wrong shape.
type PartialTicketDraft struct {
	CustomerName        Value
	CustomerType        Value
	CriticalityLevel    Value
	EscalationNecessary Value
	AdditionalComments  Value
}

// DraftFromMap builds a draft from decoded JSON-like input. Keys missing from
// the map are absent; unknown keys are ignored.
func DraftFromMap(input map[string]any) PartialTicketDraft {
	var draft PartialTicketDraft
	for key, raw := range input {
		if field, ok := ParseField(key); ok {
			draft.set(field, Present(raw))
		}
	}
	return draft
}

// Get returns the raw value held for a field.
func (d PartialTicketDraft) Get(field Field) Value {
	switch field {
	case FieldCustomerName:
		return d.CustomerName
	case FieldCustomerType:
		return d.CustomerType
	case FieldCriticalityLevel:
		return d.CriticalityLevel
	case FieldEscalationNecessary:
		return d.EscalationNecessary
	case FieldAdditionalComments:
		return d.AdditionalComments
	}
	return Absent()
}

func (d *PartialTicketDraft) set(field Field, v Value) {
	switch field {
	case FieldCustomerName:
		d.CustomerName = v
	case FieldCustomerType:
		d.CustomerType = v
	case FieldCriticalityLevel:
		d.CriticalityLevel = v
	case FieldEscalationNecessary:
		d.EscalationNecessary = v
	case FieldAdditionalComments:
		d.AdditionalComments = v
	}
}

// typeName describes a raw input the way type mismatch messages name it.
func typeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "unknown"
}
