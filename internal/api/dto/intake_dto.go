package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camilovegag/procesos-de-negocio/internal/domain"
	"github.com/camilovegag/procesos-de-negocio/internal/validation"
)

const touchedKey = "touched"

// ErrEmptyBody is returned for a request without a body.
var ErrEmptyBody = errors.New("empty body")

// DraftRequest is a decoded form payload.
type DraftRequest struct {
	Draft validation.PartialTicketDraft
	// Touched is nil when the surface did not send a "touched" list; every
	// field then counts as touched.
	Touched map[validation.Field]bool
}

// IsTouched reports whether the surface marked the field as touched.
func (r DraftRequest) IsTouched(field validation.Field) bool {
	if r.Touched == nil {
		return true
	}
	return r.Touched[field]
}

// ParseDraftRequest decodes a JSON object of raw field values. Keys that are
// missing stay absent; values of any JSON type are kept for the validator to
// judge. Unknown keys are ignored.
func ParseDraftRequest(body []byte) (DraftRequest, error) {
	var req DraftRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, ErrEmptyBody
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, fmt.Errorf("decode draft: %w", err)
	}
	if raw == nil {
		return req, errors.New("decode draft: body must be a JSON object")
	}

	input := make(map[string]any, len(raw))
	for key, msg := range raw {
		if key == touchedKey {
			touched, err := parseTouched(msg)
			if err != nil {
				return req, err
			}
			req.Touched = touched
			continue
		}
		if _, ok := validation.ParseField(key); !ok {
			continue
		}
		value, err := decodeValue(msg)
		if err != nil {
			return req, fmt.Errorf("decode %s: %w", key, err)
		}
		input[key] = value
	}
	req.Draft = validation.DraftFromMap(input)
	return req, nil
}

// decodeValue keeps numbers as json.Number so out-of-range values reach the
// validator instead of failing the request.
func decodeValue(msg json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// parseTouched returns nil for a null list, which reads the same as an
// omitted one.
func parseTouched(msg json.RawMessage) (map[validation.Field]bool, error) {
	var names []string
	if err := json.Unmarshal(msg, &names); err != nil {
		return nil, fmt.Errorf("decode touched: %w", err)
	}
	if names == nil {
		return nil, nil
	}
	touched := make(map[validation.Field]bool, len(names))
	for _, name := range names {
		field, ok := validation.ParseField(name)
		if !ok {
			return nil, fmt.Errorf("decode touched: unknown field %q", name)
		}
		touched[field] = true
	}
	return touched, nil
}

// FieldValidationResponse is the outcome for one field.
type FieldValidationResponse struct {
	Valid   bool                  `json:"valid"`
	State   validation.FieldState `json:"state"`
	Kind    validation.ErrorKind  `json:"kind,omitempty"`
	Message string                `json:"message,omitempty"`
}

// ValidationResponse is returned by the validate endpoint.
type ValidationResponse struct {
	Submittable bool                                         `json:"submittable"`
	Fields      map[validation.Field]FieldValidationResponse `json:"fields"`
}

// NewValidationResponse renders a result for the given request.
func NewValidationResponse(req DraftRequest, res validation.Result) ValidationResponse {
	resp := ValidationResponse{
		Submittable: res.Submittable,
		Fields:      make(map[validation.Field]FieldValidationResponse, len(res.Fields)),
	}
	for field, fr := range res.Fields {
		resp.Fields[field] = FieldValidationResponse{
			Valid:   fr.Valid,
			State:   res.State(field, req.IsTouched(field)),
			Kind:    fr.Kind,
			Message: fr.Message,
		}
	}
	return resp
}

// TicketResponse echoes an accepted ticket back to the surface.
type TicketResponse struct {
	CustomerName        string                  `json:"customerName"`
	CustomerType        domain.CustomerType     `json:"customerType"`
	CriticalityLevel    domain.CriticalityLevel `json:"criticalityLevel"`
	EscalationNecessary bool                    `json:"escalationNecessary"`
	AdditionalComments  *string                 `json:"additionalComments,omitempty"`
}

// NewTicketResponse maps the typed draft.
func NewTicketResponse(ticket *domain.TicketDraft) TicketResponse {
	return TicketResponse{
		CustomerName:        ticket.CustomerName,
		CustomerType:        ticket.CustomerType,
		CriticalityLevel:    ticket.CriticalityLevel,
		EscalationNecessary: ticket.EscalationNecessary,
		AdditionalComments:  ticket.AdditionalComments,
	}
}
