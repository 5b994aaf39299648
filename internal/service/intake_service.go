package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/camilovegag/procesos-de-negocio/internal/domain"
	"github.com/camilovegag/procesos-de-negocio/internal/events"
	"github.com/camilovegag/procesos-de-negocio/internal/observability"
	"github.com/camilovegag/procesos-de-negocio/internal/validation"
	apperrors "github.com/camilovegag/procesos-de-negocio/pkg/util/errorutil"
)

type requestIDKey struct{}

// WithRequestID tags ctx so published events can be correlated.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

func requestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// IntakeService runs the ticket validator for the form surface.
type IntakeService struct {
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// IntakeDependencies bundles collaborators for the intake service.
type IntakeDependencies struct {
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewIntakeService constructs the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Validate evaluates the draft and counts every failing field.
func (s *IntakeService) Validate(ctx context.Context, draft validation.PartialTicketDraft) validation.Result {
	res := validation.Validate(draft)
	s.recordFailures(res)
	return res
}

// Submit returns the typed ticket when the draft is submittable and hands it
// to the ticket_submitted subscribers. Otherwise it returns a
// VALIDATION_FAILED error whose details list each failing field.
func (s *IntakeService) Submit(ctx context.Context, draft validation.PartialTicketDraft) (*domain.TicketDraft, error) {
	ticket, err := validation.Submit(draft)
	if err != nil {
		var subErr *validation.SubmissionError
		if !errors.As(err, &subErr) {
			return nil, apperrors.NewInternalError(err)
		}
		s.recordFailures(subErr.Result)

		details := make(map[string]any)
		fieldErrs := make(map[string]string)
		for field, msg := range subErr.Result.Errors() {
			details[string(field)] = msg
			fieldErrs[string(field)] = msg
		}
		s.publish(ctx, events.EventDraftRejected, events.DraftRejectedPayload{Errors: fieldErrs})
		return nil, apperrors.NewValidationError("ticket draft is invalid", details, err)
	}

	s.metrics.RecordSubmission()
	s.publish(ctx, events.EventTicketSubmitted, events.TicketSubmittedPayload{Ticket: ticket})
	return &ticket, nil
}

func (s *IntakeService) recordFailures(res validation.Result) {
	for field, fr := range res.Fields {
		if !fr.Valid {
			s.metrics.RecordValidationFailure(string(field), string(fr.Kind))
		}
	}
}

// publish never fails the caller; subscriber errors are only logged.
func (s *IntakeService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RequestID: requestIDFrom(ctx),
		Timestamp: s.now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(eventType)),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}
