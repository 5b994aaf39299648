package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/camilovegag/procesos-de-negocio/internal/config"
	"github.com/camilovegag/procesos-de-negocio/internal/events"
)

// PresenterService displays accepted submissions. Nothing is stored or sent
// anywhere; the record is written to the log and dropped.
type PresenterService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.IntakeConfig
}

// NewPresenterService creates the service.
func NewPresenterService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.IntakeConfig) *PresenterService {
	return &PresenterService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (p *PresenterService) RegisterHandlers() {
	if p.dispatcher == nil {
		return
	}
	p.dispatcher.Subscribe(events.EventTicketSubmitted, p.handleTicketSubmitted)
	p.dispatcher.Subscribe(events.EventDraftRejected, p.handleDraftRejected)
}

func (p *PresenterService) handleTicketSubmitted(_ context.Context, event events.Event) error {
	if !p.cfg.DisplaySubmissions {
		return nil
	}
	payload, ok := event.Payload.(events.TicketSubmittedPayload)
	if !ok {
		p.logger.Warn("unexpected payload", zap.String("event_type", string(event.Type)))
		return nil
	}
	ticket := payload.Ticket
	fields := []zap.Field{
		zap.String("request_id", event.RequestID),
		zap.String("customer_name", ticket.CustomerName),
		zap.String("customer_type", string(ticket.CustomerType)),
		zap.String("criticality_level", string(ticket.CriticalityLevel)),
		zap.Bool("escalation_necessary", ticket.EscalationNecessary),
	}
	if ticket.AdditionalComments != nil {
		fields = append(fields, zap.String("additional_comments", *ticket.AdditionalComments))
	}
	p.logger.Info("TicketSubmitted", fields...)
	return nil
}

func (p *PresenterService) handleDraftRejected(_ context.Context, event events.Event) error {
	p.logger.Debug("TicketDraftRejected",
		zap.String("request_id", event.RequestID),
		zap.Any("payload", event.Payload))
	return nil
}
