package service

import (
	"context"
	"fmt"
	"strings"

	"panel-review-be/internal/constant"
	"panel-review-be/internal/pkg/logger"
	"panel-review-be/internal/pkg/mailer"
	"panel-review-be/internal/repository/specification"
	"panel-review-be/internal/repository/unitofwork"
	"panel-review-be/pkg/events"
	pktNats "panel-review-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationService listens on the event bus and emails participants about
// workflow milestones. Delivery is best effort; a failed mail never fails the
// operation that produced the event.
type NotificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	subscriber   *pktNats.Subscriber
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory:   uowFactory,
		subscriber:   sub,
		emailService: emailService,
		logger:       log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "no event subscriber configured, notifications disabled", nil)
		return
	}
	err := s.subscriber.Subscribe("events.>", "panel-notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", fmt.Sprintf("processing event: %s", typeCode), nil)

	if typeCode != constant.EventQuestionsDistributed {
		return nil
	}

	panelId, ok := payloadUUID(event.Payload(), "panel_id")
	if !ok {
		s.logger.Warn("NotificationService", "event missing panel_id", map[string]interface{}{"type": typeCode})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	panel, err := uow.PanelRepository().Get(ctx, panelId)
	if err != nil || panel == nil {
		s.logger.Warn("NotificationService", "panel not found for event", map[string]interface{}{"panel_id": panelId})
		return nil
	}

	students, err := uow.UserRepository().FindAll(ctx, specification.ByRole{Role: constant.RoleStudent})
	if err != nil {
		s.logger.Error("NotificationService", "failed to load recipients", map[string]interface{}{"error": err.Error()})
		return nil
	}

	for _, student := range students {
		if student.Email == "" {
			continue
		}
		if err := s.emailService.SendDeadlineReminder(student.Email, panel.Name, constant.StageTagging, panel.TagDeadline); err != nil {
			s.logger.Warn("NotificationService", "failed to send reminder", map[string]interface{}{
				"email": student.Email,
				"error": err.Error(),
			})
		}
	}
	return nil
}

func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
