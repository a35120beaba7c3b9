package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gearguard/internal/events"
	"gearguard/pkg/eventbus"
)

// OwnerNotice is sent only to the author of a request whose stage was moved by someone else.
const OwnerNotice = "request.owner_notice"

type Feed interface {
	Broadcast(ctx context.Context, messageType string, payload interface{}) error
	SendToUser(userID uint64, messageType string, payload interface{}) error
}

type stagePayload struct {
	RequestID uint64 `json:"request_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	ActorID   uint64 `json:"actor_id,omitempty"`
}

type ownerNoticePayload struct {
	RequestID uint64 `json:"request_id"`
	Message   string `json:"message"`
	Stage     string `json:"stage"`
}

type equipmentPayload struct {
	EquipmentID uint64 `json:"equipment_id"`
	RequestID   uint64 `json:"request_id"`
	Status      string `json:"status"`
}

// BoardListener forwards maintenance events to connected board clients.
type BoardListener struct {
	hub    Feed
	logger *zap.Logger
}

func NewBoardListener(hub Feed, logger *zap.Logger) *BoardListener {
	return &BoardListener{hub: hub, logger: logger}
}

func (l *BoardListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{events.RequestCreated, events.RequestStageChanged, events.EquipmentStatusChanged} {
		bus.Subscribe(name, l.handle)
	}
	l.logger.Info("board listener subscribed")
}

func (l *BoardListener) handle(ctx context.Context, event eventbus.Event) error {
	payload, err := boardPayload(event)
	if err != nil {
		return err
	}
	if err := l.hub.Broadcast(ctx, event.Name(), payload); err != nil {
		return err
	}
	if ev, ok := event.(events.RequestStageChangedEvent); ok {
		return l.notifyOwner(ev)
	}
	return nil
}

func (l *BoardListener) notifyOwner(ev events.RequestStageChangedEvent) error {
	if ev.CreatedByID == 0 || ev.CreatedByID == ev.ActorID {
		return nil
	}
	return l.hub.SendToUser(ev.CreatedByID, OwnerNotice, ownerNoticePayload{
		RequestID: ev.RequestID,
		Message:   fmt.Sprintf("Request #%d %q moved from %s to %s", ev.RequestID, ev.Subject, ev.From, ev.To),
		Stage:     ev.To,
	})
}

func boardPayload(event eventbus.Event) (interface{}, error) {
	switch ev := event.(type) {
	case events.RequestCreatedEvent:
		return ev.Request, nil
	case events.RequestStageChangedEvent:
		return stagePayload{RequestID: ev.RequestID, From: ev.From, To: ev.To, ActorID: ev.ActorID}, nil
	case events.EquipmentStatusChangedEvent:
		return equipmentPayload{EquipmentID: ev.EquipmentID, RequestID: ev.RequestID, Status: ev.Status}, nil
	}
	return nil, fmt.Errorf("board listener: unexpected event %q", event.Name())
}
