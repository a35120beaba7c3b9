package listeners

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/events"
	"gearguard/pkg/eventbus"
)

type frame struct {
	kind    string
	payload interface{}
}

type fakeHub struct {
	mu     sync.Mutex
	frames []frame
	direct map[uint64][]frame
}

func (h *fakeHub) SendToUser(userID uint64, messageType string, payload interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.direct == nil {
		h.direct = map[uint64][]frame{}
	}
	h.direct[userID] = append(h.direct[userID], frame{messageType, payload})
	return nil
}

func (h *fakeHub) Broadcast(_ context.Context, messageType string, payload interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = append(h.frames, frame{messageType, payload})
	return nil
}

func TestBoardListener_ForwardsEvents(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	hub := &fakeHub{}
	NewBoardListener(hub, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.RequestStageChangedEvent{RequestID: 3, From: "New Request", To: "In Progress", ActorID: 1})
	bus.Wait()
	bus.Publish(context.Background(), events.EquipmentStatusChangedEvent{EquipmentID: 7, RequestID: 3, Status: "MAINTENANCE"})
	bus.Wait()
	bus.Publish(context.Background(), events.RequestCreatedEvent{Request: dto.MaintenanceRequestDTO{ID: 4, Subject: "Belt"}})
	bus.Wait()

	require.Len(t, hub.frames, 3)
	assert.Equal(t, frame{events.RequestStageChanged, stagePayload{RequestID: 3, From: "New Request", To: "In Progress", ActorID: 1}}, hub.frames[0])
	assert.Equal(t, frame{events.EquipmentStatusChanged, equipmentPayload{EquipmentID: 7, RequestID: 3, Status: "MAINTENANCE"}}, hub.frames[1])
	assert.Equal(t, events.RequestCreated, hub.frames[2].kind)
	assert.Equal(t, uint64(4), hub.frames[2].payload.(dto.MaintenanceRequestDTO).ID)
}

type otherEvent struct{}

func (otherEvent) Name() string { return "other" }

func TestBoardPayload_UnknownEvent(t *testing.T) {
	_, err := boardPayload(otherEvent{})
	assert.Error(t, err)
}

func TestBoardListener_NotifiesRequestOwner(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	hub := &fakeHub{}
	NewBoardListener(hub, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.RequestStageChangedEvent{
		RequestID: 3, Subject: "Fan noise", From: "New Request", To: "Repaired", ActorID: 9, CreatedByID: 4,
	})
	bus.Wait()

	require.Len(t, hub.direct[4], 1)
	assert.Equal(t, frame{OwnerNotice, ownerNoticePayload{
		RequestID: 3,
		Message:   `Request #3 "Fan noise" moved from New Request to Repaired`,
		Stage:     "Repaired",
	}}, hub.direct[4][0])
	assert.Len(t, hub.frames, 1)
}

func TestBoardListener_SkipsOwnerNotice(t *testing.T) {
	cases := map[string]events.RequestStageChangedEvent{
		"owner moved it":   {RequestID: 3, To: "Repaired", ActorID: 4, CreatedByID: 4},
		"no known creator": {RequestID: 3, To: "Repaired", ActorID: 9},
	}
	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			bus := eventbus.New(zap.NewNop())
			hub := &fakeHub{}
			NewBoardListener(hub, zap.NewNop()).Register(bus)

			bus.Publish(context.Background(), ev)
			bus.Wait()

			assert.Empty(t, hub.direct)
			assert.Len(t, hub.frames, 1)
		})
	}
}
