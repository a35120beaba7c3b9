package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type requestFixture struct {
	tx         *fakeTxManager
	requests   *fakeRequestRepo
	equipments *fakeEquipmentRepo
	published  *recordingPublisher
	svc        MaintenanceRequestServiceInterface
}

func newRequestFixture(eqs ...entities.Equipment) *requestFixture {
	f := &requestFixture{
		tx:         &fakeTxManager{},
		requests:   newFakeRequestRepo(),
		equipments: newFakeEquipmentRepo(eqs...),
		published:  &recordingPublisher{},
	}
	f.svc = NewMaintenanceRequestService(f.tx, f.requests, f.equipments, f.published, zap.NewNop())
	return f
}

func serverX1() entities.Equipment {
	return entities.Equipment{
		ID:                  7,
		Name:                "Server X1",
		SerialNumber:        "SN-12345",
		Status:              constants.EquipmentActive,
		CategoryID:          null.Uint64From(1),
		TeamID:              null.Uint64From(2),
		DefaultTechnicianID: null.StringFrom("Tech-001"),
	}
}

func TestCreateRequest_AutoFillsFromEquipment(t *testing.T) {
	f := newRequestFixture(serverX1())
	ctx := utils.WithUser(context.Background(), 3, "a@b.c", "Ann", constants.RoleUser, nil)

	res, err := f.svc.CreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		Subject:     "Fan noise",
		RequestDate: "2025-01-10",
		EquipmentID: utils.ToPtr(uint64(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, null.Uint64From(1), res.CategoryID)
	assert.Equal(t, null.Uint64From(2), res.TeamID)
	assert.Equal(t, null.StringFrom("Tech-001"), res.TechnicianID)
	assert.Equal(t, string(constants.StageNewRequest), res.Stage)
	assert.Equal(t, string(constants.PriorityLow), res.Priority)
	assert.Equal(t, string(constants.MaintenanceCorrective), res.MaintenanceType)
	assert.Equal(t, null.Uint64From(3), res.CreatedByID)
	assert.Equal(t, "2025-01-10", res.RequestDate)
}

func TestCreateRequest_CallerValuesWin(t *testing.T) {
	f := newRequestFixture(serverX1())

	res, err := f.svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:      "Fan noise",
		RequestDate:  "2025-01-10",
		EquipmentID:  utils.ToPtr(uint64(7)),
		TeamID:       utils.ToPtr(uint64(9)),
		TechnicianID: utils.ToPtr("Tech-777"),
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(9), res.TeamID.Uint64)
	assert.Equal(t, "Tech-777", res.TechnicianID.String)
	assert.Equal(t, uint64(1), res.CategoryID.Uint64)
}

func TestCreateRequest_MissingEquipment(t *testing.T) {
	f := newRequestFixture()

	_, err := f.svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:     "Ghost",
		RequestDate: "2025-01-10",
		EquipmentID: utils.ToPtr(uint64(404)),
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Empty(t, f.requests.items, "nothing is written when the equipment is missing")
}

func TestCreateRequest_WorkCenterRequiresID(t *testing.T) {
	f := newRequestFixture()

	_, err := f.svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:        "Line stop",
		RequestDate:    "2025-01-10",
		MaintenanceFor: utils.ToPtr(string(constants.ForWorkCenter)),
	})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreateRequest_BadDate(t *testing.T) {
	f := newRequestFixture()

	_, err := f.svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{Subject: "x", RequestDate: "10/01/2025"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func createForServer(t *testing.T, f *requestFixture) uint64 {
	t.Helper()
	res, err := f.svc.CreateRequest(context.Background(), dto.CreateMaintenanceRequestDTO{
		Subject:     "Fan noise",
		RequestDate: "2025-03-04",
		EquipmentID: utils.ToPtr(uint64(7)),
	})
	require.NoError(t, err)
	return res.ID
}

func TestUpdateRequest_StageSyncsEquipment(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)

	steps := []struct {
		stage  constants.RequestStage
		status constants.EquipmentStatus
	}{
		{constants.StageInProgress, constants.EquipmentMaintenance},
		{constants.StageRepaired, constants.EquipmentActive},
		{constants.StageScrap, constants.EquipmentDecommissioned},
	}
	for _, step := range steps {
		res, err := f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{Stage: utils.ToPtr(string(step.stage))})
		require.NoError(t, err)
		assert.Equal(t, string(step.stage), res.Stage)

		eq, err := f.equipments.FindEquipment(context.Background(), nil, 7)
		require.NoError(t, err)
		assert.Equal(t, step.status, eq.Status)
	}

	eq, _ := f.equipments.FindEquipment(context.Background(), nil, 7)
	require.True(t, eq.ScrapDate.Valid)
	assert.Equal(t, "2025-03-04", utils.FormatDate(eq.ScrapDate.Time))
	assert.Equal(t, 3, f.tx.calls)
}

func TestUpdateRequest_ScrapUsesStoredRequestDate(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)

	_, err := f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{
		Stage:       utils.ToPtr(string(constants.StageScrap)),
		RequestDate: utils.ToPtr("2025-12-31"),
	})
	require.NoError(t, err)

	eq, _ := f.equipments.FindEquipment(context.Background(), nil, 7)
	assert.Equal(t, "2025-03-04", utils.FormatDate(eq.ScrapDate.Time))
}

func TestUpdateRequest_SameStageLeavesEquipment(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)

	_, err := f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{
		Stage:   utils.ToPtr(string(constants.StageNewRequest)),
		Subject: utils.ToPtr("Fan noise, louder"),
	})
	require.NoError(t, err)
	assert.Zero(t, f.equipments.updates)
}

func TestUpdateRequest_BackToNewRequestKeepsStatus(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)

	_, err := f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{Stage: utils.ToPtr(string(constants.StageInProgress))})
	require.NoError(t, err)
	_, err = f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{Stage: utils.ToPtr(string(constants.StageNewRequest))})
	require.NoError(t, err)

	eq, _ := f.equipments.FindEquipment(context.Background(), nil, 7)
	assert.Equal(t, constants.EquipmentMaintenance, eq.Status)
}

func TestUpdateRequest_MissingEquipmentIsSkipped(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)
	require.NoError(t, f.equipments.DeleteEquipment(context.Background(), 7))

	res, err := f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{Stage: utils.ToPtr(string(constants.StageInProgress))})
	require.NoError(t, err)
	assert.Equal(t, string(constants.StageInProgress), res.Stage)
}

func TestUpdateRequest_NotFound(t *testing.T) {
	f := newRequestFixture()

	_, err := f.svc.UpdateRequest(context.Background(), 99, dto.UpdateMaintenanceRequestDTO{Subject: utils.ToPtr("x")})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDeleteRequest(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)

	require.NoError(t, f.svc.DeleteRequest(context.Background(), id))
	err := f.svc.DeleteRequest(context.Background(), id)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestUpdateRequest_PublishesAfterCommit(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)
	ctx := utils.WithUser(context.Background(), 9, "t@b.c", "Tess", constants.RoleTechnician, nil)

	_, err := f.svc.UpdateRequest(ctx, id, dto.UpdateMaintenanceRequestDTO{Stage: utils.ToPtr(string(constants.StageScrap))})
	require.NoError(t, err)

	assert.Equal(t, []string{events.RequestCreated, events.EquipmentStatusChanged, events.RequestStageChanged}, f.published.names())
	assert.Equal(t, events.EquipmentStatusChangedEvent{EquipmentID: 7, RequestID: id, Status: "DECOMMISSIONED"}, f.published.events[1])
	assert.Equal(t, events.RequestStageChangedEvent{RequestID: id, Subject: "Fan noise", From: "New Request", To: "Scrap", ActorID: 9}, f.published.events[2])
}

func TestUpdateRequest_NoEventsWithoutStageChange(t *testing.T) {
	f := newRequestFixture(serverX1())
	id := createForServer(t, f)

	_, err := f.svc.UpdateRequest(context.Background(), id, dto.UpdateMaintenanceRequestDTO{Subject: utils.ToPtr("Louder fan")})
	require.NoError(t, err)

	assert.Equal(t, []string{events.RequestCreated}, f.published.names())
}

func TestUpdateRequest_StageEventNamesCreator(t *testing.T) {
	f := newRequestFixture(serverX1())
	author := utils.WithUser(context.Background(), 3, "a@b.c", "Ann", constants.RoleUser, nil)
	created, err := f.svc.CreateRequest(author, dto.CreateMaintenanceRequestDTO{
		Subject:     "Fan noise",
		RequestDate: "2025-03-04",
		EquipmentID: utils.ToPtr(uint64(7)),
	})
	require.NoError(t, err)

	tech := utils.WithUser(context.Background(), 9, "t@b.c", "Tess", constants.RoleTechnician, nil)
	_, err = f.svc.UpdateRequest(tech, created.ID, dto.UpdateMaintenanceRequestDTO{Stage: utils.ToPtr(string(constants.StageInProgress))})
	require.NoError(t, err)

	last := f.published.events[len(f.published.events)-1]
	ev, ok := last.(events.RequestStageChangedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(3), ev.CreatedByID)
	assert.Equal(t, uint64(9), ev.ActorID)
}
