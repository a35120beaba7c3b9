package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/types"
)

var (
	_ repositories.CacheRepositoryInterface              = (*fakeCache)(nil)
	_ repositories.EquipmentRepositoryInterface          = (*fakeEquipmentRepo)(nil)
	_ repositories.MaintenanceRequestRepositoryInterface = (*fakeRequestRepo)(nil)
	_ repositories.UserRepositoryInterface               = (*fakeUserRepo)(nil)
)

type recordingPublisher struct {
	events []eventbus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event eventbus.Event) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) names() []string {
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Name())
	}
	return out
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakeEquipmentRepo struct {
	mu      sync.Mutex
	items   map[uint64]entities.Equipment
	updates int
	counts  entities.EquipmentMaintenanceCount
}

func newFakeEquipmentRepo(items ...entities.Equipment) *fakeEquipmentRepo {
	r := &fakeEquipmentRepo{items: map[uint64]entities.Equipment{}}
	for _, e := range items {
		r.items[e.ID] = e
	}
	return r
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Equipment, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, uint64(len(out)), nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("equipment")
	}
	return &e, nil
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.SerialNumber == eq.SerialNumber {
			return nil, apperrors.NewConflictError("equipment with this serial number already exists")
		}
	}
	eq.ID = uint64(len(r.items) + 1)
	r.items[eq.ID] = eq
	return &eq, nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, tx pgx.Tx, eq entities.Equipment) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[eq.ID]; !ok {
		return nil, apperrors.NewNotFoundError("equipment")
	}
	r.items[eq.ID] = eq
	r.updates++
	return &eq, nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("equipment")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEquipmentRepo) CountMaintenance(ctx context.Context, id uint64) (*entities.EquipmentMaintenanceCount, error) {
	c := r.counts
	return &c, nil
}

type fakeRequestRepo struct {
	mu     sync.Mutex
	items  map[uint64]entities.MaintenanceRequest
	nextID uint64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{items: map[uint64]entities.MaintenanceRequest{}, nextID: 1}
}

func (r *fakeRequestRepo) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.MaintenanceRequest, 0, len(r.items))
	for _, m := range r.items {
		if stage, ok := filter.Filter["stage"]; ok && string(m.Stage) != fmt.Sprint(stage) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, uint64(len(out)), nil
}

func (r *fakeRequestRepo) FindRequest(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("maintenance request")
	}
	return &m, nil
}

func (r *fakeRequestRepo) CreateRequest(ctx context.Context, req entities.MaintenanceRequest) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = r.nextID
	r.nextID++
	r.items[req.ID] = req
	return req.ID, nil
}

func (r *fakeRequestRepo) UpdateRequest(ctx context.Context, tx pgx.Tx, req entities.MaintenanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[req.ID]; !ok {
		return apperrors.NewNotFoundError("maintenance request")
	}
	r.items[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) DeleteRequest(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("maintenance request")
	}
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[uint64]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[uint64]entities.User{}}
}

func (r *fakeUserRepo) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, uint64(len(out)), nil
}

func (r *fakeUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	return &u, nil
}

func (r *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user")
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == user.Email {
			return nil, apperrors.NewConflictError("email already registered")
		}
	}
	user.ID = uint64(len(r.items) + 1)
	r.items[user.ID] = user
	return &user, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.ID]; !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	r.items[user.ID] = user
	return &user, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("user")
	}
	delete(r.items, id)
	return nil
}

// fakeCache ignores expirations.
type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
	ints map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}, ints: map[string]int64{}}
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = fmt.Sprint(value)
	return nil
}

func (c *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	_, okInt := c.ints[key]
	return ok || okInt, nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		delete(c.ints, k)
	}
	return nil
}

func (c *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ints[key]++
	return c.ints[key], nil
}

func (c *fakeCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return nil
}

type fakeDashboardRepo struct {
	critical, open, overdue uint64
	overdueDay              time.Time
	byTeam, byCategory      []entities.GroupCount
	recent                  []entities.MaintenanceRequest
	recentLimit             uint64
}

func (r *fakeDashboardRepo) CountCriticalEquipment(ctx context.Context) (uint64, error) {
	return r.critical, nil
}

func (r *fakeDashboardRepo) CountOpenRequests(ctx context.Context) (uint64, error) {
	return r.open, nil
}

func (r *fakeDashboardRepo) CountOverdueRequests(ctx context.Context, today time.Time) (uint64, error) {
	r.overdueDay = today
	return r.overdue, nil
}

func (r *fakeDashboardRepo) CountByTeam(ctx context.Context) ([]entities.GroupCount, error) {
	return r.byTeam, nil
}

func (r *fakeDashboardRepo) CountByCategory(ctx context.Context) ([]entities.GroupCount, error) {
	return r.byCategory, nil
}

func (r *fakeDashboardRepo) GetRecentRequests(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error) {
	r.recentLimit = limit
	return r.recent, nil
}

