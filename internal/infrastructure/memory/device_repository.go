package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainDevice "maintenance-tracker/internal/domain/device"

	"github.com/google/uuid"
)

// DeviceRepository is an in-memory device store for tests and local runs.
type DeviceRepository struct {
	mu      sync.RWMutex
	devices map[uuid.UUID]*domainDevice.Device
	checks  map[uuid.UUID]*domainDevice.Check
}

// NewDeviceRepository constructs an empty repository.
func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{
		devices: make(map[uuid.UUID]*domainDevice.Device),
		checks:  make(map[uuid.UUID]*domainDevice.Check),
	}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domainDevice.Device) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.devices {
		if existing.IdentificationNumber == d.IdentificationNumber {
			return domainDevice.ErrDeviceAlreadyExists
		}
	}

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	d.UpdatedAt = d.CreatedAt

	cp := *d
	r.devices[d.ID] = &cp
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, deviceID uuid.UUID) (*domainDevice.Device, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[deviceID]
	if !ok {
		return nil, domainDevice.ErrDeviceNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *DeviceRepository) GetByIdentificationNumber(ctx context.Context, number string) (*domainDevice.Device, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.devices {
		if d.IdentificationNumber == number {
			cp := *d
			return &cp, nil
		}
	}
	return nil, domainDevice.ErrDeviceNotFound
}

func (r *DeviceRepository) Update(ctx context.Context, d *domainDevice.Device) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[d.ID]; !ok {
		return domainDevice.ErrDeviceNotFound
	}
	for _, existing := range r.devices {
		if existing.ID != d.ID && existing.IdentificationNumber == d.IdentificationNumber {
			return domainDevice.ErrDeviceAlreadyExists
		}
	}

	d.UpdatedAt = time.Now()
	cp := *d
	r.devices[d.ID] = &cp
	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, deviceID uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[deviceID]; !ok {
		return domainDevice.ErrDeviceNotFound
	}
	for id, c := range r.checks {
		if c.DeviceID == deviceID {
			delete(r.checks, id)
		}
	}
	delete(r.devices, deviceID)
	return nil
}

func (r *DeviceRepository) List(ctx context.Context, filter *domainDevice.Filter) ([]*domainDevice.Device, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domainDevice.Device, 0, len(r.devices))
	for _, d := range r.devices {
		if filter != nil {
			if filter.Location != nil && d.Location != *filter.Location {
				continue
			}
			if filter.Status != nil && d.Status != *filter.Status {
				continue
			}
		}
		cp := *d
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *DeviceRepository) Locations(ctx context.Context) ([]string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, d := range r.devices {
		seen[d.Location] = struct{}{}
	}

	locations := make([]string, 0, len(seen))
	for loc := range seen {
		locations = append(locations, loc)
	}
	sort.Strings(locations)
	return locations, nil
}

// CheckRepository exposes the same store's checks through the
// device.CheckRepository interface. Sharing the store keeps the delete
// cascade consistent between the two.
type CheckRepository struct {
	store *DeviceRepository
}

// NewCheckRepository constructs a check repository backed by the given
// device repository.
func NewCheckRepository(store *DeviceRepository) *CheckRepository {
	return &CheckRepository{store: store}
}

func (r *CheckRepository) Create(ctx context.Context, c *domainDevice.Check) error {
	_ = ctx
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	cp := *c
	r.store.checks[c.ID] = &cp
	return nil
}

func (r *CheckRepository) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*domainDevice.Check, error) {
	return r.list(ctx, func(c *domainDevice.Check) bool {
		return c.DeviceID == deviceID
	})
}

func (r *CheckRepository) ListAll(ctx context.Context) ([]*domainDevice.Check, error) {
	return r.list(ctx, func(*domainDevice.Check) bool { return true })
}

func (r *CheckRepository) ListCompletedSince(ctx context.Context, since time.Time) ([]*domainDevice.Check, error) {
	return r.list(ctx, func(c *domainDevice.Check) bool {
		return !c.CompletedDate.Before(since)
	})
}

func (r *CheckRepository) list(ctx context.Context, keep func(*domainDevice.Check) bool) ([]*domainDevice.Check, error) {
	_ = ctx
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domainDevice.Check, 0, len(r.store.checks))
	for _, c := range r.store.checks {
		if !keep(c) {
			continue
		}
		cp := *c
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CompletedDate.Equal(result[j].CompletedDate) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].CompletedDate.After(result[j].CompletedDate)
	})
	return result, nil
}
