package device

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for device repository operations
type Repository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, deviceID uuid.UUID) (*Device, error)
	GetByIdentificationNumber(ctx context.Context, number string) (*Device, error)
	Update(ctx context.Context, device *Device) error
	// Delete removes the device and all of its checks. Checks are deleted
	// first so no check ever dangles without its device.
	Delete(ctx context.Context, deviceID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Device, error)
	Locations(ctx context.Context) ([]string, error)
}

// CheckRepository defines the interface for device check operations. Checks
// have no update operation: a check is immutable once recorded.
type CheckRepository interface {
	Create(ctx context.Context, check *Check) error
	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*Check, error)
	ListAll(ctx context.Context) ([]*Check, error)
	// ListCompletedSince returns checks whose CompletedDate is at or after
	// the given time, most recent first.
	ListCompletedSince(ctx context.Context, since time.Time) ([]*Check, error)
}

// Filter represents filtering options for listing devices
type Filter struct {
	Location *string
	Status   *DeviceStatus
}
