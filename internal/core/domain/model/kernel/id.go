package kernel

import (
	"math"
	"strconv"

	"ordermanagement/internal/pkg/errs"
)

// ID is a numeric identifier assigned by the system that owns the entity.
// Orders get their ID from the order store on first insert, bills from the
// accounting service, users and cars from their own services.
//
// The zero value means "not assigned yet". It is valid on an order that has not
// been persisted, but never as a reference to another entity.
type ID int64

// NoID is the identifier of an entity that has not been persisted.
const NoID ID = 0

// NewID validates a raw identifier received from outside the domain.
//
// Example:
//
//	carID, err := kernel.NewID(req.CarID)
//	if err != nil {
//	    return err // errs.ErrValueIsOutOfRange
//	}
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return NoID, err
	}
	return id, nil
}

// MustNewID is NewID for literals in tests and fixtures.
func MustNewID(v int64) ID {
	id, err := NewID(v)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports whether the ID refers to an existing entity.
func (id ID) Validate() error {
	if id < 1 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, int64(math.MaxInt64))
	}
	return nil
}

// IsAssigned reports whether the store has assigned this ID.
func (id ID) IsAssigned() bool {
	return id > NoID
}

// Int64 returns the raw value for persistence and transport.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
