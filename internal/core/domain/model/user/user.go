// Package user holds the read model of a renter as reported by the user service.
package user

import (
	"ordermanagement/internal/core/domain/model/kernel"
)

// Address is the postal address copied onto bills.
type Address struct {
	Name    string
	Street  string
	City    string
	Country string
	ZipCode string
}

// User is owned by the user service. This service only reads it.
type User struct {
	id      kernel.ID
	active  bool
	banned  bool
	address Address
}

// NewUser builds a User from a successful lookup.
func NewUser(id kernel.ID, active, banned bool, address Address) (User, error) {
	if err := id.Validate(); err != nil {
		return User{}, err
	}
	return User{id: id, active: active, banned: banned, address: address}, nil
}

func (u User) ID() kernel.ID {
	return u.id
}

func (u User) IsActive() bool {
	return u.active
}

func (u User) IsBanned() bool {
	return u.banned
}

// MayRent reports whether the user is eligible to open an order:
// the account must be active and not banned.
func (u User) MayRent() bool {
	return u.active && !u.banned
}

func (u User) Address() Address {
	return u.address
}
