// Package userservice reads renters from the user service.
package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/adapters/out/restclient"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"
)

const serviceName = "user-service"

type userPayload struct {
	ID           int64  `json:"id"`
	UserName     string `json:"userName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Active       *bool  `json:"active"`
	Banned       *bool  `json:"banned"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
}

// Client implements ports.UserClient.
type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{rest: restclient.New(serviceName, baseURL, timeout)}
}

// GetUser fetches GET /users/{id}. An unknown user is reported as an
// unavailable dependency like any other failed lookup.
func (c *Client) GetUser(ctx context.Context, id kernel.ID) (user.User, error) {
	var p userPayload
	if err := c.rest.GetJSON(ctx, &p, "users", id.String()); err != nil {
		return user.User{}, err
	}
	if err := p.validate(id); err != nil {
		return user.User{}, c.rest.Unavailable(err)
	}

	u, err := user.NewUser(id, *p.Active, *p.Banned, user.Address{
		Name:    p.billingName(),
		Street:  p.Street,
		City:    p.City,
		Country: p.Country,
		ZipCode: p.ZipCode,
	})
	if err != nil {
		return user.User{}, c.rest.Unavailable(err)
	}
	return u, nil
}

// validate rejects bodies that would otherwise decode into a user with false
// flags: null, {}, a missing flag or another user's record.
func (p userPayload) validate(id kernel.ID) error {
	var problems []error
	if p.ID != id.Int64() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("requested user %s, got %d", id, p.ID)))
	}
	if p.Active == nil {
		problems = append(problems, errs.NewValueIsRequiredError("active"))
	}
	if p.Banned == nil {
		problems = append(problems, errs.NewValueIsRequiredError("banned"))
	}
	return errors.Join(problems...)
}

func (p userPayload) billingName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.UserName
	}
	return name
}
