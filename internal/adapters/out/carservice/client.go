// Package carservice reads cars from the car service.
package carservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/adapters/out/restclient"
	"ordermanagement/internal/core/domain/model/car"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

const serviceName = "car-service"

type carPayload struct {
	ID        int64    `json:"id"`
	EOL       *bool    `json:"eol"`
	BasePrice *float64 `json:"basePrice"`
}

// Client implements ports.CarClient.
type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{rest: restclient.New(serviceName, baseURL, timeout)}
}

// GetCar fetches GET /cars/{id}.
func (c *Client) GetCar(ctx context.Context, id kernel.ID) (car.Car, error) {
	var p carPayload
	if err := c.rest.GetJSON(ctx, &p, "cars", id.String()); err != nil {
		return car.Car{}, err
	}
	if err := p.validate(id); err != nil {
		return car.Car{}, c.rest.Unavailable(err)
	}

	rented, err := car.NewCar(id, *p.EOL, *p.BasePrice)
	if err != nil {
		return car.Car{}, c.rest.Unavailable(err)
	}
	return rented, nil
}

// validate rejects incomplete bodies so that a missing flag or price is never
// read as a rentable car with a zero price.
func (p carPayload) validate(id kernel.ID) error {
	var problems []error
	if p.ID != id.Int64() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("requested car %s, got %d", id, p.ID)))
	}
	if p.EOL == nil {
		problems = append(problems, errs.NewValueIsRequiredError("eol"))
	}
	if p.BasePrice == nil {
		problems = append(problems, errs.NewValueIsRequiredError("basePrice"))
	}
	return errors.Join(problems...)
}
