// Package accountingservice submits bills to the accounting service.
package accountingservice

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"ordermanagement/internal/adapters/out/restclient"
	"ordermanagement/internal/core/domain/model/bill"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"

	"github.com/google/uuid"
)

const (
	serviceName       = "accounting-service"
	idempotencyHeader = "Idempotency-Key"
)

// billKeyNamespace scopes the name-based keys derived from order IDs.
var billKeyNamespace = uuid.MustParse("6f0c5a3e-4b1d-5c8e-9a27-3d1f0e8b7c42")

type billPayload struct {
	ID                  int64     `json:"id,omitempty"`
	UserID              int64     `json:"userId"`
	Name                string    `json:"name"`
	Street              string    `json:"street"`
	City                string    `json:"city"`
	Country             string    `json:"country"`
	ZipCode             string    `json:"zipCode"`
	Value               float64   `json:"value"`
	CreationDate        time.Time `json:"creationDate"`
	PaymentDeadlineDate time.Time `json:"paymentDeadlineDate"`
}

// Client implements ports.BillingClient.
type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{rest: restclient.New(serviceName, baseURL, timeout)}
}

// IdempotencyKey is the key sent with the bill of orderID. It is stable across
// processes, so a retried finish presents the same key.
func IdempotencyKey(orderID kernel.ID) string {
	return uuid.NewSHA1(billKeyNamespace, []byte("order-bill:"+strconv.FormatInt(orderID.Int64(), 10))).String()
}

// SubmitBill posts the bill to /bills and returns it with the ID the
// accounting service assigned.
func (c *Client) SubmitBill(ctx context.Context, orderID kernel.ID, b bill.Bill) (bill.Bill, error) {
	if err := b.Validate(); err != nil {
		return bill.Bill{}, err
	}

	recipient := b.Recipient()
	request := billPayload{
		UserID:              b.UserID().Int64(),
		Name:                recipient.Name,
		Street:              recipient.Street,
		City:                recipient.City,
		Country:             recipient.Country,
		ZipCode:             recipient.ZipCode,
		Value:               b.Value(),
		CreationDate:        b.CreationDate(),
		PaymentDeadlineDate: b.PaymentDeadlineDate(),
	}

	headers := http.Header{}
	headers.Set(idempotencyHeader, IdempotencyKey(orderID))

	var response billPayload
	if err := c.rest.PostJSON(ctx, headers, request, &response, "bills"); err != nil {
		return bill.Bill{}, err
	}

	stored, err := bill.RestoreBill(
		kernel.ID(response.ID),
		kernel.ID(response.UserID),
		user.Address{
			Name:    response.Name,
			Street:  response.Street,
			City:    response.City,
			Country: response.Country,
			ZipCode: response.ZipCode,
		},
		response.Value,
		response.CreationDate,
		response.PaymentDeadlineDate,
	)
	if err != nil {
		return bill.Bill{}, c.rest.Unavailable(err)
	}
	return stored, nil
}
