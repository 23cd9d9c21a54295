package carservice_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordermanagement/internal/adapters/out/carservice"
	"ordermanagement/internal/core/domain/model/car"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cars/2", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":2,"eol":true,"basePrice":12.5}`))
	}))
	defer srv.Close()

	client := carservice.NewClient(srv.URL, time.Second)

	c, err := client.GetCar(t.Context(), kernel.MustNewID(2))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(2), c.ID())
	assert.True(t, c.IsEOL())
	assert.InDelta(t, 12.5, c.BaseRentPrice(), 1e-9)
}

func TestGetCar_InvalidPriceIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":2,"eol":false,"basePrice":-1}`))
	}))
	defer srv.Close()

	client := carservice.NewClient(srv.URL, time.Second)

	_, err := client.GetCar(t.Context(), kernel.MustNewID(2))

	require.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	assert.Contains(t, err.Error(), "car-service")
}

func TestGetCar_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := carservice.NewClient(srv.URL, time.Second)

	_, err := client.GetCar(t.Context(), kernel.MustNewID(2))

	require.ErrorIs(t, err, errs.ErrDependencyUnavailable)
}

func TestGetCar_IncompleteBodyIsUnavailable(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"null body", `null`, "id"},
		{"empty object", `{}`, "eol"},
		{"missing price", `{"id":7,"eol":false}`, "basePrice"},
		{"missing eol flag", `{"id":7,"basePrice":10}`, "eol"},
		{"another car", `{"id":8,"eol":false,"basePrice":10}`, "got 8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := carservice.NewClient(srv.URL, time.Second)

			c, err := client.GetCar(t.Context(), kernel.MustNewID(7))

			require.ErrorIs(t, err, errs.ErrDependencyUnavailable)
			assert.Contains(t, err.Error(), tc.message)
			assert.Equal(t, car.Car{}, c)
		})
	}
}

func TestGetCar_FreeCarWithZeroPriceIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"eol":false,"basePrice":0}`))
	}))
	defer srv.Close()

	client := carservice.NewClient(srv.URL, time.Second)

	c, err := client.GetCar(t.Context(), kernel.MustNewID(7))

	require.NoError(t, err)
	assert.False(t, c.IsEOL())
	assert.Zero(t, c.BaseRentPrice())
}
