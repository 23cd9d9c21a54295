package userservice_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordermanagement/internal/adapters/out/userservice"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/user"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		mayRent  bool
		expected user.Address
	}{
		{
			name: "active user with full name",
			body: `{"id":1,"userName":"ada","firstName":"Ada","lastName":"Lovelace","emailAddress":"ada@example.com",
				"active":true,"banned":false,"street":"Main St 1","city":"London","country":"UK","zipCode":"N1"}`,
			mayRent: true,
			expected: user.Address{
				Name: "Ada Lovelace", Street: "Main St 1", City: "London", Country: "UK", ZipCode: "N1",
			},
		},
		{
			name:     "banned user without names falls back to user name",
			body:     `{"id":1,"userName":"ghost","active":true,"banned":true}`,
			mayRent:  false,
			expected: user.Address{Name: "ghost"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/1", r.URL.Path)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := userservice.NewClient(srv.URL, time.Second)

			u, err := client.GetUser(t.Context(), kernel.MustNewID(1))

			require.NoError(t, err)
			assert.Equal(t, kernel.ID(1), u.ID())
			assert.Equal(t, tc.mayRent, u.MayRent())
			assert.Equal(t, tc.expected, u.Address())
		})
	}
}

func TestGetUser_NotFoundIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	client := userservice.NewClient(srv.URL, time.Second)

	_, err := client.GetUser(t.Context(), kernel.MustNewID(1))

	require.ErrorIs(t, err, errs.ErrDependencyUnavailable)
	assert.Contains(t, err.Error(), "user-service")
}

func TestGetUser_IncompleteBodyIsUnavailable(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"null body", `null`, "id"},
		{"empty object", `{}`, "active"},
		{"missing banned flag", `{"id":7,"active":true}`, "banned"},
		{"missing active flag", `{"id":7,"banned":false}`, "active"},
		{"another user", `{"id":8,"active":true,"banned":false}`, "got 8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := userservice.NewClient(srv.URL, time.Second)

			u, err := client.GetUser(t.Context(), kernel.MustNewID(7))

			require.ErrorIs(t, err, errs.ErrDependencyUnavailable)
			assert.Contains(t, err.Error(), tc.message)
			assert.Equal(t, user.User{}, u)
		})
	}
}

func TestGetUser_InactiveUserIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"userName":"idle","active":false,"banned":false}`))
	}))
	defer srv.Close()

	client := userservice.NewClient(srv.URL, time.Second)

	u, err := client.GetUser(t.Context(), kernel.MustNewID(7))

	require.NoError(t, err)
	assert.False(t, u.IsActive())
	assert.False(t, u.MayRent())
}
