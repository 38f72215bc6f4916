//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"digital-menu/internal/client"
	resdto "digital-menu/internal/handler/dto/response"
	"digital-menu/internal/pkg/errs"
	"digital-menu/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": msg}})
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		target error
	}{
		{name: "404 maps to not found", status: http.StatusNotFound, target: client.ErrNotFound},
		{name: "401 maps to unauthenticated", status: http.StatusUnauthorized, target: client.ErrUnauthenticated},
		{name: "409 maps to conflict", status: http.StatusConflict, target: client.ErrConflict},
		{name: "400 maps to validation", status: http.StatusBadRequest, target: errs.ErrDomainValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeError(w, tc.status, "nope")
			}))
			defer srv.Close()

			_, err := client.New(srv.URL).GetRestaurantBySlug(context.Background(), "missing")
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.target))

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, "nope", apiErr.Message)
		})
	}

	t.Run("500 stays unclassified", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}))
		defer srv.Close()

		err := client.New(srv.URL).DeleteOffer(context.Background(), uuid.New())
		require.Error(t, err)
		assert.False(t, errs.Is(err, client.ErrNotFound))
	})
}

func TestClient_SessionAndAggregate(t *testing.T) {
	view := builder.NewRestaurantBuilder().BuildView()
	userID := uuid.New()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(resdto.LoginResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         &resdto.UserResponse{ID: userID, Email: "owner@example.com", Role: "owner", IsActive: true},
		})
	})
	mux.HandleFunc("GET /api/owner/restaurant", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		_ = json.NewEncoder(w).Encode(view)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := client.New(srv.URL)

	_, err := c.GetOwnedRestaurant(context.Background())
	require.True(t, errs.Is(err, client.ErrUnauthenticated))

	session, err := c.SignIn(context.Background(), "owner@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	got, err := c.GetOwnedRestaurant(context.Background())
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
	assert.Equal(t, view.Slug, got.Slug)
	assert.Equal(t, view.Customization.PrimaryColor, got.Customization.PrimaryColor)
}
