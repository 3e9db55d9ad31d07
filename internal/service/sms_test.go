package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ijara-backend/internal/config"
)

func TestEskizClientSendSMS(t *testing.T) {
	var logins, sends int
	var lastBody map[string]string
	var lastAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			logins++
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "biz@example.uz", creds["email"])
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]string{"token": "tok-1"},
			})
		case "/api/message/sms/send":
			sends++
			lastAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&lastBody))
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewEskizClient(config.EskizConfig{
		BaseURL:  srv.URL,
		Email:    "biz@example.uz",
		Password: "pw",
		From:     "4546",
	})

	err := client.SendSMS(context.Background(), "+998901234567", "Qarzingiz 500000 so'm. Iltimos, to'lov qiling.")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", lastAuth)
	assert.Equal(t, "+998901234567", lastBody["mobile_phone"])
	assert.Equal(t, "4546", lastBody["from"])
	assert.Contains(t, lastBody["message"], "500000")

	// Second send reuses the cached token.
	err = client.SendSMS(context.Background(), "+998901234567", "test")
	require.NoError(t, err)
	assert.Equal(t, 1, logins)
	assert.Equal(t, 2, sends)
}

func TestEskizClientRefreshesExpiredToken(t *testing.T) {
	var logins int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			logins++
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]string{"token": "tok-" + strconv.Itoa(logins)},
			})
		case "/api/message/sms/send":
			// First token is always rejected, forcing a re-login.
			if logins < 2 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	client := NewEskizClient(config.EskizConfig{
		BaseURL: srv.URL,
		Email:   "biz@example.uz",
		From:    "4546",
	})

	err := client.SendSMS(context.Background(), "+998901234567", "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, logins)
}

func TestEskizClientLoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewEskizClient(config.EskizConfig{BaseURL: srv.URL})
	err := client.SendSMS(context.Background(), "+998901234567", "hello")
	assert.Error(t, err)
}
