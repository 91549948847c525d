package identityservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"name":"Ali Raza","email":"ali@uni.edu.pk","role":"student","email_verified":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	user, err := client.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, RoleStudent, user.Role)
	assert.True(t, user.EmailVerified)
	assert.False(t, user.IsAdmin())
}

func TestClient_GetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	_, err := client.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestClient_GetUser_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Сервис недоступен

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestClient_GetVerifiedUser_Unverified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Sara","email":"sara@uni.edu.pk","role":"student","email_verified":false}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, nopLogger{})

	_, err := client.GetVerifiedUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}
