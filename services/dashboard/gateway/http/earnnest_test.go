package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
	"github.com/earnnest/earnnest-web/internal/pkg/middleware"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

func authedContext(token string) context.Context {
	return middleware.WithSession(context.Background(), models.Session{
		UserID:        "user-1",
		Token:         token,
		Authenticated: true,
	})
}

func TestGetProfile_ForwardsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{ID: "user-1", FullName: "Priya"})
	}))
	defer server.Close()

	gw := NewEarnNestGateway(server.URL, 5*time.Second)
	user, err := gw.GetProfile(authedContext("token-123"))

	require.NoError(t, err)
	assert.Equal(t, "Priya", user.FullName)
}

func TestGetProfile_AnonymousSendsNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{})
	}))
	defer server.Close()

	gw := NewEarnNestGateway(server.URL, 5*time.Second)
	_, err := gw.GetProfile(context.Background())

	require.NoError(t, err)
}

func TestGetTransactions_LimitQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]models.Transaction{{ID: "txn-1"}})
	}))
	defer server.Close()

	gw := NewEarnNestGateway(server.URL, 5*time.Second)
	transactions, err := gw.GetTransactions(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestCreateGoal_UpstreamValidationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "target amount must be positive"}`))
	}))
	defer server.Close()

	gw := NewEarnNestGateway(server.URL, 5*time.Second)
	_, err := gw.CreateGoal(authedContext("token-123"), &models.GoalCreate{Name: "Bad goal"})

	require.Error(t, err)
	statusErr, ok := apierr.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "target amount must be positive", statusErr.Detail)
}

func TestDeleteBudget_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/budgets/budget-1", r.URL.Path)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	gw := NewEarnNestGateway(server.URL, 5*time.Second)
	err := gw.DeleteBudget(authedContext("token-123"), "budget-1")

	assert.NoError(t, err)
}
