package gateway_http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestGetChallenges_DecodesBundle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/viral/challenges", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		io.WriteString(w, `{
			"active_challenges": [{"id": "ch-1", "name": "Save 5K", "reward_coins": 100}],
			"user_challenges": [{"id": "uch-1", "challenge_id": "ch-1", "progress": 1200}],
			"total_joined": 1
		}`)
	}))
	defer server.Close()

	gw := NewViralGateway(server.URL, 5*time.Second)
	bundle, err := gw.GetChallenges(authedContext("token-123"))

	require.NoError(t, err)
	require.Len(t, bundle.Active, 1)
	assert.Equal(t, 100, bundle.Active[0].RewardCoins)
	require.Len(t, bundle.Joined, 1)
	assert.Equal(t, 1200.0, bundle.Joined[0].Progress)
	assert.Equal(t, 1, bundle.TotalJoined)
}

func TestJoinChallenge_PostsIDAndUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/viral/join-challenge", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ch-1", payload["challenge_id"])

		io.WriteString(w, `{"user_challenge": {"id": "uch-1", "challenge_id": "ch-1", "status": "active"}}`)
	}))
	defer server.Close()

	gw := NewViralGateway(server.URL, 5*time.Second)
	joined, err := gw.JoinChallenge(authedContext("token-123"), "ch-1")

	require.NoError(t, err)
	assert.Equal(t, "uch-1", joined.ID)
	assert.Equal(t, models.ChallengeActive, joined.Status)
}

func TestGetAchievements_UnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/viral/achievements", r.URL.Path)
		io.WriteString(w, `{"all_achievements": [{"id": "ach-1", "name": "First Saver", "reward_coins": 25}]}`)
	}))
	defer server.Close()

	gw := NewViralGateway(server.URL, 5*time.Second)
	achievements, err := gw.GetAchievements(authedContext("token-123"))

	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, "First Saver", achievements[0].Name)
}
