package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/arjun/cybercafe-backend/internal/testutil"
	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketHandler_StatusFeed(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	computer := testutil.NewComputerBuilder().Build(t, ts.DB.DB)

	conn, _, err := ws.DefaultDialer.Dial(ts.WebSocketURL(token), nil)
	require.NoError(t, err)
	defer conn.Close()

	// Starting a session must push the in-use transition to the feed
	resp := testutil.DoAuthenticated(t, http.MethodPost, ts.APIURL("/sessions"), token, map[string]interface{}{
		"computerId": computer.ID.String(),
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string `json:"type"`
		Payload struct {
			ComputerID string                `json:"computerId"`
			Name       string                `json:"name"`
			Status     domain.ComputerStatus `json:"status"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(frame, &event))
	assert.Equal(t, "computer.status", event.Type)
	assert.Equal(t, computer.ID.String(), event.Payload.ComputerID)
	assert.Equal(t, computer.Name, event.Payload.Name)
	assert.Equal(t, domain.ComputerStatusInUse, event.Payload.Status)
}

func TestWebSocketHandler_RejectsBadToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, resp, err := ws.DefaultDialer.Dial(ts.WebSocketURL(tt.token), nil)
			require.Error(t, err)
			if conn != nil {
				conn.Close()
			}
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
