package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/arjun/cybercafe-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"name":     "New User",
				"email":    "new@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result testutil.AuthResponse
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, "new@example.com", result.User.Email)
				assert.Equal(t, "user", result.User.Role)
				assert.NotEmpty(t, result.AccessToken)
			},
		},
		{
			name: "missing email",
			request: map[string]string{
				"name":     "No Email",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			request: map[string]string{
				"name":  "No Password",
				"email": "nopassword@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"name":     "Copycat",
				"email":    "existing@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"email":    user.Email,
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			request: map[string]string{
				"email":    "nobody@example.com",
				"password": "anypassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().
		WithEmail("me@example.com").
		BuildAndAuthenticate(t, ts)

	t.Run("with token", func(t *testing.T) {
		resp := testutil.DoAuthenticated(t, http.MethodGet, ts.APIURL("/auth/me"), token, nil)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Email string `json:"email"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "me@example.com", result.Email)
	})

	t.Run("without token", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/me"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
