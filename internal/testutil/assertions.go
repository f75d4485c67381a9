package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertComputerStatus reloads the computer and verifies its status
func AssertComputerStatus(t *testing.T, db *gorm.DB, computerID uuid.UUID, expected domain.ComputerStatus) {
	t.Helper()

	var computer domain.Computer
	require.NoError(t, db.First(&computer, "id = ?", computerID).Error, "failed to reload computer")
	assert.Equal(t, expected, computer.Status, "unexpected computer status")
}

// CountSessions returns the number of session rows for a computer
func CountSessions(t *testing.T, db *gorm.DB, computerID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&domain.Session{}).Where("computer_id = ?", computerID).Count(&count).Error)
	return count
}
