//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/fairplay-hq/fairplay-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_CorrectPassword(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/api/auth/verify", map[string]string{
		"password": testAdminPassword,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "Authenticated", result.Message)
	assert.NotEmpty(t, result.Token)

	// The token actually opens the admin area
	client.Token = result.Token
	resp, err = client.GET("/api/subscribers")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_WrongPassword(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/api/auth/verify", map[string]string{
		"password": "definitely-wrong",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var result struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "Incorrect password.", result.Message)
}

func TestAuth_MissingPassword(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/api/auth/verify", map[string]string{})
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var result struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "Password is required", result.Message)
}

func TestAuth_ForgedTokenRejected(t *testing.T) {
	client := newTestClient(t)

	client.Token = "not-a-real-token"
	resp, err := client.GET("/api/subscribers")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_MissingBearerRejected(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/api/jobs", jobPayload("No Session"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
