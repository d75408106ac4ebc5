//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/fairplay-hq/fairplay-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobs_CreateAndGet(t *testing.T) {
	admin := newAdminClient(t)

	created := createTestJob(t, admin, "Backend Engineer")
	assert.True(t, created.IsActive, "new postings start active")
	assert.Equal(t, "Full-time", created.Type)
	assert.Equal(t, "Senior", created.Level)

	public := newTestClient(t)
	resp, err := public.GET("/api/jobs/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched jobRecord
	testutil.DecodeJSON(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Backend Engineer", fetched.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, fetched.Requirements)
}

func TestJobs_GetUnknownID(t *testing.T) {
	public := newTestClient(t)

	resp, err := public.GET("/api/jobs/00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobs_ListActiveFilter(t *testing.T) {
	admin := newAdminClient(t)

	visible := createTestJob(t, admin, "Visible Posting")
	hidden := createTestJob(t, admin, "Hidden Posting")

	resp, err := admin.POST("/api/jobs/"+hidden.ID+"/toggle", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	public := newTestClient(t)
	resp, err = public.GET("/api/jobs?active=true")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var active []jobRecord
	testutil.DecodeJSON(t, resp, &active)

	ids := make(map[string]bool, len(active))
	for _, j := range active {
		assert.True(t, j.IsActive)
		ids[j.ID] = true
	}
	assert.True(t, ids[visible.ID], "active posting should be listed")
	assert.False(t, ids[hidden.ID], "deactivated posting should be filtered out")

	// Unfiltered list still carries both
	resp, err = public.GET("/api/jobs")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all []jobRecord
	testutil.DecodeJSON(t, resp, &all)

	ids = make(map[string]bool, len(all))
	for _, j := range all {
		ids[j.ID] = true
	}
	assert.True(t, ids[visible.ID])
	assert.True(t, ids[hidden.ID])
}

func TestJobs_Update(t *testing.T) {
	admin := newAdminClient(t)

	created := createTestJob(t, admin, "Old Title")

	payload := jobPayload("New Title", withType("Contract"), withLevel("Lead"))
	resp, err := admin.PUT("/api/jobs/"+created.ID, payload)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated jobRecord
	testutil.DecodeJSON(t, resp, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Contract", updated.Type)
	assert.Equal(t, "Lead", updated.Level)
	assert.True(t, updated.IsActive, "update must not touch the active flag")
}

func TestJobs_UpdateUnknownID(t *testing.T) {
	admin := newAdminClient(t)

	resp, err := admin.PUT("/api/jobs/00000000-0000-0000-0000-000000000000", jobPayload("Ghost"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobs_ValidationRejectsUnknownEnum(t *testing.T) {
	admin := newAdminClient(t)

	resp, err := admin.POST("/api/jobs", jobPayload("Bad Type", withType("Freelance")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = admin.POST("/api/jobs", jobPayload("Bad Level", withLevel("Principal")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJobs_BlankListEntriesDropped(t *testing.T) {
	admin := newAdminClient(t)

	created := createTestJob(t, admin, "List Hygiene",
		withLists(
			[]string{"Go", "  ", "", "PostgreSQL"},
			[]string{"", "Ship features", "\t"},
		),
	)

	assert.Equal(t, []string{"Go", "PostgreSQL"}, created.Requirements)
	assert.Equal(t, []string{"Ship features"}, created.Responsibilities)
}

func TestJobs_ToggleTwiceRestoresState(t *testing.T) {
	admin := newAdminClient(t)

	created := createTestJob(t, admin, "Toggle Target")
	require.True(t, created.IsActive)

	resp, err := admin.POST("/api/jobs/"+created.ID+"/toggle", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var toggled jobRecord
	testutil.DecodeJSON(t, resp, &toggled)
	assert.False(t, toggled.IsActive)

	resp, err = admin.POST("/api/jobs/"+created.ID+"/toggle", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	testutil.DecodeJSON(t, resp, &toggled)
	assert.True(t, toggled.IsActive)
}

func TestJobs_ToggleUnknownID(t *testing.T) {
	admin := newAdminClient(t)

	resp, err := admin.POST("/api/jobs/00000000-0000-0000-0000-000000000000/toggle", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobs_DeleteIsIdempotent(t *testing.T) {
	admin := newAdminClient(t)

	created := createTestJob(t, admin, "Short Lived")

	resp, err := admin.DELETE("/api/jobs/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Second delete of the same id still succeeds
	resp, err = admin.DELETE("/api/jobs/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// And the posting is gone
	public := newTestClient(t)
	resp, err = public.GET("/api/jobs/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJobs_WriteEndpointsRequireAuth(t *testing.T) {
	public := newTestClient(t)

	resp, err := public.POST("/api/jobs", jobPayload("No Auth"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = public.PUT("/api/jobs/some-id", jobPayload("No Auth"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = public.DELETE("/api/jobs/some-id")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = public.POST("/api/jobs/some-id/toggle", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
