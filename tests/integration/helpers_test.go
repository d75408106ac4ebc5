//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/fairplay-hq/fairplay-backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

// jobPayload returns a valid job posting body. Override fields through opts.
func jobPayload(title string, opts ...jobOption) map[string]interface{} {
	payload := map[string]interface{}{
		"title":            title,
		"team":             "Engineering",
		"location":         "Remote",
		"type":             "Full-time",
		"level":            "Senior",
		"description":      "Work on content protection tooling.",
		"requirements":     []string{"Go", "PostgreSQL"},
		"responsibilities": []string{"Design and ship backend services"},
	}
	for _, opt := range opts {
		opt(payload)
	}
	return payload
}

type jobOption func(map[string]interface{})

func withType(jobType string) jobOption {
	return func(m map[string]interface{}) {
		m["type"] = jobType
	}
}

func withLevel(level string) jobOption {
	return func(m map[string]interface{}) {
		m["level"] = level
	}
}

func withLists(requirements, responsibilities []string) jobOption {
	return func(m map[string]interface{}) {
		m["requirements"] = requirements
		m["responsibilities"] = responsibilities
	}
}

// jobRecord mirrors the job posting response body.
type jobRecord struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Team             string   `json:"team"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Level            string   `json:"level"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	IsActive         bool     `json:"is_active"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// createTestJob creates a job posting and registers cleanup. The client must
// hold an admin token.
func createTestJob(t *testing.T, client *testutil.Client, title string, opts ...jobOption) jobRecord {
	t.Helper()

	resp, err := client.POST("/api/jobs", jobPayload(title, opts...))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var job jobRecord
	testutil.DecodeJSON(t, resp, &job)
	require.NotEmpty(t, job.ID)

	t.Cleanup(func() {
		resp, err := client.DELETE("/api/jobs/" + job.ID)
		if err != nil {
			t.Logf("cleanup warning (job %s): %v", job.ID, err)
			return
		}
		resp.Body.Close()
	})

	return job
}

// subscriberRecord mirrors the subscriber response body.
type subscriberRecord struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Source    string `json:"source"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// subscribeResult mirrors the subscribe response body.
type subscribeResult struct {
	Message    string           `json:"message"`
	Subscriber subscriberRecord `json:"subscriber"`
}

// subscribe posts an email address and returns the decoded response together
// with the HTTP status. Cleanup removes the subscriber through an admin client.
func subscribe(t *testing.T, client *testutil.Client, email, source string) (subscribeResult, int) {
	t.Helper()

	payload := map[string]string{"email": email}
	if source != "" {
		payload["source"] = source
	}

	resp, err := client.POST("/api/subscribers", payload)
	require.NoError(t, err)
	status := resp.StatusCode

	var result subscribeResult
	testutil.DecodeJSON(t, resp, &result)

	if status == http.StatusCreated {
		id := result.Subscriber.ID
		t.Cleanup(func() {
			admin := newAdminClient(t)
			resp, err := admin.DELETE("/api/subscribers/" + id)
			if err != nil {
				t.Logf("cleanup warning (subscriber %s): %v", id, err)
				return
			}
			resp.Body.Close()
		})
	}

	return result, status
}

// getSubscriberCount reads the public count endpoint.
func getSubscriberCount(t *testing.T, client *testutil.Client) int {
	t.Helper()

	resp, err := client.GET("/api/subscribers/count")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, resp, &result)
	return result.Count
}
