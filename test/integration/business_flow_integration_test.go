//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProjectFlowIntegration(t *testing.T) {
	database := setupTestDB(t)
	srv, _ := setupAPI(t, database, "")

	// Создаём клиента
	var client map[string]any
	status := doJSON(t, newRequest(t, http.MethodPost, srv.URL+"/api/clients",
		mustJSON(t, map[string]any{"name": "Acme", "email": "a@x.io"})), &client)
	require.Equal(t, http.StatusOK, status)
	clientID := client["id"].(string)
	require.NotEmpty(t, clientID)
	assert.Equal(t, client["created_at"], client["updated_at"])

	// Проект для существующего клиента
	var project map[string]any
	status = doJSON(t, newRequest(t, http.MethodPost, srv.URL+"/api/projects",
		mustJSON(t, map[string]any{"name": "Site", "client_id": clientID, "start_date": "2024-03-01"})), &project)
	require.Equal(t, http.StatusOK, status)
	projectID := project["id"].(string)
	assert.Equal(t, "active", project["status"])

	// В списке проектов есть имя клиента
	var projects []map[string]any
	status = doJSON(t, newRequest(t, http.MethodGet, srv.URL+"/projects", nil), &projects)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, projects, 1)
	assert.Equal(t, "Acme", projects[0]["client_name"])

	// Удаляем клиента: проект остается, имя клиента пропадает
	var msg map[string]any
	status = doJSON(t, newRequest(t, http.MethodDelete, srv.URL+"/api/clients/"+clientID, nil), &msg)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Client deleted successfully", msg["message"])

	var orphan map[string]any
	status = doJSON(t, newRequest(t, http.MethodGet, srv.URL+"/api/projects/"+projectID, nil), &orphan)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, clientID, orphan["client_id"])
	_, hasName := orphan["client_name"]
	assert.False(t, hasName)

	// Повторное удаление и чтение дают 404
	var errBody map[string]any
	status = doJSON(t, newRequest(t, http.MethodDelete, srv.URL+"/api/clients/"+clientID, nil), &errBody)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Client not found", errBody["detail"])

	status = doJSON(t, newRequest(t, http.MethodGet, srv.URL+"/api/clients/"+clientID, nil), nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Новый проект для удаленного клиента не создается
	status = doJSON(t, newRequest(t, http.MethodPost, srv.URL+"/api/projects",
		mustJSON(t, map[string]any{"name": "Other", "client_id": clientID})), &errBody)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Client not found", errBody["detail"])

	status = doJSON(t, newRequest(t, http.MethodGet, srv.URL+"/api/projects", nil), &projects)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, projects, 1)
}

func TestUpdatedAtIncreasesIntegration(t *testing.T) {
	database := setupTestDB(t)
	srv, _ := setupAPI(t, database, "")

	var member map[string]any
	status := doJSON(t, newRequest(t, http.MethodPost, srv.URL+"/team-members", mustJSON(t, map[string]any{
		"name": "Bob", "email": "bob@x.io", "role": "dev", "member_type": "internal",
	})), &member)
	require.Equal(t, http.StatusOK, status)
	memberID := member["id"].(string)

	previous, err := time.Parse(time.RFC3339Nano, member["updated_at"].(string))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		status = doJSON(t, newRequest(t, http.MethodPut, srv.URL+"/team-members/"+memberID, mustJSON(t, map[string]any{
			"name": "Bob", "email": "bob@x.io", "role": "lead", "member_type": "internal",
		})), nil)
		require.Equal(t, http.StatusOK, status)

		var current map[string]any
		doJSON(t, newRequest(t, http.MethodGet, srv.URL+"/team-members/"+memberID, nil), &current)
		updated, err := time.Parse(time.RFC3339Nano, current["updated_at"].(string))
		require.NoError(t, err)

		assert.True(t, updated.After(previous))
		assert.Equal(t, member["created_at"], current["created_at"])
		assert.Equal(t, memberID, current["id"])
		previous = updated
	}
}

func TestOwnerScopingIntegration(t *testing.T) {
	database := setupTestDB(t)
	srv, tokens := setupAPI(t, database, "")

	var client map[string]any
	status := doJSON(t, newRequest(t, http.MethodPost, srv.URL+"/clients",
		mustJSON(t, map[string]any{"name": "Acme", "email": "a@x.io"})), &client)
	require.Equal(t, http.StatusOK, status)

	token, err := tokens.Issue("other-owner", "other@example.com")
	require.NoError(t, err)

	req := newRequest(t, http.MethodGet, srv.URL+"/clients/"+client["id"].(string), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusNotFound, doJSON(t, req, nil))

	req = newRequest(t, http.MethodGet, srv.URL+"/clients", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, req, nil))
}
