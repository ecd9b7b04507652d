package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"crm-assessment/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)
	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	body := fmt.Sprintf(`{"customerId":%q,"title":"Expansion deal","status":"New","value":"1500.50"}`, customer.ID)
	c, rec := env.request(http.MethodPost, "/api/leads", body)
	require.NoError(t, handler.Create(c))
	requireStatus(t, rec, http.StatusCreated)

	response := decodeSuccess(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Expansion deal", data["title"])
	assert.Equal(t, models.LeadStatusNew, data["status"])
}

func TestLeadHandler_Create_UnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)

	body := fmt.Sprintf(`{"customerId":%q,"title":"Orphan deal"}`, uuid.New())
	c, rec := env.request(http.MethodPost, "/api/leads", body)
	require.NoError(t, handler.Create(c))
	requireStatus(t, rec, http.StatusNotFound)
}

func TestLeadHandler_List_StatusFilter(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)
	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	for _, status := range []string{models.LeadStatusNew, models.LeadStatusConverted} {
		lead := &models.Lead{CustomerID: customer.ID, Title: "Deal " + status, Status: status}
		require.NoError(t, env.leadRepo.Create(lead))
	}

	c, rec := env.request(http.MethodGet, "/api/leads?status=Converted", "")
	require.NoError(t, handler.List(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	assert.Len(t, response["data"], 1)
}

func TestLeadHandler_List_AllStatuses(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)
	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	for _, status := range []string{models.LeadStatusNew, models.LeadStatusLost} {
		lead := &models.Lead{CustomerID: customer.ID, Title: "Deal " + status, Status: status}
		require.NoError(t, env.leadRepo.Create(lead))
	}

	c, rec := env.request(http.MethodGet, "/api/leads?status=All", "")
	require.NoError(t, handler.List(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	assert.Len(t, response["data"], 2)
}

func TestLeadHandler_Update_Status(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)
	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	lead := &models.Lead{CustomerID: customer.ID, Title: "Pipeline deal", Status: models.LeadStatusNew}
	require.NoError(t, env.leadRepo.Create(lead))

	c, rec := env.request(http.MethodPut, "/api/leads/"+lead.ID.String(), `{"status":"Contacted"}`)
	c.SetParamNames("id")
	c.SetParamValues(lead.ID.String())
	require.NoError(t, handler.Update(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.LeadStatusContacted, data["status"])
}

func TestLeadHandler_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)

	id := uuid.New().String()
	c, rec := env.request(http.MethodPut, "/api/leads/"+id, `{"status":"Lost"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, handler.Update(c))
	requireStatus(t, rec, http.StatusNotFound)

	response := decodeSuccess(t, rec)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "LEAD_001", errObj["code"])
}

func TestLeadHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	handler := NewLeadHandler(env.leadService)
	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	lead := &models.Lead{CustomerID: customer.ID, Title: "Doomed deal", Status: models.LeadStatusNew}
	require.NoError(t, env.leadRepo.Create(lead))

	c, rec := env.request(http.MethodDelete, "/api/leads/"+lead.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(lead.ID.String())
	require.NoError(t, handler.Delete(c))
	requireStatus(t, rec, http.StatusOK)
}

func TestDashboardHandler_Stats(t *testing.T) {
	env := newTestEnv(t)
	handler := NewDashboardHandler(env.dashboardService)
	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	for _, status := range []string{models.LeadStatusNew, models.LeadStatusNew, models.LeadStatusConverted} {
		lead := &models.Lead{CustomerID: customer.ID, Title: "Deal", Status: status}
		require.NoError(t, env.leadRepo.Create(lead))
	}

	c, rec := env.request(http.MethodGet, "/api/dashboard/stats", "")
	require.NoError(t, handler.Stats(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	data := response["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	byStatus := stats["leadsByStatus"].(map[string]interface{})
	assert.EqualValues(t, 2, byStatus[models.LeadStatusNew])
	assert.EqualValues(t, 1, byStatus[models.LeadStatusConverted])
	assert.EqualValues(t, 0, byStatus[models.LeadStatusLost])
}
