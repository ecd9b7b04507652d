package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"crm-assessment/internal/dto"
	"crm-assessment/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCustomer(t *testing.T, env *testEnv, firstName, company string) *models.Customer {
	t.Helper()

	customer, err := env.customerService.CreateCustomer(&dto.CreateCustomerRequest{
		FirstName: firstName,
		LastName:  "Doe",
		Email:     "customer@example.com",
		Phone:     "+1 555 0100",
		Company:   company,
	}, nil, "127.0.0.1", "test")
	require.NoError(t, err)
	return customer
}

func TestCustomerHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@acme.com","phone":"+1 555 0100","company":"Acme Corp"}`
	c, rec := env.request(http.MethodPost, "/api/customers", body)
	require.NoError(t, handler.Create(c))
	requireStatus(t, rec, http.StatusCreated)

	response := decodeSuccess(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Jane", data["firstName"])
	assert.NotEmpty(t, data["id"])
}

func TestCustomerHandler_List(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	createTestCustomer(t, env, "Jane", "Acme Corp")
	createTestCustomer(t, env, "John", "Globex")

	c, rec := env.request(http.MethodGet, "/api/customers?page=1&limit=10", "")
	require.NoError(t, handler.List(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	assert.EqualValues(t, 2, response["total"])
	assert.EqualValues(t, 1, response["totalPages"])
	assert.Len(t, response["data"], 2)
}

func TestCustomerHandler_List_Search(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	createTestCustomer(t, env, "Jane", "Acme Corp")
	createTestCustomer(t, env, "John", "Globex")

	c, rec := env.request(http.MethodGet, "/api/customers?search=acme", "")
	require.NoError(t, handler.List(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	assert.EqualValues(t, 1, response["total"])
}

func TestCustomerHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	c, rec := env.request(http.MethodGet, "/api/customers/"+customer.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(customer.ID.String())
	require.NoError(t, handler.Get(c))
	requireStatus(t, rec, http.StatusOK)
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	id := uuid.New().String()
	c, rec := env.request(http.MethodGet, "/api/customers/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, handler.Get(c))
	requireStatus(t, rec, http.StatusNotFound)

	response := decodeSuccess(t, rec)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "CUSTOMER_001", errObj["code"])
}

func TestCustomerHandler_Get_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	c, rec := env.request(http.MethodGet, "/api/customers/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, handler.Get(c))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCustomerHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	c, rec := env.request(http.MethodPut, "/api/customers/"+customer.ID.String(), `{"company":"Acme Holdings"}`)
	c.SetParamNames("id")
	c.SetParamValues(customer.ID.String())
	require.NoError(t, handler.Update(c))
	requireStatus(t, rec, http.StatusOK)

	response := decodeSuccess(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Acme Holdings", data["company"])
	assert.Equal(t, "Jane", data["firstName"])
}

func TestCustomerHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCustomerHandler(env.customerService)

	customer := createTestCustomer(t, env, "Jane", "Acme Corp")

	c, rec := env.request(http.MethodDelete, "/api/customers/"+customer.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(customer.ID.String())
	require.NoError(t, handler.Delete(c))
	requireStatus(t, rec, http.StatusOK)

	gone, rec2 := env.request(http.MethodGet, fmt.Sprintf("/api/customers/%s", customer.ID), "")
	gone.SetParamNames("id")
	gone.SetParamValues(customer.ID.String())
	require.NoError(t, handler.Get(gone))
	requireStatus(t, rec2, http.StatusNotFound)
}
