package employees

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	employeeprovider "academic-records-backend/lib/employee"
	employmentprovider "academic-records-backend/lib/employment"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	employeeapimodels "academic-records-backend/models/api/employee"
)

type fakeEmployees struct {
	employeeprovider.Provider
	activeOnly bool
}

func (f *fakeEmployees) List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error) {
	return []employeeapimodels.EmployeeView{{ID: "e1", Label: filter.Search}}, 42, nil
}

func (f *fakeEmployees) Create(request employeeapimodels.EmployeeData) (string, error) {
	return "", models.NewValidationError("orcid", "employee with this ORCID already exists")
}

func (f *fakeEmployees) Employments(id string, activeOnly bool) ([]employeeapimodels.EmploymentView, error) {
	f.activeOnly = activeOnly
	return []employeeapimodels.EmploymentView{}, nil
}

type fakeEmployments struct {
	employmentprovider.Provider
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, apimodels.ScrollerResponse) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out apimodels.ScrollerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestEmployeesApi(t *testing.T) {
	fake := &fakeEmployees{}
	employeeprovider.Instance = fake
	employmentprovider.Instance = fakeEmployments{}
	app := fiber.New()
	InitEmployeesApiRouters(app)

	t.Run("list", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodGet, "/employees?search=kow&employed=true&page=2", "")
		require.Equal(t, fiber.StatusOK, status)
		require.EqualValues(t, 42, resp.RowCount)
	})
	t.Run("list rejects bad filter", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodGet, "/employees?employed=maybe", "")
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "employed", resp.Field)
	})
	t.Run("create maps validation error", func(t *testing.T) {
		body := `{"user_id":"` + uuid.NewString() + `","status_id":"` + uuid.NewString() + `","orcid":"0000-0002-1825-0097"}`
		status, resp := do(t, app, fiber.MethodPost, "/employees", body)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "orcid", resp.Field)
	})
	t.Run("create requires user", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/employees", `{"status_id":"`+uuid.NewString()+`"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "user_id", resp.Field)
	})
	t.Run("active employments", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodGet, "/employees/"+uuid.NewString()+"/employments?active=true", "")
		require.Equal(t, fiber.StatusOK, status)
		require.True(t, fake.activeOnly)
	})
	t.Run("employment dates are checked", func(t *testing.T) {
		body := `{"employee_id":"` + uuid.NewString() + `","position_id":"` + uuid.NewString() +
			`","group_id":"` + uuid.NewString() + `","department_id":"` + uuid.NewString() + `","since_date":"01.02.2020"}`
		status, resp := do(t, app, fiber.MethodPost, "/employments", body)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "since_date", resp.Field)
	})
}
