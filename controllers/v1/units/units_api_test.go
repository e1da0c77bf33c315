package units

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	unitsprovider "academic-records-backend/lib/units"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	unitsapimodels "academic-records-backend/models/api/units"
)

type fakeProvider struct {
	unitsprovider.Provider
	created []unitsapimodels.UniversityData
}

func (f *fakeProvider) CreateUniversity(request unitsapimodels.UniversityData) (string, error) {
	f.created = append(f.created, request)
	return "new-id", nil
}

func (f *fakeProvider) GetUniversity(id string) (unitsapimodels.UniversityView, error) {
	return unitsapimodels.UniversityView{}, errors.Wrap(models.ErrNotFound, "university not found")
}

func (f *fakeProvider) CreateDepartment(request unitsapimodels.DepartmentData) (string, error) {
	return "", models.NewValidationError("faculty_id", "faculty not found")
}

func (f *fakeProvider) Tree() ([]unitsapimodels.UniversityTreeItem, error) {
	return []unitsapimodels.UniversityTreeItem{{
		UniversityView: unitsapimodels.UniversityView{UnitView: unitsapimodels.UnitView{ID: "u1", Name: "University"}},
	}}, nil
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, apimodels.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out apimodels.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestUnitsApi(t *testing.T) {
	fake := &fakeProvider{}
	unitsprovider.Instance = fake
	app := fiber.New()
	InitUnitsApiRouters(app)

	t.Run("create", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/units/universities", `{"name":"University","abbr":"U"}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "new-id", resp.Data)
		require.Len(t, fake.created, 1)
	})
	t.Run("create rejects blank name", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/units/universities", `{"name":" ","abbr":"U"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "fail", resp.Status)
		require.Equal(t, "name", resp.Field)
	})
	t.Run("domain validation error", func(t *testing.T) {
		body := `{"name":"Dept","abbr":"D","faculty_id":"` + uuid.NewString() + `"}`
		status, resp := do(t, app, fiber.MethodPost, "/units/departments", body)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "faculty_id", resp.Field)
		require.Equal(t, "faculty not found", resp.Message)
	})
	t.Run("bad id", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodGet, "/units/universities/42", "")
		require.Equal(t, fiber.StatusBadRequest, status)
	})
	t.Run("not found", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodGet, "/units/universities/"+uuid.NewString(), "")
		require.Equal(t, fiber.StatusNotFound, status)
		require.Contains(t, resp.Message, "university not found")
	})
	t.Run("tree", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodGet, "/units/tree", "")
		require.Equal(t, fiber.StatusOK, status)
		require.Len(t, resp.Data, 1)
	})
}
