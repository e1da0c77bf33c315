package outputs

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	articleprovider "academic-records-backend/lib/article"
	patentprovider "academic-records-backend/lib/patent"
	projectprovider "academic-records-backend/lib/project"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	outputsapimodels "academic-records-backend/models/api/outputs"
)

type fakeArticles struct {
	articleprovider.Provider
	lastFilter outputsapimodels.OutputFilter
}

func (f *fakeArticles) List(filter outputsapimodels.OutputFilter) ([]outputsapimodels.ArticleView, int64, error) {
	f.lastFilter = filter
	return []outputsapimodels.ArticleView{}, 3, nil
}

func (f *fakeArticles) Create(request outputsapimodels.ArticleData) (string, error) {
	if request.Year != nil && *request.Year < 1900 {
		return "", models.NewValidationError("year", "cannot add articles published before the year 1900")
	}
	return "a1", nil
}

type fakePatents struct {
	patentprovider.Provider
}

type fakeProjects struct {
	projectprovider.Provider
	deleted string
}

func (f *fakeProjects) Delete(id string) error {
	f.deleted = id
	return nil
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

func TestOutputsApi(t *testing.T) {
	articles := &fakeArticles{}
	projects := &fakeProjects{}
	articleprovider.Instance = articles
	patentprovider.Instance = fakePatents{}
	projectprovider.Instance = projects
	app := fiber.New()
	InitOutputsApiRouters(app)

	t.Run("article list", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodGet, "/articles?year=2023&approved=false&limit=5", "")
		require.Equal(t, fiber.StatusOK, status)
		require.EqualValues(t, 3, resp.RowCount)
		require.Equal(t, 2023, articles.lastFilter.Year)
		require.Equal(t, 5, articles.lastFilter.Limit)
	})
	t.Run("article requires journal", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/articles", `{"title":"Graphs"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "journal_id", resp.Field)
	})
	t.Run("article year rejected", func(t *testing.T) {
		body := `{"title":"Graphs","journal_id":"` + uuid.NewString() + `","year":1850}`
		status, resp := do(t, app, fiber.MethodPost, "/articles", body)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "year", resp.Field)
	})
	t.Run("project with malformed date", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/projects", `{"title":"P","since_date":"01.02.2024"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "since_date", resp.Field)
	})
	t.Run("project delete", func(t *testing.T) {
		id := uuid.NewString()
		status, _ := do(t, app, fiber.MethodDelete, "/projects/"+id, "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, id, projects.deleted)
	})
	t.Run("patent with bad id", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodGet, "/patents/not-an-id", "")
		require.Equal(t, fiber.StatusBadRequest, status)
	})
}
