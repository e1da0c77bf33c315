package contributions

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	authorprovider "academic-records-backend/lib/author"
	contributionprovider "academic-records-backend/lib/contribution"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	contributionapimodels "academic-records-backend/models/api/contribution"
)

type fakeAuthors struct {
	authorprovider.Provider
}

func (fakeAuthors) List(filter contributionapimodels.AuthorFilter) ([]contributionapimodels.AuthorView, error) {
	return []contributionapimodels.AuthorView{{ID: "a1", Group: filter.Group}}, nil
}

type fakeContributions struct {
	contributionprovider.Provider
}

func (fakeContributions) Create(request contributionapimodels.ContributionData) (string, error) {
	return "c" + strconv.Itoa(request.Percentage), nil
}

func (fakeContributions) Get(id string) (contributionapimodels.ContributionView, error) {
	return contributionapimodels.ContributionView{}, errors.Wrap(models.ErrNotFound, "contribution not found")
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

func TestContributionsApi(t *testing.T) {
	authorprovider.Instance = fakeAuthors{}
	contributionprovider.Instance = fakeContributions{}
	app := fiber.New()
	InitContributionsApiRouters(app)

	t.Run("author list by group", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodGet, "/authors?group=E", "")
		require.Equal(t, fiber.StatusOK, status)
	})
	t.Run("author list with unknown group", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodGet, "/authors?group=X", "")
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "group", resp.Field)
	})
	t.Run("create", func(t *testing.T) {
		body := `{"content_type":"article","content_id":"` + uuid.NewString() + `","author_id":"` + uuid.NewString() + `","percentage":30}`
		status, resp := do(t, app, fiber.MethodPost, "/contributions", body)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "c30", resp.Data)
	})
	t.Run("create with the full percentage", func(t *testing.T) {
		body := `{"content_type":"article","content_id":"` + uuid.NewString() + `","author_id":"` + uuid.NewString() + `","percentage":100}`
		status, resp := do(t, app, fiber.MethodPost, "/contributions", body)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "c100", resp.Data)
	})
	t.Run("create with unknown element type", func(t *testing.T) {
		body := `{"content_type":"book","content_id":"` + uuid.NewString() + `","author_id":"` + uuid.NewString() + `"}`
		status, resp := do(t, app, fiber.MethodPost, "/contributions", body)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "content_type", resp.Field)
	})
	t.Run("percentage out of range", func(t *testing.T) {
		body := `{"content_type":"patent","content_id":"` + uuid.NewString() + `","author_id":"` + uuid.NewString() + `","percentage":101}`
		status, resp := do(t, app, fiber.MethodPost, "/contributions", body)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "percentage", resp.Field)
	})
	t.Run("get missing", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodGet, "/contributions/"+uuid.NewString(), "")
		require.Equal(t, fiber.StatusNotFound, status)
	})
}
