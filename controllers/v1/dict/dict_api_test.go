package dict

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/config"
	authorstatusprovider "academic-records-backend/lib/dicts/author-status"
	"academic-records-backend/middleware"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dictapimodels "academic-records-backend/models/api/dict"
)

const testSecret = "test-secret"

type fakeAuthorStatus struct {
	authorstatusprovider.Provider
	created []dictapimodels.AuthorStatusData
	filter  dictapimodels.AuthorStatusFilter
}

func (f *fakeAuthorStatus) Create(ctx context.Context, request dictapimodels.AuthorStatusData) (string, error) {
	if request.Default == models.Yes && len(f.created) > 0 {
		return "", models.NewValidationError("default", "the group already has a default status")
	}
	f.created = append(f.created, request)
	return uuid.NewString(), nil
}

func (f *fakeAuthorStatus) List(filter dictapimodels.AuthorStatusFilter) ([]dictapimodels.AuthorStatusView, error) {
	f.filter = filter
	return []dictapimodels.AuthorStatusView{}, nil
}

func token(t *testing.T, superuser bool) string {
	claims := jwt.MapClaims{
		"sub":       uuid.NewString(),
		"staff":     true,
		"superuser": superuser,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestDictApi(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = testSecret
	fake := &fakeAuthorStatus{}
	authorstatusprovider.Instance = fake

	app := fiber.New()
	app.Use(middleware.AuthorizationRequired())
	InitAuthorStatusDictApiRouters(app)
	InitChoicesDictApiRouters(app)

	do := func(method, path, body, tok string) (int, apimodels.Response) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		var out apimodels.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp.StatusCode, out
	}
	body := `{"name":"author","abbr":"A","group":"E","default":"Y"}`

	t.Run("staff cannot change dictionaries", func(t *testing.T) {
		status, _ := do(fiber.MethodPost, "/author-status", body, token(t, false))
		require.Equal(t, fiber.StatusForbidden, status)
	})
	t.Run("superuser creates", func(t *testing.T) {
		status, resp := do(fiber.MethodPost, "/author-status", body, token(t, true))
		require.Equal(t, fiber.StatusOK, status)
		require.NotEmpty(t, resp.Data)
	})
	t.Run("second default is rejected", func(t *testing.T) {
		status, resp := do(fiber.MethodPost, "/author-status", body, token(t, true))
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "default", resp.Field)
	})
	t.Run("unknown group", func(t *testing.T) {
		status, resp := do(fiber.MethodPost, "/author-status", `{"name":"x","abbr":"X","group":"Z"}`, token(t, true))
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "group", resp.Field)
	})
	t.Run("list filter", func(t *testing.T) {
		status, _ := do(fiber.MethodGet, "/author-status?group=A&search=co", "", token(t, false))
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, models.AuthorsNotEmployees, fake.filter.Group)
		require.Equal(t, "co", fake.filter.Search)
	})
	t.Run("choices", func(t *testing.T) {
		status, resp := do(fiber.MethodGet, "/choices", "", token(t, false))
		require.Equal(t, fiber.StatusOK, status)
		data := resp.Data.(map[string]interface{})
		require.Len(t, data["journal_ratings"], 7)
		require.Len(t, data["element_kinds"], 3)
	})
}
