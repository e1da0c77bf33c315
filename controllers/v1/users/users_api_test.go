package users

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/config"
	usersprovider "academic-records-backend/lib/users"
	usersload "academic-records-backend/lib/users-load"
	"academic-records-backend/middleware"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	usersapimodels "academic-records-backend/models/api/users"
)

const testSecret = "test-secret"

type fakeUsers struct {
	usersprovider.Provider
}

func (f fakeUsers) Deactivate(ids []string) (apimodels.ActionResult, error) {
	return apimodels.ActionResult{}, models.NewValidationError("ids", "superusers cannot be deactivated: root")
}

func (f fakeUsers) Activate(ids []string) (apimodels.ActionResult, error) {
	return apimodels.ActionResult{Message: "Activated the selected users.", Affected: ids}, nil
}

type fakeLoad struct {
	sheet    string
	fileName string
	data     []byte
	userID   string
}

func (f *fakeLoad) Load(ctx context.Context, workbook io.Reader, fileName, sheet, userID string) (usersapimodels.LoadResult, error) {
	f.sheet, f.fileName, f.userID = sheet, fileName, userID
	f.data, _ = io.ReadAll(workbook)
	return usersapimodels.LoadResult{Created: []string{"jkowalski"}}, nil
}

func token(t *testing.T, userID string, superuser bool) string {
	claims := jwt.MapClaims{
		"sub":       userID,
		"staff":     true,
		"superuser": superuser,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestUsersApi(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = testSecret
	usersprovider.Instance = fakeUsers{}
	loader := &fakeLoad{}
	usersload.Instance = loader

	app := fiber.New()
	app.Use(middleware.AuthorizationRequired())
	InitUsersApiRouters(app)

	do := func(method, path, contentType string, body io.Reader, tok string) (int, apimodels.Response) {
		req := httptest.NewRequest(method, path, body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		resp, err := app.Test(req)
		require.NoError(t, err)
		var out apimodels.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp.StatusCode, out
	}
	ids := `{"ids":["` + uuid.NewString() + `"]}`

	t.Run("staff cannot run actions", func(t *testing.T) {
		status, _ := do(fiber.MethodPost, "/users/actions/activate", fiber.MIMEApplicationJSON, strings.NewReader(ids), token(t, uuid.NewString(), false))
		require.Equal(t, fiber.StatusForbidden, status)
	})
	t.Run("activate", func(t *testing.T) {
		status, resp := do(fiber.MethodPost, "/users/actions/activate", fiber.MIMEApplicationJSON, strings.NewReader(ids), token(t, uuid.NewString(), true))
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "Activated the selected users.", resp.Data.(map[string]interface{})["message"])
	})
	t.Run("empty selection", func(t *testing.T) {
		status, resp := do(fiber.MethodPost, "/users/actions/activate", fiber.MIMEApplicationJSON, strings.NewReader(`{"ids":[]}`), token(t, uuid.NewString(), true))
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "ids", resp.Field)
	})
	t.Run("superusers only", func(t *testing.T) {
		status, resp := do(fiber.MethodPost, "/users/actions/deactivate", fiber.MIMEApplicationJSON, strings.NewReader(ids), token(t, uuid.NewString(), true))
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "superusers cannot be deactivated: root", resp.Message)
	})
	t.Run("load workbook", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("file", "users.xlsx")
		require.NoError(t, err)
		_, err = part.Write([]byte("workbook"))
		require.NoError(t, err)
		require.NoError(t, writer.WriteField("sheet", "people"))
		require.NoError(t, writer.Close())

		userID := uuid.NewString()
		status, _ := do(fiber.MethodPost, "/users/load", writer.FormDataContentType(), body, token(t, userID, true))
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "people", loader.sheet)
		require.Equal(t, "users.xlsx", loader.fileName)
		require.Equal(t, []byte("workbook"), loader.data)
		require.Equal(t, userID, loader.userID)
	})
	t.Run("load without file", func(t *testing.T) {
		status, _ := do(fiber.MethodPost, "/users/load", fiber.MIMEApplicationJSON, strings.NewReader(`{}`), token(t, uuid.NewString(), true))
		require.Equal(t, fiber.StatusBadRequest, status)
	})
}
