package approval

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	approvalprovider "academic-records-backend/lib/approval"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	approvalapimodels "academic-records-backend/models/api/approval"
)

type fakeApproval struct {
	approvalprovider.Provider
	kind models.ApprovalKind
}

func (f *fakeApproval) Approve(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, _ string) (apimodels.ActionResult, error) {
	f.kind = kind
	if !kind.IsValid() {
		return apimodels.ActionResult{}, models.NewValidationErrorf("kind", "unknown record type %q", kind)
	}
	return apimodels.ActionResult{Message: "Approved the selected record.", Affected: request.IDs}, nil
}

func (f *fakeApproval) History(kind models.ApprovalKind, _ string) ([]approvalapimodels.ApprovalHistoryView, error) {
	f.kind = kind
	return []approvalapimodels.ApprovalHistoryView{{Approved: true}}, nil
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

func TestApprovalApi(t *testing.T) {
	fake := &fakeApproval{}
	approvalprovider.Instance = fake
	app := fiber.New()
	InitApprovalApiRouters(app)

	t.Run("approve", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/approval/contribution/approve", `{"ids":["`+uuid.NewString()+`"]}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, models.ApprovalContribution, fake.kind)
		require.NotNil(t, resp.Data)
	})
	t.Run("unknown kind", func(t *testing.T) {
		status, resp := do(t, app, fiber.MethodPost, "/approval/journal/approve", `{"ids":["`+uuid.NewString()+`"]}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "kind", resp.Field)
	})
	t.Run("malformed ids", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodPost, "/approval/article/approve", `{"ids":["42"]}`)
		require.Equal(t, fiber.StatusBadRequest, status)
	})
	t.Run("history", func(t *testing.T) {
		status, _ := do(t, app, fiber.MethodGet, "/approval/patent/"+uuid.NewString()+"/history", "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, models.ApprovalPatent, fake.kind)
	})
}
