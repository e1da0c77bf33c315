package exports

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	exportprovider "academic-records-backend/lib/export"
	"academic-records-backend/models"
	employeeapimodels "academic-records-backend/models/api/employee"
	exportapimodels "academic-records-backend/models/api/export"
)

type fakeExports struct {
	exportprovider.Provider
	archive bool
}

func (f *fakeExports) EmployeesWorkbook(_ context.Context, _ employeeapimodels.EmployeeFilter, archive bool, _ string) (exportapimodels.File, error) {
	f.archive = archive
	file := exportapimodels.File{Name: "employees-2024-05-10.xlsx", ContentType: exportapimodels.ContentTypeXLSX, Data: []byte("PK")}
	if archive {
		file.ArchiveID = "arch-1"
	}
	return file, nil
}

func (f *fakeExports) EmployeeSheet(_ context.Context, _ string, _ bool, _ string) (exportapimodels.File, error) {
	return exportapimodels.File{}, errors.Wrap(models.ErrNotFound, "employee not found")
}

func TestExportsApi(t *testing.T) {
	fake := &fakeExports{}
	exportprovider.Instance = fake
	app := fiber.New()
	InitExportsApiRouters(app)

	t.Run("employees workbook", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/exports/employees/xlsx?employed=true&archive=true", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, exportapimodels.ContentTypeXLSX, resp.Header.Get(fiber.HeaderContentType))
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "employees-2024-05-10.xlsx")
		require.Equal(t, "arch-1", resp.Header.Get(HeaderArchiveID))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "PK", string(body))
		require.True(t, fake.archive)
	})
	t.Run("bad filter", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/exports/employees/xlsx?employed=sometimes", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
	t.Run("sheet of missing employee", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/exports/employees/"+uuid.NewString()+"/pdf", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
	t.Run("unknown archive kind", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/exports/archives?kind=photos", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
