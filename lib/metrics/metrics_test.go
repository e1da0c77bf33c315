package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("validation rejections", func(t *testing.T) {
		before := testutil.ToFloat64(ValidationRejections.WithLabelValues("orcid"))
		ObserveValidation("orcid")
		require.Equal(t, before+1, testutil.ToFloat64(ValidationRejections.WithLabelValues("orcid")))
		ObserveValidation("")
		require.GreaterOrEqual(t, testutil.ToFloat64(ValidationRejections.WithLabelValues("__all__")), 1.0)
	})
	t.Run("approval decisions", func(t *testing.T) {
		ObserveApproval("article", true, 3)
		require.Equal(t, 3.0, testutil.ToFloat64(ApprovalDecisions.WithLabelValues("article", "approve")))
	})
	t.Run("handler", func(t *testing.T) {
		ObserveRequest(fiber.MethodGet, "/api/v1/units/tree", fiber.StatusOK, 0.01)
		app := fiber.New()
		app.Get("/metrics", Handler())
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "academic_records_api_requests_total")
	})
}
