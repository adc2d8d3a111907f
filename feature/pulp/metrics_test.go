package pulp

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandlePlan_Metrics(t *testing.T) {
	before := testutil.ToFloat64(planRequests.WithLabelValues(workflowClear, "400"))

	app := fiber.New()
	NewHandler(nil, nil, nil, zap.NewNop()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/clear-plan", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(planRequests.WithLabelValues(workflowClear, "400")))
}
