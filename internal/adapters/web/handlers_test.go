package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webAdapter "dashboard-customization/internal/adapters/web"
	"dashboard-customization/internal/app"
	"dashboard-customization/internal/customization"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	svc := app.NewAppService(customization.New())
	return webAdapter.NewHandler(svc, logr.Discard(), "https://allowed.example")
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","company":"QuoinStone Group"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRootRedirectsToDashboard(t *testing.T) {
	rec := get(t, newTestHandler(t), "/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDashboardPage(t *testing.T) {
	h := newTestHandler(t)

	t.Run("default tab", func(t *testing.T) {
		rec := get(t, h, "/dashboard")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, body, "QuoinStone Group")
		assert.Contains(t, body, "Tim Struth")
		assert.Contains(t, body, `href="/dashboard/invoiceProcessing"`)
		assert.Contains(t, body, `data-icon="home"`)
		assert.Contains(t, body, "<td>Shopping Center A</td><td>Vacant</td><td>Occupy</td><td>2023-09-15</td>")
	})

	t.Run("named tab", func(t *testing.T) {
		rec := get(t, h, "/dashboard/invoiceProcessing")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<title>Invoice Processing · QuoinStone Group - Property Management</title>")
		assert.Contains(t, body, "<td>£3000</td>")
		assert.Contains(t, body, `class="active"`)
	})

	t.Run("unknown tab renders placeholder", func(t *testing.T) {
		rec := get(t, h, "/dashboard/reporting")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "This section is not available.")
		assert.Contains(t, body, "<code>reporting</code>")
	})
}

func TestTabFragment(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/tabs/propertyManagement")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div class="p-4 bg-white rounded-lg shadow">`))
	assert.Equal(t, 4, strings.Count(body, "<tr>"))

	rec = get(t, h, "/tabs/%3Cscript%3E")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
}

func TestAPIBundle(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/customization")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Config struct {
			CompanyName string `json:"companyName"`
			Dashboard   struct {
				Tabs []struct {
					ID   string `json:"id"`
					Icon string `json:"icon"`
				} `json:"tabs"`
			} `json:"dashboard"`
		} `json:"config"`
		Components []string            `json:"components"`
		Data       map[string][]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "QuoinStone Group", body.Config.CompanyName)
	require.Len(t, body.Config.Dashboard.Tabs, 2)
	assert.Equal(t, "file-text", body.Config.Dashboard.Tabs[1].Icon)
	assert.ElementsMatch(t, []string{"propertyManagement", "invoiceProcessing"}, body.Components)
	assert.Equal(t, []string{"Occupy", "Vacate", "Maintain"}, body.Data["actionTypes"])
}

func TestAPIChart(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/customization/charts/dashboard/propertyStatus")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"section": "dashboard",
		"name": "propertyStatus",
		"chart": {
			"type": "pie",
			"dataKeys": ["value"],
			"colors": ["#3B82F6", "#60A5FA", "#93C5FD"],
			"data": [
				{"name": "Vacant", "value": 30},
				{"name": "Occupied", "value": 50},
				{"name": "In Process", "value": 20}
			]
		}
	}`, rec.Body.String())

	rec = get(t, h, "/api/customization/charts/dashboard/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Equal(t, rec.Header().Get("X-Request-ID"), errBody["request_id"])
}

func TestAPIReferenceList(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/customization/data/propertyStatuses")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"propertyStatuses","values":["Vacant","Occupied","In Process"]}`, rec.Body.String())

	rec = get(t, h, "/api/customization/data/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPITabsAndSchema(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/customization/tabs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"registered":true`)

	rec = get(t, h, "/api/customization/schema?pretty")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"primaryColor"`)
	assert.Contains(t, rec.Body.String(), "\n  ")
}

func TestStaticStylesheet(t *testing.T) {
	rec := get(t, newTestHandler(t), "/static/dashboard.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".rounded-lg")
}
