package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"dashboard-customization/internal/adapters/cli"
	"dashboard-customization/internal/app"
	"dashboard-customization/internal/core"
	"dashboard-customization/internal/customization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, b *customization.Bundle, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Run(context.Background(), app.NewAppService(b), &out, args)
	return out.String(), err
}

func TestShow_JSON(t *testing.T) {
	out, err := run(t, customization.New(), "show")
	require.NoError(t, err)

	var result app.BundleResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Tim Struth", result.Config.UserName)
	assert.Equal(t, []string{"invoiceProcessing", "propertyManagement"}, result.Components)
	chart := result.Config.Dashboard.Charts["propertyStatus"]
	require.Len(t, chart.Data, 3)
	assert.Equal(t, "In Process", chart.Data[2].Label)
}

func TestShow_YAML(t *testing.T) {
	out, err := run(t, customization.New(), "show", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Config struct {
			CompanyName string `yaml:"companyName"`
		} `yaml:"config"`
		Data struct {
			PropertyStatuses []string `yaml:"propertyStatuses"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "QuoinStone Group", doc.Config.CompanyName)
	assert.Equal(t, []string{"Vacant", "Occupied", "In Process"}, doc.Data.PropertyStatuses)
}

func TestShow_UnknownFormat(t *testing.T) {
	_, err := run(t, customization.New(), "show", "-f", "toml")
	assert.ErrorContains(t, err, `unknown format "toml"`)
}

func TestSchema(t *testing.T) {
	out, err := run(t, customization.New(), "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"secondaryColor"`)
}

func TestTabs(t *testing.T) {
	b := customization.New()
	b.Config.Dashboard.Tabs = append(b.Config.Dashboard.Tabs, core.TabConfig{ID: "reporting", Label: "Reporting", Icon: core.IconBarChart2})

	out, err := run(t, b, "tabs")
	require.NoError(t, err)
	assert.Regexp(t, `propertyManagement\s+Property Management\s+home\s+registered`, out)
	assert.Regexp(t, `reporting\s+Reporting\s+bar-chart-2\s+missing`, out)
}

func TestRender(t *testing.T) {
	out, err := run(t, customization.New(), "render", "invoiceProcessing")
	require.NoError(t, err)
	assert.Contains(t, out, "<td>Shopping Center A</td><td>£5000</td><td>Pending</td><td>2023-09-30</td>")

	_, err = run(t, customization.New(), "render", "reporting")
	assert.EqualError(t, err, `no component registered for tab "reporting"`)

	_, err = run(t, customization.New(), "render")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, customization.New(), "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Customization is consistent.")

	b := customization.New()
	delete(b.Components, core.TabInvoiceProcessing)
	out, err = run(t, b, "check")
	assert.EqualError(t, err, "1 consistency problem(s) found")
	assert.Contains(t, out, `tab "invoiceProcessing": no component registered`)
}
