package app

import (
	"context"
	"errors"

	"dashboard-customization/internal/core"

	"github.com/invopop/jsonschema"
)

// ErrNotFound is returned when a tab, chart or reference list does not exist.
var ErrNotFound = errors.New("not found")

// ApplicationService is the single interface all host adapters (CLI, Web) call.
// It decouples presentation from the bundle. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GetBundle returns the full customization: config, registered component keys and reference data.
	GetBundle(ctx context.Context) (*BundleResult, error)

	// GetConfig returns the customization config.
	GetConfig(ctx context.Context) (*core.AppConfig, error)

	// ListTabs returns the dashboard tabs in config order, each flagged with
	// whether a component is registered for it.
	ListTabs(ctx context.Context) (*TabListResult, error)

	// RenderTab builds the component for a tab. Returns ErrNotFound when no
	// component is registered under tabID.
	RenderTab(ctx context.Context, tabID string) (*TabResult, error)

	// GetChart returns one chart by section ("dashboard" or "analytics") and name.
	GetChart(ctx context.Context, section, name string) (*ChartResult, error)

	// GetReferenceList returns one reference vocabulary by name.
	GetReferenceList(ctx context.Context, name string) (*ReferenceListResult, error)

	// ConfigSchema returns the JSON Schema describing the config contract.
	ConfigSchema(ctx context.Context) (*jsonschema.Schema, error)

	// CheckConsistency verifies the tab/registry and chart/data-key invariants
	// and returns every violation found, or nil.
	CheckConsistency(ctx context.Context) error
}
