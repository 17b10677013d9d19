package app

import (
	"context"
	"fmt"

	"dashboard-customization/internal/core"
	"dashboard-customization/internal/customization"
	"dashboard-customization/internal/logger"

	"github.com/invopop/jsonschema"
)

type appService struct {
	bundle *customization.Bundle
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(bundle *customization.Bundle) ApplicationService {
	return &appService{bundle: bundle}
}

// GetBundle returns the full customization in its wire form.
func (s *appService) GetBundle(ctx context.Context) (*BundleResult, error) {
	return &BundleResult{
		Config:     s.bundle.Config.Clone(),
		Components: s.bundle.Components.Keys(),
		Data:       s.bundle.Data.Clone(),
	}, nil
}

// GetConfig returns a deep copy of the customization config.
func (s *appService) GetConfig(ctx context.Context) (*core.AppConfig, error) {
	cfg := s.bundle.Config.Clone()
	return &cfg, nil
}

// ListTabs returns the dashboard tabs in config order.
func (s *appService) ListTabs(ctx context.Context) (*TabListResult, error) {
	tabs := s.bundle.Config.Dashboard.Tabs
	out := make([]TabEntry, 0, len(tabs))
	for _, t := range tabs {
		_, ok := s.bundle.Components.Lookup(t.ID)
		out = append(out, TabEntry{Tab: t, Registered: ok})
	}
	return &TabListResult{Tabs: out}, nil
}

// RenderTab builds the component registered for tabID.
func (s *appService) RenderTab(ctx context.Context, tabID string) (*TabResult, error) {
	component, ok := s.bundle.Render(tabID)
	if !ok {
		logger.FromContext(ctx).V(1).Info("no component registered", "tab", tabID)
		return nil, fmt.Errorf("tab %q: %w", tabID, ErrNotFound)
	}
	tab, _ := s.bundle.Config.Tab(tabID)
	return &TabResult{TabID: tabID, Tab: tab, Component: component}, nil
}

// GetChart returns one chart by section and name.
func (s *appService) GetChart(ctx context.Context, section, name string) (*ChartResult, error) {
	charts := s.bundle.Config.Charts(section)
	if charts == nil {
		return nil, fmt.Errorf("chart section %q: %w", section, ErrNotFound)
	}
	chart, ok := charts[name]
	if !ok {
		return nil, fmt.Errorf("chart %s/%s: %w", section, name, ErrNotFound)
	}
	return &ChartResult{Section: section, Name: name, Chart: chart.Clone()}, nil
}

// GetReferenceList returns one reference vocabulary by name.
func (s *appService) GetReferenceList(ctx context.Context, name string) (*ReferenceListResult, error) {
	values, ok := s.bundle.Data.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("reference list %q: %w", name, ErrNotFound)
	}
	return &ReferenceListResult{Name: name, Values: values}, nil
}

// ConfigSchema reflects the JSON Schema of core.AppConfig.
func (s *appService) ConfigSchema(ctx context.Context) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&core.AppConfig{})
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect config schema")
	}
	schema.Title = "AppConfig"
	return schema, nil
}

// CheckConsistency runs the consistency checks over the bundle.
func (s *appService) CheckConsistency(ctx context.Context) error {
	return checkBundle(s.bundle)
}
